package handler

import (
	"net/http"
	"strconv"
	"training-plan-server/internal/model/requestresponse"
	"training-plan-server/internal/ports"
	"training-plan-server/internal/util"

	"github.com/go-chi/chi/v5"
)

type StravaHandler struct {
	auth   ports.StravaAuthService
	strava ports.StravaService
}

func NewStravaHandler(auth ports.StravaAuthService, strava ports.StravaService) *StravaHandler {
	return &StravaHandler{auth: auth, strava: strava}
}

// GetConfig godoc
// @Summary Публичная конфигурация Strava
// @Description Client ID, адрес страницы согласия и scopes. Секреты не возвращаются.
// @Tags Strava
// @Produce json
// @Success 200 {object} model.PublicStravaConfig
// @Router /api/v1/strava/config [get]
func (h *StravaHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	util.WriteJSON(w, http.StatusOK, h.auth.PublicConfig())
}

// GetAuthorizationURL godoc
// @Summary Ссылка на страницу согласия Strava
// @Description Возвращает URL авторизации с подписанным параметром state
// @Tags Strava
// @Produce json
// @Param userId query string true "Идентификатор пользователя"
// @Param redirectUri query string true "Адрес возврата после согласия"
// @Success 200 {object} requestresponse.AuthorizationURLResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Не указан userId или redirectUri"
// @Router /api/v1/strava/auth/url [get]
func (h *StravaHandler) GetAuthorizationURL(w http.ResponseWriter, r *http.Request) {
	authReq, err := h.auth.AuthorizationURL(r.URL.Query().Get("userId"), r.URL.Query().Get("redirectUri"))
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.AuthorizationURLResponse{
		URL:   authReq.URL,
		State: authReq.State,
	})
}

// Exchange godoc
// @Summary Обмен authorization code на токены Strava
// @Description Токены сохраняются на сервере, клиенту возвращается только профиль и срок действия
// @Tags Strava
// @Accept json
// @Produce json
// @Param body body requestresponse.ExchangeRequest true "Тело запроса"
// @Success 200 {object} requestresponse.ExchangeResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или пустые поля"
// @Failure 401 {object} requestresponse.ErrorResponse "Strava отклонила код или state неверен"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/v1/strava/auth/exchange [post]
func (h *StravaHandler) Exchange(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.ExchangeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный JSON")
		return
	}

	if req.Code == "" || req.UserID == "" || req.RedirectURI == "" {
		sendErrorResponse(w, http.StatusBadRequest, "code, userId и redirectUri обязательны")
		return
	}

	result, err := h.auth.Exchange(r.Context(), req.UserID, req.Code, req.RedirectURI, req.State)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.ExchangeResponse{
		Athlete:   result.Athlete,
		ExpiresAt: result.ExpiresAt,
	})
}

// Refresh godoc
// @Summary Принудительное обновление токена Strava
// @Tags Strava
// @Accept json
// @Produce json
// @Param body body requestresponse.UserRequest true "Тело запроса"
// @Success 200 {object} requestresponse.RefreshResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Не указан userId"
// @Failure 401 {object} requestresponse.ErrorResponse "Нет сессии или Strava отклонила refresh, сессия удалена"
// @Router /api/v1/strava/auth/refresh [post]
func (h *StravaHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userFromBody(w, r)
	if !ok {
		return
	}

	expiresAt, err := h.auth.Refresh(r.Context(), userID)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.RefreshResponse{ExpiresAt: expiresAt})
}

// Check godoc
// @Summary Проверка сессии Strava
// @Description Истекший токен обновляется; при неудаче сессия удаляется и возвращается false
// @Tags Strava
// @Produce json
// @Param userId query string true "Идентификатор пользователя"
// @Success 200 {object} requestresponse.CheckResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Не указан userId"
// @Router /api/v1/strava/auth/check [get]
func (h *StravaHandler) Check(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromQuery(w, r)
	if !ok {
		return
	}

	authenticated, err := h.auth.Check(r.Context(), userID)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.CheckResponse{Authenticated: authenticated})
}

// Logout godoc
// @Summary Отключение Strava
// @Description Отзыв токена на стороне Strava выполняется по возможности, локальная сессия удаляется всегда
// @Tags Strava
// @Accept json
// @Produce json
// @Param body body requestresponse.UserRequest true "Тело запроса"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Не указан userId"
// @Router /api/v1/strava/auth/logout [post]
func (h *StravaHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userFromBody(w, r)
	if !ok {
		return
	}

	if err := h.auth.Logout(r.Context(), userID); err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.MessageResponse{Message: "сессия Strava завершена"})
}

// GetAthlete godoc
// @Summary Профиль атлета Strava
// @Tags Strava
// @Produce json
// @Param userId query string true "Идентификатор пользователя"
// @Success 200 {object} model.Athlete
// @Failure 400 {object} requestresponse.ErrorResponse "Не указан userId"
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован в Strava"
// @Failure 502 {object} requestresponse.ErrorResponse "Ошибка запроса к Strava"
// @Router /api/v1/strava/athlete [get]
func (h *StravaHandler) GetAthlete(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromQuery(w, r)
	if !ok {
		return
	}

	athlete, err := h.strava.Athlete(r.Context(), userID)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, athlete)
}

// GetActivities godoc
// @Summary Активности атлета
// @Tags Strava
// @Produce json
// @Param userId query string true "Идентификатор пользователя"
// @Param page query int false "Номер страницы" default(1)
// @Param perPage query int false "Размер страницы, не больше 200" default(30)
// @Success 200 {array} model.Activity
// @Failure 400 {object} requestresponse.ErrorResponse "Не указан userId или неверная пагинация"
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован в Strava"
// @Failure 502 {object} requestresponse.ErrorResponse "Ошибка запроса к Strava"
// @Router /api/v1/strava/activities [get]
func (h *StravaHandler) GetActivities(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromQuery(w, r)
	if !ok {
		return
	}

	page, err := intQuery(r, "page")
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "page должен быть числом")
		return
	}
	perPage, err := intQuery(r, "perPage")
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "perPage должен быть числом")
		return
	}

	activities, err := h.strava.Activities(r.Context(), userID, page, perPage)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, activities)
}

// GetActivity godoc
// @Summary Одна активность Strava
// @Tags Strava
// @Produce json
// @Param activityId path int true "Идентификатор активности"
// @Param userId query string true "Идентификатор пользователя"
// @Success 200 {object} model.Activity
// @Failure 400 {object} requestresponse.ErrorResponse "Не указан userId или неверный activityId"
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован в Strava"
// @Failure 502 {object} requestresponse.ErrorResponse "Ошибка запроса к Strava"
// @Router /api/v1/strava/activities/{activityId} [get]
func (h *StravaHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFromQuery(w, r)
	if !ok {
		return
	}

	activityID, err := strconv.ParseInt(chi.URLParam(r, "activityId"), 10, 64)
	if err != nil || activityID <= 0 {
		sendErrorResponse(w, http.StatusBadRequest, "activityId должен быть положительным числом")
		return
	}

	activity, err := h.strava.Activity(r.Context(), userID, activityID)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, activity)
}

func (h *StravaHandler) userFromBody(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req requestresponse.UserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "некорректный JSON")
		return "", false
	}
	if req.UserID == "" {
		sendErrorResponse(w, http.StatusBadRequest, "userId обязателен")
		return "", false
	}
	return req.UserID, true
}

func userFromQuery(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		sendErrorResponse(w, http.StatusBadRequest, "userId обязателен")
		return "", false
	}
	return userID, true
}

// intQuery : отсутствующий параметр даёт 0, сервис подставит значение по умолчанию
func intQuery(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
