package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"training-plan-server/internal/apperr"
	"training-plan-server/internal/model/requestresponse"
	"training-plan-server/internal/util"
)

func sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	util.WriteJSON(w, statusCode, requestresponse.ErrorResponse{
		Error: requestresponse.ErrorDetail{
			Code: statusCode,
			Text: message,
		},
	})
}

// sendServiceError : текст ошибки наружу отдаётся только для ошибок валидации
func sendServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.StatusCode(err)

	var validationErr *apperr.ValidationError
	switch {
	case errors.As(err, &validationErr):
		sendErrorResponse(w, status, validationErr.Error())
	case status == http.StatusUnauthorized:
		slog.Info("[Handler] запрос без сессии Strava", "path", r.URL.Path, "err", err)
		sendErrorResponse(w, status, "пользователь не авторизован в Strava")
	case status == http.StatusBadGateway:
		slog.Warn("[Handler] ошибка запроса к Strava", "path", r.URL.Path, "err", err)
		sendErrorResponse(w, status, "ошибка запроса к Strava")
	default:
		slog.Error("[Handler] внутренняя ошибка", "path", r.URL.Path, "err", err)
		sendErrorResponse(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
	}
}

// decodeJSON : тело запроса ограничено 1 МБ
func decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	return decoder.Decode(target)
}
