package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"training-plan-server/internal/apperr"
	"training-plan-server/internal/model"
	"training-plan-server/internal/model/requestresponse"
	"training-plan-server/internal/ports"
	"training-plan-server/internal/util"
)

type TrainingHandler struct {
	plans  ports.PlanService
	strava ports.StravaService
}

func NewTrainingHandler(plans ports.PlanService, strava ports.StravaService) *TrainingHandler {
	return &TrainingHandler{plans: plans, strava: strava}
}

// Generate godoc
// @Summary Генерация плана тренировок
// @Description Строит план под забег. Если передан userId и Strava подключена,
// последние активности атлета добавляются в промпт; без них план всё равно генерируется.
// @Tags Training
// @Accept json
// @Produce json
// @Param body body requestresponse.GenerateTrainingRequest true "Параметры забега"
// @Success 200 {object} requestresponse.TrainingPlanEnvelope
// @Failure 400 {object} requestresponse.FailureEnvelope "Не заполнены обязательные поля"
// @Failure 429 {object} requestresponse.FailureEnvelope "Слишком много запросов"
// @Failure 500 {object} requestresponse.FailureEnvelope "Ошибка генерации плана"
// @Router /api/v1/training/generate [post]
func (h *TrainingHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.GenerateTrainingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		sendFailure(w, http.StatusBadRequest, "некорректный JSON")
		return
	}

	input, err := toPlanInput(&req)
	if err != nil {
		sendFailure(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	input.Activities = h.strava.ActivitiesForPlan(ctx, input.UserID)

	plan, err := h.plans.Generate(ctx, input)
	if err != nil {
		slog.Error("[TrainingHandler] план не сгенерирован", "status", apperr.StatusCode(err), "err", err)
		sendFailure(w, http.StatusInternalServerError, "не удалось сгенерировать план тренировок")
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.TrainingPlanEnvelope{Success: true, Data: plan})
}

// Mock godoc
// @Summary Тестовый план тренировок
// @Description Возвращает встроенный план без обращения к генеративной модели
// @Tags Training
// @Produce json
// @Success 200 {object} requestresponse.TrainingPlanEnvelope
// @Failure 500 {object} requestresponse.FailureEnvelope
// @Router /api/v1/training/mock [post]
func (h *TrainingHandler) Mock(w http.ResponseWriter, r *http.Request) {
	plan, err := h.plans.SamplePlan()
	if err != nil {
		slog.Error("[TrainingHandler] встроенный план повреждён", "err", err)
		sendFailure(w, http.StatusInternalServerError, "тестовый план недоступен")
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.TrainingPlanEnvelope{Success: true, Data: plan})
}

// toPlanInput : проверка формы до обращения к генератору
func toPlanInput(req *requestresponse.GenerateTrainingRequest) (model.TrainingPlanInput, error) {
	required := []struct {
		name  string
		value requestresponse.FlexString
	}{
		{"course_label", req.CourseLabel},
		{"course_type", req.CourseType},
		{"course_km", req.CourseKm},
		{"course_elevation", req.CourseElevation},
		{"frequency", req.Frequency},
		{"duration", req.Duration},
	}

	var missing []string
	for _, field := range required {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return model.TrainingPlanInput{}, apperr.Validation("", "отсутствуют обязательные поля: "+strings.Join(missing, ", "))
	}

	courseType := model.CourseType(req.CourseType)
	if !courseType.Valid() {
		return model.TrainingPlanInput{}, apperr.Validation("course_type", "допустимые значения: road_running, trail")
	}
	if !isNonNegativeNumber(req.CourseKm.String()) {
		return model.TrainingPlanInput{}, apperr.Validation("course_km", "должно быть числом")
	}
	if !isNonNegativeNumber(req.CourseElevation.String()) {
		return model.TrainingPlanInput{}, apperr.Validation("course_elevation", "должно быть числом")
	}
	if weeks, err := strconv.Atoi(req.Duration.String()); err != nil || weeks <= 0 {
		return model.TrainingPlanInput{}, apperr.Validation("duration", "должно быть целым числом недель")
	}

	return model.TrainingPlanInput{
		UserID:           strings.TrimSpace(req.UserID),
		CourseLabel:      req.CourseLabel.String(),
		CourseType:       courseType,
		CourseKm:         req.CourseKm.String(),
		CourseElevation:  req.CourseElevation.String(),
		Frequency:        req.Frequency.String(),
		Duration:         req.Duration.String(),
		UserPresentation: strings.TrimSpace(req.UserPresentation),
	}, nil
}

// isNonNegativeNumber : мобильная клавиатура может прислать запятую вместо точки
func isNonNegativeNumber(value string) bool {
	n, err := strconv.ParseFloat(strings.Replace(value, ",", ".", 1), 64)
	return err == nil && n >= 0
}

func sendFailure(w http.ResponseWriter, statusCode int, message string) {
	util.WriteJSON(w, statusCode, requestresponse.FailureEnvelope{Success: false, Message: message})
}
