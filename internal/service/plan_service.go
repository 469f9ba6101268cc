package service

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"training-plan-server/internal/apperr"
	"training-plan-server/internal/metrics"
	"training-plan-server/internal/model"
	"training-plan-server/internal/ports"
	"training-plan-server/internal/util"
)

var (
	//go:embed prompts/training_plan_system.txt
	systemPrompt string

	//go:embed prompts/training_plan_user.txt
	userPromptTemplate string

	//go:embed prompts/sample_plan.json
	samplePlanJSON []byte
)

// PlanService : генерация плана тренировок через генеративную модель
type PlanService struct {
	generator ports.TextGenerator
	archive   ports.PlanArchive
	template  *PromptTemplate
}

// NewPlanService : archive может быть nil, тогда планы не сохраняются
func NewPlanService(generator ports.TextGenerator, archive ports.PlanArchive) (*PlanService, error) {
	template, err := NewPromptTemplate(userPromptTemplate)
	if err != nil {
		return nil, util.LogError("[PlanService] ошибка шаблона промпта", err)
	}

	return &PlanService{
		generator: generator,
		archive:   archive,
		template:  template,
	}, nil
}

func (s *PlanService) Generate(ctx context.Context, input model.TrainingPlanInput) (*model.TrainingPlanResponse, error) {
	prompt, err := s.template.Render(input)
	if err != nil {
		metrics.PlanGenerations.WithLabelValues(metrics.ResultFailed).Inc()
		return nil, util.LogError("[PlanService] ошибка подготовки промпта", err)
	}

	slog.Info("[PlanService] генерация плана",
		"courseType", input.CourseType,
		"duration", input.Duration,
		"activities", len(input.Activities),
	)

	text, err := s.generator.GenerateJSON(ctx, systemPrompt, prompt)
	if err != nil {
		metrics.PlanGenerations.WithLabelValues(metrics.ResultFailed).Inc()
		return nil, util.LogError("[PlanService] ошибка генерации плана", err)
	}

	plan, err := ParseTrainingPlan(text)
	if err != nil {
		metrics.PlanGenerations.WithLabelValues(metrics.ResultInvalid).Inc()
		slog.Error("[PlanService] ответ модели отклонён", "err", err)
		return nil, err
	}

	metrics.PlanGenerations.WithLabelValues(metrics.ResultOK).Inc()
	slog.Info("[PlanService] план сгенерирован", "plan", describePlan(plan))
	s.archivePlan(ctx, input.UserID, plan)
	return plan, nil
}

// SamplePlan : встроенный план для разработки клиента без обращения к модели
func (s *PlanService) SamplePlan() (*model.TrainingPlanResponse, error) {
	return ParseTrainingPlan(string(samplePlanJSON))
}

// ParseTrainingPlan : ответ модели принимается только целиком валидным
func ParseTrainingPlan(text string) (*model.TrainingPlanResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &apperr.GenerationParseError{Reason: "пустой ответ модели"}
	}

	var plan model.TrainingPlanResponse
	decoder := json.NewDecoder(bytes.NewReader([]byte(text)))
	if err := decoder.Decode(&plan); err != nil {
		return nil, &apperr.GenerationParseError{Reason: "невалидный JSON", Err: err}
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, &apperr.GenerationParseError{Reason: "лишние данные после JSON"}
	}

	if err := plan.Validate(); err != nil {
		return nil, &apperr.GenerationParseError{Reason: "ответ не соответствует схеме", Err: err}
	}
	return &plan, nil
}

func (s *PlanService) archivePlan(ctx context.Context, userID string, plan *model.TrainingPlanResponse) {
	if s.archive == nil {
		return
	}

	key, err := s.archive.SavePlan(ctx, userID, plan)
	if err != nil {
		slog.Warn("[PlanService] план не сохранён в архив", "err", err)
		return
	}
	slog.Debug("[PlanService] план сохранён в архив", "key", key)
}

// describePlan : краткое описание плана для логов
func describePlan(plan *model.TrainingPlanResponse) string {
	return fmt.Sprintf("%d недель, %d тренировок в неделю", plan.PlanOverview.TotalWeeks, plan.PlanOverview.SessionsPerWeek)
}
