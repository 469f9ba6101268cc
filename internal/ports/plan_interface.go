package ports

import (
	"context"
	"training-plan-server/internal/model"
)

// TextGenerator : генеративная модель в режиме строгого JSON
type TextGenerator interface {
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// PlanArchive : внешнее хранилище сгенерированных планов
type PlanArchive interface {
	SavePlan(ctx context.Context, userID string, plan *model.TrainingPlanResponse) (string, error)
}

type PlanService interface {
	Generate(ctx context.Context, input model.TrainingPlanInput) (*model.TrainingPlanResponse, error)
	SamplePlan() (*model.TrainingPlanResponse, error)
}
