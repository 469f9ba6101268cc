package ports

import (
	"context"
	"training-plan-server/internal/model"
)

// StravaAPI : REST API Strava с bearer-токеном
type StravaAPI interface {
	GetAthlete(ctx context.Context, accessToken string) (*model.Athlete, error)
	GetActivities(ctx context.Context, accessToken string, page, perPage int) ([]model.Activity, error)
	GetActivity(ctx context.Context, accessToken string, activityID int64) (*model.Activity, error)
}

type StravaService interface {
	Athlete(ctx context.Context, userID string) (*model.Athlete, error)
	Activities(ctx context.Context, userID string, page, perPage int) ([]model.Activity, error)
	Activity(ctx context.Context, userID string, activityID int64) (*model.Activity, error)
	ActivitiesForPlan(ctx context.Context, userID string) []model.FilteredActivity
}
