package service

import (
	"context"
	"log/slog"
	"training-plan-server/internal/model"
	"training-plan-server/internal/ports"
)

const (
	DefaultPerPage = 30
	MaxPerPage     = 200

	// PlanActivitiesCount : сколько последних активностей уходит в промпт
	PlanActivitiesCount = 30
)

// StravaService : данные атлета от имени пользователя
type StravaService struct {
	auth ports.StravaAuthService
	api  ports.StravaAPI
}

func NewStravaService(auth ports.StravaAuthService, api ports.StravaAPI) *StravaService {
	return &StravaService{auth: auth, api: api}
}

func (s *StravaService) Athlete(ctx context.Context, userID string) (*model.Athlete, error) {
	token, err := s.auth.ValidAccessToken(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.api.GetAthlete(ctx, token)
}

func (s *StravaService) Activities(ctx context.Context, userID string, page, perPage int) ([]model.Activity, error) {
	token, err := s.auth.ValidAccessToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	switch {
	case perPage < 1:
		perPage = DefaultPerPage
	case perPage > MaxPerPage:
		perPage = MaxPerPage
	}

	return s.api.GetActivities(ctx, token, page, perPage)
}

func (s *StravaService) Activity(ctx context.Context, userID string, activityID int64) (*model.Activity, error) {
	token, err := s.auth.ValidAccessToken(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.api.GetActivity(ctx, token, activityID)
}

// ActivitiesForPlan : история для генерации плана. Любая ошибка даёт пустой
// список, генерация без истории всё равно допустима.
func (s *StravaService) ActivitiesForPlan(ctx context.Context, userID string) []model.FilteredActivity {
	if userID == "" {
		return []model.FilteredActivity{}
	}

	token, err := s.auth.ValidAccessToken(ctx, userID)
	if err != nil {
		slog.Info("[StravaService] генерация без истории Strava", "userId", userID, "err", err)
		return []model.FilteredActivity{}
	}

	activities, err := s.api.GetActivities(ctx, token, 1, PlanActivitiesCount)
	if err != nil {
		slog.Warn("[StravaService] не удалось получить активности для плана", "userId", userID, "err", err)
		return []model.FilteredActivity{}
	}

	return FilterForSummary(activities)
}

// FilterForSummary : проекция без конвертации единиц, порядок сохраняется
func FilterForSummary(activities []model.Activity) []model.FilteredActivity {
	filtered := make([]model.FilteredActivity, 0, len(activities))
	for _, a := range activities {
		filtered = append(filtered, model.FilteredActivity{
			Name:               a.Name,
			Distance:           a.Distance,
			MovingTime:         a.MovingTime,
			TotalElevationGain: a.TotalElevationGain,
			Type:               a.Type,
			SportType:          a.SportType,
			StartDate:          a.StartDate,
			AverageSpeed:       a.AverageSpeed,
			AverageHeartrate:   a.AverageHeartrate,
		})
	}
	return filtered
}
