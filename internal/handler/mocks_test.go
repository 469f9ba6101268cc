package handler_test

import (
	"context"
	"training-plan-server/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct{ mock.Mock }

func (m *MockAuthService) PublicConfig() model.PublicStravaConfig {
	return m.Called().Get(0).(model.PublicStravaConfig)
}

func (m *MockAuthService) AuthorizationURL(userID, redirectURI string) (*model.AuthorizationRequest, error) {
	args := m.Called(userID, redirectURI)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthorizationRequest), args.Error(1)
}

func (m *MockAuthService) Exchange(ctx context.Context, userID, code, redirectURI, state string) (*model.ExchangeResult, error) {
	args := m.Called(ctx, userID, code, redirectURI, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExchangeResult), args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAuthService) Check(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockAuthService) ValidAccessToken(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

type MockStravaService struct{ mock.Mock }

func (m *MockStravaService) Athlete(ctx context.Context, userID string) (*model.Athlete, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Athlete), args.Error(1)
}

func (m *MockStravaService) Activities(ctx context.Context, userID string, page, perPage int) ([]model.Activity, error) {
	args := m.Called(ctx, userID, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Activity), args.Error(1)
}

func (m *MockStravaService) Activity(ctx context.Context, userID string, activityID int64) (*model.Activity, error) {
	args := m.Called(ctx, userID, activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Activity), args.Error(1)
}

func (m *MockStravaService) ActivitiesForPlan(ctx context.Context, userID string) []model.FilteredActivity {
	return m.Called(ctx, userID).Get(0).([]model.FilteredActivity)
}

type MockPlanService struct{ mock.Mock }

func (m *MockPlanService) Generate(ctx context.Context, input model.TrainingPlanInput) (*model.TrainingPlanResponse, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrainingPlanResponse), args.Error(1)
}

func (m *MockPlanService) SamplePlan() (*model.TrainingPlanResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrainingPlanResponse), args.Error(1)
}
