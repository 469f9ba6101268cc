package service_test

import (
	"context"
	"training-plan-server/internal/model"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/mock"
)

type MockTokenStore struct{ mock.Mock }

func (m *MockTokenStore) Get(ctx context.Context, userID string) (*model.UserTokens, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserTokens), args.Error(1)
}

func (m *MockTokenStore) Set(ctx context.Context, userID string, tokens *model.UserTokens) error {
	return m.Called(ctx, userID, tokens).Error(0)
}

func (m *MockTokenStore) Delete(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type MockOAuthClient struct{ mock.Mock }

func (m *MockOAuthClient) ExchangeCode(ctx context.Context, code, redirectURI string) (*model.TokenResponse, error) {
	args := m.Called(ctx, code, redirectURI)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TokenResponse), args.Error(1)
}

func (m *MockOAuthClient) RefreshAccessToken(ctx context.Context, refreshToken string) (*model.TokenResponse, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TokenResponse), args.Error(1)
}

func (m *MockOAuthClient) RevokeToken(ctx context.Context, accessToken string) error {
	return m.Called(ctx, accessToken).Error(0)
}

func (m *MockOAuthClient) IsTokenExpired(expiresAt int64) bool {
	return m.Called(expiresAt).Bool(0)
}

func (m *MockOAuthClient) AuthorizationURL(state, redirectURI string) string {
	return m.Called(state, redirectURI).String(0)
}

type MockStateSigner struct{ mock.Mock }

func (m *MockStateSigner) Sign(userID, redirectURI string) (string, error) {
	args := m.Called(userID, redirectURI)
	return args.String(0), args.Error(1)
}

func (m *MockStateSigner) Verify(state, userID, redirectURI string) error {
	return m.Called(state, userID, redirectURI).Error(0)
}

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

type MockStravaAPI struct{ mock.Mock }

func (m *MockStravaAPI) GetAthlete(ctx context.Context, accessToken string) (*model.Athlete, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Athlete), args.Error(1)
}

func (m *MockStravaAPI) GetActivities(ctx context.Context, accessToken string, page, perPage int) ([]model.Activity, error) {
	args := m.Called(ctx, accessToken, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Activity), args.Error(1)
}

func (m *MockStravaAPI) GetActivity(ctx context.Context, accessToken string, activityID int64) (*model.Activity, error) {
	args := m.Called(ctx, accessToken, activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Activity), args.Error(1)
}

type MockTextGenerator struct{ mock.Mock }

func (m *MockTextGenerator) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt)
	return args.String(0), args.Error(1)
}

type MockPlanArchive struct{ mock.Mock }

func (m *MockPlanArchive) SavePlan(ctx context.Context, userID string, plan *model.TrainingPlanResponse) (string, error) {
	args := m.Called(ctx, userID, plan)
	return args.String(0), args.Error(1)
}

type MockObjectPutter struct{ mock.Mock }

func (m *MockObjectPutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}
