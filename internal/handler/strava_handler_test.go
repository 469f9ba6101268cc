package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"training-plan-server/internal/apperr"
	"training-plan-server/internal/handler"
	"training-plan-server/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newStravaRouter(auth *MockAuthService, strava *MockStravaService) http.Handler {
	router := chi.NewRouter()
	handler.NewStravaHandler(auth, strava).Register(router)
	return router
}

func TestStravaHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		setupMocks func(a *MockAuthService, s *MockStravaService)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "public config",
			method: http.MethodGet,
			target: "/strava/config",
			setupMocks: func(a *MockAuthService, s *MockStravaService) {
				a.On("PublicConfig").Return(model.PublicStravaConfig{
					ClientID:              "123",
					AuthorizationEndpoint: "https://www.strava.com/oauth/authorize",
					Scopes:                []string{"read", "activity:read_all"},
				})
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"clientId":"123","authorizationEndpoint":"https://www.strava.com/oauth/authorize","scopes":["read","activity:read_all"]}`,
		},
		{
			name:       "exchange without code",
			method:     http.MethodPost,
			target:     "/strava/auth/exchange",
			body:       `{"userId":"user-1","redirectUri":"app://cb"}`,
			setupMocks: func(a *MockAuthService, s *MockStravaService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":{"code":400,"text":"code, userId и redirectUri обязательны"}}`,
		},
		{
			name:   "exchange rejected by provider",
			method: http.MethodPost,
			target: "/strava/auth/exchange",
			body:   `{"code":"used","userId":"user-1","redirectUri":"app://cb"}`,
			setupMocks: func(a *MockAuthService, s *MockStravaService) {
				a.On("Exchange", mock.Anything, "user-1", "used", "app://cb", "").
					Return(nil, &apperr.ExternalAuthError{Op: "exchange", StatusCode: 400, Body: "invalid code"})
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":{"code":401,"text":"пользователь не авторизован в Strava"}}`,
		},
		{
			name:   "exchange success",
			method: http.MethodPost,
			target: "/strava/auth/exchange",
			body:   `{"code":"c","userId":"user-1","redirectUri":"app://cb","state":"s"}`,
			setupMocks: func(a *MockAuthService, s *MockStravaService) {
				a.On("Exchange", mock.Anything, "user-1", "c", "app://cb", "s").
					Return(&model.ExchangeResult{Athlete: &model.Athlete{ID: 7, Firstname: "Ana"}, ExpiresAt: 1900000000}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "refresh without session",
			method: http.MethodPost,
			target: "/strava/auth/refresh",
			body:   `{"userId":"user-1"}`,
			setupMocks: func(a *MockAuthService, s *MockStravaService) {
				a.On("Refresh", mock.Anything, "user-1").Return(int64(0), apperr.ErrAuthRequired)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "check without userId",
			method:     http.MethodGet,
			target:     "/strava/auth/check",
			setupMocks: func(a *MockAuthService, s *MockStravaService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "check",
			method: http.MethodGet,
			target: "/strava/auth/check?userId=user-1",
			setupMocks: func(a *MockAuthService, s *MockStravaService) {
				a.On("Check", mock.Anything, "user-1").Return(true, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"authenticated":true}`,
		},
		{
			name:   "logout",
			method: http.MethodPost,
			target: "/strava/auth/logout",
			body:   `{"userId":"user-1"}`,
			setupMocks: func(a *MockAuthService, s *MockStravaService) {
				a.On("Logout", mock.Anything, "user-1").Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"сессия Strava завершена"}`,
		},
		{
			name:   "athlete after failed refresh",
			method: http.MethodGet,
			target: "/strava/athlete?userId=user-1",
			setupMocks: func(a *MockAuthService, s *MockStravaService) {
				s.On("Athlete", mock.Anything, "user-1").Return(nil, fmt.Errorf("%w: refresh rejected", apperr.ErrAuthRequired))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "activities upstream failure",
			method: http.MethodGet,
			target: "/strava/activities?userId=user-1&page=2&perPage=10",
			setupMocks: func(a *MockAuthService, s *MockStravaService) {
				s.On("Activities", mock.Anything, "user-1", 2, 10).Return(nil, &apperr.UpstreamFetchError{Path: "/athlete/activities", StatusCode: 503})
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"error":{"code":502,"text":"ошибка запроса к Strava"}}`,
		},
		{
			name:       "activities with non numeric page",
			method:     http.MethodGet,
			target:     "/strava/activities?userId=user-1&page=two",
			setupMocks: func(a *MockAuthService, s *MockStravaService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "activity with invalid id",
			method:     http.MethodGet,
			target:     "/strava/activities/abc?userId=user-1",
			setupMocks: func(a *MockAuthService, s *MockStravaService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "activity",
			method: http.MethodGet,
			target: "/strava/activities/99?userId=user-1",
			setupMocks: func(a *MockAuthService, s *MockStravaService) {
				s.On("Activity", mock.Anything, "user-1", int64(99)).Return(&model.Activity{ID: 99, Name: "Trail"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "storage failure is hidden",
			method: http.MethodGet,
			target: "/strava/auth/check?userId=user-1",
			setupMocks: func(a *MockAuthService, s *MockStravaService) {
				a.On("Check", mock.Anything, "user-1").Return(false, errors.New("dial tcp: connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":{"code":500,"text":"внутренняя ошибка сервера"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(MockAuthService)
			strava := new(MockStravaService)
			tt.setupMocks(auth, strava)
			router := newStravaRouter(auth, strava)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			auth.AssertExpectations(t)
			strava.AssertExpectations(t)
		})
	}
}
