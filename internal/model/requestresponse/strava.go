package requestresponse

import "training-plan-server/internal/model"

// ExchangeRequest : обмен authorization code на токены
type ExchangeRequest struct {
	Code        string `json:"code" example:"9f8e7d6c5b4a"`
	UserID      string `json:"userId" example:"a3c1e9f0-5b7d-4c2e-9a11-7f3d2b8e6c40"`
	RedirectURI string `json:"redirectUri" example:"trainingplan://strava-callback"`
	State       string `json:"state,omitempty" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// UserRequest : тело запросов refresh и logout
type UserRequest struct {
	UserID string `json:"userId" example:"a3c1e9f0-5b7d-4c2e-9a11-7f3d2b8e6c40"`
}

type ExchangeResponse struct {
	Athlete   *model.Athlete `json:"athlete"`
	ExpiresAt int64          `json:"expiresAt" example:"1760000000"`
}

type RefreshResponse struct {
	ExpiresAt int64 `json:"expiresAt" example:"1760000000"`
}

type CheckResponse struct {
	Authenticated bool `json:"authenticated" example:"true"`
}

type MessageResponse struct {
	Message string `json:"message" example:"сессия Strava завершена"`
}

// AuthorizationURLResponse : ссылка на страницу согласия Strava
type AuthorizationURLResponse struct {
	URL   string `json:"url" example:"https://www.strava.com/oauth/authorize?client_id=123456&response_type=code"`
	State string `json:"state" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}
