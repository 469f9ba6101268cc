package ports

import (
	"context"
	"training-plan-server/internal/model"
)

// OAuthClient : token endpoint провайдера
type OAuthClient interface {
	ExchangeCode(ctx context.Context, code, redirectURI string) (*model.TokenResponse, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (*model.TokenResponse, error)
	RevokeToken(ctx context.Context, accessToken string) error
	IsTokenExpired(expiresAt int64) bool
	AuthorizationURL(state, redirectURI string) string
}

type StateSigner interface {
	Sign(userID, redirectURI string) (string, error)
	Verify(state, userID, redirectURI string) error
}

type StravaAuthService interface {
	PublicConfig() model.PublicStravaConfig
	AuthorizationURL(userID, redirectURI string) (*model.AuthorizationRequest, error)
	Exchange(ctx context.Context, userID, code, redirectURI, state string) (*model.ExchangeResult, error)
	Refresh(ctx context.Context, userID string) (int64, error)
	Check(ctx context.Context, userID string) (bool, error)
	Logout(ctx context.Context, userID string) error
	ValidAccessToken(ctx context.Context, userID string) (string, error)
}
