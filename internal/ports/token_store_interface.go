package ports

import (
	"context"
	"training-plan-server/internal/model"
)

// TokenStore : хранилище OAuth-токенов Strava по идентификатору пользователя.
// Get возвращает nil, nil если записи нет. Set полностью заменяет запись.
type TokenStore interface {
	Get(ctx context.Context, userID string) (*model.UserTokens, error)
	Set(ctx context.Context, userID string, tokens *model.UserTokens) error
	Delete(ctx context.Context, userID string) error
}
