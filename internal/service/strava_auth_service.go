package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"training-plan-server/internal/apperr"
	"training-plan-server/internal/model"
	"training-plan-server/internal/ports"
	"training-plan-server/internal/util"

	"golang.org/x/sync/singleflight"
)

const refreshTimeout = 15 * time.Second

// StravaAuthService : жизненный цикл сессии Strava поверх хранилища токенов
type StravaAuthService struct {
	store        ports.TokenStore
	oauth        ports.OAuthClient
	state        ports.StateSigner
	publicConfig model.PublicStravaConfig

	// refreshGroup : один refresh на пользователя, параллельные запросы ждут его результат
	refreshGroup singleflight.Group
}

// NewStravaAuthService : state может быть nil, тогда параметр state не проверяется
func NewStravaAuthService(
	store ports.TokenStore,
	oauth ports.OAuthClient,
	state ports.StateSigner,
	publicConfig model.PublicStravaConfig,
) *StravaAuthService {
	return &StravaAuthService{
		store:        store,
		oauth:        oauth,
		state:        state,
		publicConfig: publicConfig,
	}
}

func (s *StravaAuthService) PublicConfig() model.PublicStravaConfig {
	return s.publicConfig
}

// AuthorizationURL : ссылка на согласие Strava с подписанным state
func (s *StravaAuthService) AuthorizationURL(userID, redirectURI string) (*model.AuthorizationRequest, error) {
	if userID == "" {
		return nil, apperr.Validation("userId", "обязательное поле")
	}
	if redirectURI == "" {
		return nil, apperr.Validation("redirectUri", "обязательное поле")
	}

	state := ""
	if s.state != nil {
		signed, err := s.state.Sign(userID, redirectURI)
		if err != nil {
			return nil, util.LogError("[StravaAuthService] ошибка подписи state", err)
		}
		state = signed
	}

	return &model.AuthorizationRequest{
		URL:   s.oauth.AuthorizationURL(state, redirectURI),
		State: state,
	}, nil
}

// Exchange : обмен кода на токены, запись пользователя заменяется целиком
func (s *StravaAuthService) Exchange(ctx context.Context, userID, code, redirectURI, state string) (*model.ExchangeResult, error) {
	switch {
	case userID == "":
		return nil, apperr.Validation("userId", "обязательное поле")
	case code == "":
		return nil, apperr.Validation("code", "обязательное поле")
	case redirectURI == "":
		return nil, apperr.Validation("redirectUri", "обязательное поле")
	}

	if state != "" && s.state != nil {
		if err := s.state.Verify(state, userID, redirectURI); err != nil {
			slog.Warn("[StravaAuthService] state не прошёл проверку", "userId", userID, "err", err)
			return nil, fmt.Errorf("%w: %w", apperr.ErrAuthRequired, err)
		}
	}

	resp, err := s.oauth.ExchangeCode(ctx, code, redirectURI)
	if err != nil {
		return nil, err
	}

	if err := s.store.Set(ctx, userID, resp.ToUserTokens(userID)); err != nil {
		return nil, util.LogError("[StravaAuthService] ошибка сохранения токенов", err)
	}

	slog.Info("[StravaAuthService] пользователь подключил Strava", "userId", userID)
	return &model.ExchangeResult{Athlete: resp.Athlete, ExpiresAt: resp.ExpiresAt}, nil
}

// Refresh : принудительное обновление, возвращает новый expires_at
func (s *StravaAuthService) Refresh(ctx context.Context, userID string) (int64, error) {
	tokens, err := s.load(ctx, userID)
	if err != nil {
		return 0, err
	}

	refreshed, err := s.refresh(ctx, userID, tokens)
	if err != nil {
		return 0, err
	}
	return refreshed.ExpiresAt, nil
}

// Check : есть ли у пользователя рабочая сессия; истекший токен обновляется
func (s *StravaAuthService) Check(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, apperr.Validation("userId", "обязательное поле")
	}

	_, err := s.ValidAccessToken(ctx, userID)
	if errors.Is(err, apperr.ErrAuthRequired) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Logout : отзыв токена best-effort, локальная запись удаляется всегда
func (s *StravaAuthService) Logout(ctx context.Context, userID string) error {
	if userID == "" {
		return apperr.Validation("userId", "обязательное поле")
	}

	tokens, err := s.store.Get(ctx, userID)
	if err != nil {
		return util.LogError("[StravaAuthService] ошибка чтения токенов", err)
	}
	if tokens == nil {
		return nil
	}

	if err := s.oauth.RevokeToken(ctx, tokens.AccessToken); err != nil {
		slog.Warn("[StravaAuthService] отзыв токена не удался", "userId", userID, "err", err)
	}

	if err := s.store.Delete(ctx, userID); err != nil {
		return util.LogError("[StravaAuthService] ошибка удаления токенов", err)
	}

	slog.Info("[StravaAuthService] пользователь отключил Strava", "userId", userID)
	return nil
}

// ValidAccessToken : действующий access токен, при необходимости после refresh
func (s *StravaAuthService) ValidAccessToken(ctx context.Context, userID string) (string, error) {
	tokens, err := s.load(ctx, userID)
	if err != nil {
		return "", err
	}

	if !s.oauth.IsTokenExpired(tokens.ExpiresAt) {
		return tokens.AccessToken, nil
	}

	refreshed, err := s.refresh(ctx, userID, tokens)
	if err != nil {
		return "", err
	}
	return refreshed.AccessToken, nil
}

func (s *StravaAuthService) load(ctx context.Context, userID string) (*model.UserTokens, error) {
	if userID == "" {
		return nil, apperr.ErrAuthRequired
	}

	tokens, err := s.store.Get(ctx, userID)
	if err != nil {
		return nil, util.LogError("[StravaAuthService] ошибка чтения токенов", err)
	}
	if tokens == nil {
		return nil, apperr.ErrAuthRequired
	}
	return tokens, nil
}

// refresh : общий для всех ожидающих запросов, отмена одного запроса его не прерывает
func (s *StravaAuthService) refresh(ctx context.Context, userID string, tokens *model.UserTokens) (*model.UserTokens, error) {
	results := s.refreshGroup.DoChan(userID, func() (interface{}, error) {
		refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()
		return s.doRefresh(refreshCtx, userID, tokens)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-results:
		if result.Err != nil {
			return nil, result.Err
		}
		return result.Val.(*model.UserTokens), nil
	}
}

// doRefresh : сессия удаляется только если провайдер отклонил refresh токен
func (s *StravaAuthService) doRefresh(ctx context.Context, userID string, tokens *model.UserTokens) (*model.UserTokens, error) {
	resp, err := s.oauth.RefreshAccessToken(ctx, tokens.RefreshToken)
	if err != nil {
		var authErr *apperr.ExternalAuthError
		if !errors.As(err, &authErr) || !authErr.Rejected() {
			slog.Warn("[StravaAuthService] refresh не выполнен, сессия сохранена", "userId", userID, "err", err)
			return nil, &apperr.UpstreamFetchError{Path: "/oauth/token", Err: err}
		}

		if delErr := s.store.Delete(ctx, userID); delErr != nil {
			slog.Error("[StravaAuthService] ошибка удаления токенов после неудачного refresh", "userId", userID, "err", delErr)
		}
		return nil, fmt.Errorf("%w: %w", apperr.ErrAuthRequired, err)
	}

	updated := resp.ToUserTokens(userID)
	if err := s.store.Set(ctx, userID, updated); err != nil {
		return nil, util.LogError("[StravaAuthService] ошибка сохранения обновлённых токенов", err)
	}

	slog.Debug("[StravaAuthService] токен обновлён", "userId", userID, "expiresAt", updated.ExpiresAt)
	return updated, nil
}
