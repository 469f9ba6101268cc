package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"training-plan-server/config"
	"training-plan-server/internal/apperr"
	"training-plan-server/internal/metrics"
	"training-plan-server/internal/model"

	"golang.org/x/oauth2"
)

// StravaOAuthClient : обмен кода, обновление и отзыв токенов Strava
type StravaOAuthClient struct {
	oauthConfig *oauth2.Config
	revokeURL   string
	httpClient  *http.Client
	now         func() time.Time
}

func NewStravaOAuthClient(cfg *config.StravaConfig, httpClient *http.Client) *StravaOAuthClient {
	return &StravaOAuthClient{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthorizationEndpoint,
				TokenURL:  cfg.TokenEndpoint,
				AuthStyle: oauth2.AuthStyleInParams,
			},
			// Strava ожидает scope через запятую, а не через пробел
			Scopes: []string{strings.Join(cfg.Scopes, ",")},
		},
		revokeURL:  cfg.RevokeEndpoint,
		httpClient: httpClient,
		now:        time.Now,
	}
}

// ExchangeCode : authorization code одноразовый, повторных попыток нет
func (c *StravaOAuthClient) ExchangeCode(ctx context.Context, code, redirectURI string) (*model.TokenResponse, error) {
	token, err := c.oauthConfig.Exchange(c.withHTTPClient(ctx), code,
		oauth2.SetAuthURLParam("redirect_uri", redirectURI),
	)
	if err != nil {
		metrics.TokenOperations.WithLabelValues("exchange", metrics.ResultFailed).Inc()
		slog.Warn("[OAuthClient] обмен кода отклонён", "err", err)
		return nil, toExternalAuthError("exchange", err)
	}

	metrics.TokenOperations.WithLabelValues("exchange", metrics.ResultOK).Inc()
	return toTokenResponse(token), nil
}

// RefreshAccessToken : refresh grant; при ошибке вызывающий удаляет сессию
func (c *StravaOAuthClient) RefreshAccessToken(ctx context.Context, refreshToken string) (*model.TokenResponse, error) {
	source := c.oauthConfig.TokenSource(c.withHTTPClient(ctx), &oauth2.Token{RefreshToken: refreshToken})
	token, err := source.Token()
	if err != nil {
		metrics.TokenOperations.WithLabelValues("refresh", metrics.ResultFailed).Inc()
		slog.Warn("[OAuthClient] обновление токена отклонено", "err", err)
		return nil, toExternalAuthError("refresh", err)
	}

	metrics.TokenOperations.WithLabelValues("refresh", metrics.ResultOK).Inc()
	return toTokenResponse(token), nil
}

// RevokeToken : отзыв access токена на стороне Strava
func (c *StravaOAuthClient) RevokeToken(ctx context.Context, accessToken string) error {
	form := url.Values{}
	form.Set("access_token", accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.revokeURL, strings.NewReader(form.Encode()))
	if err != nil {
		return &apperr.ExternalAuthError{Op: "revoke", Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.TokenOperations.WithLabelValues("revoke", metrics.ResultFailed).Inc()
		return &apperr.ExternalAuthError{Op: "revoke", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		metrics.TokenOperations.WithLabelValues("revoke", metrics.ResultFailed).Inc()
		return &apperr.ExternalAuthError{Op: "revoke", StatusCode: resp.StatusCode, Body: string(body)}
	}

	metrics.TokenOperations.WithLabelValues("revoke", metrics.ResultOK).Inc()
	return nil
}

// IsTokenExpired : now >= expiresAt, без запаса на рассинхронизацию часов
func (c *StravaOAuthClient) IsTokenExpired(expiresAt int64) bool {
	return model.IsTokenExpired(expiresAt, c.now())
}

// AuthorizationURL : страница согласия Strava
func (c *StravaOAuthClient) AuthorizationURL(state, redirectURI string) string {
	return c.oauthConfig.AuthCodeURL(state,
		oauth2.SetAuthURLParam("redirect_uri", redirectURI),
		oauth2.SetAuthURLParam("approval_prompt", "auto"),
	)
}

func (c *StravaOAuthClient) withHTTPClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}

func toExternalAuthError(op string, err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		status := 0
		if retrieveErr.Response != nil {
			status = retrieveErr.Response.StatusCode
		}
		return &apperr.ExternalAuthError{Op: op, StatusCode: status, Body: string(retrieveErr.Body), Err: err}
	}
	return &apperr.ExternalAuthError{Op: op, Err: err}
}

// toTokenResponse : expires_at Strava приоритетнее вычисленного из expires_in
func toTokenResponse(token *oauth2.Token) *model.TokenResponse {
	resp := &model.TokenResponse{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}

	switch v := token.Extra("expires_at").(type) {
	case float64:
		resp.ExpiresAt = int64(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			resp.ExpiresAt = n
		}
	}
	if resp.ExpiresAt == 0 && !token.Expiry.IsZero() {
		resp.ExpiresAt = token.Expiry.Unix()
	}

	if raw, ok := token.Extra("athlete").(map[string]interface{}); ok {
		if athlete, err := decodeAthlete(raw); err == nil {
			resp.Athlete = athlete
		} else {
			slog.Warn("[OAuthClient] не удалось разобрать профиль атлета", "err", err)
		}
	}

	return resp
}

func decodeAthlete(raw map[string]interface{}) (*model.Athlete, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации атлета: %w", err)
	}

	var athlete model.Athlete
	if err := json.Unmarshal(data, &athlete); err != nil {
		return nil, fmt.Errorf("ошибка десериализации атлета: %w", err)
	}
	return &athlete, nil
}
