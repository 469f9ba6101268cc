package model

import "time"

// UserTokens : OAuth-учетные данные Strava одного пользователя.
// ExpiresAt всегда unix-время в секундах.
type UserTokens struct {
	UserID       string `db:"user_id" json:"userId" bson:"_id"`
	AccessToken  string `db:"access_token" json:"accessToken" bson:"accessToken"`
	RefreshToken string `db:"refresh_token" json:"refreshToken" bson:"refreshToken"`
	ExpiresAt    int64  `db:"expires_at" json:"expiresAt" bson:"expiresAt"`
}

// IsExpired : токен считается истекшим начиная с той же секунды, что и expires_at
func (t *UserTokens) IsExpired(now time.Time) bool {
	return IsTokenExpired(t.ExpiresAt, now)
}

func IsTokenExpired(expiresAt int64, now time.Time) bool {
	return now.Unix() >= expiresAt
}

// TokenResponse : ответ token endpoint Strava после exchange/refresh
type TokenResponse struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresAt    int64    `json:"expires_at"`
	Athlete      *Athlete `json:"athlete,omitempty"`
}

// ToUserTokens : полная замена записи пользователя новой парой токенов
func (r *TokenResponse) ToUserTokens(userID string) *UserTokens {
	return &UserTokens{
		UserID:       userID,
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		ExpiresAt:    r.ExpiresAt,
	}
}

// PublicStravaConfig : публичная часть конфигурации, без секретов
type PublicStravaConfig struct {
	ClientID              string   `json:"clientId" example:"123456"`
	AuthorizationEndpoint string   `json:"authorizationEndpoint" example:"https://www.strava.com/oauth/authorize"`
	Scopes                []string `json:"scopes" example:"read,activity:read_all"`
}

// ExchangeResult : результат обмена кода, токены наружу не отдаются
type ExchangeResult struct {
	Athlete   *Athlete `json:"athlete"`
	ExpiresAt int64    `json:"expiresAt"`
}

// AuthorizationRequest : ссылка на страницу согласия Strava и подписанный state
type AuthorizationRequest struct {
	URL   string `json:"url"`
	State string `json:"state"`
}
