package security

import (
	"errors"
	"fmt"
	"time"
	"training-plan-server/config"
	"training-plan-server/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrStateInvalid = errors.New("невалидный параметр state")

// StateClaims : state для OAuth redirect привязан к пользователю и redirect URI
type StateClaims struct {
	UserID      string `json:"uid"`
	RedirectURI string `json:"redirect_uri"`
	jwt.RegisteredClaims
}

type StateSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewStateSigner(cfg *config.StateConfig) *StateSigner {
	return &StateSigner{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
		now:    time.Now,
	}
}

func (s *StateSigner) Sign(userID, redirectURI string) (string, error) {
	now := s.now()
	claims := StateClaims{
		UserID:      userID,
		RedirectURI: redirectURI,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "training-plan-server",
		},
	}

	state, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", util.LogError("[StateSigner] ошибка подписи state", err)
	}
	return state, nil
}

// Verify : подпись, срок действия и совпадение userID / redirectURI
func (s *StateSigner) Verify(state, userID, redirectURI string) error {
	claims := &StateClaims{}
	token, err := jwt.ParseWithClaims(state, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("неверный способ подписи state: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return fmt.Errorf("%w: %v", ErrStateInvalid, err)
	}

	if claims.UserID != userID || claims.RedirectURI != redirectURI {
		return fmt.Errorf("%w: state выдан для другого пользователя", ErrStateInvalid)
	}
	return nil
}
