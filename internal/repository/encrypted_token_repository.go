package repository

import (
	"context"
	"training-plan-server/internal/model"
	"training-plan-server/internal/ports"
	"training-plan-server/internal/security"
	"training-plan-server/internal/util"
)

// EncryptedTokenRepository : шифрует access и refresh токены перед записью в любое хранилище
type EncryptedTokenRepository struct {
	next   ports.TokenStore
	cipher *security.TokenCipher
}

func NewEncryptedTokenRepository(next ports.TokenStore, cipher *security.TokenCipher) *EncryptedTokenRepository {
	return &EncryptedTokenRepository{next: next, cipher: cipher}
}

func (r *EncryptedTokenRepository) Get(ctx context.Context, userID string) (*model.UserTokens, error) {
	sealed, err := r.next.Get(ctx, userID)
	if err != nil || sealed == nil {
		return sealed, err
	}

	accessToken, err := r.cipher.Open(sealed.AccessToken)
	if err != nil {
		return nil, util.LogError("[TokenRepo] не удалось расшифровать access токен", err)
	}
	refreshToken, err := r.cipher.Open(sealed.RefreshToken)
	if err != nil {
		return nil, util.LogError("[TokenRepo] не удалось расшифровать refresh токен", err)
	}

	return &model.UserTokens{
		UserID:       userID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    sealed.ExpiresAt,
	}, nil
}

func (r *EncryptedTokenRepository) Set(ctx context.Context, userID string, tokens *model.UserTokens) error {
	accessToken, err := r.cipher.Seal(tokens.AccessToken)
	if err != nil {
		return util.LogError("[TokenRepo] не удалось зашифровать access токен", err)
	}
	refreshToken, err := r.cipher.Seal(tokens.RefreshToken)
	if err != nil {
		return util.LogError("[TokenRepo] не удалось зашифровать refresh токен", err)
	}

	return r.next.Set(ctx, userID, &model.UserTokens{
		UserID:       userID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    tokens.ExpiresAt,
	})
}

func (r *EncryptedTokenRepository) Delete(ctx context.Context, userID string) error {
	return r.next.Delete(ctx, userID)
}
