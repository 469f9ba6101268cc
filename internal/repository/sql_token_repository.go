package repository

import (
	"context"
	"database/sql"
	"errors"
	"training-plan-server/config"
	"training-plan-server/internal/model"
	"training-plan-server/internal/util"
)

const tokenSchema = `
	CREATE TABLE IF NOT EXISTS strava_tokens (
		user_id       TEXT PRIMARY KEY,
		access_token  TEXT NOT NULL,
		refresh_token TEXT NOT NULL,
		expires_at    BIGINT NOT NULL,
		updated_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)
`

// SQLTokenRepository : токены в Postgres или SQLite, запросы приводятся через Rebind
type SQLTokenRepository struct {
	*config.Database
}

func NewSQLTokenRepository(database *config.Database) *SQLTokenRepository {
	return &SQLTokenRepository{database}
}

// EnsureSchema : создаёт таблицу strava_tokens, если её нет
func (r *SQLTokenRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, tokenSchema); err != nil {
		return util.LogError("[TokenRepo] не удалось создать таблицу strava_tokens", err)
	}
	return nil
}

// Get : ищет токены пользователя, отсутствие записи не ошибка
func (r *SQLTokenRepository) Get(ctx context.Context, userID string) (*model.UserTokens, error) {
	query := r.DB.Rebind(`SELECT user_id, access_token, refresh_token, expires_at FROM strava_tokens WHERE user_id = ?`)

	var tokens model.UserTokens
	err := r.DB.GetContext(ctx, &tokens, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, util.LogError("[TokenRepo] ошибка при выполнении запроса", err)
	}

	return &tokens, nil
}

// Set : upsert, все поля записи заменяются одним выражением
func (r *SQLTokenRepository) Set(ctx context.Context, userID string, tokens *model.UserTokens) error {
	query := r.DB.Rebind(`
		INSERT INTO strava_tokens (user_id, access_token, refresh_token, expires_at, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id) DO UPDATE SET
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token,
			expires_at = excluded.expires_at,
			updated_at = CURRENT_TIMESTAMP
	`)

	_, err := r.DB.ExecContext(ctx, query, userID, tokens.AccessToken, tokens.RefreshToken, tokens.ExpiresAt)
	if err != nil {
		return util.LogError("[TokenRepo] ошибка сохранения токенов в БД", err)
	}

	return nil
}

func (r *SQLTokenRepository) Delete(ctx context.Context, userID string) error {
	query := r.DB.Rebind(`DELETE FROM strava_tokens WHERE user_id = ?`)
	if _, err := r.DB.ExecContext(ctx, query, userID); err != nil {
		return util.LogError("[TokenRepo] не удалось удалить токены", err)
	}
	return nil
}
