package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"training-plan-server/config"
	"training-plan-server/internal/model"
	"training-plan-server/internal/util"

	"github.com/redis/go-redis/v9"
)

type RedisTokenRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

// NewRedisTokenRepository : ttl = 0 хранит запись без срока
func NewRedisTokenRepository(rdb *config.RedisClient, ttl time.Duration) *RedisTokenRepository {
	return &RedisTokenRepository{rdb, ttl}
}

func (r *RedisTokenRepository) Get(ctx context.Context, userID string) (*model.UserTokens, error) {
	val, err := r.client.Client.Get(ctx, r.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	} else if err != nil {
		return nil, util.LogError("[TokenRepo] ошибка получения токенов из Redis", err)
	}

	var tokens model.UserTokens
	if err := json.Unmarshal([]byte(val), &tokens); err != nil {
		return nil, util.LogError("[TokenRepo] ошибка десериализации токенов", err)
	}
	return &tokens, nil
}

// Set : одна команда SET заменяет всю запись целиком
func (r *RedisTokenRepository) Set(ctx context.Context, userID string, tokens *model.UserTokens) error {
	stored := *tokens
	stored.UserID = userID

	data, err := json.Marshal(stored)
	if err != nil {
		return util.LogError("[TokenRepo] ошибка сериализации токенов", err)
	}

	cmd := r.client.Client.Set(ctx, r.key(userID), data, r.ttl)
	if err = cmd.Err(); err != nil {
		return util.LogError("[TokenRepo] ошибка сохранения в Redis", err)
	}
	if cmd.Val() != "OK" {
		return fmt.Errorf("[TokenRepo] неожиданный ответ Redis: %s", cmd.Val())
	}

	return nil
}

func (r *RedisTokenRepository) Delete(ctx context.Context, userID string) error {
	if err := r.client.Client.Del(ctx, r.key(userID)).Err(); err != nil {
		return util.LogError("[TokenRepo] ошибка удаления токенов из Redis", err)
	}
	return nil
}

func (r *RedisTokenRepository) key(userID string) string {
	return fmt.Sprintf("strava:tokens:%s", userID)
}
