package repository

import (
	"context"
	"sync"
	"training-plan-server/internal/model"
)

// MemoryTokenRepository : токены в памяти процесса, для разработки и тестов
type MemoryTokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]model.UserTokens
}

func NewMemoryTokenRepository() *MemoryTokenRepository {
	return &MemoryTokenRepository{tokens: make(map[string]model.UserTokens)}
}

func (r *MemoryTokenRepository) Get(_ context.Context, userID string) (*model.UserTokens, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tokens, ok := r.tokens[userID]
	if !ok {
		return nil, nil
	}
	return &tokens, nil
}

func (r *MemoryTokenRepository) Set(_ context.Context, userID string, tokens *model.UserTokens) error {
	stored := *tokens
	stored.UserID = userID

	r.mu.Lock()
	r.tokens[userID] = stored
	r.mu.Unlock()
	return nil
}

func (r *MemoryTokenRepository) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	delete(r.tokens, userID)
	r.mu.Unlock()
	return nil
}
