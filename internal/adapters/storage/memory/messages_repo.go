package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"ask-astro/internal/domain/chat"
)

type messageRepo struct {
	mu     sync.RWMutex
	byUser map[string][]chat.Message
}

func NewMessageRepo() chat.Repository {
	return &messageRepo{
		byUser: make(map[string][]chat.Message),
	}
}

func (r *messageRepo) Append(ctx context.Context, m chat.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m.ID == "" || m.UserID == "" {
		return errors.New("message id and user id required")
	}
	r.byUser[m.UserID] = append(r.byUser[m.UserID], m)
	return nil
}

func (r *messageRepo) ListByUser(ctx context.Context, userID string, limit int) ([]chat.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.byUser[userID]
	out := make([]chat.Message, len(all))
	copy(out, all)

	// Orden estable por created_at asc; Append ya respeta el orden de llegada.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (r *messageRepo) DeleteByUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byUser, userID)
	return nil
}
