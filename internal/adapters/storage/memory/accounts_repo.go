package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"ask-astro/internal/domain/accounts"
)

type accountRepo struct {
	mu      sync.RWMutex
	byID    map[string]accounts.Account
	byEmail map[string]string
}

func NewAccountRepo() accounts.Repository {
	return &accountRepo{
		byID:    make(map[string]accounts.Account),
		byEmail: make(map[string]string),
	}
}

func (r *accountRepo) Create(ctx context.Context, a accounts.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == "" || a.Email == "" {
		return errors.New("account id and email required")
	}
	email := strings.ToLower(a.Email)
	if _, taken := r.byEmail[email]; taken {
		return accounts.ErrEmailTaken
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("account already exists")
	}

	r.byID[a.ID] = a
	r.byEmail[email] = a.ID
	return nil
}

// Update solo cambia datos mutables; el email es fijo.
func (r *accountRepo) Update(ctx context.Context, a accounts.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[a.ID]
	if !ok {
		return accounts.ErrNotFound
	}
	current.Plan = a.Plan
	current.UpdatedAt = a.UpdatedAt
	r.byID[a.ID] = current
	return nil
}

func (r *accountRepo) GetByID(ctx context.Context, id string) (accounts.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return accounts.Account{}, accounts.ErrNotFound
	}
	return a, nil
}

func (r *accountRepo) GetByEmail(ctx context.Context, email string) (accounts.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return accounts.Account{}, accounts.ErrNotFound
	}
	return r.byID[id], nil
}
