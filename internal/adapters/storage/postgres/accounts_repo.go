package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"ask-astro/internal/domain/accounts"
	"ask-astro/internal/domain/plans"
)

type AccountsRepo struct {
	db *sql.DB
}

func NewAccountsRepo(db *sql.DB) *AccountsRepo {
	return &AccountsRepo{db: db}
}

func (r *AccountsRepo) Create(ctx context.Context, a accounts.Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (id, email, plan, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5)
	`,
		a.ID,
		strings.ToLower(a.Email),
		string(a.Plan),
		a.CreatedAt,
		a.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return accounts.ErrEmailTaken
	}
	return err
}

func (r *AccountsRepo) Update(ctx context.Context, a accounts.Account) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts
		SET plan = $2, updated_at = $3
		WHERE id = $1
	`, a.ID, string(a.Plan), a.UpdatedAt)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return accounts.ErrNotFound
	}
	return nil
}

func (r *AccountsRepo) GetByID(ctx context.Context, id string) (accounts.Account, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return accounts.Account{}, accounts.ErrNotFound
	}
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *AccountsRepo) GetByEmail(ctx context.Context, email string) (accounts.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return accounts.Account{}, accounts.ErrNotFound
	}
	return r.getOne(ctx, `WHERE email = $1`, email)
}

func (r *AccountsRepo) getOne(ctx context.Context, where string, arg any) (accounts.Account, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, plan, created_at, updated_at
		FROM accounts
		`+where, arg)

	var a accounts.Account
	var plan string
	if err := row.Scan(&a.ID, &a.Email, &plan, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return accounts.Account{}, accounts.ErrNotFound
		}
		return accounts.Account{}, err
	}
	a.Plan = plans.PlanID(plan)
	return a, nil
}
