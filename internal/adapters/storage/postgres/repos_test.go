package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"ask-astro/internal/domain/accounts"
	"ask-astro/internal/domain/astrology"
	"ask-astro/internal/domain/chat"
	"ask-astro/internal/domain/plans"
	"ask-astro/internal/domain/profiles"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestMigrate(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS accounts`).WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, Migrate(context.Background(), db))

	mock.ExpectExec(`CREATE TABLE`).WillReturnError(errors.New("permission denied"))
	assert.ErrorContains(t, Migrate(context.Background(), db), "permission denied")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfilesRepo(t *testing.T) {
	db, mock := newMock(t)
	repo := NewProfilesRepo(db)
	ctx := context.Background()

	bd, err := astrology.NewBirthDate(1990, time.July, 23)
	require.NoError(t, err)
	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	p := profiles.Profile{UserID: "u-1", FirstName: "Ana", BirthDate: bd, CreatedAt: now, UpdatedAt: now}

	mock.ExpectExec(`INSERT INTO profiles`).
		WithArgs("u-1", "Ana", bd.Time(), "", "", "", "", "", "", "", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Create(ctx, p))

	mock.ExpectExec(`UPDATE profiles`).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Update(ctx, p), profiles.ErrNotFound)

	cols := []string{
		"user_id", "first_name", "birth_date", "birth_time", "birth_place",
		"partner_name", "house_number", "mobile_number", "alternate_number", "vehicle_number",
		"created_at", "updated_at",
	}
	mock.ExpectQuery(`SELECT .+ FROM profiles`).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			"u-1", "Ana", bd.Time(), "06:45", "Lima", "", "", "", "", "", now, now,
		))
	got, err := repo.GetByUserID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, bd, got.BirthDate)
	assert.Equal(t, "06:45", got.BirthTime)
	assert.Equal(t, astrology.SignLeo, got.Reading().Sign)

	mock.ExpectQuery(`SELECT .+ FROM profiles`).WithArgs("nobody").WillReturnError(sql.ErrNoRows)
	_, err = repo.GetByUserID(ctx, "nobody")
	assert.ErrorIs(t, err, profiles.ErrNotFound)

	_, err = repo.GetByUserID(ctx, "  ")
	assert.ErrorIs(t, err, profiles.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessagesRepo(t *testing.T) {
	db, mock := newMock(t)
	repo := NewMessagesRepo(db)
	ctx := context.Background()
	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(`INSERT INTO chat_messages`).
		WithArgs("m-1", "u-1", "user", "love?", now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Append(ctx, chat.Message{ID: "m-1", UserID: "u-1", Role: chat.RoleUser, Content: "love?", CreatedAt: now}))

	mock.ExpectQuery(`SELECT .+ FROM chat_messages`).
		WithArgs("u-1", 50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "role", "content", "created_at"}).
			AddRow("m-1", "u-1", "user", "love?", now).
			AddRow("m-2", "u-1", "assistant", "Venus smiles.", now.Add(time.Second)))
	msgs, err := repo.ListByUser(ctx, "u-1", 0)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, chat.RoleAssistant, msgs[1].Role)

	mock.ExpectExec(`DELETE FROM chat_messages`).WithArgs("u-1").WillReturnResult(sqlmock.NewResult(0, 2))
	require.NoError(t, repo.DeleteByUser(ctx, "u-1"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountsRepo(t *testing.T) {
	db, mock := newMock(t)
	repo := NewAccountsRepo(db)
	ctx := context.Background()
	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	a := accounts.Account{ID: "u-1", Email: "Ana@Example.com", Plan: plans.PlanFree, CreatedAt: now, UpdatedAt: now}

	mock.ExpectExec(`INSERT INTO accounts`).
		WithArgs("u-1", "ana@example.com", "free", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Create(ctx, a))

	mock.ExpectExec(`INSERT INTO accounts`).WillReturnError(&pgconn.PgError{Code: "23505"})
	assert.ErrorIs(t, repo.Create(ctx, a), accounts.ErrEmailTaken)

	mock.ExpectExec(`UPDATE accounts`).
		WithArgs("u-1", "celestial", now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	a.Plan = plans.PlanCelestial
	require.NoError(t, repo.Update(ctx, a))

	cols := []string{"id", "email", "plan", "created_at", "updated_at"}
	mock.ExpectQuery(`SELECT .+ FROM accounts\s+WHERE email = \$1`).
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("u-1", "ana@example.com", "celestial", now, now))
	got, err := repo.GetByEmail(ctx, " ANA@example.com ")
	require.NoError(t, err)
	assert.Equal(t, plans.PlanCelestial, got.Plan)

	mock.ExpectQuery(`SELECT .+ FROM accounts\s+WHERE id = \$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)
	_, err = repo.GetByID(ctx, "ghost")
	assert.ErrorIs(t, err, accounts.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
