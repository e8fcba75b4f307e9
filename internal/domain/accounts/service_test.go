package accounts_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ask-astro/internal/adapters/auth/jwtauth"
	"ask-astro/internal/adapters/quota"
	"ask-astro/internal/adapters/storage/memory"
	"ask-astro/internal/domain/accounts"
	"ask-astro/internal/domain/plans"
	"ask-astro/internal/middleware"
	"ask-astro/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef-test-secret"

// counter adapta quota.Memory a accounts.QuestionCounter.
type counter struct{ q *quota.Memory }

func (c counter) ResetQuestionCount(ctx context.Context, userID string) error {
	return c.q.Reset(ctx, userID)
}

func newService(t *testing.T) (*accounts.Service, *jwtauth.Manager, *quota.Memory) {
	t.Helper()
	m := jwtauth.NewManager(secret, time.Hour)
	q := quota.NewMemory()
	return accounts.NewService(memory.NewAccountRepo(), m, counter{q}), m, q
}

func TestService_StartGuest(t *testing.T) {
	svc, m, _ := newService(t)

	sess, err := svc.StartGuest(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, sess.UserID)
	assert.Nil(t, sess.Account)

	claims, err := m.Verify(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, claims.UserID)
	assert.True(t, claims.Guest)
}

func TestService_Signup_AdoptsGuestAndResetsCount(t *testing.T) {
	svc, m, q := newService(t)
	ctx := context.Background()

	guest, err := svc.StartGuest(ctx)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, _ = q.Incr(ctx, guest.UserID)
	}

	sess, err := svc.Signup(ctx, accounts.SignupInput{GuestID: guest.UserID, Email: "  Ana@Example.com "})
	require.NoError(t, err)
	assert.Equal(t, guest.UserID, sess.UserID)
	require.NotNil(t, sess.Account)
	assert.Equal(t, "ana@example.com", sess.Account.Email)
	assert.Equal(t, plans.PlanFree, sess.Account.Plan)

	n, _ := q.Get(ctx, guest.UserID)
	assert.Equal(t, 0, n)

	claims, err := m.Verify(ctx, sess.Token)
	require.NoError(t, err)
	assert.False(t, claims.Guest)
	assert.Equal(t, "ana@example.com", claims.Email)

	_, err = svc.Signup(ctx, accounts.SignupInput{Email: "ana@example.com"})
	assert.ErrorIs(t, err, accounts.ErrEmailTaken)

	_, err = svc.Signup(ctx, accounts.SignupInput{GuestID: guest.UserID, Email: "other@example.com"})
	assert.ErrorIs(t, err, accounts.ErrAlreadySigned)
}

func TestService_Signup_InvalidEmail(t *testing.T) {
	svc, _, _ := newService(t)

	for _, email := range []string{"", "not-an-email", "a@"} {
		_, err := svc.Signup(context.Background(), accounts.SignupInput{Email: email})
		assert.ErrorIs(t, err, accounts.ErrInvalidInput, email)
	}
}

func TestService_ChangePlan(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	sess, err := svc.Signup(ctx, accounts.SignupInput{Email: "leo@example.com"})
	require.NoError(t, err)

	a, err := svc.ChangePlan(ctx, sess.UserID, plans.PlanCelestial)
	require.NoError(t, err)
	assert.Equal(t, plans.PlanCelestial, a.Plan)

	p, err := svc.PlanOf(ctx, sess.UserID)
	require.NoError(t, err)
	assert.Equal(t, plans.PlanCelestial, p)

	p, err = svc.PlanOf(ctx, "some-guest")
	require.NoError(t, err)
	assert.Equal(t, plans.PlanFree, p)

	_, err = svc.ChangePlan(ctx, sess.UserID, "platinum")
	assert.ErrorIs(t, err, accounts.ErrInvalidInput)

	_, err = svc.ChangePlan(ctx, "some-guest", plans.PlanEssence)
	assert.ErrorIs(t, err, accounts.ErrNotFound)
}

func TestHandlers_DevMode(t *testing.T) {
	svc := accounts.NewService(memory.NewAccountRepo(), nil, nil)
	r := chi.NewRouter()
	r.Use(middleware.AuthContext(nil))
	accounts.RegisterRoutes(r, svc, logger.Nop())

	do := func(method, path, body, uid string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if uid != "" {
			req.Header.Set("X-Debug-User-ID", uid)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	rec := do(http.MethodPost, "/auth/guest", "", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	var guest map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &guest))
	assert.Equal(t, true, guest["guest"])
	assert.NotContains(t, guest, "token")

	assert.Equal(t, http.StatusForbidden, do(http.MethodPost, "/me/plan", `{"plan":"essence"}`, "g-1").Code)
	assert.Equal(t, http.StatusBadRequest, do(http.MethodPost, "/auth/signup", `{"email":"nope"}`, "g-1").Code)

	rec = do(http.MethodPost, "/auth/signup", `{"email":"g1@example.com"}`, "g-1")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":"g-1"`)

	assert.Equal(t, http.StatusConflict, do(http.MethodPost, "/auth/signup", `{"email":"g1@example.com"}`, "g-2").Code)

	rec = do(http.MethodPost, "/me/plan", `{"plan":"essence"}`, "g-1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"price_inr":199`)

	assert.Equal(t, http.StatusBadRequest, do(http.MethodPost, "/me/plan", `{"plan":"gold"}`, "g-1").Code)
	assert.Equal(t, http.StatusOK, do(http.MethodGet, "/me/account", "", "g-1").Code)
	assert.Equal(t, http.StatusNotFound, do(http.MethodGet, "/me/account", "", "g-2").Code)
	assert.Equal(t, http.StatusUnauthorized, do(http.MethodGet, "/me/account", "", "").Code)
}
