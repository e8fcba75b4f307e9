package accounts

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"ask-astro/internal/domain/plans"
	"ask-astro/internal/middleware"
	"ask-astro/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/auth/guest", guestHandler(svc))
	r.Post("/auth/signup", signupHandler(svc, log))

	r.Get("/me/account", getAccountHandler(svc))
	r.Post("/me/plan", changePlanHandler(svc, log))
}

type signupRequest struct {
	Email string `json:"email"`
}

type changePlanRequest struct {
	Plan plans.PlanID `json:"plan"`
}

type accountResponse struct {
	ID        string             `json:"id"`
	Email     string             `json:"email"`
	Plan      plans.PlanResponse `json:"plan"`
	CreatedAt time.Time          `json:"created_at"`
}

type sessionResponse struct {
	UserID  string           `json:"user_id"`
	Token   string           `json:"token,omitempty"`
	Guest   bool             `json:"guest"`
	Account *accountResponse `json:"account,omitempty"`
}

// guestHandler godoc
// @Summary Iniciar sesión de invitado
// @Description Genera un user id de guest. Sin JWT_SECRET (modo dev) no hay token: usar X-Debug-User-ID.
// @Tags accounts
// @Produce json
// @Success 201 {object} sessionResponse
// @Router /auth/guest [post]
func guestHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := svc.StartGuest(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, toSessionResponse(sess))
	}
}

// signupHandler godoc
// @Summary Registrarse
// @Description Crea la cuenta. Si hay sesión de guest, la cuenta adopta ese id y se reinicia el contador de preguntas.
// @Tags accounts
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token de guest"
// @Param payload body signupRequest true "Email"
// @Success 201 {object} sessionResponse
// @Failure 400 {string} string "invalid json / email inválido"
// @Failure 409 {string} string "email already registered"
// @Router /auth/signup [post]
func signupHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := SignupInput{Email: req.Email}
		if claims, ok := middleware.GetClaims(r.Context()); ok {
			in.GuestID = claims.UserID
		}

		sess, err := svc.Signup(r.Context(), in)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		log.Info("account created", map[string]any{"user_id": sess.UserID, "adopted_guest": in.GuestID != ""})
		writeJSON(w, http.StatusCreated, toSessionResponse(sess))
	}
}

// getAccountHandler godoc
// @Summary Ver mi cuenta
// @Tags accounts
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Success 200 {object} accountResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "account not found"
// @Router /me/account [get]
func getAccountHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}
		a, err := svc.Get(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAccountResponse(a))
	}
}

// changePlanHandler godoc
// @Summary Cambiar de plan
// @Description Solo cuentas registradas. No hay cobro real.
// @Tags accounts
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param payload body changePlanRequest true "Plan"
// @Success 200 {object} accountResponse
// @Failure 400 {string} string "invalid json / plan desconocido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "signup required"
// @Router /me/plan [post]
func changePlanHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		var req changePlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.ChangePlan(r.Context(), claims.UserID, req.Plan)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "signup required", http.StatusForbidden)
				return
			}
			writeServiceError(w, err)
			return
		}

		log.Info("plan changed", map[string]any{"user_id": a.ID, "plan": a.Plan})
		writeJSON(w, http.StatusOK, toAccountResponse(a))
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrEmailTaken), errors.Is(err, ErrAlreadySigned):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "account not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toAccountResponse(a Account) accountResponse {
	p, ok := plans.Lookup(a.Plan)
	if !ok {
		p, _ = plans.Lookup(plans.PlanFree)
	}
	return accountResponse{
		ID:        a.ID,
		Email:     a.Email,
		Plan:      plans.ToPlanResponse(p),
		CreatedAt: a.CreatedAt,
	}
}

func toSessionResponse(s Session) sessionResponse {
	out := sessionResponse{UserID: s.UserID, Token: s.Token, Guest: s.Account == nil}
	if s.Account != nil {
		ar := toAccountResponse(*s.Account)
		out.Account = &ar
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
