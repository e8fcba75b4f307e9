package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"ask-astro/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /chat. limit envuelve solo el POST (puede ser nil).
func RegisterRoutes(r chi.Router, svc *Service, limit func(http.Handler) http.Handler) {
	r.Route("/chat", func(cr chi.Router) {
		cr.Get("/welcome", welcomeHandler())

		cr.Get("/messages", listMessagesHandler(svc))
		cr.Delete("/messages", clearMessagesHandler(svc))
		if limit != nil {
			cr.With(limit).Post("/messages", sendMessageHandler(svc))
		} else {
			cr.Post("/messages", sendMessageHandler(svc))
		}

		cr.Post("/prompts/signup/dismiss", dismissSignupHandler(svc))
	})
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

type messageResponse struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type sendMessageResponse struct {
	Question        messageResponse `json:"question"`
	Reply           messageResponse `json:"reply"`
	QuestionCount   int             `json:"question_count"`
	PromptSignup    bool            `json:"prompt_signup"`
	PromptBirthInfo bool            `json:"prompt_birth_info"`
}

type welcomeResponse struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

// welcomeHandler godoc
// @Summary Mensaje de bienvenida
// @Tags chat
// @Produce json
// @Success 200 {object} welcomeResponse
// @Router /chat/welcome [get]
func welcomeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, welcomeResponse{Message: WelcomeMessage, Suggestions: Suggestions})
	}
}

// sendMessageHandler godoc
// @Summary Preguntar al astrólogo
// @Description Guarda la pregunta y devuelve la respuesta. prompt_signup se activa para guests después de N preguntas; prompt_birth_info si no hay perfil.
// @Tags chat
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param payload body sendMessageRequest true "Pregunta"
// @Success 201 {object} sendMessageResponse
// @Failure 400 {string} string "invalid json / mensaje vacío"
// @Failure 401 {string} string "unauthorized"
// @Failure 429 {string} string "too many requests"
// @Failure 502 {string} string "provider unavailable"
// @Router /chat/messages [post]
func sendMessageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		var req sendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := svc.Send(r.Context(), SendInput{
			UserID: claims.UserID,
			Guest:  claims.Guest,
			Text:   req.Text,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrProviderUnavailable):
				http.Error(w, "the stars are quiet right now, try again", http.StatusBadGateway)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, sendMessageResponse{
			Question:        toMessageResponse(res.Question),
			Reply:           toMessageResponse(res.Reply),
			QuestionCount:   res.QuestionCount,
			PromptSignup:    res.PromptSignup,
			PromptBirthInfo: res.PromptBirthInfo,
		})
	}
}

// listMessagesHandler godoc
// @Summary Historial del chat
// @Tags chat
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param limit query int false "Máximo de mensajes (default 50, máx 200)"
// @Success 200 {array} messageResponse
// @Failure 401 {string} string "unauthorized"
// @Router /chat/messages [get]
func listMessagesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			limit = n
		}

		items, err := svc.History(r.Context(), claims.UserID, limit)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]messageResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMessageResponse(m))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// clearMessagesHandler godoc
// @Summary Borrar historial
// @Tags chat
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Router /chat/messages [delete]
func clearMessagesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}
		if err := svc.Clear(r.Context(), claims.UserID); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// dismissSignupHandler godoc
// @Summary Cerrar el aviso de registro
// @Description Reinicia el contador de preguntas, como al cerrar el modal.
// @Tags chat
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Router /chat/prompts/signup/dismiss [post]
func dismissSignupHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}
		if err := svc.ResetQuestionCount(r.Context(), claims.UserID); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toMessageResponse(m Message) messageResponse {
	return messageResponse{
		ID:        m.ID,
		Role:      m.Role,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
