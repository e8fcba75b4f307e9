package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"

	"ask-astro/internal/domain/astrology"
	"ask-astro/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/me/dashboard", getDashboardHandler(svc))
}

type forecastsResponse struct {
	Daily  string `json:"daily"`
	Love   string `json:"love"`
	Career string `json:"career"`
}

type numerologyResponse struct {
	LifePathNumber int    `json:"life_path_number"`
	PersonalDay    int    `json:"personal_day"`
	Vibe           string `json:"vibe"`
}

type insightResponse struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

type planSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type dashboardResponse struct {
	Date         string                    `json:"date"`
	FirstName    string                    `json:"first_name"`
	Cosmic       astrology.ReadingResponse `json:"cosmic"`
	Forecasts    forecastsResponse         `json:"forecasts"`
	Numerology   numerologyResponse        `json:"numerology"`
	Insights     []insightResponse         `json:"insights"`
	Plan         planSummary               `json:"plan"`
	Capabilities map[string]bool           `json:"capabilities"`
}

// getDashboardHandler godoc
// @Summary Dashboard personal
// @Description Signo, elemento, life path, pronósticos del día, numerología, insights y plan. Requiere perfil de nacimiento.
// @Tags dashboard
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Success 200 {object} dashboardResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "birth profile required"
// @Router /me/dashboard [get]
func getDashboardHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		d, err := svc.Build(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, ErrNoProfile) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		insights := make([]insightResponse, 0, len(d.Insights))
		for _, in := range d.Insights {
			insights = append(insights, insightResponse{Kind: in.Kind, Title: in.Title, Body: in.Body})
		}

		writeJSON(w, http.StatusOK, dashboardResponse{
			Date:      d.Date.Format("2006-01-02"),
			FirstName: d.FirstName,
			Cosmic:    d.Reading,
			Forecasts: forecastsResponse{
				Daily:  d.Forecasts.Daily,
				Love:   d.Forecasts.Love,
				Career: d.Forecasts.Career,
			},
			Numerology: numerologyResponse{
				LifePathNumber: d.Reading.LifePathNumber,
				PersonalDay:    d.PersonalDay,
				Vibe:           d.Vibe,
			},
			Insights:     insights,
			Plan:         planSummary{ID: string(d.Plan.ID), Name: d.Plan.Name},
			Capabilities: d.Capabilities,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
