package plans

import (
	"encoding/json"
	"net/http"

	"ask-astro/internal/middleware"
	"ask-astro/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
)

func RegisterRoutes(r chi.Router, resolver capabilities.CapabilitiesResolver) {
	r.Get("/plans", listPlansHandler())
	r.Get("/me/capabilities", capabilitiesHandler(resolver))
}

type FeatureResponse struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Included bool   `json:"included"`
}

type PlanResponse struct {
	ID          PlanID            `json:"id"`
	Name        string            `json:"name"`
	PriceINR    int               `json:"price_inr"`
	Description string            `json:"description"`
	Popular     bool              `json:"popular"`
	Features    []FeatureResponse `json:"features"`
}

type capabilitiesResponse struct {
	UserID       string          `json:"user_id"`
	Capabilities map[string]bool `json:"capabilities"`
}

// listPlansHandler godoc
// @Summary Catálogo de planes
// @Tags plans
// @Produce json
// @Success 200 {array} PlanResponse
// @Router /plans [get]
func listPlansHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		out := lo.Map(Catalog(), func(p Plan, _ int) PlanResponse {
			return ToPlanResponse(p)
		})
		writeJSON(w, http.StatusOK, out)
	}
}

// capabilitiesHandler godoc
// @Summary Mis capabilities
// @Description Mapa feature => habilitada según el plan del usuario.
// @Tags plans
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Success 200 {object} capabilitiesResponse
// @Failure 401 {string} string "unauthorized"
// @Router /me/capabilities [get]
func capabilitiesHandler(resolver capabilities.CapabilitiesResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		caps, err := resolver.Resolve(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, capabilitiesResponse{UserID: claims.UserID, Capabilities: caps})
	}
}

func ToPlanResponse(p Plan) PlanResponse {
	return PlanResponse{
		ID:          p.ID,
		Name:        p.Name,
		PriceINR:    p.PriceINR,
		Description: p.Description,
		Popular:     p.Popular,
		Features: lo.Map(allFeatures, func(fi FeatureInfo, _ int) FeatureResponse {
			return FeatureResponse{Key: string(fi.Feature), Label: fi.Label, Included: p.Includes(fi.Feature)}
		}),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
