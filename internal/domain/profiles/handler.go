package profiles

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"ask-astro/internal/domain/astrology"
	"ask-astro/internal/middleware"
	"ask-astro/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/me/profile", func(pr chi.Router) {
		pr.Get("/", getProfileHandler(svc))
		pr.Put("/", saveProfileHandler(svc, log))
		pr.Patch("/", updateProfileHandler(svc, log))
	})
}

// saveProfileRequest es el cuerpo del modal de datos de nacimiento.
type saveProfileRequest struct {
	FirstName       string `json:"first_name"`
	BirthDate       string `json:"birth_date"` // YYYY-MM-DD
	BirthTime       string `json:"birth_time"` // HH:MM opcional
	BirthPlace      string `json:"birth_place"`
	PartnerName     string `json:"partner_name"`
	HouseNumber     string `json:"house_number"`
	MobileNumber    string `json:"mobile_number"`
	AlternateNumber string `json:"alternate_number"`
	VehicleNumber   string `json:"vehicle_number"`
}

type updateProfileRequest struct {
	FirstName       *string `json:"first_name"`
	BirthDate       *string `json:"birth_date"`
	BirthTime       *string `json:"birth_time"`
	BirthPlace      *string `json:"birth_place"`
	PartnerName     *string `json:"partner_name"`
	HouseNumber     *string `json:"house_number"`
	MobileNumber    *string `json:"mobile_number"`
	AlternateNumber *string `json:"alternate_number"`
	VehicleNumber   *string `json:"vehicle_number"`
}

// profileResponse incluye el bloque cosmic derivado de la fecha.
type profileResponse struct {
	UserID          string                    `json:"user_id"`
	FirstName       string                    `json:"first_name"`
	BirthDate       string                    `json:"birth_date"`
	BirthTime       string                    `json:"birth_time,omitempty"`
	BirthPlace      string                    `json:"birth_place,omitempty"`
	PartnerName     string                    `json:"partner_name,omitempty"`
	HouseNumber     string                    `json:"house_number,omitempty"`
	MobileNumber    string                    `json:"mobile_number,omitempty"`
	AlternateNumber string                    `json:"alternate_number,omitempty"`
	VehicleNumber   string                    `json:"vehicle_number,omitempty"`
	Cosmic          astrology.ReadingResponse `json:"cosmic"`
	CreatedAt       time.Time                 `json:"created_at"`
	UpdatedAt       time.Time                 `json:"updated_at"`
}

// getProfileHandler godoc
// @Summary Ver mi perfil
// @Description Perfil de nacimiento del usuario autenticado, con signo, elemento y life path.
// @Tags profiles
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Success 200 {object} profileResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "profile not found"
// @Router /me/profile [get]
func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		p, err := svc.Get(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toProfileResponse(p))
	}
}

// saveProfileHandler godoc
// @Summary Guardar mi perfil
// @Description Crea o reemplaza el perfil de nacimiento. first_name y birth_date son obligatorios.
// @Tags profiles
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param payload body saveProfileRequest true "Datos de nacimiento"
// @Success 200 {object} profileResponse
// @Failure 400 {string} string "invalid json / campo inválido"
// @Failure 401 {string} string "unauthorized"
// @Router /me/profile [put]
func saveProfileHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		var req saveProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.BirthDate) == "" {
			http.Error(w, "birth_date is required", http.StatusBadRequest)
			return
		}
		bd, err := astrology.ParseBirthDate(req.BirthDate)
		if err != nil {
			http.Error(w, astrology.DateErrorMessage(err), http.StatusBadRequest)
			return
		}

		p, err := svc.Save(r.Context(), claims.UserID, SaveInput{
			FirstName:       req.FirstName,
			BirthDate:       bd,
			BirthTime:       req.BirthTime,
			BirthPlace:      req.BirthPlace,
			PartnerName:     req.PartnerName,
			HouseNumber:     req.HouseNumber,
			MobileNumber:    req.MobileNumber,
			AlternateNumber: req.AlternateNumber,
			VehicleNumber:   req.VehicleNumber,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		log.Info("profile saved", map[string]any{"user_id": claims.UserID, "sign": p.Reading().Sign})
		writeJSON(w, http.StatusOK, toProfileResponse(p))
	}
}

// updateProfileHandler godoc
// @Summary Editar mi perfil
// @Description Actualización parcial; los campos ausentes no se tocan.
// @Tags profiles
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param payload body updateProfileRequest true "Campos a modificar"
// @Success 200 {object} profileResponse
// @Failure 400 {string} string "invalid json / campo inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "profile not found"
// @Router /me/profile [patch]
func updateProfileHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateProfileRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateInput{
			FirstName:       req.FirstName,
			BirthTime:       req.BirthTime,
			BirthPlace:      req.BirthPlace,
			PartnerName:     req.PartnerName,
			HouseNumber:     req.HouseNumber,
			MobileNumber:    req.MobileNumber,
			AlternateNumber: req.AlternateNumber,
			VehicleNumber:   req.VehicleNumber,
		}
		if req.BirthDate != nil {
			bd, err := astrology.ParseBirthDate(*req.BirthDate)
			if err != nil {
				http.Error(w, astrology.DateErrorMessage(err), http.StatusBadRequest)
				return
			}
			in.BirthDate = &bd
		}

		p, err := svc.Update(r.Context(), claims.UserID, in)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		log.Info("profile updated", map[string]any{"user_id": claims.UserID})
		writeJSON(w, http.StatusOK, toProfileResponse(p))
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "profile not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toProfileResponse(p Profile) profileResponse {
	return profileResponse{
		UserID:          p.UserID,
		FirstName:       p.FirstName,
		BirthDate:       p.BirthDate.String(),
		BirthTime:       p.BirthTime,
		BirthPlace:      p.BirthPlace,
		PartnerName:     p.PartnerName,
		HouseNumber:     p.HouseNumber,
		MobileNumber:    p.MobileNumber,
		AlternateNumber: p.AlternateNumber,
		VehicleNumber:   p.VehicleNumber,
		Cosmic:          p.Reading(),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
