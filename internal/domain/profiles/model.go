package profiles

import (
	"time"

	"ask-astro/internal/domain/astrology"
)

// Profile es el perfil de nacimiento de un usuario (uno por usuario).
type Profile struct {
	UserID string

	FirstName  string
	BirthDate  astrology.BirthDate
	BirthTime  string // HH:MM, opcional
	BirthPlace string

	PartnerName     string
	HouseNumber     string
	MobileNumber    string
	AlternateNumber string
	VehicleNumber   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Reading deriva signo, elemento y life path de la fecha de nacimiento.
func (p Profile) Reading() astrology.ReadingResponse {
	return astrology.NewReadingResponse(p.BirthDate)
}
