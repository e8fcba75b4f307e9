package profiles

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"ask-astro/internal/domain/astrology"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("profile not found")
)

type Service struct {
	repo     Repository
	now      func() time.Time
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	v := validator.New()
	// Los mensajes de error usan el nombre público del campo.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if l := f.Tag.Get("label"); l != "" {
			return l
		}
		return f.Name
	})

	return &Service{
		repo:     repo,
		now:      time.Now,
		validate: v,
	}
}

// SaveInput son los datos del modal de nacimiento / edición de perfil.
type SaveInput struct {
	FirstName  string `label:"first_name" validate:"required,max=80"`
	BirthDate  astrology.BirthDate
	BirthTime  string `label:"birth_time" validate:"omitempty,datetime=15:04"`
	BirthPlace string `label:"birth_place" validate:"max=120"`

	PartnerName     string `label:"partner_name" validate:"max=80"`
	HouseNumber     string `label:"house_number" validate:"max=20"`
	MobileNumber    string `label:"mobile_number" validate:"omitempty,max=20,e164|numeric"`
	AlternateNumber string `label:"alternate_number" validate:"omitempty,max=20,e164|numeric"`
	VehicleNumber   string `label:"vehicle_number" validate:"max=20"`
}

func (in SaveInput) trimmed() SaveInput {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.BirthTime = strings.TrimSpace(in.BirthTime)
	in.BirthPlace = strings.TrimSpace(in.BirthPlace)
	in.PartnerName = strings.TrimSpace(in.PartnerName)
	in.HouseNumber = strings.TrimSpace(in.HouseNumber)
	in.MobileNumber = strings.TrimSpace(in.MobileNumber)
	in.AlternateNumber = strings.TrimSpace(in.AlternateNumber)
	in.VehicleNumber = strings.TrimSpace(in.VehicleNumber)
	return in
}

// Save crea o reemplaza el perfil del usuario.
func (s *Service) Save(ctx context.Context, userID string, in SaveInput) (Profile, error) {
	if strings.TrimSpace(userID) == "" {
		return Profile{}, ErrInvalidInput
	}
	in = in.trimmed()
	if err := s.check(in); err != nil {
		return Profile{}, err
	}

	now := s.now()
	p := Profile{
		UserID:          userID,
		FirstName:       in.FirstName,
		BirthDate:       in.BirthDate,
		BirthTime:       in.BirthTime,
		BirthPlace:      in.BirthPlace,
		PartnerName:     in.PartnerName,
		HouseNumber:     in.HouseNumber,
		MobileNumber:    in.MobileNumber,
		AlternateNumber: in.AlternateNumber,
		VehicleNumber:   in.VehicleNumber,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	current, err := s.repo.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		p.CreatedAt = current.CreatedAt
		if err := s.repo.Update(ctx, p); err != nil {
			return Profile{}, err
		}
	case errors.Is(err, ErrNotFound):
		if err := s.repo.Create(ctx, p); err != nil {
			return Profile{}, err
		}
	default:
		return Profile{}, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, userID string) (Profile, error) {
	if strings.TrimSpace(userID) == "" {
		return Profile{}, ErrNotFound
	}
	return s.repo.GetByUserID(ctx, userID)
}

// UpdateInput: punteros para PATCH real, nil = no tocar.
type UpdateInput struct {
	FirstName       *string
	BirthDate       *astrology.BirthDate
	BirthTime       *string
	BirthPlace      *string
	PartnerName     *string
	HouseNumber     *string
	MobileNumber    *string
	AlternateNumber *string
	VehicleNumber   *string
}

func (s *Service) Update(ctx context.Context, userID string, in UpdateInput) (Profile, error) {
	current, err := s.Get(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	merged := SaveInput{
		FirstName:       pick(in.FirstName, current.FirstName),
		BirthDate:       current.BirthDate,
		BirthTime:       pick(in.BirthTime, current.BirthTime),
		BirthPlace:      pick(in.BirthPlace, current.BirthPlace),
		PartnerName:     pick(in.PartnerName, current.PartnerName),
		HouseNumber:     pick(in.HouseNumber, current.HouseNumber),
		MobileNumber:    pick(in.MobileNumber, current.MobileNumber),
		AlternateNumber: pick(in.AlternateNumber, current.AlternateNumber),
		VehicleNumber:   pick(in.VehicleNumber, current.VehicleNumber),
	}
	if in.BirthDate != nil {
		merged.BirthDate = *in.BirthDate
	}
	merged = merged.trimmed()
	if err := s.check(merged); err != nil {
		return Profile{}, err
	}

	updated := current
	updated.FirstName = merged.FirstName
	updated.BirthDate = merged.BirthDate
	updated.BirthTime = merged.BirthTime
	updated.BirthPlace = merged.BirthPlace
	updated.PartnerName = merged.PartnerName
	updated.HouseNumber = merged.HouseNumber
	updated.MobileNumber = merged.MobileNumber
	updated.AlternateNumber = merged.AlternateNumber
	updated.VehicleNumber = merged.VehicleNumber
	updated.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, updated); err != nil {
		return Profile{}, err
	}
	return updated, nil
}

func (s *Service) check(in SaveInput) error {
	if in.BirthDate.IsZero() {
		return fmt.Errorf("%w: birth_date is required", ErrInvalidInput)
	}
	if _, err := astrology.NewBirthDate(in.BirthDate.Year, in.BirthDate.Month, in.BirthDate.Day); err != nil {
		return fmt.Errorf("%w: birth_date: %v", ErrInvalidInput, err)
	}

	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s (%s)", ErrInvalidInput, verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func pick(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
