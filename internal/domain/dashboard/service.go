package dashboard

import (
	"context"
	"errors"
	"strings"
	"time"

	"ask-astro/internal/domain/astrology"
	"ask-astro/internal/domain/plans"
	"ask-astro/internal/domain/profiles"
	"ask-astro/internal/ports/capabilities"
)

var ErrNoProfile = errors.New("birth profile required")

type ProfileReader interface {
	Get(ctx context.Context, userID string) (profiles.Profile, error)
}

type Service struct {
	profiles ProfileReader
	plans    plans.PlanLookup
	caps     capabilities.CapabilitiesResolver
	catalog  Catalog
	now      func() time.Time
}

func NewService(profiles ProfileReader, planLookup plans.PlanLookup, caps capabilities.CapabilitiesResolver, catalog Catalog) *Service {
	return &Service{
		profiles: profiles,
		plans:    planLookup,
		caps:     caps,
		catalog:  catalog,
		now:      time.Now,
	}
}

type Dashboard struct {
	Date      time.Time
	FirstName string
	Reading   astrology.ReadingResponse
	Forecasts Forecasts

	PersonalDay int
	Vibe        string
	Insights    []Insight

	Plan         plans.Plan
	Capabilities map[string]bool
}

func (s *Service) Build(ctx context.Context, userID string) (Dashboard, error) {
	if strings.TrimSpace(userID) == "" {
		return Dashboard{}, ErrNoProfile
	}

	p, err := s.profiles.Get(ctx, userID)
	if errors.Is(err, profiles.ErrNotFound) {
		return Dashboard{}, ErrNoProfile
	}
	if err != nil {
		return Dashboard{}, err
	}

	planID := plans.PlanFree
	if s.plans != nil {
		if planID, err = s.plans.PlanOf(ctx, userID); err != nil {
			return Dashboard{}, err
		}
	}
	plan, ok := plans.Lookup(planID)
	if !ok {
		plan, _ = plans.Lookup(plans.PlanFree)
	}

	caps := plan.Features()
	if s.caps != nil {
		if caps, err = s.caps.Resolve(ctx, userID); err != nil {
			return Dashboard{}, err
		}
	}

	today := s.now()
	reading := p.Reading()
	day := astrology.PersonalDay(today)

	return Dashboard{
		Date:         today,
		FirstName:    p.FirstName,
		Reading:      reading,
		Forecasts:    s.catalog.ForecastsFor(reading.Element),
		PersonalDay:  day,
		Vibe:         s.catalog.Vibe(day),
		Insights:     s.catalog.Insights,
		Plan:         plan,
		Capabilities: caps,
	}, nil
}
