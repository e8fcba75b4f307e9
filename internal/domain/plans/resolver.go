package plans

import (
	"context"
	"errors"
	"strings"

	"ask-astro/internal/ports/capabilities"
)

// PlanLookup devuelve el plan actual de un usuario.
// Usuarios sin cuenta (guests) están en PlanFree.
type PlanLookup interface {
	PlanOf(ctx context.Context, userID string) (PlanID, error)
}

// Resolver decide capabilities a partir del plan del usuario.
// Implementa capabilities.CapabilitiesResolver.
type Resolver struct {
	plans    PlanLookup
	allowAll bool
}

var _ capabilities.CapabilitiesResolver = (*Resolver)(nil)

// NewResolver crea un resolver. Con allowAll (ALLOW_ALL_CAPABILITIES) todo devuelve true
// sin consultar el plan.
func NewResolver(plans PlanLookup, allowAll bool) *Resolver {
	return &Resolver{plans: plans, allowAll: allowAll}
}

func (r *Resolver) HasFeature(ctx context.Context, in capabilities.CapabilityCheck) (bool, error) {
	feature := strings.TrimSpace(in.Feature)
	if feature == "" {
		return false, errors.New("feature required")
	}
	if r.allowAll {
		return true, nil
	}

	p, err := r.planOf(ctx, in.UserID)
	if err != nil {
		return false, err
	}
	return p.Includes(Feature(feature)), nil
}

func (r *Resolver) Resolve(ctx context.Context, userID string) (map[string]bool, error) {
	if r.allowAll {
		out := make(map[string]bool, len(allFeatures))
		for _, fi := range allFeatures {
			out[string(fi.Feature)] = true
		}
		return out, nil
	}

	p, err := r.planOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	return p.Features(), nil
}

func (r *Resolver) planOf(ctx context.Context, userID string) (Plan, error) {
	if strings.TrimSpace(userID) == "" {
		return Plan{}, errors.New("user id required")
	}
	id := PlanFree
	if r.plans != nil {
		got, err := r.plans.PlanOf(ctx, userID)
		if err != nil {
			return Plan{}, err
		}
		id = got
	}
	p, ok := Lookup(id)
	if !ok {
		p, _ = Lookup(PlanFree)
	}
	return p, nil
}
