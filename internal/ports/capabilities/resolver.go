package capabilities

import "context"

// CapabilityCheck pregunta por una feature concreta de un usuario.
type CapabilityCheck struct {
	UserID  string
	Feature string
}

type CapabilitiesResolver interface {
	HasFeature(ctx context.Context, in CapabilityCheck) (bool, error)
	Resolve(ctx context.Context, userID string) (map[string]bool, error)
}
