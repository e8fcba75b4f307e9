package accounts

import (
	"time"

	"ask-astro/internal/domain/plans"
)

// Account es un usuario registrado. Los guests no tienen Account.
type Account struct {
	ID        string
	Email     string
	Plan      plans.PlanID
	CreatedAt time.Time
	UpdatedAt time.Time
}
