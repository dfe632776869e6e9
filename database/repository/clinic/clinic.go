package clinicRepo

import (
	"context"

	"clinicore/models"
)

// ClinicRepository defines methods for clinic data access.
type ClinicRepository interface {
	// GetByID retrieves a clinic by its unique ID. Returns (nil, nil) when no
	// clinic with that ID exists.
	GetByID(ctx context.Context, id string) (*models.Clinic, error)
	// GetAll retrieves every clinic.
	GetAll(ctx context.Context) ([]models.Clinic, error)
}
