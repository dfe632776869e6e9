package physicianRepo

import (
	"context"

	"clinicore/models"
)

// PhysicianRepository defines methods for physician data access.
type PhysicianRepository interface {
	// GetByID retrieves a physician by their unique ID. Returns (nil, nil)
	// when no physician with that ID exists.
	GetByID(ctx context.Context, id string) (*models.Physician, error)
	// GetAll retrieves every physician.
	GetAll(ctx context.Context) ([]models.Physician, error)
}
