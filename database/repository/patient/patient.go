package patientRepo

import (
	"context"

	"clinicore/models"
)

// PatientRepository defines methods for patient data access.
type PatientRepository interface {
	// GetByID retrieves a patient by their unique ID. Returns (nil, nil) when
	// no patient with that ID exists.
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	// GetAll retrieves every patient.
	GetAll(ctx context.Context) ([]models.Patient, error)
}
