package appointmentRepo

import (
	"context"
	"time"

	"clinicore/models"
)

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// FindActiveInRange retrieves the non-cancelled appointments for a
	// physician at a clinic whose start time falls inside the UTC day
	// boundary, ordered by start time.
	FindActiveInRange(ctx context.Context, physicianID, clinicID string, dayStartUTC, dayEndUTC time.Time) ([]models.Appointment, error)
}
