package availabilityRepo

import (
	"context"
	"time"

	"clinicore/models"
)

// AvailabilityRepository defines methods for availability block data access.
type AvailabilityRepository interface {
	// FindForDay retrieves the available blocks for a physician at a clinic
	// that apply to the requested day: recurring blocks on that weekday
	// (0=Sunday .. 6=Saturday) plus date-specific blocks whose specificDate
	// falls inside the UTC day boundary.
	FindForDay(ctx context.Context, physicianID, clinicID string, dayStartUTC, dayEndUTC time.Time, dayOfWeek int) ([]models.AvailabilityBlock, error)
}
