package recommendation

import (
	"context"

	appointmentRepo "clinicore/database/repository/appointment"
	availabilityRepo "clinicore/database/repository/availability"
	billingRepo "clinicore/database/repository/billing"
	clinicRepo "clinicore/database/repository/clinic"
	patientRepo "clinicore/database/repository/patient"
	physicianRepo "clinicore/database/repository/physician"
	"clinicore/models"

	"github.com/go-redis/redis/v8"
)

// RecommendationService defines the interface for the slot recommendation engine.
type RecommendationService interface {
	RecommendSlots(ctx context.Context, req models.RecommendSlotsRequest) (*models.RecommendationResponse, error)
}

// DefaultRecommendationService implements RecommendationService.
type DefaultRecommendationService struct {
	ClinicRepo       clinicRepo.ClinicRepository
	PhysicianRepo    physicianRepo.PhysicianRepository
	PatientRepo      patientRepo.PatientRepository
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	AppointmentRepo  appointmentRepo.AppointmentRepository
	BillingRepo      billingRepo.BillingRuleRepository

	// Cache is optional; when set, computed responses are cached under a
	// deterministic request key with a short TTL.
	Cache *redis.Client
}
