package models

// Recommendation statuses returned by the slot recommender.
const (
	RecommendationSuccess          = "success"
	RecommendationNoAvailability   = "no_availability"
	RecommendationNoSlotsAvailable = "no_slots_available"
	RecommendationError            = "error"
)

// RecommendSlotsRequest is the payload for the slot recommendation endpoint.
type RecommendSlotsRequest struct {
	ClinicID        string `json:"clinicId" binding:"required,uuid4"`
	PhysicianID     string `json:"physicianId" binding:"required,uuid4"`
	PatientID       string `json:"patientId" binding:"required,uuid4"`
	PreferredDate   string `json:"preferredDate" binding:"required,datetime=2006-01-02"`
	DurationMinutes int    `json:"durationMinutes" binding:"required,gte=5,lte=480"`
}

// RecommendationResponse is the ranked slot recommendation result.
// RecommendedSlots holds slot start times as UTC ISO-8601 instants, best
// first (rank order, not necessarily time order).
type RecommendationResponse struct {
	Status           string   `json:"status"`
	RecommendedSlots []string `json:"recommendedSlots"`
	Message          string   `json:"message,omitempty"`
}
