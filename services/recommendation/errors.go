package recommendation

// NotFoundError indicates that a referenced clinic, physician or patient does
// not exist. The handler maps it to a client error.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ErrInvalidReference is returned when any of the referenced entities is missing.
var ErrInvalidReference = &NotFoundError{Message: "Invalid clinic, physician, or patient ID."}

// User-facing messages for the soft "no results" outcomes.
const (
	msgNoAvailability = "No appointment slots are available for the selected criteria. (No availability configured for this clinic/physician on this date.)"
	msgNoBillingRules = "No appointment slots are available for the selected criteria. (No billing rules configured for this clinic/physician.)"
	msgNoSlots        = "No appointment slots are available for the selected criteria. Please try a different date or contact support."
)
