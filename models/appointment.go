package models

import "time"

// Appointment statuses.
const (
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

// Appointment represents a booked visit with a physician.
type Appointment struct {
	ID          string    `bson:"id" json:"id"`
	PhysicianID string    `bson:"physicianId" json:"physicianId"`
	PatientID   string    `bson:"patientId" json:"patientId"`
	ClinicID    string    `bson:"clinicId" json:"clinicId"`
	BillingCode string    `bson:"billingCode,omitempty" json:"billingCode,omitempty"`
	StartTime   time.Time `bson:"startTime" json:"startTime"`
	EndTime     time.Time `bson:"endTime" json:"endTime"`
	Status      string    `bson:"status" json:"status"`
}
