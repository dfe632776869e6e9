package models

import "time"

// Patient represents a registered patient.
type Patient struct {
	ID               string    `bson:"id" json:"id"`
	FirstName        string    `bson:"firstName" json:"firstName"`
	LastName         string    `bson:"lastName" json:"lastName"`
	DOB              time.Time `bson:"dob" json:"dob"`
	HealthCardNumber string    `bson:"healthCardNumber" json:"healthCardNumber"`
	Email            string    `bson:"email" json:"email"`
	Phone            string    `bson:"phone,omitempty" json:"phone,omitempty"`
}
