package models

// Physician represents a practicing physician attached to a clinic.
type Physician struct {
	ID        string `bson:"id" json:"id"`
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Specialty string `bson:"specialty" json:"specialty"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
	ClinicID  string `bson:"clinicId" json:"clinicId"`
}
