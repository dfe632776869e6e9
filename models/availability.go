package models

import "time"

// AvailabilityBlock represents a physician's working window at a clinic.
//
// Recurring blocks repeat weekly on DayOfWeek (0=Sunday .. 6=Saturday); their
// StartTime/EndTime are placeholder instants whose time-of-day is the only
// meaningful part. Date-specific blocks carry SpecificDate plus absolute
// start/end instants.
type AvailabilityBlock struct {
	ID           string     `bson:"id" json:"id"`
	PhysicianID  string     `bson:"physicianId" json:"physicianId"`
	ClinicID     string     `bson:"clinicId" json:"clinicId"`
	IsRecurring  bool       `bson:"isRecurring" json:"isRecurring"`
	DayOfWeek    int        `bson:"dayOfWeek,omitempty" json:"dayOfWeek,omitempty"`
	SpecificDate *time.Time `bson:"specificDate,omitempty" json:"specificDate,omitempty"`
	StartTime    time.Time  `bson:"startTime" json:"startTime"`
	EndTime      time.Time  `bson:"endTime" json:"endTime"`
	IsAvailable  bool       `bson:"isAvailable" json:"isAvailable"`
}
