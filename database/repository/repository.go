package repository

import (
	appointmentRepo "clinicore/database/repository/appointment"
	availabilityRepo "clinicore/database/repository/availability"
	billingRepo "clinicore/database/repository/billing"
	clinicRepo "clinicore/database/repository/clinic"
	patientRepo "clinicore/database/repository/patient"
	physicianRepo "clinicore/database/repository/physician"
)

// Re-export the ClinicRepository interface and constructor.
type ClinicRepository = clinicRepo.ClinicRepository

var NewMongoClinicRepo = clinicRepo.NewMongoClinicRepo

// Re-export the PhysicianRepository interface and constructor.
type PhysicianRepository = physicianRepo.PhysicianRepository

var NewMongoPhysicianRepo = physicianRepo.NewMongoPhysicianRepo

// Re-export the PatientRepository interface and constructor.
type PatientRepository = patientRepo.PatientRepository

var NewMongoPatientRepo = patientRepo.NewMongoPatientRepo

// Re-export the AvailabilityRepository interface and constructor.
type AvailabilityRepository = availabilityRepo.AvailabilityRepository

var NewMongoAvailabilityRepo = availabilityRepo.NewMongoAvailabilityRepo

// Re-export the AppointmentRepository interface and constructor.
type AppointmentRepository = appointmentRepo.AppointmentRepository

var NewMongoAppointmentRepo = appointmentRepo.NewMongoAppointmentRepo

// Re-export the BillingRuleRepository interface and constructor.
type BillingRuleRepository = billingRepo.BillingRuleRepository

var NewMongoBillingRuleRepo = billingRepo.NewMongoBillingRuleRepo
