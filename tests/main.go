// Seed tool: loads a demo data set (one Toronto clinic, one physician, two
// patients, one billing rule, recurring and date-specific availability,
// existing appointments) for exercising the recommendation endpoint locally.
package main

import (
	"context"
	"log"
	"time"

	"clinicore/config"
	"clinicore/database"
	"clinicore/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.MongoClient.Database("clinicore")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Clear existing documents.
	for _, name := range []string{"appointments", "availability_blocks", "billing_rules", "patients", "physicians", "clinics"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", name, err)
		}
	}

	toronto, err := time.LoadLocation("America/Toronto")
	if err != nil {
		log.Fatalf("Failed to load timezone: %v", err)
	}

	clinic := models.Clinic{
		ID:         uuid.New().String(),
		Name:       "Downtown Health Clinic",
		Street:     "123 King St",
		City:       "Toronto",
		Province:   "ON",
		PostalCode: "M5H 2N2",
		Country:    "Canada",
		Timezone:   "America/Toronto",
	}
	if _, err := db.Collection("clinics").InsertOne(ctx, clinic); err != nil {
		log.Fatalf("Failed to insert clinic: %v", err)
	}

	rule := models.BillingRule{
		ID:                 uuid.New().String(),
		Code:               "A001",
		Description:        "General Visit - 15 min",
		MinDurationMinutes: 15,
		MinGapAfter:        10,
		MaxApptsPerDay:     10,
	}
	if _, err := db.Collection("billing_rules").InsertOne(ctx, rule); err != nil {
		log.Fatalf("Failed to insert billing rule: %v", err)
	}

	physician := models.Physician{
		ID:        uuid.New().String(),
		FirstName: "John",
		LastName:  "Doe",
		Specialty: "Family Medicine",
		Email:     "johndoe@example.com",
		Phone:     "4165551234",
		ClinicID:  clinic.ID,
	}
	if _, err := db.Collection("physicians").InsertOne(ctx, physician); err != nil {
		log.Fatalf("Failed to insert physician: %v", err)
	}

	patients := []models.Patient{
		{
			ID:               uuid.New().String(),
			FirstName:        "Alice",
			LastName:         "Smith",
			DOB:              time.Date(1995, 3, 10, 0, 0, 0, 0, time.UTC),
			HealthCardNumber: "OHIP123456",
			Email:            "alice@example.com",
			Phone:            "4165556789",
		},
		{
			ID:               uuid.New().String(),
			FirstName:        "Bob",
			LastName:         "Brown",
			DOB:              time.Date(1988, 7, 25, 0, 0, 0, 0, time.UTC),
			HealthCardNumber: "OHIP654321",
			Email:            "bob@example.com",
		},
	}
	var patientDocs []interface{}
	for _, p := range patients {
		patientDocs = append(patientDocs, p)
	}
	if _, err := db.Collection("patients").InsertMany(ctx, patientDocs); err != nil {
		log.Fatalf("Failed to insert patients: %v", err)
	}

	// Recurring Tuesday blocks plus one date-specific evening block.
	// Recurring placeholders encode clinic-local time-of-day in UTC fields.
	specificDate := time.Date(2025, 7, 1, 0, 0, 0, 0, toronto)
	blocks := []interface{}{
		models.AvailabilityBlock{
			ID:          uuid.New().String(),
			PhysicianID: physician.ID,
			ClinicID:    clinic.ID,
			IsRecurring: true,
			DayOfWeek:   2, // Tuesday
			StartTime:   time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC),
			EndTime:     time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
			IsAvailable: true,
		},
		models.AvailabilityBlock{
			ID:          uuid.New().String(),
			PhysicianID: physician.ID,
			ClinicID:    clinic.ID,
			IsRecurring: true,
			DayOfWeek:   2,
			StartTime:   time.Date(2025, 7, 1, 13, 0, 0, 0, time.UTC),
			EndTime:     time.Date(2025, 7, 1, 17, 0, 0, 0, time.UTC),
			IsAvailable: true,
		},
		models.AvailabilityBlock{
			ID:           uuid.New().String(),
			PhysicianID:  physician.ID,
			ClinicID:     clinic.ID,
			IsRecurring:  false,
			SpecificDate: &specificDate,
			StartTime:    time.Date(2025, 7, 1, 18, 0, 0, 0, toronto),
			EndTime:      time.Date(2025, 7, 1, 20, 0, 0, 0, toronto),
			IsAvailable:  true,
		},
	}
	if _, err := db.Collection("availability_blocks").InsertMany(ctx, blocks); err != nil {
		log.Fatalf("Failed to insert availability blocks: %v", err)
	}

	appointments := []interface{}{
		models.Appointment{
			ID:          uuid.New().String(),
			PhysicianID: physician.ID,
			PatientID:   patients[0].ID,
			ClinicID:    clinic.ID,
			BillingCode: rule.Code,
			StartTime:   time.Date(2025, 7, 1, 9, 30, 0, 0, toronto),
			EndTime:     time.Date(2025, 7, 1, 9, 45, 0, 0, toronto),
			Status:      models.AppointmentStatusConfirmed,
		},
		models.Appointment{
			ID:          uuid.New().String(),
			PhysicianID: physician.ID,
			PatientID:   patients[1].ID,
			ClinicID:    clinic.ID,
			BillingCode: rule.Code,
			StartTime:   time.Date(2025, 7, 1, 13, 15, 0, 0, toronto),
			EndTime:     time.Date(2025, 7, 1, 13, 30, 0, 0, toronto),
			Status:      models.AppointmentStatusConfirmed,
		},
	}
	if _, err := db.Collection("appointments").InsertMany(ctx, appointments); err != nil {
		log.Fatalf("Failed to insert appointments: %v", err)
	}

	log.Println("Seeding complete.")
	log.Printf("clinicId=%s physicianId=%s patientId=%s", clinic.ID, physician.ID, patients[0].ID)
}
