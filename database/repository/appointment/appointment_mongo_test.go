package appointmentRepo

import (
	"context"
	"testing"
	"time"

	"clinicore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func appointmentDoc(id string, start, end time.Time) bson.D {
	return bson.D{
		{Key: "id", Value: id},
		{Key: "physicianId", Value: "phys-1"},
		{Key: "clinicId", Value: "clinic-1"},
		{Key: "startTime", Value: start},
		{Key: "endTime", Value: end},
		{Key: "status", Value: models.AppointmentStatusConfirmed},
	}
}

func TestFindActiveInRange(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	dayStart := time.Date(2025, 7, 1, 4, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24*time.Hour - time.Second)

	mt.Run("decodes all returned appointments in order", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
				appointmentDoc("a1", dayStart.Add(9*time.Hour+30*time.Minute), dayStart.Add(9*time.Hour+45*time.Minute))),
			mtest.CreateCursorResponse(0, ns, mtest.NextBatch,
				appointmentDoc("a2", dayStart.Add(13*time.Hour), dayStart.Add(13*time.Hour+15*time.Minute))),
		)

		repo := &MongoAppointmentRepo{coll: mt.Coll}
		appointments, err := repo.FindActiveInRange(context.Background(), "phys-1", "clinic-1", dayStart, dayEnd)
		require.NoError(mt, err)
		require.Len(mt, appointments, 2)
		assert.Equal(mt, "a1", appointments[0].ID)
		assert.Equal(mt, "a2", appointments[1].ID)
	})

	mt.Run("returns an error when the cursor fails mid stream", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
				appointmentDoc("a1", dayStart.Add(9*time.Hour+30*time.Minute), dayStart.Add(9*time.Hour+45*time.Minute))),
			mtest.CreateCommandErrorResponse(mtest.CommandError{
				Code:    11601,
				Name:    "Interrupted",
				Message: "operation was interrupted",
			}),
		)

		// A cursor fault after the first batch must surface as an error, never
		// as a truncated appointment list: a dropped appointment would let a
		// conflicting slot through downstream.
		repo := &MongoAppointmentRepo{coll: mt.Coll}
		appointments, err := repo.FindActiveInRange(context.Background(), "phys-1", "clinic-1", dayStart, dayEnd)
		require.Error(mt, err)
		assert.Nil(mt, appointments)
	})
}
