package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"clinicore/database"
	"clinicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo creates a new instance of AvailabilityRepository using MongoDB.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	coll := database.MongoClient.Database("clinicore").Collection("availability_blocks")
	return &MongoAvailabilityRepo{coll: coll}
}

func (r *MongoAvailabilityRepo) FindForDay(ctx context.Context, physicianID, clinicID string, dayStartUTC, dayEndUTC time.Time, dayOfWeek int) ([]models.AvailabilityBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"physicianId": physicianID,
		"clinicId":    clinicID,
		"isAvailable": true,
		"$or": bson.A{
			bson.M{"isRecurring": true, "dayOfWeek": dayOfWeek},
			bson.M{"isRecurring": false, "specificDate": bson.M{"$gte": dayStartUTC, "$lt": dayEndUTC}},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query availability blocks for physician %s: %w", physicianID, err)
	}
	defer cursor.Close(ctx)

	var blocks []models.AvailabilityBlock
	for cursor.Next(ctx) {
		var b models.AvailabilityBlock
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode availability block: %w", err)
		}
		blocks = append(blocks, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return blocks, nil
}
