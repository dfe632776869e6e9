package physicianRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinicore/database"
	"clinicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPhysicianRepo implements PhysicianRepository using MongoDB.
type MongoPhysicianRepo struct {
	coll *mongo.Collection
}

// NewMongoPhysicianRepo creates a new instance of PhysicianRepository using MongoDB.
func NewMongoPhysicianRepo() PhysicianRepository {
	coll := database.MongoClient.Database("clinicore").Collection("physicians")
	return &MongoPhysicianRepo{coll: coll}
}

func (r *MongoPhysicianRepo) GetByID(ctx context.Context, id string) (*models.Physician, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var physician models.Physician
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&physician); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch physician with id %s: %w", id, err)
	}
	return &physician, nil
}

func (r *MongoPhysicianRepo) GetAll(ctx context.Context) ([]models.Physician, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve physicians: %w", err)
	}
	defer cursor.Close(ctx)
	var physicians []models.Physician
	for cursor.Next(ctx) {
		var p models.Physician
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode physician: %w", err)
		}
		physicians = append(physicians, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return physicians, nil
}
