package clinicRepo

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

// MongoClinicRepo implements ClinicRepository using MongoDB.
type MongoClinicRepo struct {
	coll *mongo.Collection
}

// NewMongoClinicRepo creates a new instance of ClinicRepository using MongoDB.
func NewMongoClinicRepo() ClinicRepository {
	coll := database.MongoClient.Database("clinicore").Collection("clinics")
	return &MongoClinicRepo{coll: coll}
}

func (r *MongoClinicRepo) GetByID(ctx context.Context, id string) (*models.Clinic, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var clinic models.Clinic
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&clinic); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch clinic with id %s: %w", id, err)
	}
	return &clinic, nil
}

func (r *MongoClinicRepo) GetAll(ctx context.Context) ([]models.Clinic, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve clinics: %w", err)
	}
	defer cursor.Close(ctx)
	var clinics []models.Clinic
	for cursor.Next(ctx) {
		var c models.Clinic
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode clinic: %w", err)
		}
		clinics = append(clinics, c)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return clinics, nil
}
