package billingRepo

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

// MongoBillingRuleRepo implements BillingRuleRepository using MongoDB.
type MongoBillingRuleRepo struct {
	coll *mongo.Collection
}

// NewMongoBillingRuleRepo creates a new instance of BillingRuleRepository using MongoDB.
func NewMongoBillingRuleRepo() BillingRuleRepository {
	coll := database.MongoClient.Database("clinicore").Collection("billing_rules")
	return &MongoBillingRuleRepo{coll: coll}
}

func (r *MongoBillingRuleRepo) GetAll(ctx context.Context) ([]models.BillingRule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "minDurationMinutes", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve billing rules: %w", err)
	}
	defer cursor.Close(ctx)

	var rules []models.BillingRule
	for cursor.Next(ctx) {
		var rule models.BillingRule
		if err := cursor.Decode(&rule); err != nil {
			return nil, fmt.Errorf("failed to decode billing rule: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return rules, nil
}
