package billingRepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func billingRuleDoc(code string, minDuration, minGap int) bson.D {
	return bson.D{
		{Key: "id", Value: "rule-" + code},
		{Key: "code", Value: code},
		{Key: "minDurationMinutes", Value: minDuration},
		{Key: "minGapAfter", Value: minGap},
	}
}

func TestBillingRuleGetAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes all returned rules", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, billingRuleDoc("A001", 15, 10)),
			mtest.CreateCursorResponse(0, ns, mtest.NextBatch, billingRuleDoc("A007", 30, 20)),
		)

		repo := &MongoBillingRuleRepo{coll: mt.Coll}
		rules, err := repo.GetAll(context.Background())
		require.NoError(mt, err)
		require.Len(mt, rules, 2)
		assert.Equal(mt, "A001", rules[0].Code)
		assert.Equal(mt, "A007", rules[1].Code)
	})

	mt.Run("returns an error when the cursor fails mid stream", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, billingRuleDoc("A001", 15, 10)),
			mtest.CreateCommandErrorResponse(mtest.CommandError{
				Code:    11601,
				Name:    "Interrupted",
				Message: "operation was interrupted",
			}),
		)

		repo := &MongoBillingRuleRepo{coll: mt.Coll}
		rules, err := repo.GetAll(context.Background())
		require.Error(mt, err)
		assert.Nil(mt, rules)
	})
}
