package leaderboard

import (
	"context"
	"fmt"

	"github.com/ali-ismaeel564/fitxAPI/internal/db"
	"github.com/ali-ismaeel564/fitxAPI/internal/telemetry/tracing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/attribute"
)

var _ Repository = (*MongoRepo)(nil)

type MongoRepo struct {
	userReps *mongo.Collection
}

func NewMongoRepo(database *mongo.Database) *MongoRepo {
	return &MongoRepo{
		userReps: database.Collection(db.CollectionUserReps),
	}
}

func (r *MongoRepo) Top(ctx context.Context, liftType string, limit int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mongorepo.leaderboard.top")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("lift_type", liftType),
		attribute.Int("limit", limit),
	)

	cursor, err := r.userReps.Aggregate(ctx, topPipeline(liftType, limit))
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}

	var entries []Entry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode leaderboard: %w", err)
	}
	return entries, nil
}

// topPipeline joins reps to their user, keeps one lift type, sums attempted reps per user
// and ranks by weight then total, both descending.
func topPipeline(liftType string, limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: db.CollectionUsers},
			{Key: "localField", Value: "userID"},
			{Key: "foreignField", Value: "userID"},
			{Key: "as", Value: "user"},
		}}},
		{{Key: "$match", Value: bson.D{{Key: "liftType", Value: liftType}}}},
		// reps without a matching user drop out here
		{{Key: "$unwind", Value: "$user"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$userID"},
			{Key: "totalAttemptedReps", Value: bson.D{{Key: "$sum", Value: "$attemptedReps"}}},
			{Key: "weight", Value: bson.D{{Key: "$first", Value: "$user.weight_kg"}}},
			{Key: "liftType", Value: bson.D{{Key: "$first", Value: "$liftType"}}},
			{Key: "firstName", Value: bson.D{{Key: "$first", Value: "$user.firstName"}}},
			{Key: "lastName", Value: bson.D{{Key: "$first", Value: "$user.lastName"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "userID", Value: "$_id"},
			{Key: "weight", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$weight", 0}}}},
			{Key: "liftType", Value: 1},
			{Key: "totalAttemptedReps", Value: 1},
			{Key: "userName", Value: bson.D{{Key: "$concat", Value: bson.A{
				bson.D{{Key: "$ifNull", Value: bson.A{"$firstName", ""}}},
				" ",
				bson.D{{Key: "$ifNull", Value: bson.A{"$lastName", ""}}},
			}}}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "weight", Value: -1},
			{Key: "totalAttemptedReps", Value: -1},
			{Key: "userID", Value: 1},
		}}},
		{{Key: "$limit", Value: int64(limit)}},
	}
}
