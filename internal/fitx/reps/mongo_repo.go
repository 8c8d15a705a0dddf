package reps

import (
	"context"
	"errors"
	"fmt"

	"github.com/ali-ismaeel564/fitxAPI/internal/db"
	"github.com/ali-ismaeel564/fitxAPI/internal/telemetry/tracing"
	"github.com/ali-ismaeel564/fitxAPI/pkg"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
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

func (r *MongoRepo) AddRep(ctx context.Context, rep RepRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mongorepo.reps.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("rep.video_id", rep.VideoID))

	_, err = r.userReps.InsertOne(ctx, rep)
	if pkg.IsUniqueViolationError(err) {
		return ErrDuplicateVideo
	}
	return err
}

func (r *MongoRepo) VideoSubmissionExists(ctx context.Context, videoID string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mongorepo.reps.video.exists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.userReps.FindOne(
		ctx,
		bson.D{{Key: "videoID", Value: videoID}},
		options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 1}}),
	).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *MongoRepo) SumAttemptedReps(
	ctx context.Context,
	userID, liftType string,
	window Window,
) (total int, count int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mongorepo.reps.sum")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.String("rep.lift_type", liftType),
	)

	cursor, err := r.userReps.Aggregate(ctx, weeklySumPipeline(userID, liftType, window))
	if err != nil {
		return 0, 0, fmt.Errorf("aggregate: %w", err)
	}

	var results []struct {
		Total int64 `bson:"total"`
		Count int64 `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, 0, fmt.Errorf("decode sum: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, nil
	}

	return int(results[0].Total), int(results[0].Count), nil
}

func weeklySumPipeline(userID, liftType string, window Window) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "userID", Value: userID},
			{Key: "liftType", Value: liftType},
			{Key: "date", Value: bson.D{
				{Key: "$gte", Value: window.From},
				{Key: "$lte", Value: window.To},
			}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$attemptedReps"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
}
