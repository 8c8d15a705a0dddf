package users

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

// MongoRepo keeps users in the fitX document store.
type MongoRepo struct {
	signups  *mongo.Collection
	users    *mongo.Collection
	patchups *mongo.Collection
}

func NewMongoRepo(database *mongo.Database) *MongoRepo {
	return &MongoRepo{
		signups:  database.Collection(db.CollectionSignups),
		users:    database.Collection(db.CollectionUsers),
		patchups: database.Collection(db.CollectionUserPatchups),
	}
}

func (r *MongoRepo) AddSignup(ctx context.Context, signup SignupRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mongorepo.users.signup.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", signup.ID))

	_, err = r.signups.InsertOne(ctx, signup)
	if pkg.IsUniqueViolationError(err) {
		return ErrEmailTaken
	}
	return err
}

func (r *MongoRepo) SignupEmailExists(ctx context.Context, email string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mongorepo.users.signup.exists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	return exists(ctx, r.signups, bson.D{{Key: "email", Value: email}})
}

func (r *MongoRepo) GetSignupByEmail(ctx context.Context, email string) (_ *SignupRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mongorepo.users.signup.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var s SignupRecord
	err = r.signups.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("decode signup: %w", err)
	}
	return &s, nil
}

func (r *MongoRepo) AddProfile(ctx context.Context, profile UserProfile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mongorepo.users.profile.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", profile.UserID))

	_, err = r.users.InsertOne(ctx, profile)
	if pkg.IsUniqueViolationError(err) {
		return ErrUserExists
	}
	return err
}

func (r *MongoRepo) ProfileEmailExists(ctx context.Context, email string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mongorepo.users.profile.email.exists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	return exists(ctx, r.users, bson.D{{Key: "email", Value: email}})
}

func (r *MongoRepo) ProfileExists(ctx context.Context, userID string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mongorepo.users.profile.exists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	return exists(ctx, r.users, bson.D{{Key: "userID", Value: userID}})
}

func (r *MongoRepo) GetProfile(ctx context.Context, userID string) (_ *UserProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mongorepo.users.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	var p UserProfile
	err = r.users.FindOne(ctx, bson.D{{Key: "userID", Value: userID}}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &p, nil
}

// AddPatch checks the profile first, there are no foreign keys in the document store.
func (r *MongoRepo) AddPatch(ctx context.Context, patch ProfilePatch) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mongorepo.users.patchup.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", patch.UserID))

	found, err := exists(ctx, r.users, bson.D{{Key: "userID", Value: patch.UserID}})
	if err != nil {
		return err
	}
	if !found {
		return ErrUserNotFound
	}

	_, err = r.patchups.InsertOne(ctx, patch)
	return err
}

func (r *MongoRepo) ListPatches(ctx context.Context, userID string) (_ []ProfilePatch, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mongorepo.users.patchup.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	cursor, err := r.patchups.Find(
		ctx,
		bson.D{{Key: "userID", Value: userID}},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}

	var patches []ProfilePatch
	if err := cursor.All(ctx, &patches); err != nil {
		return nil, fmt.Errorf("decode patchups: %w", err)
	}
	return patches, nil
}

// exists looks up a single document, projecting only its id.
func exists(ctx context.Context, collection *mongo.Collection, filter bson.D) (bool, error) {
	err := collection.FindOne(
		ctx,
		filter,
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
