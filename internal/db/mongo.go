package db

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// mongo collection names of the fitX document store
const (
	CollectionSignups      = "signups"
	CollectionUsers        = "users"
	CollectionUserPatchups = "userpatchups"
	CollectionUserReps     = "userreps"
)

func NewMongoClient(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Warnf("failed to ping mongo: %s", err)
	}

	return client, nil
}

// MongoIndexes lists, per collection, the indexes the fitx repos rely on.
// The unique ones turn duplicate inserts into duplicate key errors.
func MongoIndexes() map[string][]mongo.IndexModel {
	unique := options.Index().SetUnique(true)
	return map[string][]mongo.IndexModel{
		CollectionSignups: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		CollectionUsers: {
			{Keys: bson.D{{Key: "userID", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		CollectionUserPatchups: {
			{Keys: bson.D{{Key: "userID", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		CollectionUserReps: {
			{Keys: bson.D{{Key: "videoID", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "userID", Value: 1}, {Key: "liftType", Value: 1}, {Key: "date", Value: 1}}},
			{Keys: bson.D{{Key: "liftType", Value: 1}}},
		},
	}
}

func EnsureMongoIndexes(ctx context.Context, database *mongo.Database) error {
	for collection, indexes := range MongoIndexes() {
		names, err := database.Collection(collection).Indexes().CreateMany(ctx, indexes)
		if err != nil {
			return fmt.Errorf("create indexes on %s: %w", collection, err)
		}
		log.Debugf("mongo indexes on [%s]: %v", collection, names)
	}
	return nil
}
