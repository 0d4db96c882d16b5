// Package mongodb holds the document-store repositories. Each repository
// owns one collection and maps between its bson documents and the domain
// structs; ids are app-generated strings stored as _id.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	teamCollection    = "teams"
	fixtureCollection = "fixtures"
	userCollection    = "users"
)

// Connect dials the cluster and pings the primary so wiring fails fast on a
// bad URI instead of on the first query.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the indexes the repositories rely on. Index builds
// are idempotent, so this runs on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for collection, models := range map[string][]mongo.IndexModel{
		teamCollection:    teamIndexes(),
		fixtureCollection: fixtureIndexes(),
		userCollection:    userIndexes(),
	} {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create %s indexes: %w", collection, err)
		}
	}
	return nil
}
