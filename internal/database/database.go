// Package database handles the MongoDB client lifecycle.
package database

import (
	"context"
	"fmt"
	"time"

	"chronicle/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	connectTimeout = 10 * time.Second

	// PostsCollection is the single logical collection this service owns.
	PostsCollection = "posts"
)

// Connect establishes a MongoDB client from the configured URI and verifies
// the connection with a ping. The returned client is safe for concurrent use
// and should be disconnected on shutdown.
func Connect(cfg *config.Config) (*mongo.Client, error) {
	serverAPIOptions := options.ServerAPI(options.ServerAPIVersion1)
	clientOptions := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(serverAPIOptions)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		// Best-effort teardown of the partially established client.
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, nil
}

// Posts returns the posts collection handle for the configured database.
func Posts(client *mongo.Client, cfg *config.Config) *mongo.Collection {
	return client.Database(cfg.MongoDatabase).Collection(PostsCollection)
}

// Disconnect closes the client, bounded by the given context.
func Disconnect(ctx context.Context, client *mongo.Client) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
