package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoDBClient wraps the driver client with the application database handle.
type MongoDBClient struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoDBClient connects to MongoDB and pings the primary before
// handing out the handle.
func NewMongoDBClient(ctx context.Context, uri, dbName string) (*MongoDBClient, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBClient{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Database returns the application database handle.
func (c *MongoDBClient) Database() *mongo.Database {
	return c.db
}

// Collection returns a named collection from the application database.
func (c *MongoDBClient) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// Disconnect closes the underlying client.
func (c *MongoDBClient) Disconnect(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
