package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	defaultDatabase   = "test"
	defaultCollection = "images"
)

type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// MongoDB owns a single client connection to a MongoDB deployment
type MongoDB struct {
	cfg    MongoConfig
	client *mongo.Client
}

// NewMongoDB creates a new, unconnected MongoDB handle
func NewMongoDB(cfg *MongoConfig) *MongoDB {
	c := *cfg
	if c.Database == "" {
		c.Database = defaultDatabase
	}
	if c.Collection == "" {
		c.Collection = defaultCollection
	}
	return &MongoDB{cfg: c}
}

// Connect dials the deployment and verifies it answers a ping
func (m *MongoDB) Connect(ctx context.Context) error {
	if m.client != nil {
		return fmt.Errorf("database already connected")
	}
	if m.cfg.URI == "" {
		return fmt.Errorf("mongo URI cannot be empty")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(m.cfg.URI))
	if err != nil {
		return fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("failed to ping mongo: %w", err)
	}

	m.client = client
	return nil
}

// Close disconnects the client
func (m *MongoDB) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}

	err := m.client.Disconnect(ctx)
	m.client = nil
	return err
}

// Collection returns the configured image collection, or nil when not connected
func (m *MongoDB) Collection() *mongo.Collection {
	if m.client == nil {
		return nil
	}
	return m.client.Database(m.cfg.Database).Collection(m.cfg.Collection)
}

// Config returns the effective configuration
func (m *MongoDB) Config() MongoConfig {
	return m.cfg
}
