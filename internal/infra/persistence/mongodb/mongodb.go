// Package mongodb contains the concrete implementation of the persistence layer
// using the official MongoDB driver.
package mongodb

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"hub/config"
	"hub/internal/domain/lifecycle"
)

const (
	usersCollection     = "users"
	resourcesCollection = "resources"
)

// Params holds the dependencies for the database connection, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to MongoDB, ensures indexes, and registers a shutdown hook.
// It returns the database handle the repositories operate on.
func New(params Params) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mongodb")
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "failed to ping mongodb")
	}

	db := client.Database(params.Config.Mongo.Database)

	if err := ensureIndexes(ctx, db); err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing MongoDB connection")

			return errors.Wrap(client.Disconnect(ctx), "failed to disconnect mongodb")
		},
	})

	params.Logger.Info("Connected to MongoDB", slog.String("database", params.Config.Mongo.Database))

	return db, nil
}

// ensureIndexes creates the indexes the application relies on.
// The unique index on users.email is the enforcement boundary for the
// signup check-then-insert race: concurrent signups may both pass the
// pre-check, but only one insert succeeds.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create unique email index")
	}

	_, err = db.Collection(resourcesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "categories", Value: 1}},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create categories index")
	}

	return nil
}
