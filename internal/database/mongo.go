package database

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	DatabaseName   = "mimi_tiktok"
	CollectionName = "reels"

	connectTimeout         = 30 * time.Second
	socketTimeout          = 45 * time.Second
	serverSelectionTimeout = 30 * time.Second
)

// Connect establishes a pooled MongoDB client and verifies it with a
// ping. A nil client with a non-nil error means the caller should run
// in disconnected mode; this function never panics or exits.
func Connect(uri string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(50).
		SetMinPoolSize(10).
		SetConnectTimeout(connectTimeout).
		SetSocketTimeout(socketTimeout).
		SetServerSelectionTimeout(serverSelectionTimeout).
		SetRetryWrites(true).
		SetAppName("reelstream-api")

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		// Free the pool before reporting the probe failure.
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logrus.WithField("database", DatabaseName).Info("connected to MongoDB")
	return client, nil
}
