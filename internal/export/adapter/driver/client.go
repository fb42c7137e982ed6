package driver

import (
	"context"
	"time"

	apperrors "github.com/TundexSki/coursework-backend/internal/shared/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect opens a client for uri and verifies it with a ping, both bounded by timeout
func Connect(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetAppName("coursework-export"))
	if err != nil {
		return nil, apperrors.NewDatabaseError("Failed to connect to MongoDB").WithCause(err).WithComponent("driver")
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, apperrors.NewDatabaseError("Failed to ping MongoDB").WithCause(err).WithComponent("driver")
	}

	return client, nil
}
