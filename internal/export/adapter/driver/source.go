package driver

import (
	"context"
	"time"

	"github.com/TundexSki/coursework-backend/internal/export/domain/model"
	apperrors "github.com/TundexSki/coursework-backend/internal/shared/errors"
	"github.com/TundexSki/coursework-backend/internal/shared/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SourceName identifies the native driver record source
const SourceName = "driver"

// Source reads collections with the official MongoDB driver. It connects on
// first use with the URI of the first query and reuses that client afterwards.
type Source struct {
	client  *mongo.Client
	owned   bool
	timeout time.Duration
	logger  logger.Logger
}

// NewSource creates a source that connects lazily
func NewSource(timeout time.Duration, log logger.Logger) *Source {
	return NewSourceWithClient(nil, timeout, log)
}

// NewSourceWithClient creates a source over an existing client. The caller
// keeps ownership of client.
func NewSourceWithClient(client *mongo.Client, timeout time.Duration, log logger.Logger) *Source {
	if log == nil {
		log = logger.NewNop()
	}
	return &Source{
		client:  client,
		timeout: timeout,
		logger:  log.WithComponent("driver-source"),
	}
}

// Name returns the source identifier
func (s *Source) Name() string {
	return SourceName
}

// Fetch returns every document of q.Collection in cursor order
func (s *Source) Fetch(ctx context.Context, q model.CollectionQuery) ([]model.Record, error) {
	if s.client == nil {
		client, err := Connect(ctx, q.URI, s.timeout)
		if err != nil {
			return nil, err
		}
		s.client = client
		s.owned = true
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cursor, err := s.client.Database(q.Database).Collection(q.Collection).Find(ctx, bson.D{})
	if err != nil {
		return nil, s.queryError(q, err)
	}
	defer cursor.Close(ctx)

	records := make([]model.Record, 0)
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, s.queryError(q, err)
		}
		records = append(records, CoerceDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, s.queryError(q, err)
	}

	s.logger.WithContext(ctx).Debugf("Read %d documents from %s.%s", len(records), q.Database, q.Collection)
	return records, nil
}

// Close disconnects a client the source opened itself
func (s *Source) Close(ctx context.Context) error {
	if s.client == nil || !s.owned {
		return nil
	}
	err := s.client.Disconnect(ctx)
	s.client = nil
	return err
}

func (s *Source) queryError(q model.CollectionQuery, err error) error {
	return apperrors.NewToolExecutionError(q.Collection, "").
		WithCause(err).
		WithDetail("source", SourceName).
		WithComponent("driver")
}
