package journal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/TundexSki/coursework-backend/internal/export/domain/model"
	apperrors "github.com/TundexSki/coursework-backend/internal/shared/errors"
	"github.com/TundexSki/coursework-backend/internal/shared/logger"

	"github.com/redis/go-redis/v9"
)

const writeTimeout = 5 * time.Second

// RedisJournal appends one entry per completed run to a Redis stream, so
// consumers can tell live exports from fallback copies.
type RedisJournal struct {
	client *redis.Client
	stream string
	logger logger.Logger
}

// NewRedisJournal creates a journal writing to stream
func NewRedisJournal(client *redis.Client, stream string, log logger.Logger) *RedisJournal {
	if log == nil {
		log = logger.NewNop()
	}
	return &RedisJournal{
		client: client,
		stream: stream,
		logger: log.WithComponent("journal"),
	}
}

// NewRedisJournalFromURL parses a redis:// URL and creates a journal over a new client
func NewRedisJournalFromURL(url, stream string, log logger.Logger) (*RedisJournal, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, apperrors.NewDatabaseError("invalid journal Redis URL").WithCause(err).WithComponent("journal")
	}
	opts.DialTimeout = writeTimeout
	opts.ReadTimeout = writeTimeout
	opts.WriteTimeout = writeTimeout
	return NewRedisJournal(redis.NewClient(opts), stream, log), nil
}

// Record stores the run and its artifacts in the stream and returns the entry ID
func (j *RedisJournal) Record(ctx context.Context, run *model.Run, artifacts []model.Artifact) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	artifactsJSON, err := json.Marshal(artifacts)
	if err != nil {
		return "", apperrors.NewDatabaseError("failed to encode artifacts").WithCause(err).WithComponent("journal")
	}

	id, err := j.client.XAdd(ctx, &redis.XAddArgs{
		Stream: j.stream,
		Values: map[string]interface{}{
			"runId":     run.ID,
			"timestamp": run.Timestamp.String(),
			"mode":      string(run.Mode),
			"startedAt": run.StartedAt.UnixNano(),
			"count":     len(artifacts),
			"artifacts": artifactsJSON,
		},
	}).Result()
	if err != nil {
		return "", apperrors.NewDatabaseError("failed to append run to journal").WithCause(err).WithComponent("journal")
	}

	j.logger.WithContext(ctx).Debugf("Recorded run in stream %s as %s", j.stream, id)
	return id, nil
}

// Close closes the underlying client
func (j *RedisJournal) Close() error {
	return j.client.Close()
}
