package shell

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/TundexSki/coursework-backend/internal/export/domain/model"
	apperrors "github.com/TundexSki/coursework-backend/internal/shared/errors"
	"github.com/TundexSki/coursework-backend/internal/shared/logger"
)

// SourceName identifies the shell-scraping record source
const SourceName = "mongosh"

// Source reads collections by running the MongoDB query shell and scraping the
// documents it prints.
type Source struct {
	binary  string
	timeout time.Duration
	runner  CommandRunner
	logger  logger.Logger
}

// NewSource creates a shell source. A nil runner uses os/exec.
func NewSource(binary string, timeout time.Duration, runner CommandRunner, log logger.Logger) *Source {
	if runner == nil {
		runner = NewExecRunner()
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Source{
		binary:  binary,
		timeout: timeout,
		runner:  runner,
		logger:  log.WithComponent("shell-source"),
	}
}

// Name returns the source identifier
func (s *Source) Name() string {
	return SourceName
}

// BuildQuery returns the expression that prints every document of collection
func BuildQuery(database, collection string) string {
	return fmt.Sprintf("db.getSiblingDB('%s').%s.find().forEach(printjson);", database, collection)
}

// Fetch runs the shell once for q.Collection, bounded by the configured timeout
func (s *Source) Fetch(ctx context.Context, q model.CollectionQuery) ([]model.Record, error) {
	path, err := s.runner.LookPath(s.binary)
	if err != nil {
		return nil, apperrors.NewToolNotFoundError(s.binary).WithCause(err).WithComponent("shell")
	}

	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	log := s.logger.WithContext(ctx)
	log.Debugf("Running %s for %s.%s", path, q.Database, q.Collection)

	started := time.Now()
	stdout, stderr, err := s.runner.Run(runCtx, path, q.URI, "--eval", BuildQuery(q.Database, q.Collection))
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return nil, apperrors.NewToolExecutionError(q.Collection, string(stderr)).
			WithCause(apperrors.ErrToolTimeout).
			WithDetail("timeout", s.timeout.String()).
			WithComponent("shell")
	}
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, apperrors.NewToolNotFoundError(s.binary).WithCause(err).WithComponent("shell")
		}
		appErr := apperrors.NewToolExecutionError(q.Collection, string(stderr)).WithCause(err).WithComponent("shell")
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			appErr.WithDetail("exit_code", exitErr.ExitCode())
		}
		return nil, appErr
	}

	log.WithFields(map[string]interface{}{
		"stdout_bytes": len(stdout),
		"duration":     time.Since(started).String(),
	}).Debug("Query shell finished")

	return ParseOutput(q.Collection, stdout)
}
