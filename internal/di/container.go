package di

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/TundexSki/coursework-backend/internal/export/adapter/driver"
	"github.com/TundexSki/coursework-backend/internal/export/adapter/filesystem"
	"github.com/TundexSki/coursework-backend/internal/export/adapter/journal"
	"github.com/TundexSki/coursework-backend/internal/export/adapter/shell"
	"github.com/TundexSki/coursework-backend/internal/export/config"
	"github.com/TundexSki/coursework-backend/internal/export/domain/model"
	"github.com/TundexSki/coursework-backend/internal/export/usecase"
	"github.com/TundexSki/coursework-backend/internal/shared/logger"

	"go.mongodb.org/mongo-driver/mongo"
)

// Container wires the export components from Settings and owns every
// resource that must be released when the command ends.
type Container struct {
	mu       sync.Mutex
	settings *config.Settings
	logger   logger.Logger

	Store    *filesystem.ArtifactStore
	Reporter *usecase.Reporter
	Journal  *journal.RedisJournal

	// release functions, run in reverse order by Close
	closers []func(context.Context) error
}

// NewContainer builds the shared components. The journal is created only when
// a Redis URL is configured.
func NewContainer(settings *config.Settings, log logger.Logger, out io.Writer) (*Container, error) {
	if log == nil {
		log = logger.NewNop()
	}
	c := &Container{
		settings: settings,
		logger:   log,
		Store:    filesystem.NewArtifactStore(settings.OutputPath(), log),
		Reporter: usecase.NewReporter(out),
	}

	if settings.RedisURL != "" {
		j, err := journal.NewRedisJournalFromURL(settings.RedisURL, settings.JournalStream, log)
		if err != nil {
			return nil, err
		}
		c.Journal = j
		c.addCloser(func(context.Context) error { return j.Close() })
	}
	return c, nil
}

// Settings returns the settings the container was built from
func (c *Container) Settings() *config.Settings {
	return c.settings
}

// RecordSource returns the named record source: "mongosh" runs the query
// shell, "driver" reads through the native driver.
func (c *Container) RecordSource(name string) (usecase.RecordSource, error) {
	switch name {
	case "", shell.SourceName:
		return shell.NewSource(c.settings.ShellBinary, c.settings.Timeout, shell.NewExecRunner(), c.logger), nil
	case driver.SourceName:
		src := driver.NewSource(c.settings.Timeout, c.logger)
		c.addCloser(src.Close)
		return src, nil
	default:
		return nil, fmt.Errorf("unknown record source %q (want %s or %s)", name, shell.SourceName, driver.SourceName)
	}
}

// LiveStrategy wires the collection exporter and the document rewriter over
// the named record source.
func (c *Container) LiveStrategy(sourceName string) (usecase.Strategy, error) {
	source, err := c.RecordSource(sourceName)
	if err != nil {
		return nil, err
	}
	exporter := usecase.NewCollectionExporter(source, c.Store, c.Reporter, c.logger)
	rewriter := usecase.NewCollectionDocumentRewriter(c.settings.PostmanSourcePath(), c.settings.PostmanName,
		c.Store, c.Reporter, c.logger)
	return usecase.NewLiveStrategy(c.settings.EnvFilePath(), config.LoadBackendConfig,
		exporter, rewriter, model.ExportedCollections, c.logger), nil
}

// FallbackStrategy wires the fallback copier over the default sources
func (c *Container) FallbackStrategy() usecase.Strategy {
	sources := usecase.DefaultFallbackSources(c.settings.BackendPath(), c.settings.PostmanSourcePath(), c.settings.PostmanName)
	return usecase.NewFallbackStrategy(usecase.NewFallbackCopier(sources, c.Store, c.Reporter, c.logger))
}

// Orchestrator returns a run orchestrator, journaled when a journal exists
func (c *Container) Orchestrator() *usecase.Orchestrator {
	var opts []usecase.OrchestratorOption
	if c.Journal != nil {
		opts = append(opts, usecase.WithJournal(c.Journal))
	}
	return usecase.NewOrchestrator(c.Store, c.Reporter, c.logger, opts...)
}

// LessonSeeder connects to the database named by the backend configuration
// and returns a seeder for its lessons collection.
func (c *Container) LessonSeeder(ctx context.Context) (*driver.LessonSeeder, *config.BackendConfig, error) {
	backend, err := config.LoadBackendConfig(c.settings.EnvFilePath())
	if err != nil {
		return nil, nil, err
	}

	client, err := driver.Connect(ctx, backend.MongoDBURI, c.settings.Timeout)
	if err != nil {
		return nil, nil, err
	}
	c.addCloser(disconnect(client))

	return driver.NewLessonSeeder(client.Database(backend.DBName), c.logger), backend, nil
}

// Close releases every resource in reverse order of acquisition
func (c *Container) Close(ctx context.Context) error {
	c.mu.Lock()
	closers := c.closers
	c.closers = nil
	c.mu.Unlock()

	var errs []error
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("cleanup errors: %v", errs)
	}
	return nil
}

func (c *Container) addCloser(fn func(context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closers = append(c.closers, fn)
}

func disconnect(client *mongo.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		return client.Disconnect(ctx)
	}
}
