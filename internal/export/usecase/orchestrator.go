package usecase

import (
	"context"
	"time"

	"github.com/TundexSki/coursework-backend/internal/export/domain/model"
	"github.com/TundexSki/coursework-backend/internal/shared/contextkeys"
	"github.com/TundexSki/coursework-backend/internal/shared/logger"
)

// RunResult is the outcome of one run
type RunResult struct {
	Run       *model.Run
	Artifacts []model.Artifact
	// JournalID is the journal entry id, empty when no journal is configured
	// or recording failed.
	JournalID string
}

// Orchestrator sequences a run: it fixes the run timestamp once, prepares the
// output directory, executes a strategy and prints the summary.
type Orchestrator struct {
	store    ArtifactStore
	reporter *Reporter
	journal  RunJournal
	clock    func() time.Time
	logger   logger.Logger
}

// OrchestratorOption configures an Orchestrator
type OrchestratorOption func(*Orchestrator)

// WithClock overrides the wall clock used to derive the run timestamp
func WithClock(clock func() time.Time) OrchestratorOption {
	return func(o *Orchestrator) {
		o.clock = clock
	}
}

// WithJournal records every successful run in journal
func WithJournal(journal RunJournal) OrchestratorOption {
	return func(o *Orchestrator) {
		o.journal = journal
	}
}

// NewOrchestrator creates an orchestrator writing through store
func NewOrchestrator(store ArtifactStore, reporter *Reporter, log logger.Logger, opts ...OrchestratorOption) *Orchestrator {
	if log == nil {
		log = logger.NewNop()
	}
	if reporter == nil {
		reporter = NewReporter(nil)
	}
	o := &Orchestrator{
		store:    store,
		reporter: reporter,
		clock:    time.Now,
		logger:   log.WithComponent("orchestrator"),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run executes strategy once. On failure the returned result still carries
// the run identity and any artifacts written before the failure; they are
// left in place.
func (o *Orchestrator) Run(ctx context.Context, strategy Strategy) (*RunResult, error) {
	run := model.NewRun(strategy.Mode(), o.clock())
	result := &RunResult{Run: run}

	ctx = context.WithValue(ctx, contextkeys.RunIDKey, run.ID)
	ctx = context.WithValue(ctx, contextkeys.RunTimestampKey, run.Timestamp.String())
	ctx = context.WithValue(ctx, contextkeys.ModeKey, string(run.Mode))
	log := o.logger.WithContext(ctx)

	if err := o.store.EnsureDir(); err != nil {
		return result, err
	}

	o.reporter.Started(run.Mode)
	log.WithFields(map[string]interface{}{"output_dir": o.store.Dir()}).Info("Run started")

	artifacts, err := strategy.Execute(ctx, run)
	result.Artifacts = artifacts
	if err != nil {
		log.WithFields(map[string]interface{}{
			"error":     err.Error(),
			"artifacts": len(artifacts),
		}).Error("Run failed")
		return result, err
	}

	o.reporter.Completed(run.Mode, o.store.Dir(), artifacts)
	log.WithFields(map[string]interface{}{"artifacts": len(artifacts)}).Info("Run completed")

	if o.journal != nil {
		id, err := o.journal.Record(ctx, run, artifacts)
		if err != nil {
			log.WithFields(map[string]interface{}{"error": err.Error()}).Warn("Failed to record run in journal")
		} else {
			result.JournalID = id
		}
	}
	return result, nil
}
