package usecase

import (
	"context"

	"github.com/TundexSki/coursework-backend/internal/export/domain/model"
	"github.com/TundexSki/coursework-backend/internal/shared/logger"
)

// LiveStrategy exports the configured collections and rewrites the request
// collection document.
type LiveStrategy struct {
	envFile     string
	loadConfig  BackendConfigLoader
	exporter    *CollectionExporter
	rewriter    *CollectionDocumentRewriter
	collections []string
	logger      logger.Logger
}

// NewLiveStrategy creates a live strategy. Collections are exported in order.
func NewLiveStrategy(
	envFile string,
	loadConfig BackendConfigLoader,
	exporter *CollectionExporter,
	rewriter *CollectionDocumentRewriter,
	collections []string,
	log logger.Logger,
) *LiveStrategy {
	if log == nil {
		log = logger.NewNop()
	}
	return &LiveStrategy{
		envFile:     envFile,
		loadConfig:  loadConfig,
		exporter:    exporter,
		rewriter:    rewriter,
		collections: collections,
		logger:      log.WithComponent("live-strategy"),
	}
}

// Mode returns ModeLive
func (s *LiveStrategy) Mode() model.Mode {
	return model.ModeLive
}

// Execute loads the backend configuration, then exports each collection and
// the rewritten request collection. The first failure stops the run; the
// artifacts already written are returned with it.
func (s *LiveStrategy) Execute(ctx context.Context, run *model.Run) ([]model.Artifact, error) {
	cfg, err := s.loadConfig(s.envFile)
	if err != nil {
		return nil, err
	}
	s.logger.WithContext(ctx).WithFields(map[string]interface{}{
		"database": cfg.DBName,
		"base_url": cfg.BackendURL,
	}).Debug("Backend configuration loaded")

	artifacts := make([]model.Artifact, 0, len(s.collections)+1)
	for _, collection := range s.collections {
		artifact, err := s.exporter.Export(ctx, run, model.CollectionQuery{
			URI:        cfg.MongoDBURI,
			Database:   cfg.DBName,
			Collection: collection,
		})
		if err != nil {
			return artifacts, err
		}
		artifacts = append(artifacts, artifact)
	}

	artifact, err := s.rewriter.Rewrite(ctx, run, cfg.BackendURL)
	if err != nil {
		return artifacts, err
	}
	return append(artifacts, artifact), nil
}

// FallbackStrategy copies pre-existing artifacts without touching the database
type FallbackStrategy struct {
	copier *FallbackCopier
}

// NewFallbackStrategy creates a fallback strategy
func NewFallbackStrategy(copier *FallbackCopier) *FallbackStrategy {
	return &FallbackStrategy{copier: copier}
}

// Mode returns ModeFallback
func (s *FallbackStrategy) Mode() model.Mode {
	return model.ModeFallback
}

// Execute copies every present fallback source
func (s *FallbackStrategy) Execute(ctx context.Context, run *model.Run) ([]model.Artifact, error) {
	return s.copier.Copy(ctx, run)
}
