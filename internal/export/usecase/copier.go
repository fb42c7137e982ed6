package usecase

import (
	"context"
	"path/filepath"

	"github.com/TundexSki/coursework-backend/internal/export/domain/model"
	apperrors "github.com/TundexSki/coursework-backend/internal/shared/errors"
	"github.com/TundexSki/coursework-backend/internal/shared/logger"
)

// Fallback source file names inside the backend directory
const (
	LessonsLiveExport = "lessons-live-export.json"
	OrdersLiveExport  = "orders-live-export.json"
)

// FallbackSource is one pre-existing file copied by a fallback run
type FallbackSource struct {
	Label string
	Path  string
	Kind  model.ArtifactKind
	// Base is the artifact name before the run timestamp
	Base string
}

// TargetName returns the artifact name of the copy for run timestamp ts
func (s FallbackSource) TargetName(ts model.RunTimestamp) string {
	if s.Kind == model.ArtifactKindPostman {
		return model.PostmanArtifactName(s.Base, ts)
	}
	return model.CollectionArtifactName(s.Base, ts)
}

// DefaultFallbackSources lists the lessons export, the orders export and the
// request collection in copy order.
func DefaultFallbackSources(backendDir, postmanSource, postmanName string) []FallbackSource {
	return []FallbackSource{
		{
			Label: model.CollectionLessons,
			Path:  filepath.Join(backendDir, LessonsLiveExport),
			Kind:  model.ArtifactKindCollection,
			Base:  model.CollectionLessons,
		},
		{
			Label: model.CollectionOrders,
			Path:  filepath.Join(backendDir, OrdersLiveExport),
			Kind:  model.ArtifactKindCollection,
			Base:  model.CollectionOrders,
		},
		{
			Label: "Postman collection",
			Path:  postmanSource,
			Kind:  model.ArtifactKindPostman,
			Base:  postmanName,
		},
	}
}

// FallbackCopier copies pre-existing export files under new timestamped
// names. A missing source is reported and skipped.
type FallbackCopier struct {
	sources  []FallbackSource
	store    ArtifactStore
	reporter *Reporter
	logger   logger.Logger
}

// NewFallbackCopier creates a copier over sources
func NewFallbackCopier(sources []FallbackSource, store ArtifactStore, reporter *Reporter, log logger.Logger) *FallbackCopier {
	if log == nil {
		log = logger.NewNop()
	}
	if reporter == nil {
		reporter = NewReporter(nil)
	}
	return &FallbackCopier{
		sources:  sources,
		store:    store,
		reporter: reporter,
		logger:   log.WithComponent("fallback-copier"),
	}
}

// Copy copies every present source and returns the artifacts in source order
func (c *FallbackCopier) Copy(ctx context.Context, run *model.Run) ([]model.Artifact, error) {
	log := c.logger.WithContext(ctx)
	artifacts := make([]model.Artifact, 0, len(c.sources))

	for _, src := range c.sources {
		artifact, err := c.copyOne(src, run.Timestamp)
		if err != nil {
			if apperrors.IsFatal(err) {
				return artifacts, err
			}
			log.WithFields(map[string]interface{}{"path": src.Path}).Warn(err.Error())
			c.reporter.Skipped(filepath.Base(src.Path))
			continue
		}
		log.WithFields(map[string]interface{}{
			"source":   src.Path,
			"artifact": artifact.Name,
		}).Info("Fallback artifact copied")
		c.reporter.Copied(src.Label, artifact)
		artifacts = append(artifacts, artifact)
	}
	return artifacts, nil
}

func (c *FallbackCopier) copyOne(src FallbackSource, ts model.RunTimestamp) (model.Artifact, error) {
	if !c.store.Exists(src.Path) {
		return model.Artifact{}, apperrors.NewMissingFallbackArtifactError(filepath.Base(src.Path))
	}
	return c.store.Copy(src.Kind, src.Path, src.TargetName(ts))
}
