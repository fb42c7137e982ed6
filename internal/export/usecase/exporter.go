package usecase

import (
	"context"

	"github.com/TundexSki/coursework-backend/internal/export/domain/model"
	"github.com/TundexSki/coursework-backend/internal/shared/contextkeys"
	"github.com/TundexSki/coursework-backend/internal/shared/logger"
)

// CollectionExporter writes every record of one collection into a timestamped
// artifact. Records are fully read before the artifact is created.
type CollectionExporter struct {
	source   RecordSource
	store    ArtifactStore
	reporter *Reporter
	logger   logger.Logger
}

// NewCollectionExporter creates a collection exporter
func NewCollectionExporter(source RecordSource, store ArtifactStore, reporter *Reporter, log logger.Logger) *CollectionExporter {
	if log == nil {
		log = logger.NewNop()
	}
	if reporter == nil {
		reporter = NewReporter(nil)
	}
	return &CollectionExporter{
		source:   source,
		store:    store,
		reporter: reporter,
		logger:   log.WithComponent("collection-exporter"),
	}
}

// Export reads q's collection and writes it as "<collection>-<ts>.json"
func (e *CollectionExporter) Export(ctx context.Context, run *model.Run, q model.CollectionQuery) (model.Artifact, error) {
	ctx = context.WithValue(ctx, contextkeys.CollectionKey, q.Collection)
	log := e.logger.WithContext(ctx).WithFields(map[string]interface{}{"source": e.source.Name()})

	log.Debug("Fetching collection")
	records, err := e.source.Fetch(ctx, q)
	if err != nil {
		log.WithFields(map[string]interface{}{"error": err.Error()}).Error("Collection export failed")
		return model.Artifact{}, err
	}
	if records == nil {
		records = []model.Record{}
	}

	artifact, err := e.store.WriteJSON(model.ArtifactKindCollection, model.CollectionArtifactName(q.Collection, run.Timestamp), records)
	if err != nil {
		return model.Artifact{}, err
	}

	log.WithFields(map[string]interface{}{
		"artifact": artifact.Name,
		"records":  len(records),
	}).Info("Collection exported")
	e.reporter.Exported(q.Collection, artifact, len(records))
	return artifact, nil
}
