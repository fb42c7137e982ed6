package usecase

import (
	"context"

	"github.com/TundexSki/coursework-backend/internal/export/config"
	"github.com/TundexSki/coursework-backend/internal/export/domain/model"
)

// RecordSource reads every document of one collection
type RecordSource interface {
	Name() string
	Fetch(ctx context.Context, q model.CollectionQuery) ([]model.Record, error)
}

// ArtifactStore persists artifacts into the run's output directory and reads
// the source documents they are derived from.
type ArtifactStore interface {
	Dir() string
	EnsureDir() error
	WriteJSON(kind model.ArtifactKind, name string, v interface{}) (model.Artifact, error)
	Copy(kind model.ArtifactKind, src, name string) (model.Artifact, error)
	ReadJSON(path string, v interface{}) error
	Exists(path string) bool
}

// RunJournal records finished runs outside the output directory
type RunJournal interface {
	Record(ctx context.Context, run *model.Run, artifacts []model.Artifact) (string, error)
}

// BackendConfigLoader reads the backend configuration file at path
type BackendConfigLoader func(path string) (*config.BackendConfig, error)

// Strategy produces the artifacts of one run
type Strategy interface {
	Mode() model.Mode
	Execute(ctx context.Context, run *model.Run) ([]model.Artifact, error)
}
