package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/TundexSki/coursework-backend/internal/export/domain/model"
	apperrors "github.com/TundexSki/coursework-backend/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var lessonsQuery = model.CollectionQuery{URI: "mongo://h/d", Database: "test", Collection: model.CollectionLessons}

func TestCollectionExporter_Export(t *testing.T) {
	p := newProject(t)
	require.NoError(t, p.store.EnsureDir())

	source := new(MockRecordSource)
	source.On("Fetch", mock.Anything, lessonsQuery).Return([]model.Record{
		{"subject": "Math", "price": json.Number("100")},
		{"subject": "Art <3", "price": json.Number("80.5")},
	}, nil)

	var out bytes.Buffer
	exporter := NewCollectionExporter(source, p.store, NewReporter(&out), nil)
	artifact, err := exporter.Export(context.Background(), model.NewRun(model.ModeLive, testStart), lessonsQuery)
	require.NoError(t, err)

	assert.Equal(t, "lessons-"+testTS+".json", artifact.Name)
	assert.Equal(t, "✅ Exported lessons to lessons-"+testTS+".json (2 records, 0 KB)\n", out.String())

	expected := "[\n  {\n    \"price\": 100,\n    \"subject\": \"Math\"\n  },\n  {\n    \"price\": 80.5,\n    \"subject\": \"Art <3\"\n  }\n]\n"
	assert.Equal(t, expected, p.readOutput(t, artifact.Name))
	source.AssertExpectations(t)
}

func TestCollectionExporter_EmptyCollection(t *testing.T) {
	p := newProject(t)
	require.NoError(t, p.store.EnsureDir())

	source := new(MockRecordSource)
	source.On("Fetch", mock.Anything, lessonsQuery).Return(nil, nil)

	exporter := NewCollectionExporter(source, p.store, nil, nil)
	artifact, err := exporter.Export(context.Background(), model.NewRun(model.ModeLive, testStart), lessonsQuery)
	require.NoError(t, err)

	assert.Equal(t, "[]\n", p.readOutput(t, artifact.Name))
}

func TestCollectionExporter_FetchFailureWritesNothing(t *testing.T) {
	p := newProject(t)
	require.NoError(t, p.store.EnsureDir())

	source := new(MockRecordSource)
	source.On("Fetch", mock.Anything, lessonsQuery).
		Return(nil, apperrors.NewMalformedOutputLineError("lessons", 3, "{oops"))

	exporter := NewCollectionExporter(source, p.store, nil, nil)
	_, err := exporter.Export(context.Background(), model.NewRun(model.ModeLive, testStart), lessonsQuery)

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeMalformedOutputLine))
	assert.Empty(t, p.outputNames(t))
}

func TestCollectionExporter_RefusesExistingArtifact(t *testing.T) {
	p := newProject(t)
	require.NoError(t, p.store.EnsureDir())

	source := new(MockRecordSource)
	source.On("Fetch", mock.Anything, lessonsQuery).Return([]model.Record{{"a": json.Number("1")}}, nil)

	exporter := NewCollectionExporter(source, p.store, nil, nil)
	run := model.NewRun(model.ModeLive, testStart)
	_, err := exporter.Export(context.Background(), run, lessonsQuery)
	require.NoError(t, err)

	_, err = exporter.Export(context.Background(), run, lessonsQuery)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeArtifactExists))
}
