package filesystem

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/TundexSki/coursework-backend/internal/export/domain/model"
	apperrors "github.com/TundexSki/coursework-backend/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *ArtifactStore {
	t.Helper()
	store := NewArtifactStore(filepath.Join(t.TempDir(), "auto-exports"), nil)
	require.NoError(t, store.EnsureDir())
	return store
}

func TestEnsureDir_Idempotent(t *testing.T) {
	store := NewArtifactStore(filepath.Join(t.TempDir(), "a", "b"), nil)
	require.NoError(t, store.EnsureDir())
	require.NoError(t, store.EnsureDir())

	info, err := os.Stat(store.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWriteJSON_IndentedNoHTMLEscape(t *testing.T) {
	store := newTestStore(t)

	records := []model.Record{{"a": json.Number("1"), "html": "<b>&</b>"}}
	artifact, err := store.WriteJSON(model.ArtifactKindCollection, "lessons-20240101-000000.json", records)
	require.NoError(t, err)

	data, err := os.ReadFile(artifact.Path)
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"a\": 1,\n    \"html\": \"<b>&</b>\"\n  }\n]\n", string(data))
	assert.Equal(t, int64(len(data)), artifact.Size)
	assert.Equal(t, model.ArtifactKindCollection, artifact.Kind)
	assert.Equal(t, "lessons-20240101-000000.json", artifact.Name)
}

func TestWriteJSON_EmptySlice(t *testing.T) {
	store := newTestStore(t)

	artifact, err := store.WriteJSON(model.ArtifactKindCollection, "orders.json", []model.Record{})
	require.NoError(t, err)

	data, err := os.ReadFile(artifact.Path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestWriteJSON_NeverOverwrites(t *testing.T) {
	store := newTestStore(t)

	_, err := store.WriteJSON(model.ArtifactKindCollection, "x.json", []int{1})
	require.NoError(t, err)

	_, err = store.WriteJSON(model.ArtifactKindCollection, "x.json", []int{2})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeArtifactExists))

	data, err := os.ReadFile(filepath.Join(store.Dir(), "x.json"))
	require.NoError(t, err)
	assert.Equal(t, "[\n  1\n]\n", string(data))
}

func TestWriteJSON_EncodeFailureLeavesNoFile(t *testing.T) {
	store := newTestStore(t)

	_, err := store.WriteJSON(model.ArtifactKindCollection, "bad.json", map[string]interface{}{"ch": make(chan int)})
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(store.Dir(), "bad.json"))
}

func TestCopy_ByteForByte(t *testing.T) {
	store := newTestStore(t)
	src := filepath.Join(t.TempDir(), "lessons-live-export.json")
	content := []byte("[{\"subject\":\"Algebra II\"}]  \n\t")
	require.NoError(t, os.WriteFile(src, content, 0o600))

	artifact, err := store.Copy(model.ArtifactKindCollection, src, "lessons-20240101-000000.json")
	require.NoError(t, err)

	data, err := os.ReadFile(artifact.Path)
	require.NoError(t, err)
	assert.Equal(t, content, data)
	assert.Equal(t, int64(len(content)), artifact.Size)
}

func TestCopy_MissingSource(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Copy(model.ArtifactKindCollection, filepath.Join(t.TempDir(), "missing.json"), "out.json")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeStorage))
	assert.NoFileExists(t, filepath.Join(store.Dir(), "out.json"))
}

func TestReadJSON_KeepsNumberLiterals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"price": 38.50, "big": 12345678901234567890}`), 0o600))

	var doc map[string]interface{}
	require.NoError(t, ReadJSON(path, &doc))
	assert.Equal(t, json.Number("38.50"), doc["price"])
	assert.Equal(t, json.Number("12345678901234567890"), doc["big"])
}

func TestIsRegularFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	assert.True(t, IsRegularFile(path))
	assert.False(t, IsRegularFile(dir))
	assert.False(t, IsRegularFile(filepath.Join(dir, "missing")))
}
