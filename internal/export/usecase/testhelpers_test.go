package usecase

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/TundexSki/coursework-backend/internal/export/adapter/filesystem"
	"github.com/TundexSki/coursework-backend/internal/export/domain/model"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRecordSource is a testify mock of RecordSource
type MockRecordSource struct {
	mock.Mock
}

func (m *MockRecordSource) Name() string {
	return "mock"
}

func (m *MockRecordSource) Fetch(ctx context.Context, q model.CollectionQuery) ([]model.Record, error) {
	args := m.Called(ctx, q)
	if recs := args.Get(0); recs != nil {
		return recs.([]model.Record), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockJournal is a testify mock of RunJournal
type MockJournal struct {
	mock.Mock
}

func (m *MockJournal) Record(ctx context.Context, run *model.Run, artifacts []model.Artifact) (string, error) {
	args := m.Called(ctx, run, artifacts)
	return args.String(0), args.Error(1)
}

// stubRunner answers every shell invocation with fixed output per collection
type stubRunner struct {
	stdout map[string]string
}

func (r *stubRunner) LookPath(file string) (string, error) {
	return "/usr/bin/" + file, nil
}

func (r *stubRunner) Run(_ context.Context, _ string, args ...string) ([]byte, []byte, error) {
	script := args[len(args)-1]
	for collection, out := range r.stdout {
		if strings.Contains(script, "."+collection+".find()") {
			return []byte(out), nil, nil
		}
	}
	return nil, nil, nil
}

// project is a throwaway project tree with a backend and an output directory
type project struct {
	root    string
	backend string
	output  string
	store   *filesystem.ArtifactStore
}

func newProject(t *testing.T) *project {
	t.Helper()
	root := t.TempDir()
	p := &project{
		root:    root,
		backend: filepath.Join(root, "express-backend"),
		output:  filepath.Join(root, "auto-exports"),
	}
	require.NoError(t, os.MkdirAll(p.backend, 0o755))
	p.store = filesystem.NewArtifactStore(p.output, nil)
	return p
}

func (p *project) writeBackendFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(p.backend, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (p *project) readOutput(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(p.output, name))
	require.NoError(t, err)
	return string(data)
}

func (p *project) outputNames(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(p.output)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var testStart = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

const testTS = "20260314-092653"

const postmanFixture = `{
  "info": {"name": "AfterSchool API"},
  "item": [
    {"name": "Get lessons", "request": {"method": "GET", "url": {"raw": "http://localhost:3000/lessons", "host": ["localhost"], "port": "3000"}}},
    {"name": "Remote", "request": {"method": "GET", "url": {"raw": "https://example.org/ping", "host": ["example", "org"]}}},
    {"name": "String URL", "request": {"method": "GET", "url": "http://localhost:3000/orders"}},
    {"name": "Folder", "item": [{"request": {"url": {"raw": "http://localhost:3000/nested"}}}]}
  ]
}`
