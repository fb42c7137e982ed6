package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/TundexSki/coursework-backend/internal/export/domain/model"
	apperrors "github.com/TundexSki/coursework-backend/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const liveURL = "https://aneskibackend.onrender.com"

func decodeFixture(t *testing.T) map[string]interface{} {
	t.Helper()
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(postmanFixture), &doc))
	return doc
}

func requestURL(doc map[string]interface{}, i int) interface{} {
	item := doc["item"].([]interface{})[i].(map[string]interface{})
	return item["request"].(map[string]interface{})["url"]
}

func TestRewriteRequestURLs(t *testing.T) {
	doc := decodeFixture(t)

	n := RewriteRequestURLs(doc, liveURL)
	assert.Equal(t, 1, n)

	url := requestURL(doc, 0).(map[string]interface{})
	assert.Equal(t, liveURL+"/lessons", url["raw"])
	assert.Equal(t, []interface{}{"aneskibackend", "onrender", "com"}, url["host"])
	assert.Equal(t, "3000", url["port"], "other url fields are kept")

	remote := requestURL(doc, 1).(map[string]interface{})
	assert.Equal(t, "https://example.org/ping", remote["raw"])
	assert.Equal(t, []interface{}{"example", "org"}, remote["host"])

	assert.Equal(t, "http://localhost:3000/orders", requestURL(doc, 2), "string urls are not rewritten")

	folder := doc["item"].([]interface{})[3].(map[string]interface{})
	nested := folder["item"].([]interface{})[0].(map[string]interface{})
	nestedURL := nested["request"].(map[string]interface{})["url"].(map[string]interface{})
	assert.Equal(t, "http://localhost:3000/nested", nestedURL["raw"], "only top-level items are rewritten")
}

func TestRewriteRequestURLs_ReplacesEveryOccurrence(t *testing.T) {
	doc := map[string]interface{}{
		"item": []interface{}{
			map[string]interface{}{"request": map[string]interface{}{"url": map[string]interface{}{
				"raw": "http://localhost:3000/a?next=http://localhost:3000/b",
			}}},
		},
	}

	require.Equal(t, 1, RewriteRequestURLs(doc, "http://api.test"))
	assert.Equal(t, "http://api.test/a?next=http://api.test/b", requestURL(doc, 0).(map[string]interface{})["raw"])
}

func TestRewriteRequestURLs_TolerantOfShape(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]interface{}
	}{
		{"no item", map[string]interface{}{"info": "x"}},
		{"item not a list", map[string]interface{}{"item": "x"}},
		{"item entry not an object", map[string]interface{}{"item": []interface{}{"x", 1.0}}},
		{"no request", map[string]interface{}{"item": []interface{}{map[string]interface{}{"name": "a"}}}},
		{"raw not a string", map[string]interface{}{"item": []interface{}{map[string]interface{}{
			"request": map[string]interface{}{"url": map[string]interface{}{"raw": 42.0}},
		}}}},
		{"other localhost port", map[string]interface{}{"item": []interface{}{map[string]interface{}{
			"request": map[string]interface{}{"url": map[string]interface{}{"raw": "http://localhost:8080/x"}},
		}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0, RewriteRequestURLs(tt.doc, liveURL))
		})
	}
}

func TestHostSegments(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"https://aneskibackend.onrender.com", []string{"aneskibackend", "onrender", "com"}},
		{"http://api.example.com/v1/", []string{"api", "example", "com"}},
		{"localhost", []string{"localhost"}},
		{"https://a.b:8443/x", []string{"a", "b:8443"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, HostSegments(tt.in))
		})
	}
}

func TestCollectionDocumentRewriter_Rewrite(t *testing.T) {
	p := newProject(t)
	require.NoError(t, p.store.EnsureDir())
	src := p.writeBackendFile(t, "Test-API-Live.postman_collection.json", postmanFixture)

	var out bytes.Buffer
	rewriter := NewCollectionDocumentRewriter(src, "AfterSchool-API", p.store, NewReporter(&out), nil)
	run := model.NewRun(model.ModeLive, testStart)

	artifact, err := rewriter.Rewrite(context.Background(), run, liveURL)
	require.NoError(t, err)

	assert.Equal(t, "AfterSchool-API-"+testTS+".postman_collection.json", artifact.Name)
	assert.Equal(t, model.ArtifactKindPostman, artifact.Kind)
	assert.Equal(t, "✅ Exported Postman collection to "+artifact.Name+"\n", out.String())

	written := p.readOutput(t, artifact.Name)
	assert.Contains(t, written, `"raw": "https://aneskibackend.onrender.com/lessons"`)
	assert.Contains(t, written, `"raw": "https://example.org/ping"`)

	original, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, postmanFixture, string(original), "source document is never modified")
}

func TestCollectionDocumentRewriter_MissingSource(t *testing.T) {
	p := newProject(t)
	require.NoError(t, p.store.EnsureDir())

	rewriter := NewCollectionDocumentRewriter(p.backend+"/absent.json", "AfterSchool-API", p.store, nil, nil)
	_, err := rewriter.Rewrite(context.Background(), model.NewRun(model.ModeLive, testStart), liveURL)

	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeMissingSourceDocument))
	assert.Empty(t, p.outputNames(t))
}

func TestCollectionDocumentRewriter_InvalidDocument(t *testing.T) {
	p := newProject(t)
	require.NoError(t, p.store.EnsureDir())

	for name, content := range map[string]string{"array.json": "[1, 2]", "broken.json": "{\"item\": ["} {
		src := p.writeBackendFile(t, name, content)
		rewriter := NewCollectionDocumentRewriter(src, "AfterSchool-API", p.store, nil, nil)
		_, err := rewriter.Rewrite(context.Background(), model.NewRun(model.ModeLive, testStart), liveURL)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeStorage), name)
	}
	assert.Empty(t, p.outputNames(t))
}
