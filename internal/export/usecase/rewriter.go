package usecase

import (
	"context"
	"strings"

	"github.com/TundexSki/coursework-backend/internal/export/domain/model"
	apperrors "github.com/TundexSki/coursework-backend/internal/shared/errors"
	"github.com/TundexSki/coursework-backend/internal/shared/logger"
)

// LocalBaseURL is the development address replaced in request URLs
const LocalBaseURL = "http://localhost:3000"

// CollectionDocumentRewriter produces a deployment-ready copy of the API
// request collection with every local request URL pointed at the backend.
type CollectionDocumentRewriter struct {
	sourcePath string
	outputName string
	store      ArtifactStore
	reporter   *Reporter
	logger     logger.Logger
}

// NewCollectionDocumentRewriter creates a rewriter reading sourcePath and
// writing "<outputName>-<ts>.postman_collection.json".
func NewCollectionDocumentRewriter(sourcePath, outputName string, store ArtifactStore, reporter *Reporter, log logger.Logger) *CollectionDocumentRewriter {
	if log == nil {
		log = logger.NewNop()
	}
	if reporter == nil {
		reporter = NewReporter(nil)
	}
	return &CollectionDocumentRewriter{
		sourcePath: sourcePath,
		outputName: outputName,
		store:      store,
		reporter:   reporter,
		logger:     log.WithComponent("collection-rewriter"),
	}
}

// Rewrite reads the source document, rewrites its request URLs to baseURL
// and writes the result. The source document is never modified.
func (r *CollectionDocumentRewriter) Rewrite(ctx context.Context, run *model.Run, baseURL string) (model.Artifact, error) {
	log := r.logger.WithContext(ctx)

	if !r.store.Exists(r.sourcePath) {
		return model.Artifact{}, apperrors.NewMissingSourceDocumentError(r.sourcePath)
	}

	var doc interface{}
	if err := r.store.ReadJSON(r.sourcePath, &doc); err != nil {
		return model.Artifact{}, apperrors.NewStorageError("failed to read Postman collection " + r.sourcePath).WithCause(err)
	}
	obj, ok := doc.(map[string]interface{})
	if !ok {
		return model.Artifact{}, apperrors.NewStorageError("Postman collection " + r.sourcePath + " is not a JSON object")
	}

	rewritten := RewriteRequestURLs(obj, baseURL)

	artifact, err := r.store.WriteJSON(model.ArtifactKindPostman, model.PostmanArtifactName(r.outputName, run.Timestamp), obj)
	if err != nil {
		return model.Artifact{}, err
	}

	log.WithFields(map[string]interface{}{
		"artifact":  artifact.Name,
		"rewritten": rewritten,
		"base_url":  baseURL,
	}).Info("Postman collection rewritten")
	r.reporter.ExportedCollectionDocument(artifact)
	return artifact, nil
}

// RewriteRequestURLs rewrites, in place, the top-level items of doc whose
// request.url.raw contains LocalBaseURL: every occurrence is replaced by
// baseURL and request.url.host becomes the host segments of baseURL. Items of
// any other shape are left untouched. It returns the number of items changed.
func RewriteRequestURLs(doc map[string]interface{}, baseURL string) int {
	items, ok := doc["item"].([]interface{})
	if !ok {
		return 0
	}

	host := HostSegments(baseURL)
	count := 0
	for _, it := range items {
		item, ok := it.(map[string]interface{})
		if !ok {
			continue
		}
		request, ok := item["request"].(map[string]interface{})
		if !ok {
			continue
		}
		url, ok := request["url"].(map[string]interface{})
		if !ok {
			continue
		}
		raw, ok := url["raw"].(string)
		if !ok || !strings.Contains(raw, LocalBaseURL) {
			continue
		}

		url["raw"] = strings.ReplaceAll(raw, LocalBaseURL, baseURL)
		segments := make([]interface{}, len(host))
		for i, s := range host {
			segments[i] = s
		}
		url["host"] = segments
		count++
	}
	return count
}

// HostSegments strips the scheme and path of baseURL and splits the host on
// dots: "https://api.example.com/v1" gives ["api", "example", "com"].
func HostSegments(baseURL string) []string {
	host := strings.TrimPrefix(baseURL, "https://")
	host = strings.TrimPrefix(host, "http://")
	host, _, _ = strings.Cut(host, "/")
	return strings.Split(host, ".")
}
