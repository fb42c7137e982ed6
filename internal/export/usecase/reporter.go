package usecase

import (
	"fmt"
	"io"

	"github.com/TundexSki/coursework-backend/internal/export/domain/model"
)

// Reporter prints the operator-facing progress lines of a run
type Reporter struct {
	out io.Writer
}

// NewReporter creates a reporter writing to out. A nil writer discards output.
func NewReporter(out io.Writer) *Reporter {
	if out == nil {
		out = io.Discard
	}
	return &Reporter{out: out}
}

// Started prints the banner of a run
func (r *Reporter) Started(mode model.Mode) {
	if mode == model.ModeFallback {
		r.printf("🚀 Starting fallback export (copies existing files)...\n")
		return
	}
	r.printf("🚀 Starting automated export...\n")
}

// Exported reports one collection artifact
func (r *Reporter) Exported(collection string, artifact model.Artifact, count int) {
	r.printf("✅ Exported %s to %s (%d records, %d KB)\n", collection, artifact.Name, count, artifact.SizeKB())
}

// ExportedCollectionDocument reports the rewritten request collection
func (r *Reporter) ExportedCollectionDocument(artifact model.Artifact) {
	r.printf("✅ Exported Postman collection to %s\n", artifact.Name)
}

// Copied reports one fallback copy
func (r *Reporter) Copied(label string, artifact model.Artifact) {
	r.printf("✅ Copied %s to %s (%d KB)\n", label, artifact.Name, artifact.SizeKB())
}

// Skipped warns about a missing fallback source
func (r *Reporter) Skipped(name string) {
	r.printf("⚠️  %s not found; skipping.\n", name)
}

// Completed prints the summary listing every artifact of the run
func (r *Reporter) Completed(mode model.Mode, dir string, artifacts []model.Artifact) {
	if mode == model.ModeFallback {
		r.printf("\n🎉 Fallback export complete!\n")
	} else {
		r.printf("\n🎉 Export complete!\n")
	}
	r.printf("📂 Files saved in: %s\n", dir)
	for _, a := range artifacts {
		r.printf(" - %s (%d KB)\n", a.Name, a.SizeKB())
	}
}

func (r *Reporter) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format, args...)
}
