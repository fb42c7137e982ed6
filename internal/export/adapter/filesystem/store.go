package filesystem

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/TundexSki/coursework-backend/internal/export/domain/model"
	apperrors "github.com/TundexSki/coursework-backend/internal/shared/errors"
	"github.com/TundexSki/coursework-backend/internal/shared/logger"

	"github.com/dustin/go-humanize"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
	indent   = "  "
)

// ArtifactStore writes run artifacts into a single output directory. Files are
// created exclusively: an existing name is never overwritten.
type ArtifactStore struct {
	dir    string
	logger logger.Logger
}

// NewArtifactStore creates a store rooted at dir
func NewArtifactStore(dir string, log logger.Logger) *ArtifactStore {
	if log == nil {
		log = logger.NewNop()
	}
	return &ArtifactStore{
		dir:    dir,
		logger: log.WithComponent("artifact-store"),
	}
}

// Dir returns the output directory
func (s *ArtifactStore) Dir() string {
	return s.dir
}

// EnsureDir creates the output directory if it does not exist
func (s *ArtifactStore) EnsureDir() error {
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return apperrors.NewStorageError("failed to create output directory " + s.dir).WithCause(err)
	}
	return nil
}

// WriteJSON encodes v as two-space indented JSON into a new file called name.
// Encoding happens before the file is created, so a value that cannot be
// encoded leaves nothing behind.
func (s *ArtifactStore) WriteJSON(kind model.ArtifactKind, name string, v interface{}) (model.Artifact, error) {
	data, err := EncodeJSON(v)
	if err != nil {
		return model.Artifact{}, apperrors.NewStorageError("failed to encode " + name).WithCause(err)
	}
	return s.write(kind, name, bytes.NewReader(data))
}

// Copy copies the file at src byte for byte into a new file called name
func (s *ArtifactStore) Copy(kind model.ArtifactKind, src, name string) (model.Artifact, error) {
	in, err := os.Open(src)
	if err != nil {
		return model.Artifact{}, apperrors.NewStorageError("failed to open " + src).WithCause(err)
	}
	defer in.Close()

	return s.write(kind, name, in)
}

func (s *ArtifactStore) write(kind model.ArtifactKind, name string, r io.Reader) (model.Artifact, error) {
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return model.Artifact{}, apperrors.NewArtifactExistsError(path)
		}
		return model.Artifact{}, apperrors.NewStorageError("failed to create " + path).WithCause(err)
	}

	size, err := io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return model.Artifact{}, apperrors.NewStorageError("failed to write " + path).WithCause(err)
	}

	s.logger.WithFields(map[string]interface{}{
		"artifact": name,
		"size":     humanize.Bytes(uint64(size)),
	}).Debug("Artifact written")

	return model.Artifact{Kind: kind, Name: name, Path: path, Size: size}, nil
}

// ReadJSON decodes the JSON file at path into v
func (s *ArtifactStore) ReadJSON(path string, v interface{}) error {
	return ReadJSON(path, v)
}

// Exists reports whether path names an existing regular file
func (s *ArtifactStore) Exists(path string) bool {
	return IsRegularFile(path)
}

// EncodeJSON renders v the way every artifact is written: two-space indent,
// no HTML escaping.
func EncodeJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadJSON decodes the file at path into v, keeping numbers as json.Number
func ReadJSON(path string, v interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()
	return dec.Decode(v)
}

// IsRegularFile reports whether path names an existing regular file
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
