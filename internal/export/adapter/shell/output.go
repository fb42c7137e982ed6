package shell

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/TundexSki/coursework-backend/internal/export/domain/model"
	apperrors "github.com/TundexSki/coursework-backend/internal/shared/errors"
)

// documentOpener marks the lines that carry a printed document. Everything
// else the shell prints (banner, warnings, prompts) is noise.
const documentOpener = "{"

// ParseOutput extracts one record per stdout line that starts with '{', in
// output order. All retained lines are parsed before returning, and the first
// line that is not exactly one JSON object fails the whole collection.
func ParseOutput(collection string, stdout []byte) ([]model.Record, error) {
	records := make([]model.Record, 0)

	for i, raw := range bytes.Split(stdout, []byte("\n")) {
		line := strings.TrimRight(string(raw), "\r")
		if !strings.HasPrefix(line, documentOpener) {
			continue
		}

		record, err := parseLine(line)
		if err != nil {
			return nil, apperrors.NewMalformedOutputLineError(collection, i+1, line).
				WithCause(err).
				WithComponent("shell")
		}
		records = append(records, record)
	}

	return records, nil
}

func parseLine(line string) (model.Record, error) {
	dec := json.NewDecoder(strings.NewReader(line))
	dec.UseNumber()

	var record model.Record
	if err := dec.Decode(&record); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, apperrors.ErrNotAnObject
	}
	return record, nil
}
