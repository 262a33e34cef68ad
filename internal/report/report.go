// Package report renders the end-of-run summary as YAML.
package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/uuidify/pkg/uuidify"
)

// Summary is the document written by Write.
type Summary struct {
	Renamed  int                    `yaml:"renamed"`
	Declined int                    `yaml:"declined"`
	Skipped  int                    `yaml:"skipped"`
	Error    string                 `yaml:"error,omitempty"`
	Records  []uuidify.RenameRecord `yaml:"records"`
}

// Summarize counts outcomes. runErr, if set, is carried as text.
func Summarize(records []uuidify.RenameRecord, runErr error) Summary {
	s := Summary{Records: records}
	if s.Records == nil {
		s.Records = []uuidify.RenameRecord{}
	}
	for _, rec := range records {
		switch rec.Outcome {
		case uuidify.OutcomeRenamed:
			s.Renamed++
		case uuidify.OutcomeDeclined:
			s.Declined++
		case uuidify.OutcomeSkipped:
			s.Skipped++
		}
	}
	if runErr != nil {
		s.Error = runErr.Error()
	}
	return s
}

// Write encodes the summary of records to w.
func Write(w io.Writer, records []uuidify.RenameRecord, runErr error) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Summarize(records, runErr)); err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return enc.Close()
}
