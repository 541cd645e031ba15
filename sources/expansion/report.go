package expansion

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(value string) (Format, error) {
	switch format := Format(strings.ToLower(strings.TrimSpace(value))); format {
	case FormatText, FormatJSON, FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unknown report format %q", value)
	}
}

// Record is the serialized form of an Outcome.
type Record struct {
	Title   string   `json:"title" yaml:"title"`
	Pattern string   `json:"pattern" yaml:"pattern"`
	Indices []string `json:"indices" yaml:"indices"`
	Error   string   `json:"error,omitempty" yaml:"error,omitempty"`
}

func NewRecord(outcome Outcome) Record {
	record := Record{
		Title:   outcome.Title,
		Pattern: outcome.Pattern.String(),
		Indices: outcome.Indices,
	}
	if outcome.Err != nil {
		record.Error = outcome.Err.Error()
	} else if record.Indices == nil {
		record.Indices = []string{}
	}
	return record
}

func NewRecords(outcomes []Outcome) []Record {
	records := make([]Record, 0, len(outcomes))
	for _, outcome := range outcomes {
		records = append(records, NewRecord(outcome))
	}
	return records
}

// WriteReport renders outcomes. Text is one line per title with the title
// and its indices separated by tabs; json is one object per line; yaml is a
// single sequence document.
func WriteReport(w io.Writer, format Format, outcomes []Outcome) error {
	records := NewRecords(outcomes)

	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetEscapeHTML(false)
		for _, record := range records {
			if err := encoder.Encode(record); err != nil {
				return fmt.Errorf("failed to encode json record: %w", err)
			}
		}
		return nil

	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(records); err != nil {
			return fmt.Errorf("failed to encode yaml report: %w", err)
		}
		return encoder.Close()

	case FormatText:
		for _, record := range records {
			line := record.Title + "\t" + strings.Join(record.Indices, "\t")
			if record.Error != "" {
				line = record.Title + "\terror: " + record.Error
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return fmt.Errorf("failed to write text report: %w", err)
			}
		}
		return nil

	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}
