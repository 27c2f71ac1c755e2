package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/monieshop/salesight/internal/aggregator"
)

// Format selects the report output encoding.
type Format string

const (
	// FormatText is the default human-readable report.
	FormatText Format = "text"

	// FormatJSON is a machine-readable JSON encoding of the results.
	FormatJSON Format = "json"

	// FormatYAML is a machine-readable YAML encoding of the results.
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat indicates a format value outside text/json/yaml.
var ErrUnknownFormat = errors.New("unknown report format")

// envelope wraps Results with the parser's skip count for machine output.
type envelope struct {
	aggregator.Results `yaml:",inline"`

	SkippedRows int `json:"skipped_rows,omitempty" yaml:"skipped_rows,omitempty"`
}

// Render writes results to w in the requested format.
func (r *Renderer) Render(w io.Writer, format Format, results aggregator.Results, skipped int) error {
	switch format {
	case FormatText:
		return r.RenderText(w, results, skipped)
	case FormatJSON:
		return renderJSON(w, results, skipped)
	case FormatYAML:
		return renderYAML(w, results, skipped)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func renderJSON(w io.Writer, results aggregator.Results, skipped int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	err := enc.Encode(envelope{Results: results, SkippedRows: skipped})
	if err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}

	return nil
}

func renderYAML(w io.Writer, results aggregator.Results, skipped int) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	err := enc.Encode(envelope{Results: results, SkippedRows: skipped})
	if err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}

	return nil
}
