package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/numerado/internal/randgen"
)

// Kind selects an output encoding.
type Kind string

const (
	Text Kind = "text"
	JSON Kind = "json"
	YAML Kind = "yaml"
)

// ParseKind converts a flag value into a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(s)); k {
	case Text, JSON, YAML:
		return k, nil
	}
	return "", fmt.Errorf("unknown output %q (want text, json or yaml)", s)
}

// Value is the serialized form of a randgen.GeneratedValue.
type Value struct {
	ID      string  `json:"id" yaml:"id"`
	Display string  `json:"display" yaml:"display"`
	Raw     float64 `json:"raw" yaml:"raw"`
}

// Batch is the serialized form of one generation.
type Batch struct {
	Status    string  `json:"status" yaml:"status"`
	Requested int     `json:"requested" yaml:"requested"`
	Attempts  int     `json:"attempts,omitempty" yaml:"attempts,omitempty"`
	Values    []Value `json:"values" yaml:"values"`
}

// Report is everything a CLI run prints.
type Report struct {
	Format   string   `json:"format" yaml:"format"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Batches  []Batch  `json:"batches" yaml:"batches"`
	History  []Batch  `json:"history,omitempty" yaml:"history,omitempty"`
}

// NewBatch converts a generation result.
func NewBatch(res randgen.GenerationResult) Batch {
	return Batch{
		Status:    res.Status.String(),
		Requested: res.Requested,
		Attempts:  res.Attempts,
		Values:    Values(res.Values),
	}
}

// Values converts generated values.
func Values(values []randgen.GeneratedValue) []Value {
	out := make([]Value, len(values))
	for i, v := range values {
		out[i] = Value{ID: v.ID, Display: v.Display, Raw: v.Raw}
	}
	return out
}

// Write encodes r to w.
func Write(w io.Writer, kind Kind, r Report) error {
	switch kind {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeText(w, r)
	}
}

// writeText prints one display string per line; batches are separated by a
// blank line and the history section is headed by "history:".
func writeText(w io.Writer, r Report) error {
	var b strings.Builder
	for i, batch := range r.Batches {
		if i > 0 {
			b.WriteString("\n")
		}
		for _, v := range batch.Values {
			b.WriteString(v.Display)
			b.WriteString("\n")
		}
	}
	if len(r.History) > 0 {
		b.WriteString("\nhistory:\n")
		for i, batch := range r.History {
			displays := make([]string, len(batch.Values))
			for j, v := range batch.Values {
				displays[j] = v.Display
			}
			fmt.Fprintf(&b, "%2d. %s\n", i+1, strings.Join(displays, ", "))
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
