package printer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"scanpro/internal/core/domain"
)

// YAMLPrinter prints results in YAML format, using the same field names as JSONPrinter.
type YAMLPrinter struct {
	writer io.Writer
}

// NewYAMLPrinter creates a new YAML printer.
func NewYAMLPrinter(w io.Writer) *YAMLPrinter {
	return &YAMLPrinter{writer: w}
}

// encode goes through JSON first so the json tags name the YAML keys.
func (y *YAMLPrinter) encode(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not marshal output: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return fmt.Errorf("could not unmarshal output: %w", err)
	}
	generic = plainNumbers(generic)

	enc := yaml.NewEncoder(y.writer)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return fmt.Errorf("could not encode yaml: %w", err)
	}
	return enc.Close()
}

// PrintResult prints a run result in YAML format.
func (y *YAMLPrinter) PrintResult(result domain.JobResult) error {
	return y.encode(newResultOutput(result))
}

// PrintSplitStatus prints a split job status in YAML format.
func (y *YAMLPrinter) PrintSplitStatus(status domain.SplitStatus) error {
	return y.encode(status)
}

// PrintMessage prints a simple message in YAML format.
func (y *YAMLPrinter) PrintMessage(msg string) error {
	return y.encode(messageOutput{Message: msg})
}

// plainNumbers replaces json.Number values so sizes print as integers, not 2.5e+06.
func plainNumbers(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = plainNumbers(e)
		}
	case []any:
		for i, e := range t {
			t[i] = plainNumbers(e)
		}
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		f, _ := t.Float64()
		return f
	}
	return v
}
