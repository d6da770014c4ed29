package printer

import (
	"encoding/json"
	"io"

	"scanpro/internal/core/domain"
)

// JSONPrinter prints results in JSON format.
type JSONPrinter struct {
	writer io.Writer
}

// NewJSONPrinter creates a new JSON printer.
func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{writer: w}
}

func (j *JSONPrinter) encode(v any) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintResult prints a run result in JSON format.
func (j *JSONPrinter) PrintResult(result domain.JobResult) error {
	return j.encode(newResultOutput(result))
}

// PrintSplitStatus prints a split job status in JSON format.
func (j *JSONPrinter) PrintSplitStatus(status domain.SplitStatus) error {
	return j.encode(status)
}

// PrintMessage prints a simple message in JSON format.
func (j *JSONPrinter) PrintMessage(msg string) error {
	return j.encode(messageOutput{Message: msg})
}
