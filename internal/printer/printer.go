package printer

import (
	"fmt"
	"io"
	"time"

	"scanpro/internal/core/domain"
	"scanpro/internal/i18n"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the accepted output formats.
func Formats() []string { return []string{FormatText, FormatJSON, FormatYAML} }

// Printer knows how to print operation results in different formats.
type Printer interface {
	PrintResult(result domain.JobResult) error
	PrintSplitStatus(status domain.SplitStatus) error
	PrintMessage(msg string) error
}

// New returns the printer for format. The translator is only used by the text printer.
func New(format string, w io.Writer, t *i18n.Translator) (Printer, error) {
	switch format {
	case FormatText, "":
		return NewTextPrinter(w, t), nil
	case FormatJSON:
		return NewJSONPrinter(w), nil
	case FormatYAML:
		return NewYAMLPrinter(w), nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// resultOutput is the structured rendering shared by the JSON and YAML printers.
type resultOutput struct {
	JobID       string                   `json:"job_id"`
	Operation   string                   `json:"operation"`
	Files       []string                 `json:"files"`
	Success     bool                     `json:"success"`
	Error       string                   `json:"error,omitempty"`
	Data        any                      `json:"data,omitempty"`
	Stats       *domain.CompressionStats `json:"stats,omitempty"`
	Downloaded  bool                     `json:"downloaded"`
	ResultPath  string                   `json:"result_path,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
	CompletedAt *time.Time               `json:"completed_at,omitempty"`
}

type messageOutput struct {
	Message string `json:"message"`
}

func newResultOutput(r domain.JobResult) resultOutput {
	out := resultOutput{
		JobID:      r.Job.ID,
		Operation:  string(r.Job.Operation),
		Files:      r.Job.Files,
		Success:    r.Success,
		Error:      r.ErrorMessage,
		Stats:      r.Stats,
		Downloaded: r.Downloaded,
		ResultPath: r.ResultPath,
		CreatedAt:  r.Job.CreatedAt.UTC(),
	}
	if out.Files == nil {
		out.Files = []string{}
	}
	if r.Envelope != nil {
		out.Data = r.Envelope.Payload()
	}
	if !r.CompletedAt.IsZero() {
		t := r.CompletedAt.UTC()
		out.CompletedAt = &t
	}
	return out
}
