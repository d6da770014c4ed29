package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"scanpro/internal/core/domain"
	"scanpro/internal/i18n"
)

// TextPrinter prints results for a terminal, with labels in the translator's language.
type TextPrinter struct {
	writer io.Writer
	t      *i18n.Translator
}

// NewTextPrinter creates a new text printer.
func NewTextPrinter(w io.Writer, t *i18n.Translator) *TextPrinter {
	if t == nil {
		t = i18n.Default()
	}
	return &TextPrinter{writer: w, t: t}
}

// PrintResult prints the outcome of a run.
func (p *TextPrinter) PrintResult(result domain.JobResult) error {
	fmt.Fprintf(p.writer, "Operation:  %s\n", result.Job.Operation)
	fmt.Fprintf(p.writer, "Job:        %s\n", result.Job.ID)
	if len(result.Job.Files) > 0 {
		fmt.Fprintf(p.writer, "Files:      %s\n", strings.Join(result.Job.Files, ", "))
	}

	if !result.Success {
		fmt.Fprintf(p.writer, "%s: %s\n", p.t.T("common.error"), result.ErrorMessage)
		return nil
	}
	fmt.Fprintf(p.writer, "Status:     %s\n", p.t.T("common.success"))

	if url := domain.LocatorOf(result.Envelope); url != "" {
		fmt.Fprintf(p.writer, "File URL:   %s\n", url)
	}
	if result.Envelope != nil {
		switch data := result.Envelope.Payload().(type) {
		case domain.SplitResponse:
			for _, f := range data.Files {
				fmt.Fprintf(p.writer, "  - %s\n", f)
			}
			if data.JobID != "" {
				fmt.Fprintf(p.writer, "Split job:  %s\n", data.JobID)
			}
		case domain.OCRResponse:
			if data.Text != "" {
				fmt.Fprintf(p.writer, "\n%s\n\n", data.Text)
			}
		}
	}

	if s := result.Stats; s != nil {
		fmt.Fprintf(p.writer, "Original:   %s\n", formatSize(s.OriginalSize))
		fmt.Fprintf(p.writer, "Compressed: %s\n", formatSize(s.CompressedSize))
		fmt.Fprintln(p.writer, p.t.T("common.savedPercent", s.SavedPercent))
	}

	if result.Downloaded {
		fmt.Fprintf(p.writer, "%s: %s\n", p.t.T("common.downloaded"), result.ResultPath)
	}

	return nil
}

// PrintSplitStatus prints the state of an asynchronous split job.
func (p *TextPrinter) PrintSplitStatus(status domain.SplitStatus) error {
	fmt.Fprintf(p.writer, "%s: %s (%d%%)\n", p.t.T("common.jobStatus"), status.Status, status.Progress)
	if status.FileURL != "" {
		fmt.Fprintf(p.writer, "File URL:   %s\n", status.FileURL)
	}
	for _, f := range status.Files {
		fmt.Fprintf(p.writer, "  - %s\n", f)
	}
	return nil
}

// PrintMessage prints a simple message.
func (p *TextPrinter) PrintMessage(msg string) error {
	_, err := fmt.Fprintln(p.writer, msg)
	return err
}

// formatSize returns a human-readable byte size, "0 B" for negative sizes.
func formatSize(bytes int64) string {
	if bytes < 0 {
		return "0 B"
	}
	return humanize.Bytes(uint64(bytes))
}
