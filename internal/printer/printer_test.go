package printer_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"scanpro/internal/core/domain"
	"scanpro/internal/i18n"
	"scanpro/internal/printer"
)

var created = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func compressResult() domain.JobResult {
	stats := domain.NewCompressionStats(5_000_000, 2_500_000)
	return domain.JobResult{
		Job: domain.Job{ID: "job-1", Operation: domain.OpCompress, Files: []string{"report.pdf"}, CreatedAt: created},
		Envelope: domain.Ok(domain.CompressResponse{
			FileResult:     domain.FileResult{FileURL: "/files/report-compressed.pdf"},
			CompressedSize: 2_500_000,
		}),
		Stats:       &stats,
		Success:     true,
		Downloaded:  true,
		ResultPath:  "output/report-compressed.pdf",
		CompletedAt: created.Add(time.Second),
	}
}

func failedResult() domain.JobResult {
	return domain.JobResult{
		Job:          domain.Job{ID: "job-2", Operation: domain.OpRotate, CreatedAt: created},
		Envelope:     domain.Fail[domain.RotateResponse]("Invalid PDF file"),
		ErrorMessage: "Invalid PDF file",
	}
}

func TestNew(t *testing.T) {
	for _, format := range append(printer.Formats(), "") {
		p, err := printer.New(format, &bytes.Buffer{}, nil)
		require.NoError(t, err, format)
		assert.NotNil(t, p)
	}

	_, err := printer.New("xml", &bytes.Buffer{}, nil)
	assert.Error(t, err)
}

func TestTextPrinter(t *testing.T) {
	es, err := i18n.New("es")
	require.NoError(t, err)

	tests := map[string]struct {
		translator *i18n.Translator
		print      func(p printer.Printer) error
		exp        string
	}{
		"A compress result should show the savings.": {
			print: func(p printer.Printer) error { return p.PrintResult(compressResult()) },
			exp: "Operation:  compress\n" +
				"Job:        job-1\n" +
				"Files:      report.pdf\n" +
				"Status:     Success\n" +
				"File URL:   /files/report-compressed.pdf\n" +
				"Original:   5.0 MB\n" +
				"Compressed: 2.5 MB\n" +
				"Reduced by 50%\n" +
				"Saved to: output/report-compressed.pdf\n",
		},
		"A failed result should show the error.": {
			print: func(p printer.Printer) error { return p.PrintResult(failedResult()) },
			exp: "Operation:  rotate\n" +
				"Job:        job-2\n" +
				"Error: Invalid PDF file\n",
		},
		"Labels should follow the translator.": {
			translator: es,
			print:      func(p printer.Printer) error { return p.PrintResult(failedResult()) },
			exp: "Operation:  rotate\n" +
				"Job:        job-2\n" +
				es.T("common.error") + ": Invalid PDF file\n",
		},
		"A split result should list its files.": {
			print: func(p printer.Printer) error {
				return p.PrintResult(domain.JobResult{
					Job: domain.Job{ID: "job-3", Operation: domain.OpSplit, Files: []string{"a.pdf"}},
					Envelope: domain.Ok(domain.SplitResponse{
						Files: []string{"/files/a-1.pdf", "/files/a-2.pdf"},
						JobID: "split-9",
					}),
					Success: true,
				})
			},
			exp: "Operation:  split\n" +
				"Job:        job-3\n" +
				"Files:      a.pdf\n" +
				"Status:     Success\n" +
				"  - /files/a-1.pdf\n" +
				"  - /files/a-2.pdf\n" +
				"Split job:  split-9\n",
		},
		"A split status should show the progress.": {
			print: func(p printer.Printer) error {
				return p.PrintSplitStatus(domain.SplitStatus{ID: "split-9", Status: domain.SplitStatusProcessing, Progress: 40})
			},
			exp: "Job status: processing (40%)\n",
		},
		"A message should be printed as is.": {
			print: func(p printer.Printer) error { return p.PrintMessage("hello") },
			exp:   "hello\n",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			p := printer.NewTextPrinter(&buf, test.translator)

			require.NoError(t, test.print(p))
			assert.Equal(t, test.exp, buf.String())
		})
	}
}

func TestJSONPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewJSONPrinter(&buf)

	require.NoError(t, p.PrintResult(compressResult()))
	assert.JSONEq(t, `{
		"job_id": "job-1",
		"operation": "compress",
		"files": ["report.pdf"],
		"success": true,
		"data": {"fileUrl": "/files/report-compressed.pdf", "compressedSize": 2500000},
		"stats": {"originalSize": 5000000, "compressedSize": 2500000, "savedPercent": 50},
		"downloaded": true,
		"result_path": "output/report-compressed.pdf",
		"created_at": "2024-05-01T10:00:00Z",
		"completed_at": "2024-05-01T10:00:01Z"
	}`, buf.String())

	buf.Reset()
	require.NoError(t, p.PrintResult(failedResult()))
	assert.JSONEq(t, `{
		"job_id": "job-2",
		"operation": "rotate",
		"files": [],
		"success": false,
		"error": "Invalid PDF file",
		"downloaded": false,
		"created_at": "2024-05-01T10:00:00Z"
	}`, buf.String())

	buf.Reset()
	require.NoError(t, p.PrintSplitStatus(domain.SplitStatus{ID: "s", Status: domain.SplitStatusCompleted, Progress: 100, FileURL: "/files/s.zip"}))
	assert.JSONEq(t, `{"id": "s", "status": "completed", "progress": 100, "fileUrl": "/files/s.zip"}`, buf.String())

	buf.Reset()
	require.NoError(t, p.PrintMessage("done"))
	assert.JSONEq(t, `{"message": "done"}`, buf.String())
}

func TestYAMLPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := printer.NewYAMLPrinter(&buf)

	require.NoError(t, p.PrintResult(compressResult()))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "job-1", got["job_id"])
	assert.Equal(t, "compress", got["operation"])
	assert.Equal(t, true, got["success"])
	assert.Equal(t, []any{"report.pdf"}, got["files"])
	assert.Equal(t, map[string]any{"fileUrl": "/files/report-compressed.pdf", "compressedSize": 2500000}, got["data"])
	assert.NotContains(t, got, "error")

	// Keys match the JSON rendering.
	var jsonBuf bytes.Buffer
	require.NoError(t, printer.NewJSONPrinter(&jsonBuf).PrintResult(compressResult()))
	var fromJSON map[string]any
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &fromJSON))
	for key := range fromJSON {
		assert.Contains(t, got, key)
	}

	buf.Reset()
	require.NoError(t, p.PrintMessage("done"))
	assert.Equal(t, "message: done\n", buf.String())
}
