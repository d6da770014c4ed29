package domain

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"
)

// Operation names a document operation offered by the processing service.
type Operation string

const (
	OpConvert    Operation = "convert"
	OpCompress   Operation = "compress"
	OpMerge      Operation = "merge"
	OpSplit      Operation = "split"
	OpRotate     Operation = "rotate"
	OpWatermark  Operation = "watermark"
	OpProtect    Operation = "protect"
	OpUnlock     Operation = "unlock"
	OpSign       Operation = "sign"
	OpOCR        Operation = "ocr"
	OpEdit       Operation = "edit"
	OpRedact     Operation = "redact"
	OpRepair     Operation = "repair"
	OpPageNumber Operation = "pagenumber"
)

var endpoints = map[Operation]string{
	OpConvert:    "/convert",
	OpCompress:   "/compress",
	OpMerge:      "/merge",
	OpSplit:      "/pdf/split",
	OpRotate:     "/rotate",
	OpWatermark:  "/pdf/watermark",
	OpProtect:    "/pdf/protect",
	OpUnlock:     "/pdf/unlock",
	OpSign:       "/pdf/sign",
	OpOCR:        "/pdf/ocr",
	OpEdit:       "/pdf/edit",
	OpRedact:     "/pdf/redact",
	OpRepair:     "/pdf/repair",
	OpPageNumber: "/pdf/pagenumber",
}

// SplitStatusEndpoint is queried with the split job handle as the "id" parameter.
const SplitStatusEndpoint = "/pdf/split/status"

// Operations returns every supported operation in a stable order.
func Operations() []Operation {
	return []Operation{
		OpConvert, OpCompress, OpMerge, OpSplit, OpRotate, OpWatermark, OpProtect,
		OpUnlock, OpSign, OpOCR, OpEdit, OpRedact, OpRepair, OpPageNumber,
	}
}

// Endpoint returns the service path the operation posts to.
func (o Operation) Endpoint() string {
	return endpoints[o]
}

// Valid reports whether the operation is known.
func (o Operation) Valid() bool {
	_, ok := endpoints[o]
	return ok
}

// ParseOperation converts a name into an Operation.
func ParseOperation(name string) (Operation, error) {
	op := Operation(name)
	if !op.Valid() {
		return "", fmt.Errorf("unknown operation: %s", name)
	}
	return op, nil
}

// UploadFile is a file that will be sent in a multipart request.
type UploadFile struct {
	Name string
	Size int64
	// Open returns a fresh reader over the file content.
	Open func() (io.ReadCloser, error)
}

// FileFromPath describes a file on disk. The content is read lazily.
func FileFromPath(path string) (UploadFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return UploadFile{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return UploadFile{}, fmt.Errorf("%s is a directory", path)
	}
	return UploadFile{
		Name: filepath.Base(path),
		Size: info.Size(),
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}, nil
}

// FileFromBytes wraps in-memory content.
func FileFromBytes(name string, data []byte) UploadFile {
	return UploadFile{
		Name: name,
		Size: int64(len(data)),
		Open: func() (io.ReadCloser, error) { return io.NopCloser(bytes.NewReader(data)), nil },
	}
}

// Job represents a single operation run.
type Job struct {
	ID        string    `json:"job_id"`
	Operation Operation `json:"operation"`
	Files     []string  `json:"files"`
	CreatedAt time.Time `json:"created_at"`
}

// JobResult holds the outcome of a completed run.
type JobResult struct {
	Job          Job
	Envelope     Envelope
	Stats        *CompressionStats
	ResultPath   string
	Downloaded   bool
	Success      bool
	ErrorMessage string
	CompletedAt  time.Time
}

// CompressionStats are the display values derived from a compress result.
type CompressionStats struct {
	OriginalSize   int64 `json:"originalSize"`
	CompressedSize int64 `json:"compressedSize"`
	SavedPercent   int   `json:"savedPercent"`
}

// NewCompressionStats computes the saved percentage, rounded to the nearest integer.
// The percentage is negative when the result grew.
func NewCompressionStats(originalSize, compressedSize int64) CompressionStats {
	stats := CompressionStats{OriginalSize: originalSize, CompressedSize: compressedSize}
	if originalSize > 0 {
		stats.SavedPercent = int(math.Round(float64(originalSize-compressedSize) / float64(originalSize) * 100))
	}
	return stats
}
