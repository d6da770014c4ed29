package domain

// FileResult is the part every operation response shares.
type FileResult struct {
	FileURL string `json:"fileUrl"`
}

// Locator returns the result file URL.
func (f FileResult) Locator() string { return f.FileURL }

// ConvertResponse is the convert answer.
type ConvertResponse struct {
	FileResult
}

// CompressResponse is the compress answer. CompressedSize is in bytes.
type CompressResponse struct {
	FileResult
	CompressedSize int64 `json:"compressedSize"`
}

// MergeResponse is the merge answer.
type MergeResponse struct {
	FileResult
}

// SplitResponse is the split answer, either the part files or an asynchronous job.
type SplitResponse struct {
	FileResult
	Files []string `json:"files,omitempty"`
	// JobID is set when the service splits asynchronously.
	JobID string `json:"jobId,omitempty"`
}

// RotateResponse is the rotate answer.
type RotateResponse struct {
	FileResult
}

// WatermarkResponse is the watermark answer.
type WatermarkResponse struct {
	FileResult
}

// ProtectResponse is the protect answer.
type ProtectResponse struct {
	FileResult
}

// UnlockResponse is the unlock answer.
type UnlockResponse struct {
	FileResult
}

// SignResponse is the sign answer.
type SignResponse struct {
	FileResult
}

// OCRResponse is the OCR answer. Text is set for text output.
type OCRResponse struct {
	FileResult
	Text string `json:"text,omitempty"`
}

// EditResponse is the edit answer.
type EditResponse struct {
	FileResult
}

// RedactResponse is the redact answer.
type RedactResponse struct {
	FileResult
}

// RepairResponse is the repair answer.
type RepairResponse struct {
	FileResult
}

// PageNumberResponse is the page-numbering answer.
type PageNumberResponse struct {
	FileResult
}

// Split job states reported by the status endpoint.
const (
	SplitStatusPending    = "pending"
	SplitStatusProcessing = "processing"
	SplitStatusCompleted  = "completed"
	SplitStatusFailed     = "failed"
	SplitStatusError      = "error"
)

// SplitStatus is the payload of the split status endpoint.
type SplitStatus struct {
	ID       string   `json:"id"`
	Status   string   `json:"status"`
	Progress int      `json:"progress"`
	FileURL  string   `json:"fileUrl,omitempty"`
	Files    []string `json:"files,omitempty"`
}

// Terminal reports whether the job will not change anymore.
func (s SplitStatus) Terminal() bool {
	switch s.Status {
	case SplitStatusCompleted, SplitStatusFailed, SplitStatusError:
		return true
	}
	return false
}

// Locator returns the result file URL once the job has completed.
func (s SplitStatus) Locator() string { return s.FileURL }
