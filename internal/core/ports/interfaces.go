package ports

import (
	"context"
	"io"

	"scanpro/internal/core/domain"
)

// Processor defines the contract of the remote document-processing service.
// Implementations never return errors: every failure is resolved into the result.
type Processor interface {
	Convert(ctx context.Context, file domain.UploadFile, opts domain.ConvertOptions, onProgress domain.ProgressFunc) domain.Result[domain.ConvertResponse]
	Compress(ctx context.Context, file domain.UploadFile, opts domain.CompressOptions, onProgress domain.ProgressFunc) domain.Result[domain.CompressResponse]
	Merge(ctx context.Context, files []domain.UploadFile, opts domain.MergeOptions, onProgress domain.ProgressFunc) domain.Result[domain.MergeResponse]
	Split(ctx context.Context, file domain.UploadFile, opts domain.SplitOptions, onProgress domain.ProgressFunc) domain.Result[domain.SplitResponse]
	Rotate(ctx context.Context, file domain.UploadFile, opts domain.RotateOptions, onProgress domain.ProgressFunc) domain.Result[domain.RotateResponse]
	Watermark(ctx context.Context, file domain.UploadFile, opts domain.WatermarkOptions, onProgress domain.ProgressFunc) domain.Result[domain.WatermarkResponse]
	Protect(ctx context.Context, file domain.UploadFile, opts domain.ProtectOptions, onProgress domain.ProgressFunc) domain.Result[domain.ProtectResponse]
	Unlock(ctx context.Context, file domain.UploadFile, opts domain.UnlockOptions, onProgress domain.ProgressFunc) domain.Result[domain.UnlockResponse]
	Sign(ctx context.Context, file domain.UploadFile, opts domain.SignOptions, onProgress domain.ProgressFunc) domain.Result[domain.SignResponse]
	OCR(ctx context.Context, file domain.UploadFile, opts domain.OCROptions, onProgress domain.ProgressFunc) domain.Result[domain.OCRResponse]
	Edit(ctx context.Context, file domain.UploadFile, opts domain.EditOptions, onProgress domain.ProgressFunc) domain.Result[domain.EditResponse]
	Redact(ctx context.Context, file domain.UploadFile, opts domain.RedactOptions, onProgress domain.ProgressFunc) domain.Result[domain.RedactResponse]
	Repair(ctx context.Context, file domain.UploadFile, opts domain.RepairOptions, onProgress domain.ProgressFunc) domain.Result[domain.RepairResponse]
	AddPageNumbers(ctx context.Context, file domain.UploadFile, opts domain.PageNumberOptions, onProgress domain.ProgressFunc) domain.Result[domain.PageNumberResponse]

	// CheckSplitStatus queries an asynchronous split job once.
	CheckSplitStatus(ctx context.Context, jobID string) domain.Result[domain.SplitStatus]

	// DownloadFile fetches a result file and hands it to the saver.
	// Failures are logged and reported as false.
	DownloadFile(ctx context.Context, fileURL, filename string, saver Saver) bool
}

// Downloader defines the contract for fetching result files.
type Downloader interface {
	// Download fetches the file at the given locator.
	// Returns a ReadCloser that the caller must close.
	Download(ctx context.Context, fileURL string) (io.ReadCloser, error)
}

// Saver persists a downloaded result under the given filename.
type Saver interface {
	// Save writes the content and returns where it was stored.
	Save(ctx context.Context, filename string, reader io.Reader) (string, error)
}

// Storage defines the contract for persisting run artifacts.
type Storage interface {
	Saver

	// InitJob creates the job directory structure.
	InitJob(ctx context.Context, jobID string) error

	// SaveRequest saves the job input description.
	SaveRequest(ctx context.Context, jobID string, data []byte) error

	// SaveResult saves the result envelope.
	SaveResult(ctx context.Context, jobID string, data []byte) error

	// GetJobPath returns the filesystem path for a given job ID.
	GetJobPath(jobID string) string

	// PathFor returns where Save stores a file with the given name.
	PathFor(filename string) string
}
