package portsmock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"scanpro/internal/core/domain"
	"scanpro/internal/core/ports"
)

// MockProcessor is a testify mock of ports.Processor.
// Progress callbacks are not invoked, tests that need them use an httptest server.
type MockProcessor struct {
	mock.Mock
}

var _ ports.Processor = (*MockProcessor)(nil)

func (m *MockProcessor) Convert(ctx context.Context, file domain.UploadFile, opts domain.ConvertOptions, onProgress domain.ProgressFunc) domain.Result[domain.ConvertResponse] {
	args := m.Called(ctx, file, opts)
	return args.Get(0).(domain.Result[domain.ConvertResponse])
}

func (m *MockProcessor) Compress(ctx context.Context, file domain.UploadFile, opts domain.CompressOptions, onProgress domain.ProgressFunc) domain.Result[domain.CompressResponse] {
	args := m.Called(ctx, file, opts)
	return args.Get(0).(domain.Result[domain.CompressResponse])
}

func (m *MockProcessor) Merge(ctx context.Context, files []domain.UploadFile, opts domain.MergeOptions, onProgress domain.ProgressFunc) domain.Result[domain.MergeResponse] {
	args := m.Called(ctx, files, opts)
	return args.Get(0).(domain.Result[domain.MergeResponse])
}

func (m *MockProcessor) Split(ctx context.Context, file domain.UploadFile, opts domain.SplitOptions, onProgress domain.ProgressFunc) domain.Result[domain.SplitResponse] {
	args := m.Called(ctx, file, opts)
	return args.Get(0).(domain.Result[domain.SplitResponse])
}

func (m *MockProcessor) Rotate(ctx context.Context, file domain.UploadFile, opts domain.RotateOptions, onProgress domain.ProgressFunc) domain.Result[domain.RotateResponse] {
	args := m.Called(ctx, file, opts)
	return args.Get(0).(domain.Result[domain.RotateResponse])
}

func (m *MockProcessor) Watermark(ctx context.Context, file domain.UploadFile, opts domain.WatermarkOptions, onProgress domain.ProgressFunc) domain.Result[domain.WatermarkResponse] {
	args := m.Called(ctx, file, opts)
	return args.Get(0).(domain.Result[domain.WatermarkResponse])
}

func (m *MockProcessor) Protect(ctx context.Context, file domain.UploadFile, opts domain.ProtectOptions, onProgress domain.ProgressFunc) domain.Result[domain.ProtectResponse] {
	args := m.Called(ctx, file, opts)
	return args.Get(0).(domain.Result[domain.ProtectResponse])
}

func (m *MockProcessor) Unlock(ctx context.Context, file domain.UploadFile, opts domain.UnlockOptions, onProgress domain.ProgressFunc) domain.Result[domain.UnlockResponse] {
	args := m.Called(ctx, file, opts)
	return args.Get(0).(domain.Result[domain.UnlockResponse])
}

func (m *MockProcessor) Sign(ctx context.Context, file domain.UploadFile, opts domain.SignOptions, onProgress domain.ProgressFunc) domain.Result[domain.SignResponse] {
	args := m.Called(ctx, file, opts)
	return args.Get(0).(domain.Result[domain.SignResponse])
}

func (m *MockProcessor) OCR(ctx context.Context, file domain.UploadFile, opts domain.OCROptions, onProgress domain.ProgressFunc) domain.Result[domain.OCRResponse] {
	args := m.Called(ctx, file, opts)
	return args.Get(0).(domain.Result[domain.OCRResponse])
}

func (m *MockProcessor) Edit(ctx context.Context, file domain.UploadFile, opts domain.EditOptions, onProgress domain.ProgressFunc) domain.Result[domain.EditResponse] {
	args := m.Called(ctx, file, opts)
	return args.Get(0).(domain.Result[domain.EditResponse])
}

func (m *MockProcessor) Redact(ctx context.Context, file domain.UploadFile, opts domain.RedactOptions, onProgress domain.ProgressFunc) domain.Result[domain.RedactResponse] {
	args := m.Called(ctx, file, opts)
	return args.Get(0).(domain.Result[domain.RedactResponse])
}

func (m *MockProcessor) Repair(ctx context.Context, file domain.UploadFile, opts domain.RepairOptions, onProgress domain.ProgressFunc) domain.Result[domain.RepairResponse] {
	args := m.Called(ctx, file, opts)
	return args.Get(0).(domain.Result[domain.RepairResponse])
}

func (m *MockProcessor) AddPageNumbers(ctx context.Context, file domain.UploadFile, opts domain.PageNumberOptions, onProgress domain.ProgressFunc) domain.Result[domain.PageNumberResponse] {
	args := m.Called(ctx, file, opts)
	return args.Get(0).(domain.Result[domain.PageNumberResponse])
}

func (m *MockProcessor) CheckSplitStatus(ctx context.Context, jobID string) domain.Result[domain.SplitStatus] {
	args := m.Called(ctx, jobID)
	return args.Get(0).(domain.Result[domain.SplitStatus])
}

func (m *MockProcessor) DownloadFile(ctx context.Context, fileURL, filename string, saver ports.Saver) bool {
	args := m.Called(ctx, fileURL, filename, saver)
	return args.Bool(0)
}
