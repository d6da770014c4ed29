package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"scanpro/internal/core/domain"
	"scanpro/internal/core/ports"
	"scanpro/internal/i18n"
	"scanpro/internal/log"
	"scanpro/internal/validation"
)

// DefaultSplitPollInterval is used by WaitSplit when no positive interval is given.
const DefaultSplitPollInterval = 2 * time.Second

// Request is one operation invocation as collected by a front-end.
type Request struct {
	Operation domain.Operation
	Files     []domain.UploadFile
	// Options is the options struct of Operation; nil means the form defaults.
	Options any
	// Download saves the result file locally after a successful call.
	Download bool
	// OutputName overrides the derived download filename.
	OutputName string
	// SplitPollInterval, when positive, waits for asynchronous split jobs before downloading.
	SplitPollInterval time.Duration
	OnProgress        domain.ProgressFunc
}

// Runner coordinates validation, the service call, and the download of the result.
type Runner struct {
	processor  ports.Processor
	storage    ports.Storage
	translator *i18n.Translator
	logger     log.Logger
}

// NewRunner creates a new Runner.
func NewRunner(
	processor ports.Processor,
	storage ports.Storage,
	translator *i18n.Translator,
	logger log.Logger,
) *Runner {
	if translator == nil {
		translator = i18n.Default()
	}
	if logger == nil {
		logger = log.Noop
	}
	return &Runner{
		processor:  processor,
		storage:    storage,
		translator: translator,
		logger:     logger.WithValues(log.Kv{"svc": "service.Runner"}),
	}
}

// Run executes a complete operation.
// Validation and local storage failures are returned as errors; service failures are
// reported through the result envelope.
func (r *Runner) Run(ctx context.Context, req Request) (*domain.JobResult, error) {
	jobID := uuid.New().String()
	job := domain.Job{
		ID:        jobID,
		Operation: req.Operation,
		Files:     fileNames(req.Files),
		CreatedAt: time.Now().UTC(),
	}
	result := &domain.JobResult{Job: job, Success: false}
	logger := r.logger.WithValues(log.Kv{"job_id": jobID, "operation": string(req.Operation)})

	opts := req.Options
	if opts == nil {
		opts = validation.DefaultOptions(req.Operation)
	}
	opts, err := r.prepare(req.Operation, req.Files, opts)
	if err != nil {
		result.ErrorMessage = err.Error()
		return result, err
	}

	if err := validation.Validate(req.Operation, req.Files, opts); err != nil {
		result.ErrorMessage = r.localize(err)
		logger.Infof("Request rejected: %s", result.ErrorMessage)
		return result, err
	}

	if err := r.storage.InitJob(ctx, jobID); err != nil {
		result.ErrorMessage = fmt.Sprintf("failed to init job: %v", err)
		logger.Errorf("%s", result.ErrorMessage)
		return result, err
	}
	inputData, _ := json.MarshalIndent(job, "", "  ")
	if err := r.storage.SaveRequest(ctx, jobID, inputData); err != nil {
		logger.Warningf("Could not save request: %v", err)
	}

	logger.Infof("Sending %d file(s) to %s", len(req.Files), req.Operation.Endpoint())
	envelope := r.dispatch(ctx, req.Operation, req.Files, opts, req.OnProgress)
	result.Envelope = envelope
	result.Success = envelope.Success()

	if envelopeData, err := json.MarshalIndent(envelope, "", "  "); err == nil {
		if err := r.storage.SaveResult(ctx, jobID, envelopeData); err != nil {
			logger.Warningf("Could not save result: %v", err)
		}
	}

	if !envelope.Success() {
		result.ErrorMessage = envelope.Err()
		result.CompletedAt = time.Now().UTC()
		logger.Warningf("Operation failed: %s", result.ErrorMessage)
		return result, nil
	}

	// A missing compressedSize decodes to 0 and would read as a 100% saving.
	if resp, ok := envelope.Payload().(domain.CompressResponse); ok && len(req.Files) == 1 && resp.CompressedSize > 0 {
		stats := domain.NewCompressionStats(req.Files[0].Size, resp.CompressedSize)
		result.Stats = &stats
	}

	locator := domain.LocatorOf(envelope)
	if split, ok := envelope.Payload().(domain.SplitResponse); ok && split.JobID != "" && req.SplitPollInterval > 0 {
		status := r.WaitSplit(ctx, split.JobID, req.SplitPollInterval, nil)
		if !status.Success() {
			result.Success = false
			result.ErrorMessage = status.Err()
			result.CompletedAt = time.Now().UTC()
			return result, nil
		}
		st, _ := status.Data()
		if st.Status != domain.SplitStatusCompleted {
			result.Success = false
			result.ErrorMessage = r.translator.T("errors.splitFailed")
			result.CompletedAt = time.Now().UTC()
			return result, nil
		}
		result.Envelope = status
		locator = st.FileURL
	}

	if req.Download {
		if locator == "" {
			logger.Warningf("Result has no file to download")
		} else {
			filename := req.OutputName
			if filename == "" {
				filename = OutputName(req.Operation, req.Files, opts)
			}
			logger.Infof("Downloading result to %s", filename)
			result.Downloaded = r.processor.DownloadFile(ctx, locator, filename, r.storage)
			if result.Downloaded {
				result.ResultPath = r.storage.PathFor(filename)
			}
		}
	}

	result.CompletedAt = time.Now().UTC()
	logger.Infof("Job completed successfully")

	return result, nil
}

// WaitSplit polls the status of a split job every interval until it reaches a terminal
// state, a status call fails, or ctx is done. onStatus sees every intermediate status.
// A non-positive interval means DefaultSplitPollInterval.
func (r *Runner) WaitSplit(ctx context.Context, jobID string, interval time.Duration, onStatus func(domain.SplitStatus)) domain.Result[domain.SplitStatus] {
	logger := r.logger.WithValues(log.Kv{"split_job": jobID})
	if interval <= 0 {
		interval = DefaultSplitPollInterval
	}
	for {
		status := r.processor.CheckSplitStatus(ctx, jobID)
		if !status.Success() {
			return status
		}
		st, _ := status.Data()
		if onStatus != nil {
			onStatus(st)
		}
		if st.Terminal() {
			logger.Debugf("Split job finished with status %s", st.Status)
			return status
		}

		select {
		case <-ctx.Done():
			return domain.Fail[domain.SplitStatus](r.translator.T("errors.statusFailed"))
		case <-time.After(interval):
		}
	}
}

// prepare fills values a form derives from its inputs before validation.
func (r *Runner) prepare(op domain.Operation, files []domain.UploadFile, opts any) (any, error) {
	switch o := opts.(type) {
	case domain.ConvertOptions:
		if o.InputFormat == "" && len(files) > 0 {
			o.InputFormat = validation.FileExtension(files[0].Name)
		}
		if o.OutputFormat == "" && len(files) > 0 {
			o.OutputFormat = validation.DefaultConvertOutput(validation.FileExtension(files[0].Name))
		}
		return o, nil
	case domain.WatermarkOptions:
		if o.Image == nil && o.ImagePath != "" {
			img, err := domain.FileFromPath(o.ImagePath)
			if err != nil {
				return nil, fmt.Errorf("failed to load watermark image: %w", err)
			}
			o.Image = &img
		}
		return o, nil
	}
	return opts, nil
}

func (r *Runner) dispatch(ctx context.Context, op domain.Operation, files []domain.UploadFile, opts any, onProgress domain.ProgressFunc) domain.Envelope {
	p := r.processor
	switch o := opts.(type) {
	case domain.ConvertOptions:
		return p.Convert(ctx, files[0], o, onProgress)
	case domain.CompressOptions:
		return p.Compress(ctx, files[0], o, onProgress)
	case domain.MergeOptions:
		return p.Merge(ctx, files, o, onProgress)
	case domain.SplitOptions:
		return p.Split(ctx, files[0], o, onProgress)
	case domain.RotateOptions:
		return p.Rotate(ctx, files[0], o, onProgress)
	case domain.WatermarkOptions:
		return p.Watermark(ctx, files[0], o, onProgress)
	case domain.ProtectOptions:
		return p.Protect(ctx, files[0], o, onProgress)
	case domain.UnlockOptions:
		return p.Unlock(ctx, files[0], o, onProgress)
	case domain.SignOptions:
		return p.Sign(ctx, files[0], o, onProgress)
	case domain.OCROptions:
		return p.OCR(ctx, files[0], o, onProgress)
	case domain.EditOptions:
		return p.Edit(ctx, files[0], o, onProgress)
	case domain.RedactOptions:
		return p.Redact(ctx, files[0], o, onProgress)
	case domain.RepairOptions:
		return p.Repair(ctx, files[0], o, onProgress)
	case domain.PageNumberOptions:
		return p.AddPageNumbers(ctx, files[0], o, onProgress)
	}
	// Validate already rejected options that do not match op.
	return domain.Fail[any](r.translator.T("errors." + string(op) + "Failed"))
}

func (r *Runner) localize(err error) string {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return verr.Localize(r.translator)
	}
	return err.Error()
}

// OutputName derives the local filename of a result from the input name.
func OutputName(op domain.Operation, files []domain.UploadFile, opts any) string {
	name := ""
	if len(files) > 0 {
		name = files[0].Name
	}
	base := strings.TrimSuffix(name, "."+extOf(name))

	switch op {
	case domain.OpConvert:
		out := "pdf"
		if o, ok := opts.(domain.ConvertOptions); ok && o.OutputFormat != "" {
			out = strings.ToLower(o.OutputFormat)
		}
		if base == "" {
			base = "converted"
		}
		return base + "." + out
	case domain.OpCompress:
		if name == "" {
			return "compressed.pdf"
		}
		return strings.Replace(name, ".pdf", "-compressed.pdf", 1)
	case domain.OpMerge:
		return "merged.pdf"
	case domain.OpOCR:
		if o, ok := opts.(domain.OCROptions); ok && o.OutputFormat == domain.OCROutputText {
			return nonEmpty(base, "ocr") + "-ocr.txt"
		}
	}
	return nonEmpty(base, "document") + "-" + string(op) + ".pdf"
}

func extOf(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return ""
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func fileNames(files []domain.UploadFile) []string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	return names
}
