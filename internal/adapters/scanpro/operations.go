package scanpro

import (
	"context"
	"fmt"

	"scanpro/internal/core/domain"
)

// encoder writes the option fields of one operation into a form.
type encoder func(f *Form, opts any) error

func encodeWith[O any](fn func(*Form, O) error) encoder {
	return func(f *Form, opts any) error {
		o, ok := opts.(O)
		if !ok {
			var want O
			return fmt.Errorf("expected %T options, got %T", want, opts)
		}
		return fn(f, o)
	}
}

var encoders = map[domain.Operation]encoder{
	domain.OpConvert:    encodeWith(encodeConvert),
	domain.OpCompress:   encodeWith(encodeCompress),
	domain.OpMerge:      encodeWith(encodeMerge),
	domain.OpSplit:      encodeWith(encodeSplit),
	domain.OpRotate:     encodeWith(encodeRotate),
	domain.OpWatermark:  encodeWith(encodeWatermark),
	domain.OpProtect:    encodeWith(encodeProtect),
	domain.OpUnlock:     encodeWith(encodeUnlock),
	domain.OpSign:       encodeWith(encodeSign),
	domain.OpOCR:        encodeWith(encodeOCR),
	domain.OpEdit:       encodeWith(encodeEdit),
	domain.OpRedact:     encodeWith(encodeRedact),
	domain.OpRepair:     encodeWith(encodeRepair),
	domain.OpPageNumber: encodeWith(encodePageNumber),
}

// fileField is the form field carrying the operation input.
func fileField(op domain.Operation) string {
	if op == domain.OpMerge {
		return "files"
	}
	return "file"
}

// BuildForm encodes the input files and options of op the way the service expects them.
func BuildForm(op domain.Operation, files []domain.UploadFile, opts any) (*Form, error) {
	enc, ok := encoders[op]
	if !ok {
		return nil, fmt.Errorf("unknown operation: %s", op)
	}

	form := NewForm()
	for _, f := range files {
		form.AddFile(fileField(op), f)
	}
	if err := enc(form, opts); err != nil {
		return nil, fmt.Errorf("failed to encode %s options: %w", op, err)
	}
	return form, nil
}

func send[T any](ctx context.Context, c *Client, op domain.Operation, files []domain.UploadFile, opts any, onProgress domain.ProgressFunc) domain.Result[T] {
	form, err := BuildForm(op, files, opts)
	if err != nil {
		c.logger.Errorf("Could not build %s request: %v", op, err)
		return domain.Fail[T](domain.GenericErrorMessage)
	}
	return Upload[T](ctx, c, op.Endpoint(), form, onProgress)
}

func one(file domain.UploadFile) []domain.UploadFile { return []domain.UploadFile{file} }

// Convert converts a document, image or PDF to opts.OutputFormat.
func (c *Client) Convert(ctx context.Context, file domain.UploadFile, opts domain.ConvertOptions, onProgress domain.ProgressFunc) domain.Result[domain.ConvertResponse] {
	return send[domain.ConvertResponse](ctx, c, domain.OpConvert, one(file), opts, onProgress)
}

// Compress reduces the size of a PDF.
func (c *Client) Compress(ctx context.Context, file domain.UploadFile, opts domain.CompressOptions, onProgress domain.ProgressFunc) domain.Result[domain.CompressResponse] {
	return send[domain.CompressResponse](ctx, c, domain.OpCompress, one(file), opts, onProgress)
}

// Merge joins PDFs into one, in opts.Order when given.
func (c *Client) Merge(ctx context.Context, files []domain.UploadFile, opts domain.MergeOptions, onProgress domain.ProgressFunc) domain.Result[domain.MergeResponse] {
	return send[domain.MergeResponse](ctx, c, domain.OpMerge, files, opts, onProgress)
}

// Split cuts a PDF into parts. Large documents may answer with a job to poll.
func (c *Client) Split(ctx context.Context, file domain.UploadFile, opts domain.SplitOptions, onProgress domain.ProgressFunc) domain.Result[domain.SplitResponse] {
	return send[domain.SplitResponse](ctx, c, domain.OpSplit, one(file), opts, onProgress)
}

// Rotate rotates the pages of a PDF.
func (c *Client) Rotate(ctx context.Context, file domain.UploadFile, opts domain.RotateOptions, onProgress domain.ProgressFunc) domain.Result[domain.RotateResponse] {
	return send[domain.RotateResponse](ctx, c, domain.OpRotate, one(file), opts, onProgress)
}

// Watermark adds a text or image watermark to a PDF.
func (c *Client) Watermark(ctx context.Context, file domain.UploadFile, opts domain.WatermarkOptions, onProgress domain.ProgressFunc) domain.Result[domain.WatermarkResponse] {
	return send[domain.WatermarkResponse](ctx, c, domain.OpWatermark, one(file), opts, onProgress)
}

// Protect sets a password and permissions on a PDF.
func (c *Client) Protect(ctx context.Context, file domain.UploadFile, opts domain.ProtectOptions, onProgress domain.ProgressFunc) domain.Result[domain.ProtectResponse] {
	return send[domain.ProtectResponse](ctx, c, domain.OpProtect, one(file), opts, onProgress)
}

// Unlock removes the password of a PDF.
func (c *Client) Unlock(ctx context.Context, file domain.UploadFile, opts domain.UnlockOptions, onProgress domain.ProgressFunc) domain.Result[domain.UnlockResponse] {
	return send[domain.UnlockResponse](ctx, c, domain.OpUnlock, one(file), opts, onProgress)
}

// Sign places signatures, text and images on a PDF.
func (c *Client) Sign(ctx context.Context, file domain.UploadFile, opts domain.SignOptions, onProgress domain.ProgressFunc) domain.Result[domain.SignResponse] {
	return send[domain.SignResponse](ctx, c, domain.OpSign, one(file), opts, onProgress)
}

// OCR recognizes the text of a PDF or image.
func (c *Client) OCR(ctx context.Context, file domain.UploadFile, opts domain.OCROptions, onProgress domain.ProgressFunc) domain.Result[domain.OCRResponse] {
	return send[domain.OCRResponse](ctx, c, domain.OpOCR, one(file), opts, onProgress)
}

// Edit applies edits to a PDF.
func (c *Client) Edit(ctx context.Context, file domain.UploadFile, opts domain.EditOptions, onProgress domain.ProgressFunc) domain.Result[domain.EditResponse] {
	return send[domain.EditResponse](ctx, c, domain.OpEdit, one(file), opts, onProgress)
}

// Redact blacks out areas of a PDF.
func (c *Client) Redact(ctx context.Context, file domain.UploadFile, opts domain.RedactOptions, onProgress domain.ProgressFunc) domain.Result[domain.RedactResponse] {
	return send[domain.RedactResponse](ctx, c, domain.OpRedact, one(file), opts, onProgress)
}

// Repair rebuilds a damaged PDF.
func (c *Client) Repair(ctx context.Context, file domain.UploadFile, opts domain.RepairOptions, onProgress domain.ProgressFunc) domain.Result[domain.RepairResponse] {
	return send[domain.RepairResponse](ctx, c, domain.OpRepair, one(file), opts, onProgress)
}

// AddPageNumbers numbers the pages of a PDF.
func (c *Client) AddPageNumbers(ctx context.Context, file domain.UploadFile, opts domain.PageNumberOptions, onProgress domain.ProgressFunc) domain.Result[domain.PageNumberResponse] {
	return send[domain.PageNumberResponse](ctx, c, domain.OpPageNumber, one(file), opts, onProgress)
}

func encodeConvert(f *Form, o domain.ConvertOptions) error {
	f.Set("inputFormat", o.InputFormat)
	f.Set("outputFormat", o.OutputFormat)
	if o.OCR != nil {
		f.SetBool("ocr", *o.OCR)
	}
	if o.Quality != nil {
		f.SetInt("quality", *o.Quality)
	}
	if o.Password != "" {
		f.Set("password", o.Password)
	}
	return nil
}

func encodeCompress(f *Form, o domain.CompressOptions) error {
	f.Set("quality", string(o.Quality))
	return nil
}

func encodeMerge(f *Form, o domain.MergeOptions) error {
	if n := len(f.Files()["files"]); len(o.Order) > 0 && len(o.Order) == n {
		return f.SetJSON("order", o.Order)
	}
	return nil
}

func encodeSplit(f *Form, o domain.SplitOptions) error {
	f.Set("splitMethod", string(o.Method))
	if o.Method == domain.SplitRange && o.PageRanges != "" {
		f.Set("pageRanges", o.PageRanges)
	}
	if o.Method == domain.SplitEvery && o.EveryNPages > 0 {
		f.SetInt("everyNPages", o.EveryNPages)
	}
	return nil
}

func encodeRotate(f *Form, o domain.RotateOptions) error {
	f.SetInt("angle", o.Angle)
	if len(o.Pages) > 0 {
		return f.SetJSON("pages", o.Pages)
	}
	return nil
}

func encodeWatermark(f *Form, o domain.WatermarkOptions) error {
	f.Set("watermarkType", string(o.Type))

	if o.Type == domain.WatermarkText && o.Text != "" {
		f.Set("text", o.Text)
		if o.TextColor != "" {
			f.Set("textColor", o.TextColor)
		}
		if o.FontSize != 0 {
			f.SetInt("fontSize", o.FontSize)
		}
		if o.FontFamily != "" {
			f.Set("fontFamily", o.FontFamily)
		}
	}

	if o.Type == domain.WatermarkImage && o.Image != nil {
		f.AddFile("watermarkImage", *o.Image)
		if o.Scale != 0 {
			f.SetFloat("scale", o.Scale)
		}
	}

	if o.Position != "" {
		f.Set("position", o.Position)
	}
	if o.Opacity != 0 {
		f.SetInt("opacity", o.Opacity)
	}
	if o.Rotation != 0 {
		f.SetInt("rotation", o.Rotation)
	}
	if o.Pages != "" {
		f.Set("pages", o.Pages)
	}
	return nil
}

func encodeProtect(f *Form, o domain.ProtectOptions) error {
	f.Set("password", o.Password)
	if o.AllowPrinting != nil {
		f.SetBool("allowPrinting", *o.AllowPrinting)
	}
	if o.AllowCopying != nil {
		f.SetBool("allowCopying", *o.AllowCopying)
	}
	if o.AllowEditing != nil {
		f.SetBool("allowEditing", *o.AllowEditing)
	}
	return nil
}

func encodeUnlock(f *Form, o domain.UnlockOptions) error {
	if o.Password != "" {
		f.Set("password", o.Password)
	}
	return nil
}

func encodeSign(f *Form, o domain.SignOptions) error {
	elements := o.Elements
	if elements == nil {
		elements = []domain.SignElement{}
	}
	pages := o.Pages
	if pages == nil {
		pages = []domain.PageDimension{}
	}
	if err := f.SetJSON("elements", elements); err != nil {
		return err
	}
	if err := f.SetJSON("pages", pages); err != nil {
		return err
	}
	if o.PerformOCR != nil {
		f.SetBool("performOcr", *o.PerformOCR)
	}
	return nil
}

func encodeOCR(f *Form, o domain.OCROptions) error {
	lang := o.Language
	if lang == "" {
		lang = "eng"
	}
	format := o.OutputFormat
	if format == "" {
		format = domain.OCROutputSearchablePDF
	}
	f.Set("language", lang)
	f.Set("outputFormat", string(format))
	return nil
}

func encodeEdit(f *Form, o domain.EditOptions) error {
	edits := o.Edits
	if edits == nil {
		edits = []map[string]any{}
	}
	return f.SetJSON("edits", edits)
}

func encodeRedact(f *Form, o domain.RedactOptions) error {
	redactions := o.Redactions
	if redactions == nil {
		redactions = []domain.Redaction{}
	}
	return f.SetJSON("redactions", redactions)
}

func encodeRepair(f *Form, o domain.RepairOptions) error {
	mode := o.Mode
	if mode == "" {
		mode = domain.RepairStandard
	}
	f.Set("repairMode", string(mode))
	return nil
}

func encodePageNumber(f *Form, o domain.PageNumberOptions) error {
	setString := func(name, v string) {
		if v != "" {
			f.Set(name, v)
		}
	}
	setInt := func(name string, v *int) {
		if v != nil {
			f.SetInt(name, *v)
		}
	}

	setString("format", string(o.Format))
	setString("position", o.Position)
	setInt("startNumber", o.StartNumber)
	setString("fontFamily", o.FontFamily)
	setInt("fontSize", o.FontSize)
	setString("color", o.Color)
	setString("prefix", o.Prefix)
	setString("suffix", o.Suffix)
	setInt("marginX", o.MarginX)
	setInt("marginY", o.MarginY)
	if o.SkipFirstPage != nil {
		f.SetBool("skipFirstPage", *o.SkipFirstPage)
	}
	setString("selectedPages", o.SelectedPages)
	return nil
}
