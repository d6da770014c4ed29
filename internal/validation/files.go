package validation

import (
	"slices"
	"strings"

	"scanpro/internal/core/domain"
)

// MaxFileSize is the largest accepted upload, in bytes (10MB).
const MaxFileSize = 10 * 1024 * 1024

var (
	PDFExtensions      = []string{"pdf"}
	ImageExtensions    = []string{"jpg", "jpeg", "png", "gif", "webp"}
	DocumentExtensions = []string{"doc", "docx", "xls", "xlsx", "ppt", "pptx", "rtf", "txt", "html"}

	ConversionInputs  = concat(PDFExtensions, DocumentExtensions, ImageExtensions)
	ConversionOutputs = []string{"pdf", "docx", "xlsx", "pptx", "rtf", "txt", "html", "jpg", "jpeg", "png"}
)

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// FileExtension returns the lower-cased extension without the dot, or "" if there is none.
func FileExtension(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 || i == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

// AllowedExtensions returns the input extensions accepted by an operation.
func AllowedExtensions(op domain.Operation) []string {
	switch op {
	case domain.OpConvert:
		return ConversionInputs
	case domain.OpOCR:
		return concat(PDFExtensions, ImageExtensions)
	default:
		return PDFExtensions
	}
}

// ValidateFileSize fails when size exceeds MaxFileSize.
func ValidateFileSize(size int64) error {
	if size > MaxFileSize {
		return newError("file", "validation.fileTooLarge", MaxFileSize/(1024*1024))
	}
	return nil
}

// ValidateFile checks the size ceiling and the extension allow-list of op.
func ValidateFile(op domain.Operation, file domain.UploadFile) error {
	if file.Name == "" || file.Open == nil {
		return newError("file", "validation.fileRequired")
	}
	if err := ValidateFileSize(file.Size); err != nil {
		return err
	}
	if !slices.Contains(AllowedExtensions(op), FileExtension(file.Name)) {
		switch op {
		case domain.OpConvert:
			return newError("file", "validation.unsupportedConversion")
		case domain.OpOCR:
			return newError("file", "validation.ocrInput")
		default:
			return newError("file", "validation.pdfOnly")
		}
	}
	return nil
}

// ConvertOutputs returns the output formats offered for an input extension.
func ConvertOutputs(inputExt string) []string {
	ext := strings.ToLower(inputExt)
	switch {
	case ext == "pdf":
		return slices.DeleteFunc(slices.Clone(ConversionOutputs), func(f string) bool { return f == "pdf" })
	case slices.Contains(ImageExtensions, ext):
		return []string{"pdf", "jpg", "jpeg", "png"}
	case slices.Contains([]string{"doc", "docx", "txt", "rtf"}, ext):
		return []string{"pdf", "docx", "txt", "rtf"}
	case slices.Contains([]string{"xls", "xlsx"}, ext):
		return []string{"pdf", "xlsx"}
	case slices.Contains([]string{"ppt", "pptx"}, ext):
		return []string{"pdf", "pptx"}
	}
	return slices.Clone(ConversionOutputs)
}

// DefaultConvertOutput is the output preselected for an input extension.
func DefaultConvertOutput(inputExt string) string {
	if strings.ToLower(inputExt) == "pdf" {
		return "docx"
	}
	return "pdf"
}
