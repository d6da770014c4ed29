package validation

import (
	"fmt"
	"slices"
	"strings"

	"scanpro/internal/core/domain"
)

// Validate runs the form rules of op against its input files and options.
// opts must be the options struct matching op (e.g. domain.CompressOptions).
func Validate(op domain.Operation, files []domain.UploadFile, opts any) error {
	if !op.Valid() {
		return fmt.Errorf("%w: unknown operation %q", ErrNotValid, op)
	}

	if op == domain.OpMerge {
		if len(files) < 2 {
			return newError("files", "validation.mergeMinFiles")
		}
	} else if len(files) != 1 {
		return newError("file", "validation.fileRequired")
	}
	for _, f := range files {
		if err := ValidateFile(op, f); err != nil {
			return err
		}
	}

	switch op {
	case domain.OpConvert:
		return check(opts, func(o domain.ConvertOptions) error { return validateConvert(files[0], o) })
	case domain.OpCompress:
		return check(opts, validateCompress)
	case domain.OpMerge:
		return check(opts, func(o domain.MergeOptions) error { return validateMerge(len(files), o) })
	case domain.OpSplit:
		return check(opts, validateSplit)
	case domain.OpRotate:
		return check(opts, validateRotate)
	case domain.OpWatermark:
		return check(opts, validateWatermark)
	case domain.OpProtect:
		return check(opts, validateProtect)
	case domain.OpUnlock:
		return check(opts, func(domain.UnlockOptions) error { return nil })
	case domain.OpSign:
		return check(opts, validateSign)
	case domain.OpOCR:
		return check(opts, validateOCR)
	case domain.OpEdit:
		return check(opts, validateEdit)
	case domain.OpRedact:
		return check(opts, validateRedact)
	case domain.OpRepair:
		return check(opts, validateRepair)
	case domain.OpPageNumber:
		return check(opts, validatePageNumber)
	}
	return nil
}

func check[O any](opts any, fn func(O) error) error {
	o, ok := opts.(O)
	if !ok {
		var want O
		return fmt.Errorf("%w: expected %T options, got %T", ErrNotValid, want, opts)
	}
	return fn(o)
}

func oneOf[S ~string](field string, value S, allowed ...S) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return newError(field, "validation.oneOf", field, strings.Join(names, ", "))
}

func between(field string, value, lo, hi int) error {
	if value < lo || value > hi {
		return newError(field, "validation.between", field, lo, hi)
	}
	return nil
}

func atLeast(field string, value, lo int) error {
	if value < lo {
		return newError(field, "validation.min", field, lo)
	}
	return nil
}

func validateConvert(file domain.UploadFile, o domain.ConvertOptions) error {
	ext := FileExtension(file.Name)
	if o.OutputFormat == "" {
		return newError("outputFormat", "validation.required", "outputFormat")
	}
	if !slices.Contains(ConvertOutputs(ext), strings.ToLower(o.OutputFormat)) {
		return newError("outputFormat", "validation.unsupportedOutput", strings.ToUpper(ext), strings.ToUpper(o.OutputFormat))
	}
	if o.Quality != nil {
		return between("quality", *o.Quality, 1, 100)
	}
	return nil
}

func validateCompress(o domain.CompressOptions) error {
	return oneOf("quality", o.Quality, domain.QualityLow, domain.QualityMedium, domain.QualityHigh)
}

func validateMerge(files int, o domain.MergeOptions) error {
	if len(o.Order) == 0 {
		return nil
	}
	if len(o.Order) != files {
		return newError("order", "validation.mergeOrder")
	}
	seen := make([]bool, files)
	for _, idx := range o.Order {
		if idx < 0 || idx >= files || seen[idx] {
			return newError("order", "validation.mergeOrder")
		}
		seen[idx] = true
	}
	return nil
}

func validateSplit(o domain.SplitOptions) error {
	if err := oneOf("splitMethod", o.Method, domain.SplitRange, domain.SplitExtract, domain.SplitEvery); err != nil {
		return err
	}
	switch o.Method {
	case domain.SplitRange:
		if strings.TrimSpace(o.PageRanges) == "" {
			return newError("pageRanges", "validation.required", "pageRanges")
		}
	case domain.SplitEvery:
		return atLeast("everyNPages", o.EveryNPages, 1)
	}
	return nil
}

func validateRotate(o domain.RotateOptions) error {
	for _, p := range o.Pages {
		if p < 1 {
			return newError("pages", "validation.pageNumber")
		}
	}
	return nil
}

func validateWatermark(o domain.WatermarkOptions) error {
	if err := oneOf("watermarkType", o.Type, domain.WatermarkText, domain.WatermarkImage); err != nil {
		return err
	}
	switch o.Type {
	case domain.WatermarkText:
		if strings.TrimSpace(o.Text) == "" {
			return newError("text", "validation.watermarkText")
		}
		if o.FontSize != 0 {
			if err := between("fontSize", o.FontSize, 8, 72); err != nil {
				return err
			}
		}
	case domain.WatermarkImage:
		if o.Image == nil {
			return newError("watermarkImage", "validation.watermarkImage")
		}
		if err := ValidateFileSize(o.Image.Size); err != nil {
			return err
		}
		if !slices.Contains(ImageExtensions, FileExtension(o.Image.Name)) {
			return newError("watermarkImage", "validation.imageOnly")
		}
	}
	if o.Opacity != 0 {
		return between("opacity", o.Opacity, 1, 100)
	}
	return nil
}

func validateProtect(o domain.ProtectOptions) error {
	if o.Password == "" {
		return newError("password", "validation.passwordRequired")
	}
	if o.ConfirmPassword == "" {
		return newError("confirmPassword", "validation.confirmRequired")
	}
	if o.Password != o.ConfirmPassword {
		return newError("confirmPassword", "validation.passwordMismatch")
	}
	return nil
}

func validateSign(o domain.SignOptions) error {
	if len(o.Elements) == 0 {
		return newError("elements", "validation.signElements")
	}
	if len(o.Pages) == 0 {
		return newError("pages", "validation.required", "pages")
	}
	for _, el := range o.Elements {
		if el.Page < 1 || el.Page > len(o.Pages) {
			return newError("elements", "validation.signPage", el.ID, el.Page)
		}
	}
	return nil
}

func validateOCR(o domain.OCROptions) error {
	if strings.TrimSpace(o.Language) == "" {
		return newError("language", "validation.required", "language")
	}
	return oneOf("outputFormat", o.OutputFormat, domain.OCROutputText, domain.OCROutputSearchablePDF)
}

func validateEdit(o domain.EditOptions) error {
	if len(o.Edits) == 0 {
		return newError("edits", "validation.required", "edits")
	}
	return nil
}

func validateRedact(o domain.RedactOptions) error {
	if len(o.Redactions) == 0 {
		return newError("redactions", "validation.required", "redactions")
	}
	for _, r := range o.Redactions {
		if r.Page < 1 {
			return newError("redactions", "validation.pageNumber")
		}
		for _, a := range r.Areas {
			if a.Width <= 0 || a.Height <= 0 {
				return newError("redactions", "validation.redactArea")
			}
		}
	}
	return nil
}

func validateRepair(o domain.RepairOptions) error {
	return oneOf("repairMode", o.Mode, domain.RepairStandard, domain.RepairAdvanced)
}

func validatePageNumber(o domain.PageNumberOptions) error {
	if o.Format != "" {
		if err := oneOf("format", o.Format, domain.PageNumberNumeric, domain.PageNumberRoman, domain.PageNumberAlphabetic); err != nil {
			return err
		}
	}
	if o.StartNumber != nil {
		if err := atLeast("startNumber", *o.StartNumber, 1); err != nil {
			return err
		}
	}
	if o.FontSize != nil {
		if err := between("fontSize", *o.FontSize, 8, 72); err != nil {
			return err
		}
	}
	if o.MarginX != nil {
		if err := atLeast("marginX", *o.MarginX, 0); err != nil {
			return err
		}
	}
	if o.MarginY != nil {
		if err := atLeast("marginY", *o.MarginY, 0); err != nil {
			return err
		}
	}
	return nil
}
