package validation

import "scanpro/internal/core/domain"

func ptr[T any](v T) *T { return &v }

// DefaultCompressOptions returns the compress form defaults.
func DefaultCompressOptions() domain.CompressOptions {
	return domain.CompressOptions{Quality: domain.QualityMedium}
}

// DefaultSplitOptions returns the split form defaults.
func DefaultSplitOptions() domain.SplitOptions {
	return domain.SplitOptions{Method: domain.SplitRange, EveryNPages: 1}
}

// DefaultRotateOptions returns the rotate form defaults.
func DefaultRotateOptions() domain.RotateOptions {
	return domain.RotateOptions{Angle: 90}
}

// DefaultWatermarkOptions returns a centered black text watermark at half opacity.
func DefaultWatermarkOptions() domain.WatermarkOptions {
	return domain.WatermarkOptions{
		Type:       domain.WatermarkText,
		Position:   "center",
		Opacity:    50,
		Rotation:   0,
		FontSize:   24,
		TextColor:  "#000000",
		FontFamily: "Arial",
	}
}

// DefaultProtectOptions allows every permission. The password is left empty.
func DefaultProtectOptions() domain.ProtectOptions {
	return domain.ProtectOptions{
		AllowPrinting: ptr(true),
		AllowCopying:  ptr(true),
		AllowEditing:  ptr(true),
	}
}

// DefaultOCROptions recognizes English into a searchable PDF.
func DefaultOCROptions() domain.OCROptions {
	return domain.OCROptions{Language: "eng", OutputFormat: domain.OCROutputSearchablePDF}
}

// DefaultRepairOptions returns the standard repair mode.
func DefaultRepairOptions() domain.RepairOptions {
	return domain.RepairOptions{Mode: domain.RepairStandard}
}

// DefaultPageNumberOptions numbers every page from 1 at the bottom center.
func DefaultPageNumberOptions() domain.PageNumberOptions {
	return domain.PageNumberOptions{
		Format:        domain.PageNumberNumeric,
		Position:      "bottom-center",
		StartNumber:   ptr(1),
		FontFamily:    "Helvetica",
		FontSize:      ptr(12),
		Color:         "#000000",
		MarginX:       ptr(40),
		MarginY:       ptr(30),
		SkipFirstPage: ptr(false),
	}
}

// DefaultOptions returns the form defaults of op, or the zero options when it has none.
func DefaultOptions(op domain.Operation) any {
	switch op {
	case domain.OpConvert:
		return domain.ConvertOptions{}
	case domain.OpCompress:
		return DefaultCompressOptions()
	case domain.OpMerge:
		return domain.MergeOptions{}
	case domain.OpSplit:
		return DefaultSplitOptions()
	case domain.OpRotate:
		return DefaultRotateOptions()
	case domain.OpWatermark:
		return DefaultWatermarkOptions()
	case domain.OpProtect:
		return DefaultProtectOptions()
	case domain.OpUnlock:
		return domain.UnlockOptions{}
	case domain.OpSign:
		return domain.SignOptions{}
	case domain.OpOCR:
		return DefaultOCROptions()
	case domain.OpEdit:
		return domain.EditOptions{}
	case domain.OpRedact:
		return domain.RedactOptions{}
	case domain.OpRepair:
		return DefaultRepairOptions()
	case domain.OpPageNumber:
		return DefaultPageNumberOptions()
	}
	return nil
}
