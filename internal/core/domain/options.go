package domain

// Optional scalars are pointers so an unset value is not confused with zero.

// CompressionQuality trades result size against fidelity.
type CompressionQuality string

const (
	QualityLow    CompressionQuality = "low"
	QualityMedium CompressionQuality = "medium"
	QualityHigh   CompressionQuality = "high"
)

// SplitMethod selects how a PDF is cut into parts.
type SplitMethod string

const (
	SplitRange   SplitMethod = "range"
	SplitExtract SplitMethod = "extract"
	SplitEvery   SplitMethod = "every"
)

// WatermarkType is either a text or an image watermark.
type WatermarkType string

const (
	WatermarkText  WatermarkType = "text"
	WatermarkImage WatermarkType = "image"
)

// OCROutput is the form of the recognized text.
type OCROutput string

const (
	OCROutputText          OCROutput = "text"
	OCROutputSearchablePDF OCROutput = "searchablePdf"
)

// RepairMode selects how hard the service tries to recover a damaged PDF.
type RepairMode string

const (
	RepairStandard RepairMode = "standard"
	RepairAdvanced RepairMode = "advanced"
)

// PageNumberFormat is the numbering style of page numbers.
type PageNumberFormat string

const (
	PageNumberNumeric    PageNumberFormat = "numeric"
	PageNumberRoman      PageNumberFormat = "roman"
	PageNumberAlphabetic PageNumberFormat = "alphabetic"
)

// ConvertOptions are the convert form fields. Empty formats are derived from the input.
type ConvertOptions struct {
	InputFormat  string `json:"inputFormat" toml:"input_format"`
	OutputFormat string `json:"outputFormat" toml:"output_format"`
	OCR          *bool  `json:"ocr,omitempty" toml:"ocr"`
	Quality      *int   `json:"quality,omitempty" toml:"quality"`
	Password     string `json:"password,omitempty" toml:"password"`
}

// CompressOptions are the compress form fields.
type CompressOptions struct {
	Quality CompressionQuality `json:"quality" toml:"quality"`
}

// MergeOptions are the merge form fields. Order holds 0-based file indexes.
type MergeOptions struct {
	// Order is only sent when it has one entry per file.
	Order []int `json:"order,omitempty" toml:"order"`
}

// SplitOptions are the split form fields.
type SplitOptions struct {
	Method      SplitMethod `json:"splitMethod" toml:"split_method"`
	PageRanges  string      `json:"pageRanges,omitempty" toml:"page_ranges"`
	EveryNPages int         `json:"everyNPages,omitempty" toml:"every_n_pages"`
}

// RotateOptions are the rotate form fields. Pages are 1-based, empty means all pages.
type RotateOptions struct {
	Angle int   `json:"angle" toml:"angle"`
	Pages []int `json:"pages,omitempty" toml:"pages"`
}

// WatermarkOptions are the watermark form fields.
type WatermarkOptions struct {
	Type       WatermarkType `json:"watermarkType" toml:"watermark_type"`
	Text       string        `json:"text,omitempty" toml:"text"`
	TextColor  string        `json:"textColor,omitempty" toml:"text_color"`
	FontSize   int           `json:"fontSize,omitempty" toml:"font_size"`
	FontFamily string        `json:"fontFamily,omitempty" toml:"font_family"`
	// ImagePath is resolved into Image by the caller before sending.
	ImagePath string      `json:"-" toml:"image"`
	Image     *UploadFile `json:"-" toml:"-"`
	Scale     float64     `json:"scale,omitempty" toml:"scale"`
	Position  string      `json:"position,omitempty" toml:"position"`
	Opacity   int         `json:"opacity,omitempty" toml:"opacity"`
	Rotation  int         `json:"rotation,omitempty" toml:"rotation"`
	Pages     string      `json:"pages,omitempty" toml:"pages"`
}

// ProtectOptions are the protect form fields.
type ProtectOptions struct {
	Password string `json:"password" toml:"password"`
	// ConfirmPassword is checked locally and never sent.
	ConfirmPassword string `json:"-" toml:"confirm_password"`
	AllowPrinting   *bool  `json:"allowPrinting,omitempty" toml:"allow_printing"`
	AllowCopying    *bool  `json:"allowCopying,omitempty" toml:"allow_copying"`
	AllowEditing    *bool  `json:"allowEditing,omitempty" toml:"allow_editing"`
}

// UnlockOptions are the unlock form fields.
type UnlockOptions struct {
	Password string `json:"password,omitempty" toml:"password"`
}

// Point is a position on a displayed page.
type Point struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// Size is the extent of a placed element.
type Size struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

// SignElement is a signature, text or image placed on a page.
type SignElement struct {
	ID         string  `json:"id" toml:"id"`
	Type       string  `json:"type" toml:"type"`
	Position   Point   `json:"position" toml:"position"`
	Size       Size    `json:"size" toml:"size"`
	Data       string  `json:"data" toml:"data"`
	Rotation   float64 `json:"rotation" toml:"rotation"`
	Scale      float64 `json:"scale" toml:"scale"`
	Page       int     `json:"page" toml:"page"`
	Color      string  `json:"color,omitempty" toml:"color"`
	FontSize   int     `json:"fontSize,omitempty" toml:"font_size"`
	FontFamily string  `json:"fontFamily,omitempty" toml:"font_family"`
}

// PageDimension describes how a page was displayed when elements were placed on it.
type PageDimension struct {
	Width          float64 `json:"width" toml:"width"`
	Height         float64 `json:"height" toml:"height"`
	OriginalWidth  float64 `json:"originalWidth" toml:"original_width"`
	OriginalHeight float64 `json:"originalHeight" toml:"original_height"`
}

// SignOptions are the sign form fields.
type SignOptions struct {
	Elements   []SignElement   `json:"elements" toml:"elements"`
	Pages      []PageDimension `json:"pages" toml:"pages"`
	PerformOCR *bool           `json:"performOcr,omitempty" toml:"perform_ocr"`
}

// OCROptions are the OCR form fields.
type OCROptions struct {
	Language     string    `json:"language" toml:"language"`
	OutputFormat OCROutput `json:"outputFormat" toml:"output_format"`
}

// EditOptions are the edit form fields.
type EditOptions struct {
	// Edits are passed through to the service as-is.
	Edits []map[string]any `json:"edits" toml:"edits"`
}

// Area is a rectangle on a page.
type Area struct {
	X      float64 `json:"x" toml:"x"`
	Y      float64 `json:"y" toml:"y"`
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

// Redaction lists the areas to black out on one 1-based page.
type Redaction struct {
	Page  int    `json:"page" toml:"page"`
	Areas []Area `json:"areas" toml:"areas"`
}

// RedactOptions are the redact form fields.
type RedactOptions struct {
	Redactions []Redaction `json:"redactions" toml:"redactions"`
}

// RepairOptions are the repair form fields.
type RepairOptions struct {
	Mode RepairMode `json:"repairMode" toml:"repair_mode"`
}

// PageNumberOptions are the page-numbering form fields. Unset values use the service defaults.
type PageNumberOptions struct {
	Format        PageNumberFormat `json:"format,omitempty" toml:"format"`
	Position      string           `json:"position,omitempty" toml:"position"`
	StartNumber   *int             `json:"startNumber,omitempty" toml:"start_number"`
	FontFamily    string           `json:"fontFamily,omitempty" toml:"font_family"`
	FontSize      *int             `json:"fontSize,omitempty" toml:"font_size"`
	Color         string           `json:"color,omitempty" toml:"color"`
	Prefix        string           `json:"prefix,omitempty" toml:"prefix"`
	Suffix        string           `json:"suffix,omitempty" toml:"suffix"`
	MarginX       *int             `json:"marginX,omitempty" toml:"margin_x"`
	MarginY       *int             `json:"marginY,omitempty" toml:"margin_y"`
	SkipFirstPage *bool            `json:"skipFirstPage,omitempty" toml:"skip_first_page"`
	SelectedPages string           `json:"selectedPages,omitempty" toml:"selected_pages"`
}
