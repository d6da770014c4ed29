package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"scanpro/internal/core/domain"
	"scanpro/internal/printer"
	"scanpro/internal/service"
	"scanpro/internal/validation"
)

// operationFlags are the flags every operation command has besides its options.
type operationFlags struct {
	optionsFile string
	outputName  string
	noDownload  bool
	noProgress  bool
	wait        time.Duration
}

func newOperationCommand[O any](rootCmd *RootCommand, op domain.Operation, short string, bind func(f *optionFlags, o *O)) *cobra.Command {
	var (
		opts  O
		flags operationFlags
	)

	use := string(op) + " FILE"
	args := cobra.ExactArgs(1)
	if op == domain.OpMerge {
		use = string(op) + " FILE FILE..."
		args = cobra.MinimumNArgs(1)
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
	}

	of := newOptionFlags(cmd.Flags())
	bind(of, &opts)

	cmd.Flags().StringVar(&flags.optionsFile, "options-file", "", "TOML file with the operation options, flags take precedence.")
	cmd.Flags().StringVar(&flags.outputName, "output-name", "", "Filename of the downloaded result (derived from the input by default).")
	cmd.Flags().BoolVar(&flags.noDownload, "no-download", false, "Only print the result, do not download it.")
	cmd.Flags().BoolVar(&flags.noProgress, "no-progress", false, "Do not print upload progress.")
	if op == domain.OpSplit {
		cmd.Flags().DurationVar(&flags.wait, "wait", 0, "Poll asynchronous split jobs at this interval until they finish (e.g. 2s).")
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if defaults, ok := validation.DefaultOptions(op).(O); ok {
			opts = defaults
		}
		if flags.optionsFile != "" {
			md, err := toml.DecodeFile(flags.optionsFile, &opts)
			if err != nil {
				return fmt.Errorf("could not read options file: %w", err)
			}
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				keys := make([]string, len(undecoded))
				for i, k := range undecoded {
					keys[i] = k.String()
				}
				rootCmd.Logger.Warningf("Ignoring unknown options: %s", strings.Join(keys, ", "))
			}
		}
		of.apply()

		files, err := loadFiles(args)
		if err != nil {
			return err
		}

		return rootCmd.runOperation(cmd.Context(), service.Request{
			Operation:         op,
			Files:             files,
			Options:           opts,
			Download:          !flags.noDownload,
			OutputName:        flags.outputName,
			SplitPollInterval: flags.wait,
		}, !flags.noProgress)
	}

	return cmd
}

func loadFiles(paths []string) ([]domain.UploadFile, error) {
	files := make([]domain.UploadFile, 0, len(paths))
	for _, p := range paths {
		f, err := domain.FileFromPath(p)
		if err != nil {
			return nil, fmt.Errorf("could not read input file: %w", err)
		}
		files = append(files, f)
	}
	return files, nil
}

func (c *RootCommand) runOperation(ctx context.Context, req service.Request, showProgress bool) error {
	p, err := c.newPrinter()
	if err != nil {
		return err
	}

	var progress *progressBar
	if showProgress && c.Format == printer.FormatText {
		progress = newProgressBar(c.Stderr, c.Translator.T("common.uploading"))
		req.OnProgress = progress.Update
	}

	result, err := c.newRunner().Run(ctx, req)
	progress.Done()
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			return errors.New(verr.Localize(c.Translator))
		}
		return err
	}

	if err := p.PrintResult(*result); err != nil {
		return fmt.Errorf("could not print result: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("%w: %s", ErrOperationFailed, result.ErrorMessage)
	}
	if req.Download && !result.Downloaded && result.Envelope != nil && domain.LocatorOf(result.Envelope) != "" {
		fmt.Fprintln(c.Stderr, c.Translator.T("common.downloadFailed"))
	}

	return nil
}

// NewOperationCommands returns one command per service operation.
func NewOperationCommands(rootCmd *RootCommand) []*cobra.Command {
	return []*cobra.Command{
		newOperationCommand(rootCmd, domain.OpConvert, "Convert a document, image or PDF to another format.", func(f *optionFlags, o *domain.ConvertOptions) {
			f.String("to", "Output format (pdf, docx, xlsx, pptx, rtf, txt, html, jpg, jpeg, png).", &o.OutputFormat)
			f.String("from", "Input format, taken from the file extension by default.", &o.InputFormat)
			f.BoolPtr("ocr", "Run text recognition while converting.", &o.OCR)
			f.IntPtr("quality", "Image quality, 1-100.", &o.Quality)
			f.String("password", "Password of a protected input PDF.", &o.Password)
		}),
		newOperationCommand(rootCmd, domain.OpCompress, "Reduce the size of a PDF.", func(f *optionFlags, o *domain.CompressOptions) {
			enumFlag(f, "quality", "Compression quality (low, medium, high). Default medium.", &o.Quality)
		}),
		newOperationCommand(rootCmd, domain.OpMerge, "Merge several PDFs into one.", func(f *optionFlags, o *domain.MergeOptions) {
			f.Ints("order", "Order of the input files, as 0-based indexes (e.g. 2,0,1).", &o.Order)
		}),
		newOperationCommand(rootCmd, domain.OpSplit, "Split a PDF into several files.", func(f *optionFlags, o *domain.SplitOptions) {
			enumFlag(f, "method", "Split method (range, extract, every). Default range.", &o.Method)
			f.String("ranges", "Page ranges for the range method (e.g. 1-3,5).", &o.PageRanges)
			f.Int("every", "Pages per file for the every method.", &o.EveryNPages)
		}),
		newOperationCommand(rootCmd, domain.OpRotate, "Rotate PDF pages.", func(f *optionFlags, o *domain.RotateOptions) {
			f.Int("angle", "Rotation angle in degrees. Default 90.", &o.Angle)
			f.Ints("pages", "Pages to rotate, 1-based. All pages by default.", &o.Pages)
		}),
		newOperationCommand(rootCmd, domain.OpWatermark, "Add a text or image watermark to a PDF.", func(f *optionFlags, o *domain.WatermarkOptions) {
			enumFlag(f, "type", "Watermark type (text, image). Default text.", &o.Type)
			f.String("text", "Watermark text.", &o.Text)
			f.String("text-color", "Text color. Default #000000.", &o.TextColor)
			f.Int("font-size", "Font size, 8-72. Default 24.", &o.FontSize)
			f.String("font-family", "Font family. Default Arial.", &o.FontFamily)
			f.String("image", "Watermark image file for the image type.", &o.ImagePath)
			f.Float("scale", "Image scale.", &o.Scale)
			f.String("position", "Position on the page. Default center.", &o.Position)
			f.Int("opacity", "Opacity, 1-100. Default 50.", &o.Opacity)
			f.Int("rotation", "Rotation in degrees.", &o.Rotation)
			f.String("pages", "Pages to watermark (e.g. 1-3,5). All pages by default.", &o.Pages)
		}),
		newOperationCommand(rootCmd, domain.OpProtect, "Protect a PDF with a password.", func(f *optionFlags, o *domain.ProtectOptions) {
			f.String("password", "Password to set.", &o.Password)
			f.String("confirm-password", "Password confirmation, must match --password.", &o.ConfirmPassword)
			f.BoolPtr("allow-printing", "Allow printing. Default true.", &o.AllowPrinting)
			f.BoolPtr("allow-copying", "Allow copying. Default true.", &o.AllowCopying)
			f.BoolPtr("allow-editing", "Allow editing. Default true.", &o.AllowEditing)
		}),
		newOperationCommand(rootCmd, domain.OpUnlock, "Remove the password of a PDF.", func(f *optionFlags, o *domain.UnlockOptions) {
			f.String("password", "Current password of the PDF.", &o.Password)
		}),
		newOperationCommand(rootCmd, domain.OpSign, "Place signatures, text or images on a PDF. Elements come from --options-file.", func(f *optionFlags, o *domain.SignOptions) {
			f.BoolPtr("perform-ocr", "Make the signed PDF searchable.", &o.PerformOCR)
		}),
		newOperationCommand(rootCmd, domain.OpOCR, "Recognize the text of a PDF or image.", func(f *optionFlags, o *domain.OCROptions) {
			f.String("language", "Recognition language. Default eng.", &o.Language)
			enumFlag(f, "format", "Output format (text, searchablePdf). Default searchablePdf.", &o.OutputFormat)
		}),
		newOperationCommand(rootCmd, domain.OpEdit, "Apply edits to a PDF. Edits come from --options-file.", func(*optionFlags, *domain.EditOptions) {}),
		newOperationCommand(rootCmd, domain.OpRedact, "Black out areas of a PDF. Redactions come from --options-file.", func(*optionFlags, *domain.RedactOptions) {}),
		newOperationCommand(rootCmd, domain.OpRepair, "Repair a damaged PDF.", func(f *optionFlags, o *domain.RepairOptions) {
			enumFlag(f, "mode", "Repair mode (standard, advanced). Default standard.", &o.Mode)
		}),
		newOperationCommand(rootCmd, domain.OpPageNumber, "Add page numbers to a PDF.", func(f *optionFlags, o *domain.PageNumberOptions) {
			enumFlag(f, "format", "Number format (numeric, roman, alphabetic). Default numeric.", &o.Format)
			f.String("position", "Position on the page. Default bottom-center.", &o.Position)
			f.IntPtr("start", "First page number. Default 1.", &o.StartNumber)
			f.String("font-family", "Font family. Default Helvetica.", &o.FontFamily)
			f.IntPtr("font-size", "Font size, 8-72. Default 12.", &o.FontSize)
			f.String("color", "Text color. Default #000000.", &o.Color)
			f.String("prefix", "Text before the number.", &o.Prefix)
			f.String("suffix", "Text after the number.", &o.Suffix)
			f.IntPtr("margin-x", "Horizontal margin. Default 40.", &o.MarginX)
			f.IntPtr("margin-y", "Vertical margin. Default 30.", &o.MarginY)
			f.BoolPtr("skip-first-page", "Do not number the first page.", &o.SkipFirstPage)
			f.String("pages", "Pages to number (e.g. 1-3,5). All pages by default.", &o.SelectedPages)
		}),
	}
}
