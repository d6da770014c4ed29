package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scanpro/internal/core/domain"
	"scanpro/internal/validation"
)

func sizedFile(name string, size int64) domain.UploadFile {
	f := domain.FileFromBytes(name, nil)
	f.Size = size
	return f
}

func TestValidateFile(t *testing.T) {
	tests := map[string]struct {
		op     domain.Operation
		file   domain.UploadFile
		expKey string
	}{
		"A PDF of exactly 10MB should pass.": {
			op:   domain.OpCompress,
			file: sizedFile("a.pdf", validation.MaxFileSize),
		},

		"A PDF one byte over 10MB should fail.": {
			op:     domain.OpCompress,
			file:   sizedFile("a.pdf", validation.MaxFileSize+1),
			expKey: "validation.fileTooLarge",
		},

		"A PDF one byte under 10MB should pass.": {
			op:   domain.OpCompress,
			file: sizedFile("a.pdf", validation.MaxFileSize-1),
		},

		"An upper case extension should pass.": {
			op:   domain.OpRotate,
			file: sizedFile("SCAN.PDF", 10),
		},

		"A document for a PDF operation should fail.": {
			op:     domain.OpProtect,
			file:   sizedFile("a.docx", 10),
			expKey: "validation.pdfOnly",
		},

		"A document should be accepted for conversion.": {
			op:   domain.OpConvert,
			file: sizedFile("a.docx", 10),
		},

		"An archive should not be accepted for conversion.": {
			op:     domain.OpConvert,
			file:   sizedFile("a.zip", 10),
			expKey: "validation.unsupportedConversion",
		},

		"An image should be accepted for OCR.": {
			op:   domain.OpOCR,
			file: sizedFile("scan.png", 10),
		},

		"A document should not be accepted for OCR.": {
			op:     domain.OpOCR,
			file:   sizedFile("a.doc", 10),
			expKey: "validation.ocrInput",
		},

		"A file without name should fail.": {
			op:     domain.OpRepair,
			file:   domain.UploadFile{Size: 10},
			expKey: "validation.fileRequired",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := validation.ValidateFile(test.op, test.file)
			if test.expKey == "" {
				assert.NoError(t, err)
				return
			}

			var verr *validation.Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, test.expKey, verr.Key)
			assert.True(t, errors.Is(err, validation.ErrNotValid))
		})
	}
}

func TestValidateFileSizeMessage(t *testing.T) {
	err := validation.ValidateFileSize(validation.MaxFileSize + 1)
	require.Error(t, err)
	assert.Equal(t, "File size should be less than 10MB", err.Error())
}

func TestFileExtension(t *testing.T) {
	tests := map[string]string{
		"report.pdf":     "pdf",
		"Photo.JPEG":     "jpeg",
		"archive.tar.gz": "gz",
		"README":         "",
		"trailing.":      "",
		"":               "",
	}

	for in, exp := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, exp, validation.FileExtension(in))
		})
	}
}

func TestConvertOutputs(t *testing.T) {
	tests := map[string]struct {
		ext string
		exp []string
	}{
		"PDF inputs can go to every format except PDF.": {
			ext: "pdf",
			exp: []string{"docx", "xlsx", "pptx", "rtf", "txt", "html", "jpg", "jpeg", "png"},
		},
		"Images can go to PDF or other images.": {
			ext: "png",
			exp: []string{"pdf", "jpg", "jpeg", "png"},
		},
		"Text documents stay text documents.": {
			ext: "docx",
			exp: []string{"pdf", "docx", "txt", "rtf"},
		},
		"Spreadsheets go to PDF or xlsx.": {
			ext: "xls",
			exp: []string{"pdf", "xlsx"},
		},
		"Presentations go to PDF or pptx.": {
			ext: "PPTX",
			exp: []string{"pdf", "pptx"},
		},
		"Unknown inputs get every format.": {
			ext: "html",
			exp: validation.ConversionOutputs,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.exp, validation.ConvertOutputs(test.ext))
		})
	}

	// The shared list must not be modified by the filtering.
	assert.Contains(t, validation.ConversionOutputs, "pdf")
}

func TestDefaultConvertOutput(t *testing.T) {
	assert.Equal(t, "docx", validation.DefaultConvertOutput("pdf"))
	assert.Equal(t, "pdf", validation.DefaultConvertOutput("png"))
}

func TestParsePageRanges(t *testing.T) {
	tests := map[string]struct {
		ranges string
		total  int
		exp    []int
	}{
		"Empty input":              {ranges: "", total: 10, exp: []int{}},
		"Single pages":             {ranges: "3,1", total: 10, exp: []int{1, 3}},
		"Ranges and pages":         {ranges: "1-3, 5", total: 10, exp: []int{1, 2, 3, 5}},
		"Duplicates are merged":    {ranges: "1-3,2-4,3", total: 10, exp: []int{1, 2, 3, 4}},
		"Out of range is skipped":  {ranges: "0,4,11,9-12", total: 10, exp: []int{4}},
		"Malformed parts skipped":  {ranges: "a,2-b,3-1,7", total: 10, exp: []int{7}},
		"Whitespace is ignored":    {ranges: " 2 - 3 ", total: 10, exp: []int{2, 3}},
		"No pages in the document": {ranges: "1", total: 0, exp: []int{}},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.exp, validation.ParsePageRanges(test.ranges, test.total))
		})
	}
}
