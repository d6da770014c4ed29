package scanpro

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"

	"scanpro/internal/core/domain"
)

// Form is an ordered multipart payload of string fields and files.
type Form struct {
	parts []part
}

type part struct {
	name  string
	value string
	file  *domain.UploadFile
}

// NewForm returns an empty form.
func NewForm() *Form {
	return &Form{}
}

// Set appends a string field. Repeated names are kept in order.
func (f *Form) Set(name, value string) {
	f.parts = append(f.parts, part{name: name, value: value})
}

// SetInt appends an integer field.
func (f *Form) SetInt(name string, v int) {
	f.Set(name, strconv.Itoa(v))
}

// SetFloat appends a number field using the shortest representation ("0.5", "2").
func (f *Form) SetFloat(name string, v float64) {
	f.Set(name, strconv.FormatFloat(v, 'f', -1, 64))
}

// SetBool appends "true" or "false".
func (f *Form) SetBool(name string, v bool) {
	f.Set(name, strconv.FormatBool(v))
}

// SetJSON appends v encoded as JSON in a single field.
func (f *Form) SetJSON(name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	f.Set(name, string(data))
	return nil
}

// AddFile appends a file part.
func (f *Form) AddFile(name string, file domain.UploadFile) {
	f.parts = append(f.parts, part{name: name, file: &file})
}

// Value returns the first value of a string field.
func (f *Form) Value(name string) (string, bool) {
	for _, p := range f.parts {
		if p.name == name && p.file == nil {
			return p.value, true
		}
	}
	return "", false
}

// Fields returns the string fields, keyed by name.
func (f *Form) Fields() map[string][]string {
	out := make(map[string][]string)
	for _, p := range f.parts {
		if p.file == nil {
			out[p.name] = append(out[p.name], p.value)
		}
	}
	return out
}

// Files returns the names of the attached files per field.
func (f *Form) Files() map[string][]string {
	out := make(map[string][]string)
	for _, p := range f.parts {
		if p.file != nil {
			out[p.name] = append(out[p.name], p.file.Name)
		}
	}
	return out
}

// encode renders the form as a multipart/form-data body.
func (f *Form) encode() (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	for _, p := range f.parts {
		if p.file == nil {
			if err := w.WriteField(p.name, p.value); err != nil {
				return nil, "", fmt.Errorf("failed to write field %s: %w", p.name, err)
			}
			continue
		}
		if err := writeFile(w, p.name, *p.file); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart body: %w", err)
	}
	return body, w.FormDataContentType(), nil
}

func writeFile(w *multipart.Writer, field string, file domain.UploadFile) error {
	if file.Open == nil {
		return fmt.Errorf("file %s has no content", file.Name)
	}
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", file.Name, err)
	}
	defer src.Close()

	dst, err := w.CreateFormFile(field, file.Name)
	if err != nil {
		return fmt.Errorf("failed to create part for %s: %w", file.Name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to read %s: %w", file.Name, err)
	}
	return nil
}
