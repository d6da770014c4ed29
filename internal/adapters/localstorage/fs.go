package localstorage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage implements ports.Storage for the local filesystem.
type LocalStorage struct {
	// BaseDir holds one directory per job with its request and result.
	BaseDir string
	// OutputDir receives downloaded result files.
	OutputDir string
}

// NewLocalStorage creates a new LocalStorage instance.
func NewLocalStorage(baseDir, outputDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir, OutputDir: outputDir}
}

// InitJob creates the job directory.
func (s *LocalStorage) InitJob(ctx context.Context, jobID string) error {
	path := s.GetJobPath(jobID)
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create job directory %s: %w", path, err)
	}
	return nil
}

// SaveRequest saves the job input description.
func (s *LocalStorage) SaveRequest(ctx context.Context, jobID string, data []byte) error {
	path := filepath.Join(s.GetJobPath(jobID), "request.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to save request.json: %w", err)
	}
	return nil
}

// SaveResult saves the result envelope.
func (s *LocalStorage) SaveResult(ctx context.Context, jobID string, data []byte) error {
	path := filepath.Join(s.GetJobPath(jobID), "result.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to save result.json: %w", err)
	}
	return nil
}

// Save writes a downloaded result into the output directory.
// The file appears under its final name only once fully written.
func (s *LocalStorage) Save(ctx context.Context, filename string, reader io.Reader) (string, error) {
	if err := os.MkdirAll(s.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", s.OutputDir, err)
	}
	path := s.PathFor(filename)

	tmp, err := os.CreateTemp(s.OutputDir, ".download-*")
	if err != nil {
		return "", fmt.Errorf("failed to create file for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, reader); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", path, err)
	}
	return path, nil
}

// PathFor returns where Save stores filename. Directory components are dropped.
func (s *LocalStorage) PathFor(filename string) string {
	name := filepath.Base(filepath.Clean("/" + filename))
	if name == "/" || name == "." {
		name = "result"
	}
	return filepath.Join(s.OutputDir, name)
}

// GetJobPath returns the path for a job directory.
func (s *LocalStorage) GetJobPath(jobID string) string {
	return filepath.Join(s.BaseDir, "jobs", jobID)
}
