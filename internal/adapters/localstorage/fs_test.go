package localstorage_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scanpro/internal/adapters/localstorage"
)

func TestLocalStorageJob(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	base := t.TempDir()
	s := localstorage.NewLocalStorage(base, filepath.Join(base, "out"))

	require.NoError(s.InitJob(ctx, "job-1"))
	require.NoError(s.SaveRequest(ctx, "job-1", []byte(`{"job_id":"job-1"}`)))
	require.NoError(s.SaveResult(ctx, "job-1", []byte(`{"success":true}`)))

	jobDir := filepath.Join(base, "jobs", "job-1")
	assert.Equal(t, jobDir, s.GetJobPath("job-1"))

	req, err := os.ReadFile(filepath.Join(jobDir, "request.json"))
	require.NoError(err)
	assert.JSONEq(t, `{"job_id":"job-1"}`, string(req))

	res, err := os.ReadFile(filepath.Join(jobDir, "result.json"))
	require.NoError(err)
	assert.JSONEq(t, `{"success":true}`, string(res))
}

func TestLocalStorageSave(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")
	s := localstorage.NewLocalStorage(t.TempDir(), out)

	tests := map[string]struct {
		filename string
		expPath  string
	}{
		"A plain name should be kept.": {
			filename: "report.pdf",
			expPath:  filepath.Join(out, "report.pdf"),
		},
		"Directories should be dropped.": {
			filename: "../../etc/passwd",
			expPath:  filepath.Join(out, "passwd"),
		},
		"An empty name should get a default.": {
			filename: "",
			expPath:  filepath.Join(out, "result"),
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			assert.Equal(t, test.expPath, s.PathFor(test.filename))

			path, err := s.Save(context.Background(), test.filename, strings.NewReader("content"))
			require.NoError(err)
			assert.Equal(t, test.expPath, path)

			data, err := os.ReadFile(path)
			require.NoError(err)
			assert.Equal(t, "content", string(data))
		})
	}

	// No temporary files are left behind.
	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".download-"), e.Name())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestLocalStorageSaveFailure(t *testing.T) {
	out := t.TempDir()
	s := localstorage.NewLocalStorage(t.TempDir(), out)

	_, err := s.Save(context.Background(), "report.pdf", failingReader{})
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(out, "report.pdf"))
	assert.True(t, os.IsNotExist(statErr))
}
