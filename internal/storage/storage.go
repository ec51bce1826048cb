package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/nfrund/goby-db/internal/schema"
)

// AferoStore stores files on an afero filesystem. Use afero.NewOsFs in
// production and afero.NewMemMapFs in tests.
type AferoStore struct {
	fs afero.Fs
}

var _ Store = (*AferoStore)(nil)

// NewAferoStore creates a new AferoStore.
func NewAferoStore(fs afero.Fs) *AferoStore {
	return &AferoStore{fs: fs}
}

// Save writes the content of the reader to path, creating parent directories.
func (s *AferoStore) Save(ctx context.Context, path string, reader io.Reader) (int64, error) {
	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, err
	}
	f, err := s.fs.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return io.Copy(f, reader)
}

// Open opens a file for reading.
func (s *AferoStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	return s.fs.OpenFile(path, os.O_RDONLY, 0)
}

// Delete removes a file.
func (s *AferoStore) Delete(ctx context.Context, path string) error {
	return s.fs.Remove(path)
}

// SaveConfig writes cfg to path as a schema document. The format is taken
// from the file extension.
func SaveConfig(ctx context.Context, s Store, path string, cfg *schema.Config) error {
	format, err := schema.FormatFromPath(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := schema.Encode(&buf, cfg, format); err != nil {
		return err
	}

	n, err := s.Save(ctx, path, &buf)
	if err != nil {
		return fmt.Errorf("failed to save schema document %s: %w", path, err)
	}
	slog.DebugContext(ctx, "Schema document saved", "path", path, "format", format, "bytes", n)
	return nil
}

// LoadConfig reads a schema document from path. The format is taken from
// the file extension.
func LoadConfig(ctx context.Context, s Store, path string) (*schema.Config, error) {
	format, err := schema.FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := s.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schema document %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := schema.Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load schema document %s: %w", path, err)
	}
	return cfg, nil
}
