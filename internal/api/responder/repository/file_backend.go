package responderRepository

import (
	"fmt"
	"os"
	"path/filepath"
)

type fileBackend struct {
	path string
}

// NewFileBackend stores the document as a single JSON file. Writes go
// through a temp file plus rename so a reader never sees a partial write.
func NewFileBackend(path string) DocumentBackend {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return &fileBackend{path: abs}
}

func (b *fileBackend) Read() ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return data, nil
}

func (b *fileBackend) Write(data []byte) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create document directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(b.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp document: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp document: %w", err)
	}

	if err := os.Rename(tmpName, b.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace document: %w", err)
	}

	return nil
}

func (b *fileBackend) Exists() bool {
	_, err := os.Stat(b.path)
	return err == nil
}

func (b *fileBackend) Location() string {
	return b.path
}
