package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gst-rates/models"
)

// JSONStore reads and writes the extracted rate table as a pretty-printed
// JSON array.
type JSONStore struct {
	path string
}

// NewJSONStore returns a store backed by the file at path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the backing file path.
func (s *JSONStore) Path() string {
	return s.path
}

// WriteRecords replaces the file with records, indented by two spaces and
// newline terminated. The parent directory is created if needed. The file is
// written to a temporary sibling first and renamed into place, so readers
// never observe a partial file.
func (s *JSONStore) WriteRecords(records []models.RawGoodsRateRecord) error {
	if records == nil {
		records = []models.RawGoodsRateRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("json: encode records: %w", err)
	}

	return writeFileAtomic(s.path, buf.Bytes())
}

// ReadRecords loads the whole file.
func (s *JSONStore) ReadRecords() ([]models.RawGoodsRateRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("json: read %q: %w", s.path, err)
	}

	var records []models.RawGoodsRateRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("json: decode %q: %w", s.path, err)
	}
	if records == nil {
		records = []models.RawGoodsRateRecord{}
	}
	return records, nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("json: create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("json: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("json: write %q: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("json: close %q: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("json: chmod %q: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("json: replace %q: %w", path, err)
	}
	return nil
}
