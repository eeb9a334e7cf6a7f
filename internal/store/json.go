package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/evcraddock/visitor-register/internal/visitor"
)

// JSONFile stores the record set as a pretty-printed JSON array.
type JSONFile struct {
	path   string
	backup bool
	now    func() time.Time
}

// NewJSONFile creates a JSON file store at path. When backup is set, a
// file that no longer parses is copied aside before Save replaces it.
func NewJSONFile(path string, backup bool) *JSONFile {
	return &JSONFile{path: path, backup: backup, now: time.Now}
}

// Load reads the backing file. A missing, empty, or malformed file yields
// an empty set; malformed content is reported through slog.
func (s *JSONFile) Load() visitor.RecordSet {
	records, err := s.read()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("visitors file unreadable, treating as empty", "path", s.path, "error", err)
		}
		return visitor.RecordSet{}
	}
	return records
}

// Save writes the full set, replacing the backing file.
func (s *JSONFile) Save(records visitor.RecordSet) error {
	if records == nil {
		records = visitor.RecordSet{}
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: marshaling visitors: %w", visitor.ErrStorage, err)
	}
	data = append(data, '\n')

	if s.backup {
		if err := s.backupCorrupt(); err != nil {
			return fmt.Errorf("%w: backing up visitors file: %w", visitor.ErrStorage, err)
		}
	}

	if err := writeFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing visitors file: %w", visitor.ErrStorage, err)
	}
	return nil
}

var errEmptyFile = errors.New("empty file")

func (s *JSONFile) read() (visitor.RecordSet, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errEmptyFile
	}

	var records visitor.RecordSet
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing visitors file: %w", err)
	}
	if records == nil {
		records = visitor.RecordSet{}
	}
	return records, nil
}

// backupCorrupt copies an existing, non-empty, unparseable file to
// <path>.corrupt-<timestamp>.
func (s *JSONFile) backupCorrupt() error {
	_, err := s.read()
	if err == nil || errors.Is(err, fs.ErrNotExist) || errors.Is(err, errEmptyFile) {
		return nil
	}

	dst := fmt.Sprintf("%s.corrupt-%s", s.path, s.now().Format("20060102150405"))
	if err := copyFile(s.path, dst); err != nil {
		return err
	}
	slog.Warn("backed up unreadable visitors file", "path", s.path, "backup", dst)
	return nil
}
