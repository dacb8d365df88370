package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// ErrInvalidBackup is returned by Import when the payload does not
// look like an exported document.
var ErrInvalidBackup = errors.New("invalid backup file")

// Export writes the exact serialized document, human-readable.
func (s *Store) Export(w io.Writer) error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize document: %w", err)
	}
	if _, err := w.Write(append(raw, '\n')); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

// ExportFile writes the backup into dir, named with today's date, and
// returns the file path.
func (s *Store) ExportFile(dir string) (string, error) {
	name := fmt.Sprintf("lazybear_backup_%s.json", time.Now().Format("2006-01-02"))
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create backup file: %w", err)
	}
	defer f.Close()
	if err := s.Export(f); err != nil {
		return "", err
	}
	return path, nil
}

// Import replaces the document with a previously exported one. The
// payload is valid iff its top-level `tasks` field exists and is an
// array; it is then merged with a freshly computed default document so
// schema backfill applies to imports too. On failure nothing mutates.
func (s *Store) Import(ctx context.Context, r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	// A null tasks field unmarshals into a nil slice without error, so
	// it has to be rejected explicitly: the field must be an actual
	// array.
	var tasks []json.RawMessage
	field, ok := top["tasks"]
	if !ok || string(field) == "null" || json.Unmarshal(field, &tasks) != nil {
		return fmt.Errorf("%w: missing tasks list", ErrInvalidBackup)
	}

	doc, err := mergeWithDefaults(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	s.data = doc
	s.Save(ctx)
	return nil
}
