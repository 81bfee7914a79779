package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/tuinput/input"
	"github.com/zjrosen/tuinput/internal/log"
)

// StateFormat is the on-disk encoding of a snapshot file.
type StateFormat string

const (
	FormatYAML StateFormat = "yaml"
	FormatJSON StateFormat = "json"
)

// ParseStateFormat validates a --format flag value.
func ParseStateFormat(s string) (StateFormat, error) {
	switch StateFormat(strings.ToLower(s)) {
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q (must be \"yaml\" or \"json\")", s)
	}
}

// FormatForPath picks the encoding from the file extension:
// .json is JSON, anything else is YAML.
func FormatForPath(path string) StateFormat {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// LoadSnapshot reads the snapshot stored at path without repairing it.
func LoadSnapshot(path string) (input.Snapshot, error) {
	var s input.Snapshot

	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from config or flags
	if err != nil {
		return s, fmt.Errorf("reading state: %w", err)
	}

	switch FormatForPath(path) {
	case FormatJSON:
		err = json.Unmarshal(data, &s)
	default:
		err = yaml.Unmarshal(data, &s)
	}
	if err != nil {
		return s, fmt.Errorf("parsing state %s: %w", path, err)
	}
	return s, nil
}

// LoadState restores the input stored at path. A missing file yields an
// empty input. An out-of-range cursor is clamped.
func LoadState(path string) (*input.Input, error) {
	s, err := LoadSnapshot(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug(log.CatState, "No state file, starting empty", "path", path)
		return input.New(), nil
	}
	if err != nil {
		log.ErrorErr(log.CatState, "Failed to load state", err, "path", path)
		return nil, err
	}

	if fixed := s.Repaired(); fixed != s {
		log.Warn(log.CatState, "Repaired state on load", "path", path, "cursor", s.Cursor, "clamped", fixed.Cursor)
	}
	return input.FromSnapshot(s), nil
}

// EncodeState renders the snapshot of in in the given format.
func EncodeState(in *input.Input, format StateFormat) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(in.Snapshot(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling state: %w", err)
		}
		return append(data, '\n'), nil
	default:
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(in); err != nil {
			return nil, fmt.Errorf("marshaling state: %w", err)
		}
		_ = encoder.Close()
		return buf.Bytes(), nil
	}
}

// SaveState writes the snapshot of in to path, in the format implied by the
// extension. The write is atomic (write to temp, then rename).
func SaveState(path string, in *input.Input) error {
	data, err := EncodeState(in, FormatForPath(path))
	if err != nil {
		return err
	}
	if err := writeAtomic(path, data); err != nil {
		log.ErrorErr(log.CatState, "Failed to save state", err, "path", path)
		return err
	}
	log.Debug(log.CatState, "Saved state", "path", path, "cursor", in.Cursor())
	return nil
}

// RepairState clamps the cursor of the snapshot at path and rewrites the
// file when it changed. It reports whether a rewrite happened.
func RepairState(path string) (bool, error) {
	s, err := LoadSnapshot(path)
	if err != nil {
		return false, err
	}
	if s.Repaired() == s {
		return false, nil
	}
	if err := SaveState(path, input.FromSnapshot(s)); err != nil {
		return false, err
	}
	log.Info(log.CatState, "Repaired state file", "path", path)
	return true, nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".tuinput.state.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
