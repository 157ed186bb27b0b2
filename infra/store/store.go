package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/model"
)

// ErrSerialization indicates a missing, unreadable or malformed artifact.
var ErrSerialization = errors.New("serialization error")

const indent = "    "

// WriteRawResults writes the alpha result sets as indented JSON.
func WriteRawResults(w io.Writer, sets []model.AlphaResultSet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	if err := enc.Encode(sets); err != nil {
		return fmt.Errorf("%w: encode raw results: %v", ErrSerialization, err)
	}
	return nil
}

// ReadRawResults decodes alpha result sets. Unknown fields are rejected.
func ReadRawResults(r io.Reader) ([]model.AlphaResultSet, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var sets []model.AlphaResultSet
	if err := dec.Decode(&sets); err != nil {
		return nil, fmt.Errorf("%w: decode raw results: %v", ErrSerialization, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after raw results", ErrSerialization)
	}
	if sets == nil {
		return nil, fmt.Errorf("%w: raw results artifact is null", ErrSerialization)
	}
	return sets, nil
}

// WriteReport writes the report entries as indented JSON with sorted keys.
func WriteReport(w io.Writer, entries []model.ReportEntry) error {
	if entries == nil {
		entries = []model.ReportEntry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("%w: encode report: %v", ErrSerialization, err)
	}
	return nil
}

// ReadReport decodes report entries.
func ReadReport(r io.Reader) ([]model.ReportEntry, error) {
	var entries []model.ReportEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: decode report: %v", ErrSerialization, err)
	}
	return entries, nil
}

// SaveRawResults writes the raw results artifact to path.
func SaveRawResults(path string, sets []model.AlphaResultSet) error {
	return writeFile(path, func(w io.Writer) error { return WriteRawResults(w, sets) })
}

// LoadRawResults reads the raw results artifact at path.
func LoadRawResults(path string) ([]model.AlphaResultSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	defer func() { _ = f.Close() }()
	return ReadRawResults(f)
}

// SaveReport writes the report artifact to path.
func SaveReport(path string, entries []model.ReportEntry) error {
	return writeFile(path, func(w io.Writer) error { return WriteReport(w, entries) })
}

// writeFile writes through a temporary file renamed into place so readers
// never observe a partial artifact.
func writeFile(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
