// Package tabular reads and writes delimited text tables.
package tabular

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ReadFile loads every row of the CSV file at path, header included.
func ReadFile(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file)
}

// Read loads every row from r. Rows may have differing field counts.
func Read(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, fields)
	}
	return rows, nil
}

// Write emits header (when non-empty) followed by rows to w.
func Write(w io.Writer, header []string, rows [][]string) error {
	csvWriter := csv.NewWriter(w)
	if len(header) > 0 {
		if err := csvWriter.Write(header); err != nil {
			return err
		}
	}
	if err := csvWriter.WriteAll(rows); err != nil {
		return err
	}
	return csvWriter.Error()
}

// WriteFile persists header and rows to path atomically.
func WriteFile(path string, header []string, rows [][]string) error {
	return WriteFileAtomic(path, func(w io.Writer) error {
		return Write(w, header, rows)
	})
}

// WriteFileAtomic streams write into a temporary file next to path and
// renames it into place once everything is flushed, so readers never see a
// half-written file.
func WriteFileAtomic(path string, write func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	buf := bufio.NewWriter(tmp)
	if err = write(buf); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move %s into place: %w", path, err)
	}
	return nil
}
