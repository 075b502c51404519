package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Gavin1937/dirComp/pkg/models"
)

// WriteJSON serializes the result as indented JSON to w. Map keys are
// emitted in sorted order, so the document is stable across runs.
func WriteJSON(w io.Writer, result *models.ComparisonResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

// WriteJSONFile writes the result to path as indented JSON. The
// document is marshaled fully before the file is touched and lands via
// rename, so an aborted run never leaves a partial output file.
func WriteJSONFile(path string, result *models.ComparisonResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".dircomp-*.json")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close output file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to finalize output file: %w", err)
	}

	return nil
}
