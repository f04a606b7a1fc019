package roadgrid

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/gridroute/pkg/solver"
)

// =============================================================================
// Solve Result Serialization
// =============================================================================

// MarshalResult converts a solve result to indented JSON bytes.
func MarshalResult(res solver.Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, res); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteResult writes a solve result as JSON to an io.Writer.
func WriteResult(res solver.Result, w io.Writer) error {
	return writeJSON(w, res)
}

// WriteResultFile writes a solve result to a JSON file.
// The file is created with 0644 permissions.
func WriteResultFile(res solver.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeJSON(f, res)
}

// ReadResult decodes a JSON solve result from an io.Reader.
func ReadResult(r io.Reader) (solver.Result, error) {
	var res solver.Result
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return solver.Result{}, fmt.Errorf("decode: %w", err)
	}
	return res, nil
}

// ReadResultFile reads a JSON file produced by [WriteResultFile].
func ReadResultFile(path string) (solver.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return solver.Result{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadResult(f)
}

// =============================================================================
// Road Grid Serialization
// =============================================================================

// MarshalGrid converts a road grid to indented JSON bytes. Cells off the
// path serialize as null, matching the frontend's "no data" contract.
func MarshalGrid(cells [][]*CellData) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, cells); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGrid writes a road grid as JSON to an io.Writer.
func WriteGrid(cells [][]*CellData, w io.Writer) error {
	return writeJSON(w, cells)
}

// WriteGridFile writes a road grid to a JSON file.
func WriteGridFile(cells [][]*CellData, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeJSON(f, cells)
}

// ReadGrid decodes a JSON road grid from an io.Reader.
func ReadGrid(r io.Reader) ([][]*CellData, error) {
	var cells [][]*CellData
	if err := json.NewDecoder(r).Decode(&cells); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return cells, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
