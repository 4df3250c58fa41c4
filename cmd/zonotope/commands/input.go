package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/zonotope/matrix"
)

// loadGenerators reads a generator file; "-" reads from in. The document
// is either a bare sequence of rows or a mapping with a "generators" key.
// Each entry is taken by its text, so 0.1 means exactly 1/10.
func loadGenerators(path string, in io.Reader) (*matrix.Generators, error) {
	// 1. Read
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read generators %s: %w", path, err)
	}

	// 2. Decode either layout
	var doc any
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse generators %s: %w", path, err)
	}
	if m, ok := doc.(map[string]any); ok {
		doc = m["generators"]
	}
	rows, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("generators %s: expected a list of rows", path)
	}

	// 3. Entries as text
	text := make([][]string, len(rows))
	for i, r := range rows {
		row, ok := r.([]any)
		if !ok {
			return nil, fmt.Errorf("generators %s: row %d is not a list", path, i)
		}
		text[i] = make([]string, len(row))
		for j, v := range row {
			if v == nil {
				return nil, fmt.Errorf("generators %s: row %d entry %d is empty", path, i, j)
			}
			text[i][j] = fmt.Sprint(v)
		}
	}

	return matrix.FromStrings(text)
}
