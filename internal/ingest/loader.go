// Package ingest loads normalized datasets for rendering: JSON files
// through a billy filesystem, and record snapshots from SQLite
// databases written by the upstream crawler.
package ingest

import (
	"fmt"
	"io"

	billy "github.com/go-git/go-billy/v5"
	"github.com/ohler55/ojg/oj"
)

// LoadJSON reads and parses a dataset file. The root of the file must
// be a JSON object (the node carrying the chain descriptor and the
// first category's array).
func LoadJSON(fs billy.Filesystem, path string) (map[string]any, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return parseDataset(raw, path)
}

func parseDataset(raw []byte, origin string) (map[string]any, error) {
	parsed, err := oj.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", origin, err)
	}
	data, ok := parsed.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("dataset %s: root is not an object", origin)
	}
	return data, nil
}
