package render

import (
	"fmt"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"
)

// encodeJSON serializes the whole data node directly; the json format
// never walks the category chain. Keys are sorted so identical inputs
// encode byte-identically.
func encodeJSON(data map[string]any) (string, error) {
	b, err := oj.Marshal(data, &ojg.Options{Sort: true, Indent: 2})
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}
	return string(b), nil
}
