// Package render maps format names to render callbacks and drives the
// traversal engine for a selected format.
package render

import (
	"fmt"
	"sort"

	"github.com/recapio/recap/api"
	"github.com/recapio/recap/internal/traverse"
)

// DefaultFormat is the baseline format a zero-config registry starts on.
const DefaultFormat = "text"

// EncodeFunc serializes the whole data node directly, bypassing the
// traversal engine. The json format uses this.
type EncodeFunc func(data map[string]any) (string, error)

// Format is one registered output format. Exactly one of the two
// fields should be set: Entry for per-entry two-pass rendering, Encode
// for whole-document serialization. Encode wins when both are set.
type Format struct {
	Entry  traverse.RenderFunc
	Encode EncodeFunc
}

// UnknownFormatError reports a format name with no registered renderer.
type UnknownFormatError struct {
	Name string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown format %q", e.Name)
}

// Registry holds the named formats and the active-format selection.
//
// The active format is expected to be set by a single caller before a
// batch of Transform calls; it is not guarded for concurrent mutation.
// Transform itself allocates all per-call state, so concurrent calls
// with explicit overrides are safe.
type Registry struct {
	formats map[string]Format
	active  string
}

// NewRegistry builds a registry with the built-in formats (text,
// markdown, html, json) merged with extra (extra overrides built-ins),
// starting on the given active format. An active name that resolves to
// no format fails with *UnknownFormatError.
func NewRegistry(active string, extra map[string]Format) (*Registry, error) {
	r := &Registry{
		formats: map[string]Format{
			"text":     {Entry: textFormat},
			"markdown": {Entry: markdownFormat},
			"html":     {Entry: htmlFormat},
			"json":     {Encode: encodeJSON},
		},
	}
	for name, f := range extra {
		r.formats[name] = f
	}
	if active == "" {
		active = DefaultFormat
	}
	if err := r.SetActive(active); err != nil {
		return nil, err
	}
	return r, nil
}

// Register adds or overwrites a named format.
func (r *Registry) Register(name string, f Format) {
	r.formats[name] = f
}

// SetActive selects the format used when a Transform call carries no
// override.
func (r *Registry) SetActive(name string) error {
	if _, ok := r.formats[name]; !ok {
		return &UnknownFormatError{Name: name}
	}
	r.active = name
	return nil
}

// Active returns the current active format name.
func (r *Registry) Active() string {
	return r.active
}

// Names returns the registered format names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Transform renders data in opts.Format (falling back to the active
// format) and returns the result. The category chain is read from the
// data node's api.ChainField descriptor. Traversal state is freshly
// allocated per call; nothing persists across calls except the active
// format selection.
func (r *Registry) Transform(data map[string]any, opts api.Options) (string, error) {
	name := opts.Format
	if name == "" {
		name = r.active
	}
	f, ok := r.formats[name]
	if !ok {
		return "", &UnknownFormatError{Name: name}
	}
	if f.Encode != nil {
		return f.Encode(data)
	}

	descriptor, _ := data[api.ChainField].(string)
	chain := traverse.ParseChain(descriptor)
	ctx := traverse.NewContext(chain, opts.Description)
	return traverse.Walk(data, chain, f.Entry, ctx)
}
