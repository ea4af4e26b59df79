// Package traverse implements the category traversal engine: a
// two-pass depth-first walk over a nested dataset driven by a
// run-time chain of category names.
//
// The dataset is schemaless (map[string]any as produced by a JSON
// parse). At each depth the current chain name selects an array of
// entry objects on the current node. Every entry is visited exactly
// twice, once before its children (pass 0, "open") and once after
// (pass 1, "close"), which lets renderers emit balanced nested markup
// without lookahead.
package traverse

import (
	"fmt"
	"strings"
)

// RenderFunc produces one output fragment per visit. It is called
// twice per entry (see Context.Pass for the current depth) and must
// return an empty string for categories it does not recognize.
type RenderFunc func(category string, entry map[string]any, depth int, ctx *Context) string

// State is the traversal state for one depth of the chain. It is
// valid only while an entry at that depth is being visited and is
// fully overwritten before each use.
type State struct {
	// First and Last mark the entry's position among its siblings.
	// A single-entry array sets both.
	First bool
	Last  bool
	// Leaf is true when there is nothing to descend into: the chain
	// ends at this depth, or the next category's field is absent,
	// not an array, or an empty array. Renderers see one flag for
	// both conditions.
	Leaf bool
	// Pass is 0 before descending into children, 1 after.
	Pass int
}

// Context carries per-call traversal state into the render callback.
// A fresh Context must be allocated for every top-level walk; nothing
// in it survives the call.
type Context struct {
	chain []string
	// States is indexed by depth. States[d] describes the entry
	// currently being visited at depth d.
	States []State
	// Description mirrors the caller's option of the same name.
	Description bool
}

// NewContext allocates traversal state sized to the chain.
func NewContext(chain []string, description bool) *Context {
	return &Context{
		chain:       chain,
		States:      make([]State, len(chain)),
		Description: description,
	}
}

// ChainLen returns the category chain's length. Renderers use it to
// special-case single-depth chains (no nested separator rules apply).
func (c *Context) ChainLen() int {
	return len(c.chain)
}

// InvalidInputError reports a dataset that cannot be traversed: an
// empty chain, or a root node whose first-category field is not an
// array.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid input: field %q %s", e.Field, e.Reason)
}

// ParseChain splits a colon-delimited chain descriptor into category
// names, dropping empty segments. A blank descriptor yields nil.
func ParseChain(s string) []string {
	var chain []string
	for _, part := range strings.Split(s, ":") {
		if part = strings.TrimSpace(part); part != "" {
			chain = append(chain, part)
		}
	}
	return chain
}

// Walk visits every entry reachable through the chain twice and
// returns the render fragments concatenated in visitation order.
//
// The root must hold a non-null array under chain[0]; an empty array
// is valid and produces no fragments. Panics raised by fn propagate
// to the caller; the engine performs no recovery and no retries.
func Walk(root map[string]any, chain []string, fn RenderFunc, ctx *Context) (string, error) {
	if len(chain) == 0 {
		return "", &InvalidInputError{Reason: "empty category chain"}
	}
	if _, ok := root[chain[0]].([]any); !ok {
		return "", &InvalidInputError{Field: chain[0], Reason: "is not an array"}
	}
	var b strings.Builder
	walk(&b, root, chain, 0, fn, ctx)
	return b.String(), nil
}

func walk(b *strings.Builder, node map[string]any, chain []string, depth int, fn RenderFunc, ctx *Context) {
	entries, _ := node[chain[depth]].([]any)
	for i, el := range entries {
		entry, _ := el.(map[string]any)

		leaf := depth+1 >= len(chain)
		if !leaf {
			// A present-but-empty child array is still a leaf;
			// only a non-empty array triggers descent.
			children, ok := entry[chain[depth+1]].([]any)
			leaf = !ok || len(children) == 0
		}

		ctx.States[depth] = State{
			First: i == 0,
			Last:  i == len(entries)-1,
			Leaf:  leaf,
		}
		b.WriteString(fn(chain[depth], entry, depth, ctx))

		if !leaf {
			walk(b, entry, chain, depth+1, fn, ctx)
		}

		ctx.States[depth].Pass = 1
		b.WriteString(fn(chain[depth], entry, depth, ctx))
	}
}
