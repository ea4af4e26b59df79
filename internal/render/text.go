package render

import (
	"strings"

	"github.com/recapio/recap/internal/traverse"
)

// textFormat renders entries as indented plain-text lines, two spaces
// per depth. Flat output needs no closing markup, so pass 1 only emits
// the blank-line separator between top-level groups of a multi-depth
// chain; single-depth chains stay a plain line list.
func textFormat(cat string, entry map[string]any, depth int, ctx *traverse.Context) string {
	st := ctx.States[depth]
	if st.Pass == 1 {
		if depth == 0 && ctx.ChainLen() > 1 && !st.Last {
			return "\n"
		}
		return ""
	}
	info, ok := categories[cat]
	if !ok {
		return ""
	}

	indent := strings.Repeat("  ", depth)
	var b strings.Builder
	b.WriteString(indent)
	b.WriteString(info.label(entry))
	b.WriteString("\n")
	if ctx.Description {
		if d := stringOf(entry, info.desc); d != "" {
			b.WriteString(indent)
			b.WriteString(d)
			b.WriteString("\n")
		}
	}
	return b.String()
}
