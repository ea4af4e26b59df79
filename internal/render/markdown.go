package render

import (
	"strings"

	"github.com/recapio/recap/internal/traverse"
)

// markdownFormat renders non-leaf entries as depth-scaled headings and
// leaf entries as list items. Pass 1 closes a heading's section after
// its children and terminates a list after its last item.
func markdownFormat(cat string, entry map[string]any, depth int, ctx *traverse.Context) string {
	st := ctx.States[depth]
	info, ok := categories[cat]
	if !ok {
		return ""
	}

	if st.Pass == 1 {
		if st.Leaf && st.Last {
			return "\n"
		}
		return ""
	}

	label := info.label(entry)
	if link := stringOf(entry, info.link); link != "" {
		label = "[" + label + "](" + link + ")"
	}

	if st.Leaf {
		item := "- " + label + "\n"
		if ctx.Description {
			if d := stringOf(entry, info.desc); d != "" {
				item += "  " + d + "\n"
			}
		}
		return item
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("#", depth+1))
	b.WriteString(" ")
	b.WriteString(label)
	b.WriteString("\n\n")
	if ctx.Description {
		if d := stringOf(entry, info.desc); d != "" {
			b.WriteString(d)
			b.WriteString("\n\n")
		}
	}
	return b.String()
}
