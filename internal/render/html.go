package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/recapio/recap/internal/traverse"
)

// htmlFormat renders each category as an unordered list. The first
// sibling opens <ul id="<category>">, every entry opens an <li> whose
// children (rendered between the two passes) nest inside it, and pass
// 1 closes the <li>, plus the <ul> on the last sibling. Balanced
// markup falls out of the two-pass contract.
func htmlFormat(cat string, entry map[string]any, depth int, ctx *traverse.Context) string {
	st := ctx.States[depth]
	info, ok := categories[cat]
	if !ok {
		return ""
	}

	if st.Pass == 1 {
		if st.Last {
			return "</li></ul>"
		}
		return "</li>"
	}

	var b strings.Builder
	if st.First {
		fmt.Fprintf(&b, "<ul id=%q>", cat)
	}
	b.WriteString("<li>")

	label := html.EscapeString(info.label(entry))
	if link := stringOf(entry, info.link); link != "" {
		fmt.Fprintf(&b, "<a href=%q>%s</a>", link, label)
	} else {
		b.WriteString(label)
	}
	if ctx.Description {
		if d := stringOf(entry, info.desc); d != "" {
			fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(d))
		}
	}
	return b.String()
}
