package render

import (
	"fmt"
	"strconv"
	"strings"
)

// category describes how the built-in renderers read entries of one
// category: which field labels the entry, which holds a link target
// and which holds secondary descriptive text.
type category struct {
	label func(entry map[string]any) string
	link  string
	desc  string
}

// categories is the table of known category names. Renderers return an
// empty fragment for names not listed here, so new upstream categories
// degrade to silence instead of errors.
var categories = map[string]category{
	"orgs":          {label: field("name"), link: "html_url", desc: "description"},
	"repos":         {label: field("name"), link: "html_url", desc: "description"},
	"teams":         {label: field("name"), link: "html_url", desc: "description"},
	"collaborators": {label: field("login"), link: "html_url"},
	"contributors":  {label: field("login"), link: "html_url"},
	"members":       {label: field("login"), link: "html_url"},
	"owners":        {label: field("login"), link: "html_url"},
	"ratelimit":     {label: rateLimitLabel},
}

func field(name string) func(map[string]any) string {
	return func(entry map[string]any) string {
		return stringOf(entry, name)
	}
}

// stringOf reads a string field, returning "" for absent or
// non-string values.
func stringOf(entry map[string]any, name string) string {
	if name == "" {
		return ""
	}
	s, _ := entry[name].(string)
	return s
}

// rateLimitLabel summarizes a rate-limit entry's core and search
// windows, e.g. "core 4999/5000 resets 1372700873".
func rateLimitLabel(entry map[string]any) string {
	parts := make([]string, 0, 2)
	for _, window := range []string{"core", "search"} {
		w, ok := entry[window].(map[string]any)
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s/%s resets %s",
			window, numberOf(w["remaining"]), numberOf(w["limit"]), numberOf(w["reset"])))
	}
	return strings.Join(parts, ", ")
}

// numberOf formats a JSON numeric value. ojg parses integers as int64,
// encoding/json as float64; literal test fixtures use int.
func numberOf(v any) string {
	switch n := v.(type) {
	case int64:
		return strconv.FormatInt(n, 10)
	case int:
		return strconv.Itoa(n)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return "?"
	}
}
