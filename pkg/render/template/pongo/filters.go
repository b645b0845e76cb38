package pongo

import (
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

var filtersOnce sync.Once

// pongo2 filters are process-wide.
func registerFilters() {
	filtersOnce.Do(func() {
		if !pongo2.FilterExists("cssvar") {
			_ = pongo2.RegisterFilter("cssvar", filterCSSVar)
		}
	})
}

// filterCSSVar turns a custom property name into a var() reference, adding
// the leading dashes when missing: {{ "color-primary-500"|cssvar }}.
func filterCSSVar(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	name := CSSIdent(in.String())
	if name == "" {
		return pongo2.AsValue(""), nil
	}
	if !strings.HasPrefix(name, "--") {
		name = "--" + name
	}
	return pongo2.AsValue("var(" + name + ")"), nil
}

// CSSIdent lowercases s and drops everything but letters, digits, hyphens
// and underscores, so values can be used in class and property names.
func CSSIdent(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '.':
			b.WriteByte('-')
		}
	}
	return b.String()
}
