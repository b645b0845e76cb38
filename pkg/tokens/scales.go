package tokens

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-brandkit/pkg/brand"
	"github.com/goliatone/go-brandkit/pkg/color"
)

// Type scale policy: a major-third ratio around the body size, expressed in
// rem against the browser's 16px default.
const (
	defaultBaseSize = 16
	minBaseSize     = 12
	maxBaseSize     = 24
	typeScaleRatio  = 1.25
	remBase         = 16.0
)

var typeSteps = []struct {
	name string
	exp  int
}{
	{"xs", -2}, {"sm", -1}, {"base", 0}, {"lg", 1},
	{"xl", 2}, {"2xl", 3}, {"3xl", 4}, {"4xl", 5},
}

const (
	systemFontStack = `system-ui, -apple-system, "Segoe UI", Roboto, sans-serif`
	monoFontStack   = `ui-monospace, SFMono-Regular, Menlo, Consolas, monospace`
)

var genericFamilies = map[string]struct{}{
	"serif": {}, "sans-serif": {}, "monospace": {}, "cursive": {},
	"fantasy": {}, "system-ui": {}, "ui-sans-serif": {}, "ui-serif": {},
	"ui-monospace": {}, "ui-rounded": {}, "emoji": {}, "math": {},
}

func typographyTokens(typo brand.Typography) Typography {
	base := typo.BaseSize
	switch {
	case base == 0:
		base = defaultBaseSize
	case base < minBaseSize:
		base = minBaseSize
	case base > maxBaseSize:
		base = maxBaseSize
	}

	body := fontStack(typo.Family, systemFontStack)
	heading := body
	if strings.TrimSpace(typo.HeadingFamily) != "" {
		heading = fontStack(typo.HeadingFamily, body)
	}

	sizes := make([]Token, len(typeSteps))
	for i, step := range typeSteps {
		px := float64(base) * math.Pow(typeScaleRatio, float64(step.exp))
		sizes[i] = Token{Name: step.name, Value: rem(px / remBase)}
	}

	return Typography{
		Body:     body,
		Heading:  heading,
		Mono:     monoFontStack,
		BaseSize: base,
		Sizes:    sizes,
		LineHeights: []Token{
			{Name: "tight", Value: "1.25"},
			{Name: "snug", Value: "1.375"},
			{Name: "normal", Value: "1.5"},
			{Name: "relaxed", Value: "1.625"},
		},
	}
}

// fontStack turns a comma separated family list into a CSS font-family
// value, appending fallback when the list has no generic family. Names that
// are not plain CSS identifiers are emitted as escaped CSS strings, so a
// family can never terminate the declaration it lands in.
func fontStack(raw, fallback string) string {
	var parts []string
	generic := false
	for _, part := range strings.Split(raw, ",") {
		name := strings.Trim(strings.TrimSpace(part), `"'`)
		if name == "" {
			continue
		}
		if _, ok := genericFamilies[strings.ToLower(name)]; ok {
			generic = true
			parts = append(parts, strings.ToLower(name))
			continue
		}
		if !isCSSIdent(name) {
			name = cssString(name)
		}
		parts = append(parts, name)
	}
	if len(parts) == 0 {
		return fallback
	}
	if !generic {
		parts = append(parts, fallback)
	}
	return strings.Join(parts, ", ")
}

// isCSSIdent reports whether name can be written as a bare family name.
func isCSSIdent(name string) bool {
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-' || r == '_'):
		default:
			return false
		}
	}
	return name != ""
}

// cssString quotes s as a CSS string. Quotes and backslashes are escaped
// with a backslash; control characters and '<' use hex escapes so the value
// cannot break out of a <style> element either.
func cssString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '"' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r < 0x20 || r == 0x7f || r == '<':
			fmt.Fprintf(&b, "\\%x ", r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

var spacingSteps = []int{0, 1, 2, 3, 4, 5, 6, 8, 10, 12, 16, 20, 24}

func spacingTokens() []Token {
	out := make([]Token, len(spacingSteps))
	for i, step := range spacingSteps {
		value := "0"
		if step > 0 {
			value = rem(float64(step) * 0.25)
		}
		out[i] = Token{Name: strconv.Itoa(step), Value: value}
	}
	return out
}

// shadowTokens tints the shadow scale with the brand's darkest neutral.
func shadowTokens(tint string) []Token {
	rgb, err := color.HexToRGB(tint)
	if err != nil {
		rgb = color.RGB{}
	}
	c := func(alpha string) string {
		return fmt.Sprintf("rgb(%d %d %d / %s)", rgb.R, rgb.G, rgb.B, alpha)
	}
	return []Token{
		{Name: "sm", Value: "0 1px 2px 0 " + c("0.05")},
		{Name: "md", Value: "0 4px 6px -1px " + c("0.1") + ", 0 2px 4px -2px " + c("0.1")},
		{Name: "lg", Value: "0 10px 15px -3px " + c("0.1") + ", 0 4px 6px -4px " + c("0.1")},
		{Name: "xl", Value: "0 20px 25px -5px " + c("0.1") + ", 0 8px 10px -6px " + c("0.1")},
	}
}

func radiusTokens() []Token {
	return []Token{
		{Name: "none", Value: "0"},
		{Name: "sm", Value: "0.125rem"},
		{Name: "md", Value: "0.375rem"},
		{Name: "lg", Value: "0.5rem"},
		{Name: "xl", Value: "0.75rem"},
		{Name: "full", Value: "9999px"},
	}
}

func rem(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64) + "rem"
}
