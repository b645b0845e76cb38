package brand

import (
	"strings"

	"github.com/goliatone/go-brandkit/pkg/color"
)

// Config is a tenant's brand configuration.
type Config struct {
	ID         string     `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	Colors     Colors     `json:"colors" yaml:"colors"`
	Typography Typography `json:"typography" yaml:"typography"`
	Logo       Logo       `json:"logo" yaml:"logo"`
}

// Colors holds the brand palette roles.
type Colors struct {
	Primary   Swatch `json:"primary" yaml:"primary"`
	Secondary Swatch `json:"secondary,omitempty" yaml:"secondary,omitempty"`
	Accent    Swatch `json:"accent,omitempty" yaml:"accent,omitempty"`
}

// Swatch stores the actual colour value next to an optional display
// gradient, so consumers never have to recover a colour from a gradient
// class name or CSS string.
type Swatch struct {
	Hex      string `json:"hex" yaml:"hex"`
	Gradient string `json:"gradient,omitempty" yaml:"gradient,omitempty"`
}

// Typography describes the brand type choices.
type Typography struct {
	Family        string `json:"family" yaml:"family"`
	HeadingFamily string `json:"heading_family,omitempty" yaml:"heading_family,omitempty"`
	// BaseSize is the body font size in pixels. Zero means the 16px default.
	BaseSize int `json:"base_size,omitempty" yaml:"base_size,omitempty"`
}

// Logo is already-resolved logo metadata.
type Logo struct {
	// Source is a URL, asset reference or inline SVG markup.
	Source   string `json:"source,omitempty" yaml:"source,omitempty"`
	AltText  string `json:"alt_text,omitempty" yaml:"alt_text,omitempty"`
	Width    int    `json:"width,omitempty" yaml:"width,omitempty"`
	Height   int    `json:"height,omitempty" yaml:"height,omitempty"`
	Initials string `json:"initials,omitempty" yaml:"initials,omitempty"`
	// TextColor is the colour the logo text/initials are drawn in on top of
	// the primary colour. Empty means DefaultLogoTextColor.
	TextColor string `json:"text_color,omitempty" yaml:"text_color,omitempty"`
}

// DefaultLogoTextColor is used when Logo.TextColor is empty.
const DefaultLogoTextColor = "#FFFFFF"

// IsSet reports whether the swatch carries a colour value.
func (s Swatch) IsSet() bool {
	return strings.TrimSpace(s.Hex) != ""
}

// Valid reports whether the swatch colour parses as hex.
func (s Swatch) Valid() bool {
	return color.IsValidHex(s.Hex)
}

// HasLogo reports whether the logo has either a source or fallback initials.
func (l Logo) HasLogo() bool {
	return strings.TrimSpace(l.Source) != "" || strings.TrimSpace(l.Initials) != ""
}

// EffectiveTextColor returns TextColor or DefaultLogoTextColor.
func (l Logo) EffectiveTextColor() string {
	if c := strings.TrimSpace(l.TextColor); c != "" {
		return c
	}
	return DefaultLogoTextColor
}

// HasDimensions reports whether both width and height are positive.
func (l Logo) HasDimensions() bool {
	return l.Width > 0 && l.Height > 0
}

// IsVector reports whether the logo source is SVG (inline or by extension).
func (l Logo) IsVector() bool {
	src := strings.ToLower(strings.TrimSpace(l.Source))
	if src == "" {
		return false
	}
	if IsInlineSVG(src) {
		return true
	}
	if idx := strings.IndexAny(src, "?#"); idx >= 0 {
		src = src[:idx]
	}
	return strings.HasSuffix(src, ".svg") || strings.HasPrefix(src, "data:image/svg+xml")
}

// Swatches returns the set palette colours in role order (primary,
// secondary, accent).
func (c Colors) Swatches() []Swatch {
	out := make([]Swatch, 0, 3)
	for _, s := range []Swatch{c.Primary, c.Secondary, c.Accent} {
		if s.IsSet() {
			out = append(out, s)
		}
	}
	return out
}

// Normalized returns a copy with whitespace trimmed and every valid colour in
// canonical #RRGGBB form. Invalid colours are kept verbatim so validation can
// report them.
func (c Config) Normalized() Config {
	out := c
	out.ID = strings.TrimSpace(c.ID)
	out.Name = strings.TrimSpace(c.Name)
	out.Colors.Primary = c.Colors.Primary.normalized()
	out.Colors.Secondary = c.Colors.Secondary.normalized()
	out.Colors.Accent = c.Colors.Accent.normalized()
	out.Typography.Family = strings.TrimSpace(c.Typography.Family)
	out.Typography.HeadingFamily = strings.TrimSpace(c.Typography.HeadingFamily)
	out.Logo.Source = strings.TrimSpace(c.Logo.Source)
	out.Logo.AltText = strings.TrimSpace(c.Logo.AltText)
	out.Logo.Initials = strings.TrimSpace(c.Logo.Initials)
	out.Logo.TextColor = normalizeHex(c.Logo.TextColor)
	return out
}

func (s Swatch) normalized() Swatch {
	return Swatch{
		Hex:      normalizeHex(s.Hex),
		Gradient: strings.TrimSpace(s.Gradient),
	}
}

func normalizeHex(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if normalized, err := color.NormalizeHex(trimmed); err == nil {
		return normalized
	}
	return trimmed
}
