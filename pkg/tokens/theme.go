package tokens

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/goliatone/go-brandkit/pkg/brand"
	"github.com/goliatone/go-brandkit/pkg/color"
)

// ErrMissingPrimary is returned when the brand has no primary colour.
var ErrMissingPrimary = errors.New("tokens: primary color is required")

// Role names a semantic colour family.
type Role string

const (
	RolePrimary   Role = "primary"
	RoleSecondary Role = "secondary"
	RoleAccent    Role = "accent"
	RoleNeutral   Role = "neutral"
	RoleSuccess   Role = "success"
	RoleWarning   Role = "warning"
	RoleError     Role = "error"
	RoleInfo      Role = "info"
)

// Roles lists every colour role in output order.
var Roles = []Role{
	RolePrimary, RoleSecondary, RoleAccent, RoleNeutral,
	RoleSuccess, RoleWarning, RoleError, RoleInfo,
}

// Status colours shared by every brand.
const (
	SuccessColor = "#10B981"
	WarningColor = "#F59E0B"
	ErrorColor   = "#EF4444"
	InfoColor    = "#3B82F6"
)

// Hue offsets used to derive missing palette roles from the primary hue,
// and the fixed neutral tint.
const (
	secondaryHueOffset = 180.0
	accentHueOffset    = 120.0
	neutralSaturation  = 10.0
	neutralLightness   = 46.0
)

// Token is a named design value.
type Token struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Typography holds the derived type tokens.
type Typography struct {
	Body        string  `json:"body"`
	Heading     string  `json:"heading"`
	Mono        string  `json:"mono"`
	BaseSize    int     `json:"base_size"`
	Sizes       []Token `json:"sizes"`
	LineHeights []Token `json:"line_heights"`
}

// Theme is the full token set generated for one brand.
type Theme struct {
	BrandID    string               `json:"brand_id,omitempty"`
	BrandName  string               `json:"brand_name"`
	Colors     map[Role]color.Scale `json:"colors"`
	Surfaces   []Token              `json:"surfaces"`
	Dark       []Token              `json:"dark"`
	Contrast   []Token              `json:"contrast"`
	Typography Typography           `json:"typography"`
	Spacing    []Token              `json:"spacing"`
	Shadows    []Token              `json:"shadows"`
	Radii      []Token              `json:"radii"`
	// CSSVars is the flat custom property map, keys including the leading
	// dashes.
	CSSVars map[string]string `json:"css_vars"`
	// LogoMarkup is the sanitised inline SVG logo, empty for referenced logos.
	LogoMarkup string `json:"logo_markup,omitempty"`
}

// Generate derives a Theme from cfg. The primary colour is required; absent
// secondary and accent colours are derived from the primary hue.
func Generate(cfg brand.Config) (Theme, error) {
	cfg = cfg.Normalized()
	if !cfg.Colors.Primary.IsSet() {
		return Theme{}, ErrMissingPrimary
	}
	primary, err := color.HexToHSL(cfg.Colors.Primary.Hex)
	if err != nil {
		return Theme{}, fmt.Errorf("tokens: primary: %w", err)
	}

	bases := map[Role]string{
		RolePrimary: cfg.Colors.Primary.Hex,
		RoleNeutral: color.HSLToHex(color.HSL{H: primary.H, S: neutralSaturation, L: neutralLightness}),
		RoleSuccess: SuccessColor,
		RoleWarning: WarningColor,
		RoleError:   ErrorColor,
		RoleInfo:    InfoColor,
	}
	bases[RoleSecondary], err = roleBase("secondary", cfg.Colors.Secondary, primary, secondaryHueOffset)
	if err != nil {
		return Theme{}, err
	}
	bases[RoleAccent], err = roleBase("accent", cfg.Colors.Accent, primary, accentHueOffset)
	if err != nil {
		return Theme{}, err
	}

	theme := Theme{
		BrandID:   cfg.ID,
		BrandName: cfg.Name,
		Colors:    make(map[Role]color.Scale, len(Roles)),
	}
	for _, role := range Roles {
		scale, err := color.GenerateScale(bases[role])
		if err != nil {
			return Theme{}, fmt.Errorf("tokens: %s scale: %w", role, err)
		}
		theme.Colors[role] = scale
	}

	theme.Surfaces, theme.Dark, theme.Contrast = surfaceTokens(theme.Colors)
	theme.Typography = typographyTokens(cfg.Typography)
	theme.Spacing = spacingTokens()
	theme.Shadows = shadowTokens(theme.Colors[RoleNeutral][color.Stop900])
	theme.Radii = radiusTokens()
	if brand.IsInlineSVG(cfg.Logo.Source) {
		theme.LogoMarkup = brand.SanitizeSVG(cfg.Logo.Source)
	}
	theme.CSSVars = tokenMap(theme.Vars())
	return theme, nil
}

func roleBase(name string, swatch brand.Swatch, primary color.HSL, offset float64) (string, error) {
	if swatch.IsSet() {
		if _, err := color.HexToRGB(swatch.Hex); err != nil {
			return "", fmt.Errorf("tokens: %s: %w", name, err)
		}
		return swatch.Hex, nil
	}
	derived := primary
	derived.H = math.Mod(primary.H+offset, 360)
	return color.HSLToHex(derived), nil
}

// surfaceTokens derives light, dark and high-contrast semantic colours from
// the neutral and primary scales.
func surfaceTokens(colors map[Role]color.Scale) (light, dark, contrast []Token) {
	neutral, primary := colors[RoleNeutral], colors[RolePrimary]
	onPrimary := "#FFFFFF"
	if rgb, err := color.HexToRGB(primary.Base()); err == nil {
		onPrimary = color.BestTextColor(rgb).Hex()
	}

	light = []Token{
		{Name: "background", Value: "#FFFFFF"},
		{Name: "surface", Value: neutral[color.Stop50]},
		{Name: "text", Value: neutral[color.Stop900]},
		{Name: "text-muted", Value: neutral[color.Stop600]},
		{Name: "border", Value: neutral[color.Stop200]},
		{Name: "focus-ring", Value: primary[color.Stop500]},
		{Name: "on-primary", Value: onPrimary},
	}
	dark = []Token{
		{Name: "background", Value: neutral[color.Stop950]},
		{Name: "surface", Value: neutral[color.Stop900]},
		{Name: "text", Value: neutral[color.Stop50]},
		{Name: "text-muted", Value: neutral[color.Stop400]},
		{Name: "border", Value: neutral[color.Stop800]},
		{Name: "focus-ring", Value: primary[color.Stop400]},
	}
	contrast = []Token{
		{Name: "text", Value: "#000000"},
		{Name: "text-muted", Value: neutral[color.Stop800]},
		{Name: "border", Value: neutral[color.Stop700]},
		{Name: "focus-ring", Value: primary[color.Stop700]},
	}
	return light, dark, contrast
}

// Vars returns every custom property in stylesheet order.
func (t Theme) Vars() []Token {
	var vars []Token
	for _, role := range Roles {
		scale := t.Colors[role]
		for _, stop := range color.Stops {
			vars = append(vars, Token{Name: colorVar(role, stop), Value: scale[stop]})
		}
	}
	vars = append(vars, prefixed("--color-", t.Surfaces)...)
	vars = append(vars,
		Token{Name: "--font-body", Value: t.Typography.Body},
		Token{Name: "--font-heading", Value: t.Typography.Heading},
		Token{Name: "--font-mono", Value: t.Typography.Mono},
	)
	vars = append(vars, prefixed("--font-size-", t.Typography.Sizes)...)
	vars = append(vars, prefixed("--line-height-", t.Typography.LineHeights)...)
	vars = append(vars, prefixed("--spacing-", t.Spacing)...)
	vars = append(vars, prefixed("--shadow-", t.Shadows)...)
	vars = append(vars, prefixed("--radius-", t.Radii)...)
	return vars
}

func colorVar(role Role, stop color.Stop) string {
	return "--color-" + string(role) + "-" + strconv.Itoa(int(stop))
}

func prefixed(prefix string, tokens []Token) []Token {
	out := make([]Token, len(tokens))
	for i, tok := range tokens {
		out[i] = Token{Name: prefix + tok.Name, Value: tok.Value}
	}
	return out
}

func tokenMap(tokens []Token) map[string]string {
	out := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		out[tok.Name] = tok.Value
	}
	return out
}
