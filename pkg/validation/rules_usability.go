package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/goliatone/go-brandkit/pkg/brand"
	"github.com/goliatone/go-brandkit/pkg/color"
)

// Brand name length bounds, in runes.
const (
	minBrandNameLength = 2
	maxBrandNameLength = 30
)

// Logo geometry bounds, in pixels.
const (
	minLogoAspectRatio = 0.25
	maxLogoAspectRatio = 4.0
	minLogoSide        = 32
	maxLogoSide        = 2048
)

type brandNameLengthRule struct{}

func (brandNameLengthRule) Info() RuleInfo {
	return RuleInfo{
		ID:       RuleBrandNameLength,
		Name:     "Brand name length",
		Category: CategoryUsability,
		Severity: SeverityError,
	}
}

func (brandNameLengthRule) Evaluate(cfg brand.Config, _ Context) (Result, error) {
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		return Incomplete("brand name"), nil
	}
	n := len([]rune(name))
	switch {
	case n < minBrandNameLength:
		return Fail(fmt.Sprintf("brand name is %d character long; at least %d are required", n, minBrandNameLength),
			"Use the full brand name rather than a single letter"), nil
	case n > maxBrandNameLength:
		return Fail(fmt.Sprintf("brand name is %d characters long; at most %d fit navigation and tab titles", n, maxBrandNameLength),
			"Use a shorter display name and keep the legal name elsewhere"), nil
	}
	return Pass(fmt.Sprintf("brand name length %d is within %d-%d characters", n, minBrandNameLength, maxBrandNameLength)), nil
}

const allowedNamePunctuation = "&.'-!,+ "

type brandNameCharactersRule struct{}

func (brandNameCharactersRule) Info() RuleInfo {
	return RuleInfo{
		ID:       RuleBrandNameCharacters,
		Name:     "Brand name character set",
		Category: CategoryUsability,
		Severity: SeverityWarning,
	}
}

func (brandNameCharactersRule) Evaluate(cfg brand.Config, _ Context) (Result, error) {
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		return Skip("no brand name to check"), nil
	}
	if brand.ContainsMarkup(name) {
		return Fail("brand name contains HTML markup", "Remove tags from the name; style it with CSS instead"), nil
	}

	var offending []string
	seen := make(map[rune]struct{})
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || strings.ContainsRune(allowedNamePunctuation, r) {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		offending = append(offending, fmt.Sprintf("%q", r))
	}
	if len(offending) > 0 {
		return Fail(fmt.Sprintf("brand name contains unsupported characters: %s", strings.Join(offending, ", ")),
			"Limit the name to letters, digits, spaces and & . ' - ! , +"), nil
	}
	return Pass("brand name uses a portable character set"), nil
}

type logoAspectRatioRule struct{}

func (logoAspectRatioRule) Info() RuleInfo {
	return RuleInfo{
		ID:       RuleLogoAspectRatio,
		Name:     "Logo aspect ratio",
		Category: CategoryUsability,
		Severity: SeverityWarning,
	}
}

func (logoAspectRatioRule) Evaluate(cfg brand.Config, _ Context) (Result, error) {
	logo := cfg.Logo
	if logo.Source == "" || !logo.HasDimensions() {
		return Skip("logo dimensions unknown"), nil
	}
	ratio := float64(logo.Width) / float64(logo.Height)
	if ratio < minLogoAspectRatio || ratio > maxLogoAspectRatio {
		return Fail(fmt.Sprintf("logo aspect ratio %.2f is outside %.2f-%.0f", ratio, minLogoAspectRatio, maxLogoAspectRatio),
			"Provide a logo variant closer to square or a standard horizontal lockup"), nil
	}
	return Pass(fmt.Sprintf("logo aspect ratio %.2f fits headers and avatars", ratio)), nil
}

type logoSizeBoundsRule struct{}

func (logoSizeBoundsRule) Info() RuleInfo {
	return RuleInfo{
		ID:       RuleLogoSizeBounds,
		Name:     "Logo size bounds",
		Category: CategoryUsability,
		Severity: SeverityWarning,
	}
}

func (logoSizeBoundsRule) Evaluate(cfg brand.Config, _ Context) (Result, error) {
	logo := cfg.Logo
	if logo.Source == "" || !logo.HasDimensions() {
		return Skip("logo dimensions unknown"), nil
	}
	short, long := logo.Width, logo.Height
	if short > long {
		short, long = long, short
	}
	switch {
	case short < minLogoSide:
		return Fail(fmt.Sprintf("logo is %dx%d; the shorter side is below %dpx", logo.Width, logo.Height, minLogoSide),
			fmt.Sprintf("Upload a logo at least %dpx on its shorter side", minLogoSide)), nil
	case long > maxLogoSide:
		return Fail(fmt.Sprintf("logo is %dx%d; the longer side exceeds %dpx", logo.Width, logo.Height, maxLogoSide),
			fmt.Sprintf("Resize the logo to at most %dpx to keep page weight down", maxLogoSide)), nil
	}
	return Pass(fmt.Sprintf("logo size %dx%d is within bounds", logo.Width, logo.Height)), nil
}

// Minimum luminance contrast a red/green colour pair needs to stay
// distinguishable without hue, by strictness.
var colorBlindMinContrast = map[Strictness]float64{
	StrictnessRelaxed:  2.0,
	StrictnessStandard: 3.0,
	StrictnessStrict:   4.5,
}

const chromaticSaturation = 25.0

// colorBlindSafetyRule flags red/green palette pairs that differ mostly by
// hue, the combination protanopes and deuteranopes confuse.
type colorBlindSafetyRule struct{}

func (colorBlindSafetyRule) Info() RuleInfo {
	return RuleInfo{
		ID:       RuleColorBlindSafety,
		Name:     "Color-blind safety",
		Category: CategoryUsability,
		Severity: SeverityWarning,
	}
}

type namedColor struct {
	role string
	rgb  color.RGB
	hsl  color.HSL
}

func paletteColors(colors brand.Colors) []namedColor {
	roles := []struct {
		name   string
		swatch brand.Swatch
	}{
		{"primary", colors.Primary},
		{"secondary", colors.Secondary},
		{"accent", colors.Accent},
	}
	var out []namedColor
	for _, role := range roles {
		if !role.swatch.IsSet() {
			continue
		}
		rgb, err := color.HexToRGB(role.swatch.Hex)
		if err != nil {
			continue
		}
		out = append(out, namedColor{role: role.name, rgb: rgb, hsl: color.RGBToHSL(rgb)})
	}
	return out
}

func isRedHue(c namedColor) bool {
	return c.hsl.S >= chromaticSaturation && (c.hsl.H < 30 || c.hsl.H >= 330)
}

func isGreenHue(c namedColor) bool {
	return c.hsl.S >= chromaticSaturation && c.hsl.H >= 75 && c.hsl.H < 165
}

func (colorBlindSafetyRule) Evaluate(cfg brand.Config, vctx Context) (Result, error) {
	palette := paletteColors(cfg.Colors)
	if len(palette) < 2 {
		return Skip("color-blind safety needs at least two valid palette colors"), nil
	}
	minimum := colorBlindMinContrast[vctx.ContrastStrictness()]

	var conflicts []string
	for i := 0; i < len(palette); i++ {
		for j := i + 1; j < len(palette); j++ {
			a, b := palette[i], palette[j]
			redGreen := (isRedHue(a) && isGreenHue(b)) || (isGreenHue(a) && isRedHue(b))
			if !redGreen {
				continue
			}
			if ratio := color.ContrastRatio(a.rgb, b.rgb); ratio < minimum {
				conflicts = append(conflicts, fmt.Sprintf("%s/%s (%.2f:1)", a.role, b.role, ratio))
			}
		}
	}
	if len(conflicts) > 0 {
		return Fail(
			fmt.Sprintf("red/green pairs are hard to tell apart for color-blind users: %s", strings.Join(conflicts, ", ")),
			fmt.Sprintf("Increase lightness contrast between the pair to at least %.1f:1 or pair the colors with icons or labels", minimum),
		), nil
	}
	return Pass("palette does not rely on red/green hue differences alone"), nil
}
