package validation

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-brandkit/pkg/brand"
	"github.com/goliatone/go-brandkit/pkg/color"
)

// Minimum harmony score accepted, by strictness. Unclassified palettes
// score at least 70, so relaxed only rejects near-identical hue sets and
// strict accepts analogous palettes and better.
var harmonyMinScore = map[Strictness]float64{
	StrictnessRelaxed:  70,
	StrictnessStandard: 75,
	StrictnessStrict:   85,
}

// Colours below this saturation have no meaningful hue and are left out of
// harmony scoring.
const harmonySaturationFloor = 10.0

type colorHarmonyRule struct{}

func (colorHarmonyRule) Info() RuleInfo {
	return RuleInfo{
		ID:       RuleColorHarmony,
		Name:     "Color harmony",
		Category: CategoryDesign,
		Severity: SeverityWarning,
	}
}

func (colorHarmonyRule) Evaluate(cfg brand.Config, vctx Context) (Result, error) {
	var hues []float64
	for _, c := range paletteColors(cfg.Colors) {
		if c.hsl.S >= harmonySaturationFloor {
			hues = append(hues, c.hsl.H)
		}
	}
	if len(hues) < 2 {
		return Skip("color harmony needs at least two chromatic palette colors"), nil
	}

	harmony, err := color.ScoreHarmony(hues...)
	if err != nil {
		return Result{}, err
	}
	minimum := harmonyMinScore[vctx.EffectiveStrictness()]
	if harmony.Score < minimum {
		return Fail(
			fmt.Sprintf("palette harmony score %.0f (%s) is below %.0f", harmony.Score, harmony.Relationship, minimum),
			"Pick secondary and accent hues that are analogous (within 60°), complementary (about 180°) or triadic (about 120°) to the primary",
		), nil
	}
	return Pass(fmt.Sprintf("palette harmony score %.0f (%s)", harmony.Score, harmony.Relationship)), nil
}

// Body size bounds, in pixels.
const (
	minBaseFontSize = 12
	maxBaseFontSize = 24
	maxTypefaces    = 2
)

type typographyConsistencyRule struct{}

func (typographyConsistencyRule) Info() RuleInfo {
	return RuleInfo{
		ID:       RuleTypographyConsistency,
		Name:     "Typography consistency",
		Category: CategoryDesign,
		Severity: SeverityWarning,
	}
}

func (typographyConsistencyRule) Evaluate(cfg brand.Config, _ Context) (Result, error) {
	typo := cfg.Typography
	body := fontStack(typo.Family)
	heading := fontStack(typo.HeadingFamily)
	if len(body) == 0 && len(heading) == 0 && typo.BaseSize == 0 {
		return Skip("no typography configured"), nil
	}

	var issues []string
	if len(body) == 0 && len(heading) > 0 {
		issues = append(issues, "a heading font is set without a body font")
	}
	if typo.BaseSize != 0 && (typo.BaseSize < minBaseFontSize || typo.BaseSize > maxBaseFontSize) {
		issues = append(issues, fmt.Sprintf("base size %dpx is outside %d-%dpx", typo.BaseSize, minBaseFontSize, maxBaseFontSize))
	}

	faces := make(map[string]struct{})
	for _, name := range append(append([]string(nil), body...), heading...) {
		if isGenericFamily(name) {
			continue
		}
		faces[strings.ToLower(name)] = struct{}{}
	}
	if len(faces) > maxTypefaces {
		issues = append(issues, fmt.Sprintf("%d custom typefaces are in use; at most %d keep the system consistent", len(faces), maxTypefaces))
	}

	if len(issues) > 0 {
		return Fail("typography is inconsistent: "+strings.Join(issues, "; "),
			"Use one body face and at most one heading face, with a 12-24px body size"), nil
	}
	return Pass("typography choices are consistent"), nil
}

// brandCompletenessRule requires the elements every rendered brand needs.
// Missing fields are reported here as an ordinary failing result.
type brandCompletenessRule struct{}

func (brandCompletenessRule) Info() RuleInfo {
	return RuleInfo{
		ID:       RuleBrandCompleteness,
		Name:     "Brand element completeness",
		Category: CategoryDesign,
		Severity: SeverityError,
	}
}

func (brandCompletenessRule) Evaluate(cfg brand.Config, _ Context) (Result, error) {
	var missing []string
	if strings.TrimSpace(cfg.Name) == "" {
		missing = append(missing, "brand name")
	}
	if !cfg.Colors.Primary.IsSet() {
		missing = append(missing, "primary color")
	}
	if !cfg.Logo.HasLogo() {
		missing = append(missing, "logo or fallback initials")
	}
	if len(missing) > 0 {
		res := Incomplete(strings.Join(missing, ", "))
		if len(missing) > 1 {
			res.Message = "configuration incomplete: " + strings.Join(missing, ", ") + " are required"
		}
		return res, nil
	}

	var invalid []string
	for _, role := range []struct {
		name   string
		swatch brand.Swatch
	}{
		{"primary", cfg.Colors.Primary},
		{"secondary", cfg.Colors.Secondary},
		{"accent", cfg.Colors.Accent},
	} {
		if role.swatch.IsSet() && !role.swatch.Valid() {
			invalid = append(invalid, fmt.Sprintf("%s %q", role.name, role.swatch.Hex))
		}
	}
	if len(invalid) > 0 {
		return Result{
			Code:       CodeInvalidColor,
			Message:    "invalid brand colors: " + strings.Join(invalid, ", "),
			Suggestion: "Use 3- or 6-digit hex values such as #3B82F6",
		}, nil
	}
	return Pass("brand name, primary color and logo are present"), nil
}
