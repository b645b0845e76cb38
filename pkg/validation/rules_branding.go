package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/goliatone/go-brandkit/pkg/brand"
)

var placeholderNames = map[string]struct{}{
	"my brand": {}, "my company": {}, "your brand": {}, "your company": {},
	"company name": {}, "brand name": {}, "brand": {}, "company": {},
	"test": {}, "testing": {}, "demo": {}, "example": {}, "sample": {},
	"acme": {}, "acme corp": {}, "acme inc": {}, "lorem ipsum": {},
	"untitled": {}, "default": {}, "new brand": {}, "placeholder": {},
	"foo": {}, "bar": {}, "tbd": {}, "todo": {},
}

func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

type brandNameUniquenessRule struct{}

func (brandNameUniquenessRule) Info() RuleInfo {
	return RuleInfo{
		ID:       RuleBrandNameUniqueness,
		Name:     "Brand name uniqueness",
		Category: CategoryBranding,
		Severity: SeverityWarning,
	}
}

func (brandNameUniquenessRule) Evaluate(cfg brand.Config, vctx Context) (Result, error) {
	name := normalizeName(cfg.Name)
	if name == "" {
		return Skip("no brand name to check"), nil
	}
	if _, placeholder := placeholderNames[name]; placeholder {
		return Fail(fmt.Sprintf("brand name %q looks like a placeholder", cfg.Name),
			"Replace the placeholder with the real brand name"), nil
	}
	if industry := normalizeName(vctx.Industry); industry != "" && name == industry {
		return Fail(fmt.Sprintf("brand name %q only names the industry", cfg.Name),
			"Choose a distinctive name rather than the generic industry term"), nil
	}
	return Pass("brand name is distinctive"), nil
}

// Memorability heuristics.
const (
	maxMemorableWords  = 3
	maxMemorableLength = 20
	maxMemorableDigits = 2
)

type brandNameMemorabilityRule struct{}

func (brandNameMemorabilityRule) Info() RuleInfo {
	return RuleInfo{
		ID:       RuleBrandNameMemorability,
		Name:     "Brand name memorability",
		Category: CategoryBranding,
		Severity: SeverityInfo,
	}
}

func (brandNameMemorabilityRule) Evaluate(cfg brand.Config, _ Context) (Result, error) {
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		return Skip("no brand name to check"), nil
	}

	var issues []string
	if words := len(strings.Fields(name)); words > maxMemorableWords {
		issues = append(issues, fmt.Sprintf("%d words", words))
	}
	if n := len([]rune(name)); n > maxMemorableLength {
		issues = append(issues, fmt.Sprintf("%d characters", n))
	}
	digits, vowels := 0, 0
	for _, r := range strings.ToLower(name) {
		if unicode.IsDigit(r) {
			digits++
		}
		if strings.ContainsRune("aeiouy", r) {
			vowels++
		}
	}
	if digits > maxMemorableDigits {
		issues = append(issues, fmt.Sprintf("%d digits", digits))
	}
	if letters, _, _ := letterCount(name); letters >= 4 && vowels == 0 {
		issues = append(issues, "no vowels, which makes it hard to pronounce")
	}

	if len(issues) > 0 {
		return Fail("brand name may be hard to remember: "+strings.Join(issues, ", "),
			fmt.Sprintf("Memorable names are short (up to %d words, %d characters) and pronounceable", maxMemorableWords, maxMemorableLength)), nil
	}
	return Pass("brand name is short and pronounceable"), nil
}

// Raster logos below this size on the shorter side need fallback initials to
// stay crisp at favicon and avatar sizes.
const minScalableRasterSide = 256

type logoScalabilityRule struct{}

func (logoScalabilityRule) Info() RuleInfo {
	return RuleInfo{
		ID:       RuleLogoScalability,
		Name:     "Logo cross-size scalability",
		Category: CategoryBranding,
		Severity: SeverityWarning,
	}
}

func (logoScalabilityRule) Evaluate(cfg brand.Config, _ Context) (Result, error) {
	logo := cfg.Logo
	if !logo.HasLogo() {
		return Skip("no logo configured"), nil
	}
	if initials := []rune(strings.TrimSpace(logo.Initials)); len(initials) > 3 {
		return Fail(fmt.Sprintf("fallback initials %q are longer than 3 characters", logo.Initials),
			"Use 1-3 characters so initials fit avatar and favicon sizes"), nil
	}
	if logo.Source == "" {
		return Pass("fallback initials scale to any size"), nil
	}
	if logo.IsVector() {
		return Pass("vector logo scales to any size"), nil
	}
	if logo.Initials != "" {
		return Pass("raster logo has fallback initials for small sizes"), nil
	}
	if !logo.HasDimensions() {
		return Fail("raster logo has unknown dimensions and no fallback initials",
			"Provide an SVG logo or fallback initials"), nil
	}
	short := logo.Width
	if logo.Height < short {
		short = logo.Height
	}
	if short < minScalableRasterSide {
		return Fail(fmt.Sprintf("raster logo is only %dpx on its shorter side and has no fallback initials", short),
			fmt.Sprintf("Provide an SVG logo, a raster at least %dpx, or fallback initials", minScalableRasterSide)), nil
	}
	return Pass("raster logo is large enough to scale down cleanly"), nil
}

// logoSVGSafetyRule rejects inline SVG logos carrying active content.
type logoSVGSafetyRule struct{}

func (logoSVGSafetyRule) Info() RuleInfo {
	return RuleInfo{
		ID:       RuleLogoSVGSafety,
		Name:     "Inline SVG logo safety",
		Category: CategoryTechnical,
		Severity: SeverityError,
	}
}

func (logoSVGSafetyRule) Evaluate(cfg brand.Config, _ Context) (Result, error) {
	if !brand.IsInlineSVG(cfg.Logo.Source) {
		return Skip("logo is not inline SVG"), nil
	}
	if reasons := brand.UnsafeSVGReasons(cfg.Logo.Source); len(reasons) > 0 {
		return Fail("inline SVG logo contains active content: "+strings.Join(reasons, ", "),
			"Export the logo as plain SVG without scripts, event handlers or embedded HTML"), nil
	}
	return Pass("inline SVG logo only contains drawing content"), nil
}
