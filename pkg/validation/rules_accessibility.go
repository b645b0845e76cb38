package validation

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"unicode"

	"github.com/goliatone/go-brandkit/pkg/brand"
	"github.com/goliatone/go-brandkit/pkg/color"
)

// logoColorContrastRule checks logo text against the primary colour using
// the WCAG graphical-object thresholds (3:1 at AA, 4.5:1 when strict).
type logoColorContrastRule struct{}

func (logoColorContrastRule) Info() RuleInfo {
	return RuleInfo{
		ID:       RuleLogoColorContrast,
		Name:     "Logo color contrast",
		Category: CategoryAccessibility,
		Severity: SeverityError,
		WCAG:     color.LevelAA,
	}
}

func (logoColorContrastRule) Evaluate(cfg brand.Config, vctx Context) (Result, error) {
	primary := cfg.Colors.Primary
	if !primary.IsSet() {
		return Incomplete("primary color"), nil
	}
	bg, err := color.HexToRGB(primary.Hex)
	if err != nil {
		return invalidColor("primary color", primary.Hex), nil
	}
	textHex := cfg.Logo.EffectiveTextColor()
	fg, err := color.HexToRGB(textHex)
	if err != nil {
		return invalidColor("logo text color", textHex), nil
	}

	level := contrastLevelFor(vctx.ContrastStrictness())
	ratio := color.ContrastRatio(fg, bg)
	minimum := color.MinContrast(color.TextGraphical, level)
	if color.PassesWCAG(ratio, color.TextGraphical, level) {
		return Pass(fmt.Sprintf("logo text contrast %.2f:1 meets WCAG %s for graphical elements", ratio, level)), nil
	}
	best := color.BestTextColor(bg)
	return Fail(
		fmt.Sprintf("logo text contrast %.2f:1 is below the %.1f:1 WCAG %s minimum", ratio, minimum, level),
		fmt.Sprintf("Use %s for logo text on %s, or darken the primary color", best.Hex(), color.RGBToHex(bg)),
	), nil
}

// primarySecondaryContrastRule checks the primary/secondary pair against the
// AAA normal-text threshold, for brands that set text in one on the other.
type primarySecondaryContrastRule struct{}

func (primarySecondaryContrastRule) Info() RuleInfo {
	return RuleInfo{
		ID:       RulePrimarySecondaryContrast,
		Name:     "Primary/secondary contrast",
		Category: CategoryAccessibility,
		Severity: SeverityInfo,
		WCAG:     color.LevelAAA,
	}
}

func (primarySecondaryContrastRule) Evaluate(cfg brand.Config, _ Context) (Result, error) {
	primary, secondary := cfg.Colors.Primary, cfg.Colors.Secondary
	if !primary.IsSet() || !secondary.IsSet() {
		return Skip("primary/secondary pair not evaluated: both colors are required"), nil
	}
	if !primary.Valid() || !secondary.Valid() {
		return Skip("primary/secondary pair not evaluated: invalid color"), nil
	}
	ratio, err := color.ContrastRatioHex(primary.Hex, secondary.Hex)
	if err != nil {
		return Result{}, err
	}
	if color.PassesWCAG(ratio, color.TextNormal, color.LevelAAA) {
		return Pass(fmt.Sprintf("primary/secondary contrast %.2f:1 meets WCAG AAA", ratio)), nil
	}
	return Fail(
		fmt.Sprintf("primary/secondary contrast %.2f:1 is below the %.1f:1 WCAG AAA minimum for text", ratio, color.MinContrastNormalAAA),
		"Avoid setting body text in the secondary color on the primary color",
	), nil
}

var genericAltTexts = map[string]struct{}{
	"logo": {}, "image": {}, "img": {}, "picture": {}, "icon": {},
	"photo": {}, "graphic": {}, "brand": {}, "logo image": {},
	"company logo": {}, "brand logo": {}, "our logo": {}, "untitled": {},
}

// logoAltTextRule requires descriptive alternative text for logo images.
type logoAltTextRule struct{}

func (logoAltTextRule) Info() RuleInfo {
	return RuleInfo{
		ID:       RuleLogoAltText,
		Name:     "Logo alt text",
		Category: CategoryAccessibility,
		Severity: SeverityError,
		WCAG:     color.LevelA,
	}
}

func (logoAltTextRule) Evaluate(cfg brand.Config, _ Context) (Result, error) {
	logo := cfg.Logo
	if strings.TrimSpace(logo.Source) == "" {
		return Skip("no logo image; fallback initials render as text"), nil
	}
	suggestion := "Describe the logo, for example \"" + altSuggestion(cfg.Name) + "\""

	alt := strings.TrimSpace(logo.AltText)
	if alt == "" {
		return Fail("logo alt text is missing", suggestion), nil
	}
	normalized := strings.ToLower(strings.Join(strings.Fields(alt), " "))
	if _, generic := genericAltTexts[normalized]; generic || len([]rune(alt)) < 3 {
		return Fail(fmt.Sprintf("logo alt text %q is not descriptive", alt), suggestion), nil
	}
	if !brand.IsInlineSVG(logo.Source) {
		base := strings.ToLower(path.Base(logo.Source))
		if normalized == base || normalized == strings.TrimSuffix(base, path.Ext(base)) {
			return Fail(fmt.Sprintf("logo alt text %q repeats the file name", alt), suggestion), nil
		}
	}
	return Pass("logo alt text is descriptive"), nil
}

func altSuggestion(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Company name logo"
	}
	return name + " logo"
}

var spacedLetters = regexp.MustCompile(`^(?:\p{L}[\s.]){3,}\p{L}?$`)

// brandNameScreenReaderRule flags names screen readers are likely to spell
// out letter by letter or skip entirely.
type brandNameScreenReaderRule struct{}

func (brandNameScreenReaderRule) Info() RuleInfo {
	return RuleInfo{
		ID:       RuleBrandNameScreenReader,
		Name:     "Brand name screen reader readiness",
		Category: CategoryAccessibility,
		Severity: SeverityWarning,
		WCAG:     color.LevelA,
	}
}

func (brandNameScreenReaderRule) Evaluate(cfg brand.Config, _ Context) (Result, error) {
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		return Incomplete("brand name"), nil
	}
	hasWordChar := strings.IndexFunc(name, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) >= 0
	if !hasWordChar {
		return Fail("brand name has no letters or digits for screen readers to announce",
			"Include the spoken brand name; keep symbols for styling only"), nil
	}
	if spacedLetters.MatchString(name) {
		return Fail("brand name uses spaced-out letters, which screen readers read one letter at a time",
			"Store the name without spacing and apply letter-spacing with CSS"), nil
	}
	letters, upper, _ := letterCount(name)
	if letters >= 5 && upper == letters {
		return Fail("all-caps brand names may be spelled out by screen readers",
			"Store the name in its spoken casing and apply text-transform: uppercase for display"), nil
	}
	return Pass("brand name reads naturally with assistive technology"), nil
}

var decorativeFonts = map[string]struct{}{
	"comic sans ms": {}, "comic sans": {}, "papyrus": {}, "brush script mt": {},
	"brush script": {}, "curlz mt": {}, "jokerman": {}, "chiller": {},
	"lobster": {}, "pacifico": {}, "zapfino": {}, "blackadder itc": {},
	"vivaldi": {}, "kunstler script": {}, "great vibes": {}, "impact": {},
}

// typographyReadabilityRule flags decorative or script faces used for body
// copy.
type typographyReadabilityRule struct{}

func (typographyReadabilityRule) Info() RuleInfo {
	return RuleInfo{
		ID:       RuleTypographyReadability,
		Name:     "Typography readability",
		Category: CategoryAccessibility,
		Severity: SeverityWarning,
		WCAG:     color.LevelAA,
	}
}

func (typographyReadabilityRule) Evaluate(cfg brand.Config, _ Context) (Result, error) {
	stack := fontStack(cfg.Typography.Family)
	if len(stack) == 0 {
		return Skip("no brand font set; the system font stack applies"), nil
	}
	body := stack[0]
	if _, decorative := decorativeFonts[strings.ToLower(body)]; decorative {
		return Fail(fmt.Sprintf("%q is a decorative typeface and hard to read as body text", body),
			"Use a neutral sans-serif or serif for body copy and keep decorative faces for headings"), nil
	}
	return Pass(fmt.Sprintf("%q is suitable for body text", body)), nil
}
