package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/goliatone/go-brandkit/pkg/color"
)

// Built-in rule identifiers.
const (
	RuleLogoColorContrast        = "logo-color-contrast"
	RulePrimarySecondaryContrast = "primary-secondary-contrast"
	RuleLogoAltText              = "logo-alt-text"
	RuleBrandNameScreenReader    = "brand-name-screen-reader"
	RuleTypographyReadability    = "typography-readability"

	RuleBrandNameLength     = "brand-name-length"
	RuleBrandNameCharacters = "brand-name-characters"
	RuleLogoAspectRatio     = "logo-aspect-ratio"
	RuleLogoSizeBounds      = "logo-size-bounds"
	RuleColorBlindSafety    = "color-blind-safety"

	RuleColorHarmony          = "color-harmony"
	RuleTypographyConsistency = "typography-consistency"
	RuleBrandCompleteness     = "brand-completeness"

	RuleBrandNameUniqueness   = "brand-name-uniqueness"
	RuleBrandNameMemorability = "brand-name-memorability"
	RuleLogoScalability       = "logo-scalability"

	RuleLogoSVGSafety = "logo-svg-safety"
)

// BuiltinRules returns fresh instances of every built-in rule in registry
// order.
func BuiltinRules() []Rule {
	return []Rule{
		logoColorContrastRule{},
		primarySecondaryContrastRule{},
		logoAltTextRule{},
		brandNameScreenReaderRule{},
		typographyReadabilityRule{},

		brandNameLengthRule{},
		brandNameCharactersRule{},
		logoAspectRatioRule{},
		logoSizeBoundsRule{},
		colorBlindSafetyRule{},

		colorHarmonyRule{},
		typographyConsistencyRule{},
		brandCompletenessRule{},

		brandNameUniquenessRule{},
		brandNameMemorabilityRule{},
		logoScalabilityRule{},

		logoSVGSafetyRule{},
	}
}

func invalidColor(field, value string) Result {
	return Result{
		Code:       CodeInvalidColor,
		Message:    fmt.Sprintf("%s %q is not a valid hex color", field, value),
		Suggestion: "Use a 3- or 6-digit hex value such as #3B82F6",
	}
}

// fontStack splits a CSS font-family list into unquoted family names.
func fontStack(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		name := strings.Trim(strings.TrimSpace(part), `"'`)
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

var genericFamilies = map[string]struct{}{
	"serif": {}, "sans-serif": {}, "monospace": {}, "cursive": {},
	"fantasy": {}, "system-ui": {}, "ui-sans-serif": {}, "ui-serif": {},
	"ui-monospace": {}, "ui-rounded": {}, "emoji": {}, "math": {},
	"-apple-system": {}, "blinkmacsystemfont": {},
}

func isGenericFamily(name string) bool {
	_, ok := genericFamilies[strings.ToLower(name)]
	return ok
}

func letterCount(s string) (letters, upper, lower int) {
	for _, r := range s {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
			if unicode.IsLower(r) {
				lower++
			}
		}
	}
	return letters, upper, lower
}

// contrastLevelFor maps strictness onto the WCAG level contrast rules
// enforce.
func contrastLevelFor(s Strictness) color.Level {
	if s == StrictnessStrict {
		return color.LevelAAA
	}
	return color.LevelAA
}
