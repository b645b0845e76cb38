package validation

import (
	"testing"

	"github.com/goliatone/go-brandkit/pkg/brand"
)

type outcome int

const (
	wantPass outcome = iota
	wantFail
	wantSkip
)

func (o outcome) String() string {
	return [...]string{"pass", "fail", "skip"}[o]
}

func outcomeOf(res Result) outcome {
	switch {
	case res.Skipped:
		return wantSkip
	case res.Passed:
		return wantPass
	default:
		return wantFail
	}
}

type ruleCase struct {
	name   string
	mutate func(*brand.Config)
	vctx   Context
	want   outcome
	code   string
}

func runRuleCases(t *testing.T, rule Rule, cases []ruleCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := northwind()
			if tc.mutate != nil {
				tc.mutate(&cfg)
			}
			res, err := rule.Evaluate(cfg.Normalized(), tc.vctx)
			if err != nil {
				t.Fatalf("evaluate: %v", err)
			}
			if got := outcomeOf(res); got != tc.want {
				t.Fatalf("expected %s, got %s: %+v", tc.want, got, res)
			}
			if tc.code != "" && res.Code != tc.code {
				t.Fatalf("expected code %q, got %q", tc.code, res.Code)
			}
			if got := outcomeOf(res); got == wantFail && res.Message == "" {
				t.Fatalf("failing result without message")
			}
		})
	}
}

func TestBuiltinRuleInfo(t *testing.T) {
	seen := make(map[string]struct{})
	for _, rule := range BuiltinRules() {
		info := rule.Info()
		if err := validateInfo(info); err != nil {
			t.Fatalf("invalid built-in: %v", err)
		}
		if _, dup := seen[info.ID]; dup {
			t.Fatalf("duplicate built-in id %q", info.ID)
		}
		seen[info.ID] = struct{}{}
	}
}

func TestLogoColorContrastRule(t *testing.T) {
	runRuleCases(t, logoColorContrastRule{}, []ruleCase{
		{name: "white on blue", want: wantPass},
		{name: "strict", vctx: Context{Strictness: StrictnessStrict}, want: wantFail},
		{name: "default text color", mutate: func(c *brand.Config) { c.Logo.TextColor = "" }, want: wantPass},
		{name: "yellow on white", mutate: func(c *brand.Config) {
			c.Colors.Primary.Hex = "#FFFFFF"
			c.Logo.TextColor = "#FFFF00"
		}, want: wantFail},
		{name: "missing primary", mutate: func(c *brand.Config) { c.Colors.Primary.Hex = "" }, want: wantFail, code: CodeConfigurationIncomplete},
		{name: "invalid primary", mutate: func(c *brand.Config) { c.Colors.Primary.Hex = "blue" }, want: wantFail, code: CodeInvalidColor},
	})
}

func TestPrimarySecondaryContrastRule(t *testing.T) {
	runRuleCases(t, primarySecondaryContrastRule{}, []ruleCase{
		{name: "no secondary", want: wantSkip},
		{name: "black and white", mutate: func(c *brand.Config) {
			c.Colors.Primary.Hex = "#000"
			c.Colors.Secondary.Hex = "#fff"
		}, want: wantPass},
		{name: "blue and orange", mutate: func(c *brand.Config) { c.Colors.Secondary.Hex = "#F97316" }, want: wantFail},
	})
}

func TestLogoAltTextRule(t *testing.T) {
	runRuleCases(t, logoAltTextRule{}, []ruleCase{
		{name: "generic", want: wantFail},
		{name: "descriptive", mutate: func(c *brand.Config) { c.Logo.AltText = "Northwind Traders wordmark" }, want: wantPass},
		{name: "missing", mutate: func(c *brand.Config) { c.Logo.AltText = "" }, want: wantFail},
		{name: "too short", mutate: func(c *brand.Config) { c.Logo.AltText = "NT" }, want: wantFail},
		{name: "file name", mutate: func(c *brand.Config) { c.Logo.AltText = "logo.svg" }, want: wantFail},
		{name: "initials only", mutate: func(c *brand.Config) {
			c.Logo.Source = ""
			c.Logo.Initials = "NT"
		}, want: wantSkip},
	})
}

func TestBrandNameScreenReaderRule(t *testing.T) {
	runRuleCases(t, brandNameScreenReaderRule{}, []ruleCase{
		{name: "plain", want: wantPass},
		{name: "short acronym", mutate: func(c *brand.Config) { c.Name = "IBM" }, want: wantPass},
		{name: "shouting", mutate: func(c *brand.Config) { c.Name = "NORTHWIND" }, want: wantFail},
		{name: "spaced", mutate: func(c *brand.Config) { c.Name = "N O R T H" }, want: wantFail},
		{name: "symbols", mutate: func(c *brand.Config) { c.Name = "★★★" }, want: wantFail},
		{name: "empty", mutate: func(c *brand.Config) { c.Name = "" }, want: wantFail, code: CodeConfigurationIncomplete},
	})
}

func TestTypographyReadabilityRule(t *testing.T) {
	runRuleCases(t, typographyReadabilityRule{}, []ruleCase{
		{name: "inter", want: wantPass},
		{name: "stack", mutate: func(c *brand.Config) { c.Typography.Family = `"Papyrus", serif` }, want: wantFail},
		{name: "unset", mutate: func(c *brand.Config) { c.Typography.Family = "" }, want: wantSkip},
	})
}

func TestBrandNameLengthRule(t *testing.T) {
	runRuleCases(t, brandNameLengthRule{}, []ruleCase{
		{name: "ok", want: wantPass},
		{name: "single letter", mutate: func(c *brand.Config) { c.Name = "N" }, want: wantFail},
		{name: "too long", mutate: func(c *brand.Config) { c.Name = "Northwind Traders International Holdings" }, want: wantFail},
		{name: "multibyte", mutate: func(c *brand.Config) { c.Name = "Åå" }, want: wantPass},
		{name: "empty", mutate: func(c *brand.Config) { c.Name = "  " }, want: wantFail, code: CodeConfigurationIncomplete},
	})
}

func TestBrandNameCharactersRule(t *testing.T) {
	runRuleCases(t, brandNameCharactersRule{}, []ruleCase{
		{name: "ok", want: wantPass},
		{name: "punctuation", mutate: func(c *brand.Config) { c.Name = "Smith & Sons, Inc." }, want: wantPass},
		{name: "markup", mutate: func(c *brand.Config) { c.Name = "<b>Northwind</b>" }, want: wantFail},
		{name: "emoji", mutate: func(c *brand.Config) { c.Name = "Northwind 🚀" }, want: wantFail},
		{name: "empty", mutate: func(c *brand.Config) { c.Name = "" }, want: wantSkip},
	})
}

func TestLogoGeometryRules(t *testing.T) {
	runRuleCases(t, logoAspectRatioRule{}, []ruleCase{
		{name: "3:1", want: wantPass},
		{name: "banner", mutate: func(c *brand.Config) { c.Logo.Width, c.Logo.Height = 1000, 100 }, want: wantFail},
		{name: "unknown", mutate: func(c *brand.Config) { c.Logo.Height = 0 }, want: wantSkip},
	})
	runRuleCases(t, logoSizeBoundsRule{}, []ruleCase{
		{name: "ok", want: wantPass},
		{name: "tiny", mutate: func(c *brand.Config) { c.Logo.Width, c.Logo.Height = 16, 16 }, want: wantFail},
		{name: "huge", mutate: func(c *brand.Config) { c.Logo.Width, c.Logo.Height = 4096, 2048 }, want: wantFail},
	})
}

func TestColorBlindSafetyRule(t *testing.T) {
	runRuleCases(t, colorBlindSafetyRule{}, []ruleCase{
		{name: "single color", want: wantSkip},
		{name: "red and green", mutate: func(c *brand.Config) {
			c.Colors.Primary.Hex = "#E53935"
			c.Colors.Secondary.Hex = "#43A047"
		}, want: wantFail},
		{name: "blue and orange", mutate: func(c *brand.Config) { c.Colors.Secondary.Hex = "#F97316" }, want: wantPass},
		{name: "dark red and pale green", mutate: func(c *brand.Config) {
			c.Colors.Primary.Hex = "#7F0000"
			c.Colors.Secondary.Hex = "#B9F6CA"
		}, want: wantPass},
	})
}

func TestColorHarmonyRule(t *testing.T) {
	runRuleCases(t, colorHarmonyRule{}, []ruleCase{
		{name: "single color", want: wantSkip},
		{name: "complementary", mutate: func(c *brand.Config) { c.Colors.Secondary.Hex = "#F6AF3B" }, want: wantPass},
		{name: "grey ignored", mutate: func(c *brand.Config) { c.Colors.Secondary.Hex = "#808080" }, want: wantSkip},
		{name: "clashing", mutate: func(c *brand.Config) {
			c.Colors.Primary.Hex = "#FF0000"
			c.Colors.Secondary.Hex = "#B30000"
			c.Colors.Accent.Hex = "#FFFF00"
		}, want: wantFail},
		{name: "loose pair standard", mutate: func(c *brand.Config) {
			c.Colors.Primary.Hex = "#FF0000"
			c.Colors.Secondary.Hex = "#EAFF00"
		}, want: wantPass},
		{name: "loose pair strict", mutate: func(c *brand.Config) {
			c.Colors.Primary.Hex = "#FF0000"
			c.Colors.Secondary.Hex = "#EAFF00"
		}, vctx: Context{Strictness: StrictnessStrict}, want: wantFail},
	})
}

func TestTypographyConsistencyRule(t *testing.T) {
	runRuleCases(t, typographyConsistencyRule{}, []ruleCase{
		{name: "single face", want: wantPass},
		{name: "heading and body", mutate: func(c *brand.Config) { c.Typography.HeadingFamily = "Poppins, sans-serif" }, want: wantPass},
		{name: "too many faces", mutate: func(c *brand.Config) {
			c.Typography.Family = "Inter, Roboto"
			c.Typography.HeadingFamily = "Poppins"
		}, want: wantFail},
		{name: "tiny base", mutate: func(c *brand.Config) { c.Typography.BaseSize = 10 }, want: wantFail},
		{name: "heading only", mutate: func(c *brand.Config) {
			c.Typography.Family = ""
			c.Typography.HeadingFamily = "Poppins"
		}, want: wantFail},
		{name: "unset", mutate: func(c *brand.Config) { c.Typography = brand.Typography{} }, want: wantSkip},
	})
}

func TestBrandCompletenessRule(t *testing.T) {
	runRuleCases(t, brandCompletenessRule{}, []ruleCase{
		{name: "complete", want: wantPass},
		{name: "initials only", mutate: func(c *brand.Config) {
			c.Logo.Source = ""
			c.Logo.Initials = "NT"
		}, want: wantPass},
		{name: "no logo", mutate: func(c *brand.Config) { c.Logo = brand.Logo{} }, want: wantFail, code: CodeConfigurationIncomplete},
		{name: "bad accent", mutate: func(c *brand.Config) { c.Colors.Accent.Hex = "#12" }, want: wantFail, code: CodeInvalidColor},
	})
}

func TestBrandNameUniquenessRule(t *testing.T) {
	runRuleCases(t, brandNameUniquenessRule{}, []ruleCase{
		{name: "distinct", want: wantPass},
		{name: "placeholder", mutate: func(c *brand.Config) { c.Name = "My  Company" }, want: wantFail},
		{name: "industry", mutate: func(c *brand.Config) { c.Name = "Retail" }, vctx: Context{Industry: "retail"}, want: wantFail},
	})
}

func TestBrandNameMemorabilityRule(t *testing.T) {
	runRuleCases(t, brandNameMemorabilityRule{}, []ruleCase{
		{name: "short", want: wantPass},
		{name: "wordy", mutate: func(c *brand.Config) { c.Name = "The Very Best Northwind Co" }, want: wantFail},
		{name: "no vowels", mutate: func(c *brand.Config) { c.Name = "Xkcd Trm" }, want: wantFail},
		{name: "digits", mutate: func(c *brand.Config) { c.Name = "Store 24365" }, want: wantFail},
	})
}

func TestLogoScalabilityRule(t *testing.T) {
	runRuleCases(t, logoScalabilityRule{}, []ruleCase{
		{name: "svg", want: wantPass},
		{name: "small raster", mutate: func(c *brand.Config) {
			c.Logo.Source = "https://cdn.example.com/logo.png"
			c.Logo.Width, c.Logo.Height = 120, 40
		}, want: wantFail},
		{name: "small raster with initials", mutate: func(c *brand.Config) {
			c.Logo.Source = "https://cdn.example.com/logo.png"
			c.Logo.Initials = "NT"
		}, want: wantPass},
		{name: "long initials", mutate: func(c *brand.Config) { c.Logo.Initials = "NWTR" }, want: wantFail},
		{name: "none", mutate: func(c *brand.Config) { c.Logo = brand.Logo{} }, want: wantSkip},
	})
}

func TestLogoSVGSafetyRule(t *testing.T) {
	runRuleCases(t, logoSVGSafetyRule{}, []ruleCase{
		{name: "url", want: wantSkip},
		{name: "clean inline", mutate: func(c *brand.Config) {
			c.Logo.Source = `<svg viewBox="0 0 10 10"><circle cx="5" cy="5" r="4"/></svg>`
		}, want: wantPass},
		{name: "script", mutate: func(c *brand.Config) {
			c.Logo.Source = `<svg><script>alert(1)</script></svg>`
		}, want: wantFail},
		{name: "handler", mutate: func(c *brand.Config) {
			c.Logo.Source = `<svg onload="alert(1)"><rect/></svg>`
		}, want: wantFail},
	})
}
