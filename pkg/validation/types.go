package validation

import (
	"strings"

	"github.com/goliatone/go-brandkit/pkg/brand"
	"github.com/goliatone/go-brandkit/pkg/color"
)

// Category groups rules for scoring.
type Category string

const (
	CategoryAccessibility Category = "accessibility"
	CategoryUsability     Category = "usability"
	CategoryDesign        Category = "design"
	CategoryBranding      Category = "branding"
	CategoryTechnical     Category = "technical"
)

// Categories lists every category in report order.
var Categories = []Category{
	CategoryAccessibility,
	CategoryUsability,
	CategoryDesign,
	CategoryBranding,
	CategoryTechnical,
}

// ScoredCategories are the categories that contribute to the overall score.
var ScoredCategories = []Category{
	CategoryAccessibility,
	CategoryUsability,
	CategoryDesign,
	CategoryBranding,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Severity ranks failing results.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// WCAGLevel tags rules that map onto a WCAG conformance level.
type WCAGLevel = color.Level

// WCAGLevels lists the levels tracked in Report.WCAGCompliance.
var WCAGLevels = []WCAGLevel{color.LevelA, color.LevelAA, color.LevelAAA}

// Strictness tunes rule thresholds such as minimum contrast.
type Strictness string

const (
	StrictnessRelaxed  Strictness = "relaxed"
	StrictnessStandard Strictness = "standard"
	StrictnessStrict   Strictness = "strict"
)

// ParseStrictness maps a case-insensitive name onto a Strictness. Empty input
// is StrictnessStandard.
func ParseStrictness(raw string) (Strictness, bool) {
	switch Strictness(strings.ToLower(strings.TrimSpace(raw))) {
	case "", StrictnessStandard:
		return StrictnessStandard, true
	case StrictnessRelaxed:
		return StrictnessRelaxed, true
	case StrictnessStrict:
		return StrictnessStrict, true
	default:
		return StrictnessStandard, false
	}
}

// Result codes attached to failing results with a well-known cause.
const (
	CodeConfigurationIncomplete = "configuration_incomplete"
	CodeInvalidColor            = "invalid_color"
	CodeRuleExecutionFailure    = "rule_execution_failure"
	CodeDuplicateRuleID         = "duplicate_rule_id"
)

// RuleInfo describes a rule. ID must be unique within an engine.
type RuleInfo struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Category Category  `json:"category"`
	Severity Severity  `json:"severity"`
	WCAG     WCAGLevel `json:"wcag,omitempty"`
}

// Rule is a single check. Evaluate must be pure and fast; the engine only
// defends against violations by isolating panics and errors per rule.
type Rule interface {
	Info() RuleInfo
	Evaluate(cfg brand.Config, vctx Context) (Result, error)
}

// Result is the outcome of one rule. RuleID, Category, Severity and WCAG are
// filled from the rule's RuleInfo by the engine.
type Result struct {
	RuleID     string    `json:"rule_id"`
	Passed     bool      `json:"passed"`
	Skipped    bool      `json:"skipped,omitempty"`
	Severity   Severity  `json:"severity"`
	Category   Category  `json:"category"`
	WCAG       WCAGLevel `json:"wcag,omitempty"`
	Code       string    `json:"code,omitempty"`
	Message    string    `json:"message"`
	Suggestion string    `json:"suggestion,omitempty"`
}

// Failed reports whether the result counts as a failure.
func (r Result) Failed() bool {
	return !r.Passed && !r.Skipped
}

// Context carries per-call validation settings.
type Context struct {
	Strictness Strictness `json:"strictness,omitempty"`
	Industry   string     `json:"industry,omitempty"`
	Audience   string     `json:"audience,omitempty"`
	// Rules run after the registered rules for this call only.
	Rules []Rule `json:"-"`
}

// EffectiveStrictness returns the configured strictness, defaulting unknown
// values to standard.
func (c Context) EffectiveStrictness() Strictness {
	s, _ := ParseStrictness(string(c.Strictness))
	return s
}

var visionSensitiveAudiences = map[string]struct{}{
	"low-vision":        {},
	"visually-impaired": {},
	"elderly":           {},
	"seniors":           {},
	"accessibility":     {},
}

// ContrastStrictness is EffectiveStrictness raised one step when the
// audience hint names a vision-sensitive group.
func (c Context) ContrastStrictness() Strictness {
	s := c.EffectiveStrictness()
	if _, ok := visionSensitiveAudiences[strings.ToLower(strings.TrimSpace(c.Audience))]; !ok {
		return s
	}
	switch s {
	case StrictnessRelaxed:
		return StrictnessStandard
	default:
		return StrictnessStrict
	}
}

// RuleFunc adapts a plain function into a Rule.
type RuleFunc struct {
	Meta RuleInfo
	Fn   func(cfg brand.Config, vctx Context) (Result, error)
}

// NewRule wraps fn as a Rule described by info.
func NewRule(info RuleInfo, fn func(cfg brand.Config, vctx Context) (Result, error)) Rule {
	return RuleFunc{Meta: info, Fn: fn}
}

// Info implements Rule.
func (r RuleFunc) Info() RuleInfo { return r.Meta }

// Evaluate implements Rule.
func (r RuleFunc) Evaluate(cfg brand.Config, vctx Context) (Result, error) {
	if r.Fn == nil {
		return Result{}, errNilRuleFunc
	}
	return r.Fn(cfg, vctx)
}

// Pass builds a passing result.
func Pass(message string) Result {
	return Result{Passed: true, Message: message}
}

// Fail builds a failing result.
func Fail(message, suggestion string) Result {
	return Result{Message: message, Suggestion: suggestion}
}

// Skip builds a result for a rule that did not apply to the configuration.
// Skipped results count neither as passed nor failed.
func Skip(message string) Result {
	return Result{Skipped: true, Message: message}
}

// Incomplete builds the failing result used when a required configuration
// field is missing.
func Incomplete(field string) Result {
	return Result{
		Code:       CodeConfigurationIncomplete,
		Message:    "configuration incomplete: " + field + " is required",
		Suggestion: "Set the " + field + " in the brand configuration",
	}
}
