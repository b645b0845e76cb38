package validation

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateRuleID is returned when registering a rule whose id exists.
	ErrDuplicateRuleID = errors.New("validation: duplicate rule id")
	// ErrRuleNotFound is returned when enabling or disabling an unknown rule.
	ErrRuleNotFound = errors.New("validation: rule not found")
	// ErrInvalidRule is returned for a nil rule or one with incomplete RuleInfo.
	ErrInvalidRule = errors.New("validation: invalid rule")

	errNilRuleFunc = errors.New("validation: rule function is nil")
)

// RuleExecutionError wraps a panic or error raised by a rule. It never
// escapes Validate; the engine converts it into a failing technical result.
type RuleExecutionError struct {
	RuleID string
	Err    error
}

func (e *RuleExecutionError) Error() string {
	return fmt.Sprintf("validation: rule %q failed: %v", e.RuleID, e.Err)
}

func (e *RuleExecutionError) Unwrap() error {
	return e.Err
}

func validateInfo(info RuleInfo) error {
	if info.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidRule)
	}
	if !info.Category.Valid() {
		return fmt.Errorf("%w: rule %q has unknown category %q", ErrInvalidRule, info.ID, info.Category)
	}
	if !info.Severity.Valid() {
		return fmt.Errorf("%w: rule %q has unknown severity %q", ErrInvalidRule, info.ID, info.Severity)
	}
	switch info.WCAG {
	case "", WCAGLevels[0], WCAGLevels[1], WCAGLevels[2]:
	default:
		return fmt.Errorf("%w: rule %q has unknown WCAG level %q", ErrInvalidRule, info.ID, info.WCAG)
	}
	return nil
}

// ruleInfo reads rule.Info, turning a panic (a typed-nil rule, for one) into
// an ErrInvalidRule error.
func ruleInfo(rule Rule) (info RuleInfo, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: info panicked: %v", ErrInvalidRule, r)
		}
	}()
	if rule == nil {
		return RuleInfo{}, fmt.Errorf("%w: rule is nil", ErrInvalidRule)
	}
	return rule.Info(), nil
}
