package validation

import (
	"time"

	json "github.com/goccy/go-json"
)

// CategorySummary counts results for one category.
type CategorySummary struct {
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped,omitempty"`
	Total   int `json:"total"`
	// Score is zero for unscored categories.
	Score int `json:"score,omitempty"`
}

// Report is the immutable outcome of one validation. Total counts every
// result; skipped results are counted in neither Passed nor Failed.
type Report struct {
	Fingerprint    string                       `json:"fingerprint"`
	Total          int                          `json:"total"`
	Passed         int                          `json:"passed"`
	Failed         int                          `json:"failed"`
	Skipped        int                          `json:"skipped"`
	Results        []Result                     `json:"results"`
	Categories     map[Category]CategorySummary `json:"categories"`
	Scores         Scores                       `json:"scores"`
	WCAGCompliance map[WCAGLevel]bool           `json:"wcag_compliance"`
	Timestamp      time.Time                    `json:"timestamp"`
}

// Result returns the result for ruleID.
func (r Report) Result(ruleID string) (Result, bool) {
	for _, res := range r.Results {
		if res.RuleID == ruleID {
			return res, true
		}
	}
	return Result{}, false
}

// Failures returns failing results in evaluation order.
func (r Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Failed() {
			out = append(out, res)
		}
	}
	return out
}

// FailuresBySeverity groups failing results by severity.
func (r Report) FailuresBySeverity() map[Severity][]Result {
	out := make(map[Severity][]Result)
	for _, res := range r.Failures() {
		out[res.Severity] = append(out[res.Severity], res)
	}
	return out
}

// Valid reports whether no error-severity result failed.
func (r Report) Valid() bool {
	for _, res := range r.Results {
		if res.Failed() && res.Severity == SeverityError {
			return false
		}
	}
	return true
}

// JSON encodes the report.
func (r Report) JSON() ([]byte, error) {
	return json.Marshal(r)
}

// JSONIndent encodes the report with indentation for humans.
func (r Report) JSONIndent() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// clone deep-copies the mutable parts so cached reports stay immutable.
func (r Report) clone() Report {
	out := r
	out.Results = append([]Result(nil), r.Results...)
	out.Categories = make(map[Category]CategorySummary, len(r.Categories))
	for k, v := range r.Categories {
		out.Categories[k] = v
	}
	out.Scores.Categories = make(map[Category]int, len(r.Scores.Categories))
	for k, v := range r.Scores.Categories {
		out.Scores.Categories[k] = v
	}
	out.WCAGCompliance = make(map[WCAGLevel]bool, len(r.WCAGCompliance))
	for k, v := range r.WCAGCompliance {
		out.WCAGCompliance[k] = v
	}
	return out
}
