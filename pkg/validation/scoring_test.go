package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-brandkit/pkg/color"
)

func failing(category Category, severity Severity) Result {
	return Result{RuleID: string(category) + "-" + string(severity), Category: category, Severity: severity}
}

func TestScorerClampsAtZero(t *testing.T) {
	var results []Result
	for i := 0; i < 10; i++ {
		results = append(results, failing(CategoryAccessibility, SeverityError))
	}
	scores := NewScorer(nil).Score(results)
	if scores.Categories[CategoryAccessibility] != 0 {
		t.Fatalf("expected accessibility clamped to 0, got %d", scores.Categories[CategoryAccessibility])
	}
	if scores.Overall != 75 {
		t.Fatalf("expected overall 75, got %d", scores.Overall)
	}
}

func TestScorerPenalties(t *testing.T) {
	results := []Result{
		failing(CategoryAccessibility, SeverityWarning),
		failing(CategoryUsability, SeverityError),
		failing(CategoryDesign, SeverityWarning),
		failing(CategoryBranding, SeverityInfo),
		failing(CategoryTechnical, SeverityError),
		{RuleID: "passed", Passed: true, Category: CategoryDesign, Severity: SeverityError},
		{RuleID: "skipped", Skipped: true, Category: CategoryDesign, Severity: SeverityError},
	}
	want := Scores{
		Overall: 93,
		Categories: map[Category]int{
			CategoryAccessibility: 90,
			CategoryUsability:     88,
			CategoryDesign:        94,
			CategoryBranding:      100,
		},
	}
	if diff := cmp.Diff(want, NewScorer(nil).Score(results)); diff != "" {
		t.Fatalf("scores mismatch (-want +got):\n%s", diff)
	}
}

func TestScorerCustomPenalties(t *testing.T) {
	scorer := NewScorer(PenaltyTable{CategoryDesign: {Error: 50, Warning: 1}})
	scores := scorer.Score([]Result{
		failing(CategoryDesign, SeverityError),
		failing(CategoryAccessibility, SeverityError),
	})
	if scores.Categories[CategoryDesign] != 50 || scores.Categories[CategoryAccessibility] != 100 {
		t.Fatalf("unexpected scores: %+v", scores)
	}
}

func TestAggregateCounts(t *testing.T) {
	results := []Result{
		{RuleID: "a", Passed: true, Category: CategoryAccessibility, Severity: SeverityError},
		{RuleID: "b", Category: CategoryAccessibility, Severity: SeverityError, WCAG: color.LevelAA},
		{RuleID: "c", Skipped: true, Category: CategoryDesign, Severity: SeverityWarning, WCAG: color.LevelAAA},
	}
	report := NewScorer(nil).Aggregate(results, time.Unix(0, 0))

	if report.Total != 3 || report.Passed != 1 || report.Failed != 1 || report.Skipped != 1 {
		t.Fatalf("unexpected counts: total=%d passed=%d failed=%d skipped=%d",
			report.Total, report.Passed, report.Failed, report.Skipped)
	}
	want := CategorySummary{Passed: 1, Failed: 1, Total: 2, Score: 85}
	if diff := cmp.Diff(want, report.Categories[CategoryAccessibility]); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
	wantWCAG := map[WCAGLevel]bool{color.LevelA: true, color.LevelAA: false, color.LevelAAA: true}
	if diff := cmp.Diff(wantWCAG, report.WCAGCompliance); diff != "" {
		t.Fatalf("wcag mismatch (-want +got):\n%s", diff)
	}
	if report.Valid() {
		t.Fatalf("expected report with an error failure to be invalid")
	}
	if got := report.FailuresBySeverity()[SeverityError]; len(got) != 1 || got[0].RuleID != "b" {
		t.Fatalf("unexpected failures by severity: %+v", got)
	}
}

func TestReportJSON(t *testing.T) {
	report := NewScorer(nil).Aggregate([]Result{
		{RuleID: "a", Passed: true, Category: CategoryBranding, Severity: SeverityInfo, Message: "ok"},
	}, time.Unix(0, 0).UTC())
	report.Fingerprint = "abc"

	raw, err := report.JSON()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for _, fragment := range []string{`"fingerprint":"abc"`, `"rule_id":"a"`, `"overall":100`, `"wcag_compliance"`} {
		if !strings.Contains(string(raw), fragment) {
			t.Fatalf("expected %s in %s", fragment, raw)
		}
	}
}
