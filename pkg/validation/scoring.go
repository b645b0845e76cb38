package validation

import (
	"math"
	"time"
)

// Penalty is the score deduction per failing result in a category.
type Penalty struct {
	Error   int `json:"error" yaml:"error" koanf:"error"`
	Warning int `json:"warning" yaml:"warning" koanf:"warning"`
}

// PenaltyTable maps categories onto penalties. Categories without an entry,
// and info-severity failures, carry no penalty.
type PenaltyTable map[Category]Penalty

// DefaultPenalties returns the stock penalty policy.
func DefaultPenalties() PenaltyTable {
	return PenaltyTable{
		CategoryAccessibility: {Error: 15, Warning: 10},
		CategoryUsability:     {Error: 12, Warning: 8},
		CategoryDesign:        {Error: 10, Warning: 6},
		CategoryBranding:      {Error: 8, Warning: 5},
	}
}

func (t PenaltyTable) penalty(category Category, severity Severity) int {
	p, ok := t[category]
	if !ok {
		return 0
	}
	switch severity {
	case SeverityError:
		return p.Error
	case SeverityWarning:
		return p.Warning
	default:
		return 0
	}
}

func (t PenaltyTable) clone() PenaltyTable {
	out := make(PenaltyTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

const maxCategoryScore = 100

// Scores holds per-category and overall scores in [0,100].
type Scores struct {
	Overall    int              `json:"overall"`
	Categories map[Category]int `json:"categories"`
}

// Scorer turns results into scores and compliance flags.
type Scorer struct {
	penalties PenaltyTable
}

// NewScorer builds a scorer. A nil table uses DefaultPenalties.
func NewScorer(penalties PenaltyTable) Scorer {
	if penalties == nil {
		penalties = DefaultPenalties()
	}
	return Scorer{penalties: penalties.clone()}
}

// Score computes category scores, clamped to [0,100], and the rounded mean
// of the scored categories.
func (s Scorer) Score(results []Result) Scores {
	categories := make(map[Category]int, len(ScoredCategories))
	for _, category := range ScoredCategories {
		categories[category] = maxCategoryScore
	}
	for _, res := range results {
		if !res.Failed() {
			continue
		}
		if _, scored := categories[res.Category]; !scored {
			continue
		}
		categories[res.Category] -= s.penalties.penalty(res.Category, res.Severity)
	}

	total := 0
	for category, score := range categories {
		score = clampScore(score)
		categories[category] = score
		total += score
	}
	overall := int(math.Round(float64(total) / float64(len(ScoredCategories))))
	return Scores{Overall: overall, Categories: categories}
}

// WCAGCompliance reports, per level, whether no failing result carries that
// level tag.
func WCAGCompliance(results []Result) map[WCAGLevel]bool {
	out := make(map[WCAGLevel]bool, len(WCAGLevels))
	for _, level := range WCAGLevels {
		out[level] = true
	}
	for _, res := range results {
		if res.Failed() && res.WCAG != "" {
			out[res.WCAG] = false
		}
	}
	return out
}

// Aggregate assembles a report from results in evaluation order.
func (s Scorer) Aggregate(results []Result, at time.Time) Report {
	report := Report{
		Results:        results,
		Categories:     make(map[Category]CategorySummary, len(Categories)),
		Scores:         s.Score(results),
		WCAGCompliance: WCAGCompliance(results),
		Timestamp:      at,
	}
	for _, category := range Categories {
		report.Categories[category] = CategorySummary{}
	}
	for _, res := range results {
		summary := report.Categories[res.Category]
		summary.Total++
		switch {
		case res.Skipped:
			summary.Skipped++
			report.Skipped++
		case res.Passed:
			summary.Passed++
			report.Passed++
		default:
			summary.Failed++
			report.Failed++
		}
		report.Categories[res.Category] = summary
		report.Total++
	}
	for category, summary := range report.Categories {
		if score, ok := report.Scores.Categories[category]; ok {
			summary.Score = score
			report.Categories[category] = summary
		}
	}
	return report
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > maxCategoryScore {
		return maxCategoryScore
	}
	return score
}
