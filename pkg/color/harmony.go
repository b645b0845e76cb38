package color

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrHarmonyArity reports a harmony request with fewer than two or more than
// three hues.
var ErrHarmonyArity = errors.New("color: harmony needs 2 or 3 hues")

// Relationship names the hue relationship detected between brand colours.
type Relationship string

const (
	RelationshipComplementary Relationship = "complementary"
	RelationshipTriadic       Relationship = "triadic"
	RelationshipAnalogous     Relationship = "analogous"
	RelationshipCustom        Relationship = "custom"
)

// Harmony classification policy. These are tuned heuristics, not perceptual
// guarantees.
const (
	complementaryTolerance = 30.0
	triadicTolerance       = 20.0
	analogousLimit         = 60.0

	scoreComplementary = 95
	scoreTriadic       = 95
	scoreAnalogous     = 85
)

// Harmony is the outcome of scoring 2-3 hues.
type Harmony struct {
	Relationship  Relationship `json:"relationship"`
	Score         float64      `json:"score"`
	Differences   []float64    `json:"differences"`
	AvgDifference float64      `json:"avg_difference"`
}

// ScoreHarmony classifies the hue relationship between 2 or 3 hues and
// scores it. The result is independent of argument order.
func ScoreHarmony(hues ...float64) (Harmony, error) {
	if len(hues) < 2 || len(hues) > 3 {
		return Harmony{}, fmt.Errorf("%w: got %d", ErrHarmonyArity, len(hues))
	}

	diffs := make([]float64, 0, 3)
	for i := 0; i < len(hues); i++ {
		for j := i + 1; j < len(hues); j++ {
			diffs = append(diffs, HueDistance(hues[i], hues[j]))
		}
	}
	sort.Float64s(diffs)

	var sum float64
	for _, d := range diffs {
		sum += d
	}
	avg := sum / float64(len(diffs))

	out := Harmony{Differences: diffs, AvgDifference: avg}
	switch {
	case isComplementary(diffs):
		out.Relationship = RelationshipComplementary
		out.Score = scoreComplementary
	case isTriadic(diffs):
		out.Relationship = RelationshipTriadic
		out.Score = scoreTriadic
	case isAnalogous(diffs):
		out.Relationship = RelationshipAnalogous
		out.Score = scoreAnalogous
	default:
		out.Relationship = RelationshipCustom
		out.Score = math.Min(100, 50+avg/2)
	}
	return out, nil
}

// HueDistance returns the absolute angular distance between two hues folded
// into [0,180].
func HueDistance(a, b float64) float64 {
	d := math.Abs(normalizeHue(a) - normalizeHue(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

func isComplementary(diffs []float64) bool {
	for _, d := range diffs {
		if math.Abs(d-180) <= complementaryTolerance {
			return true
		}
	}
	return false
}

func isTriadic(diffs []float64) bool {
	near := 0
	for _, d := range diffs {
		if math.Abs(d-120) <= triadicTolerance {
			near++
		}
	}
	return near >= 2
}

func isAnalogous(diffs []float64) bool {
	for _, d := range diffs {
		if d >= analogousLimit {
			return false
		}
	}
	return true
}
