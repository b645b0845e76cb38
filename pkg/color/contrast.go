package color

import "math"

// Level is a WCAG conformance level.
type Level string

const (
	LevelA   Level = "A"
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"
)

// TextSize selects which WCAG threshold applies.
type TextSize string

const (
	TextNormal TextSize = "normal"
	TextLarge  TextSize = "large"
	// TextGraphical covers UI components and graphical objects such as logos.
	TextGraphical TextSize = "graphical"
)

// WCAG minimum contrast ratios.
const (
	MinContrastNormalAA  = 4.5
	MinContrastNormalAAA = 7.0
	MinContrastLargeAA   = 3.0
	MinContrastLargeAAA  = 4.5
)

// RelativeLuminance returns the WCAG 2.x relative luminance in [0,1].
func RelativeLuminance(c RGB) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

func linearize(channel uint8) float64 {
	c := float64(channel) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ContrastRatio returns (Llighter+0.05)/(Ldarker+0.05), ranging from 1 to 21.
// The result does not depend on argument order.
func ContrastRatio(a, b RGB) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	lighter, darker := math.Max(la, lb), math.Min(la, lb)
	return (lighter + 0.05) / (darker + 0.05)
}

// ContrastRatioHex parses both colours and returns their contrast ratio.
func ContrastRatioHex(a, b string) (float64, error) {
	ra, err := HexToRGB(a)
	if err != nil {
		return 0, err
	}
	rb, err := HexToRGB(b)
	if err != nil {
		return 0, err
	}
	return ContrastRatio(ra, rb), nil
}

// MinContrast returns the minimum ratio WCAG requires for size at level.
// Level A has no contrast criterion of its own and shares the AA minimum.
func MinContrast(size TextSize, level Level) float64 {
	large := size == TextLarge || size == TextGraphical
	switch {
	case level == LevelAAA && large:
		return MinContrastLargeAAA
	case level == LevelAAA:
		return MinContrastNormalAAA
	case large:
		return MinContrastLargeAA
	default:
		return MinContrastNormalAA
	}
}

// PassesWCAG reports whether ratio meets the threshold for size and level.
func PassesWCAG(ratio float64, size TextSize, level Level) bool {
	return ratio >= MinContrast(size, level)
}

// ContrastReport summarises a foreground/background pair.
type ContrastReport struct {
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	Ratio      float64 `json:"ratio"`
	NormalAA   bool    `json:"normal_aa"`
	NormalAAA  bool    `json:"normal_aaa"`
	LargeAA    bool    `json:"large_aa"`
	LargeAAA   bool    `json:"large_aaa"`
}

// Analyze computes the contrast ratio for a pair of hex colours and the WCAG
// pass matrix for it.
func Analyze(foreground, background string) (ContrastReport, error) {
	fg, err := HexToRGB(foreground)
	if err != nil {
		return ContrastReport{}, err
	}
	bg, err := HexToRGB(background)
	if err != nil {
		return ContrastReport{}, err
	}
	ratio := ContrastRatio(fg, bg)
	return ContrastReport{
		Foreground: RGBToHex(fg),
		Background: RGBToHex(bg),
		Ratio:      ratio,
		NormalAA:   PassesWCAG(ratio, TextNormal, LevelAA),
		NormalAAA:  PassesWCAG(ratio, TextNormal, LevelAAA),
		LargeAA:    PassesWCAG(ratio, TextLarge, LevelAA),
		LargeAAA:   PassesWCAG(ratio, TextLarge, LevelAAA),
	}, nil
}

// BestTextColor returns black or white, whichever contrasts more with
// background. Ties go to black.
func BestTextColor(background RGB) RGB {
	black := RGB{}
	white := RGB{R: 255, G: 255, B: 255}
	if ContrastRatio(white, background) > ContrastRatio(black, background) {
		return white
	}
	return black
}
