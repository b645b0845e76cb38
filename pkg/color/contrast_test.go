package color

import (
	"math"
	"testing"
)

func TestContrastRatio_BlackWhite(t *testing.T) {
	ratio, err := ContrastRatioHex("#000000", "#FFFFFF")
	if err != nil {
		t.Fatalf("contrast: %v", err)
	}
	if math.Abs(ratio-21) > 1e-9 {
		t.Fatalf("expected 21, got %v", ratio)
	}
	if !PassesWCAG(ratio, TextNormal, LevelAAA) {
		t.Fatalf("black on white should pass AAA normal text")
	}
}

func TestContrastRatio_SymmetricAndIdentity(t *testing.T) {
	samples := []string{"#000000", "#FFFFFF", "#3B82F6", "#EF4444", "#777777", "#FACC15", "#0F172A"}
	for _, a := range samples {
		for _, b := range samples {
			ab, _ := ContrastRatioHex(a, b)
			ba, _ := ContrastRatioHex(b, a)
			if ab != ba {
				t.Fatalf("contrast(%s,%s)=%v but contrast(%s,%s)=%v", a, b, ab, b, a, ba)
			}
		}
		self, _ := ContrastRatioHex(a, a)
		if self != 1 {
			t.Fatalf("contrast(%s,%s) = %v, want 1", a, a, self)
		}
		for _, size := range []TextSize{TextNormal, TextLarge, TextGraphical} {
			for _, level := range []Level{LevelA, LevelAA, LevelAAA} {
				if PassesWCAG(self, size, level) {
					t.Fatalf("identical colours passed %s/%s", size, level)
				}
			}
		}
	}
}

func TestPassesWCAG_Thresholds(t *testing.T) {
	cases := []struct {
		ratio float64
		size  TextSize
		level Level
		want  bool
	}{
		{ratio: 4.5, size: TextNormal, level: LevelAA, want: true},
		{ratio: 4.49, size: TextNormal, level: LevelAA, want: false},
		{ratio: 7.0, size: TextNormal, level: LevelAAA, want: true},
		{ratio: 6.99, size: TextNormal, level: LevelAAA, want: false},
		{ratio: 3.0, size: TextLarge, level: LevelAA, want: true},
		{ratio: 2.99, size: TextGraphical, level: LevelAA, want: false},
		{ratio: 4.5, size: TextLarge, level: LevelAAA, want: true},
		{ratio: 4.4, size: TextGraphical, level: LevelAAA, want: false},
	}
	for _, tc := range cases {
		if got := PassesWCAG(tc.ratio, tc.size, tc.level); got != tc.want {
			t.Fatalf("PassesWCAG(%v, %s, %s) = %v, want %v", tc.ratio, tc.size, tc.level, got, tc.want)
		}
	}
}

func TestRelativeLuminance_Bounds(t *testing.T) {
	if l := RelativeLuminance(RGB{}); l != 0 {
		t.Fatalf("black luminance = %v", l)
	}
	if l := RelativeLuminance(RGB{R: 255, G: 255, B: 255}); math.Abs(l-1) > 1e-9 {
		t.Fatalf("white luminance = %v", l)
	}
}

func TestAnalyze(t *testing.T) {
	report, err := Analyze("#fff", "#3B82F6")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if report.Foreground != "#FFFFFF" {
		t.Fatalf("foreground not normalised: %s", report.Foreground)
	}
	if report.Ratio < 3.6 || report.Ratio > 3.8 {
		t.Fatalf("unexpected ratio %v", report.Ratio)
	}
	if !report.LargeAA || report.NormalAA || report.LargeAAA {
		t.Fatalf("unexpected pass matrix: %+v", report)
	}
	if _, err := Analyze("nope", "#000"); err == nil {
		t.Fatalf("expected error for malformed foreground")
	}
}

func TestBestTextColor(t *testing.T) {
	if got := BestTextColor(RGB{R: 0x0F, G: 0x17, B: 0x2A}); got.Hex() != "#FFFFFF" {
		t.Fatalf("expected white on dark background, got %s", got.Hex())
	}
	if got := BestTextColor(RGB{R: 0xFA, G: 0xCC, B: 0x15}); got.Hex() != "#000000" {
		t.Fatalf("expected black on yellow, got %s", got.Hex())
	}
}
