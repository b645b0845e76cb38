package brand

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadFile_DecodesScalarAndMappingSwatches(t *testing.T) {
	cfg, err := LoadFile(filepath.Join("testdata", "acme.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := Colors{
		Primary: Swatch{Hex: "#3B82F6"},
		Secondary: Swatch{
			Hex:      "#F97316",
			Gradient: "linear-gradient(90deg, #F97316, #FB923C)",
		},
		Accent: Swatch{Hex: "#10b981"},
	}
	if diff := cmp.Diff(want, cfg.Colors); diff != "" {
		t.Fatalf("colors mismatch (-want +got):\n%s", diff)
	}
	if cfg.Logo.Width != 240 || cfg.Logo.Height != 80 {
		t.Fatalf("unexpected logo dimensions: %+v", cfg.Logo)
	}
	if cfg.Typography.HeadingFamily != "Poppins" {
		t.Fatalf("heading family not decoded: %+v", cfg.Typography)
	}
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	_, err := LoadBytes([]byte("name: Acme\nfavourite_colour: blue\n"))
	if err == nil {
		t.Fatalf("expected unknown field error")
	}
}

func TestLoad_Empty(t *testing.T) {
	if _, err := Load(strings.NewReader("")); err == nil {
		t.Fatalf("expected error for empty document")
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	cfg := Config{
		ID:   "t1",
		Name: "Acme",
		Colors: Colors{
			Primary:   Swatch{Hex: "#112233"},
			Secondary: Swatch{Hex: "#445566", Gradient: "from-blue-500 to-blue-700"},
		},
	}
	out, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(out), "hex: '#112233'") {
		t.Fatalf("expected bare scalar primary swatch, got:\n%s", out)
	}
	back, err := LoadBytes(out)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if diff := cmp.Diff(cfg, back); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestConfig_Normalized(t *testing.T) {
	cfg := Config{
		Name: "  Acme  ",
		Colors: Colors{
			Primary:   Swatch{Hex: " #abc "},
			Secondary: Swatch{Hex: "not-a-colour"},
		},
		Logo: Logo{TextColor: "fff"},
	}
	got := cfg.Normalized()
	if got.Name != "Acme" {
		t.Fatalf("name not trimmed: %q", got.Name)
	}
	if got.Colors.Primary.Hex != "#AABBCC" {
		t.Fatalf("primary not canonical: %q", got.Colors.Primary.Hex)
	}
	if got.Colors.Secondary.Hex != "not-a-colour" {
		t.Fatalf("invalid colour should be preserved, got %q", got.Colors.Secondary.Hex)
	}
	if got.Logo.TextColor != "#FFFFFF" {
		t.Fatalf("text colour not canonical: %q", got.Logo.TextColor)
	}
	if cfg.Colors.Primary.Hex != " #abc " {
		t.Fatalf("Normalized mutated the receiver")
	}
}

func TestLogo_Helpers(t *testing.T) {
	cases := []struct {
		logo   Logo
		vector bool
	}{
		{logo: Logo{Source: "https://cdn.example.com/logo.SVG?v=2"}, vector: true},
		{logo: Logo{Source: "<svg viewBox='0 0 10 10'></svg>"}, vector: true},
		{logo: Logo{Source: "data:image/svg+xml;base64,AAAA"}, vector: true},
		{logo: Logo{Source: "logo.png"}, vector: false},
		{logo: Logo{}, vector: false},
	}
	for _, tc := range cases {
		if got := tc.logo.IsVector(); got != tc.vector {
			t.Fatalf("IsVector(%q) = %v, want %v", tc.logo.Source, got, tc.vector)
		}
	}
	if (Logo{}).EffectiveTextColor() != DefaultLogoTextColor {
		t.Fatalf("expected default text colour")
	}
	if !(Logo{Initials: "AC"}).HasLogo() {
		t.Fatalf("initials should count as a logo")
	}
}

func TestColors_Swatches(t *testing.T) {
	got := Colors{Primary: Swatch{Hex: "#000"}, Accent: Swatch{Hex: "#fff"}}.Swatches()
	want := []Swatch{{Hex: "#000"}, {Hex: "#fff"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("swatches mismatch (-want +got):\n%s", diff)
	}
}
