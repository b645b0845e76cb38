package brandkit_test

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/goliatone/go-brandkit"
	"github.com/goliatone/go-brandkit/pkg/config"
	"github.com/goliatone/go-brandkit/pkg/testsupport"
	"github.com/goliatone/go-brandkit/pkg/validation"
)

var acmePath = filepath.Join("pkg", "brand", "testdata", "acme.yaml")

func quietLogger() validation.Option {
	return validation.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
}

func TestKitValidateRunsEveryBuiltinRule(t *testing.T) {
	cfg := testsupport.LoadBrandConfig(t, acmePath)
	kit := brandkit.New(nil, quietLogger())

	report := kit.Validate(cfg, brandkit.Context{})
	if report.Total != len(validation.BuiltinRules()) {
		t.Fatalf("expected %d results, got %d", len(validation.BuiltinRules()), report.Total)
	}
	if report.Fingerprint == "" {
		t.Fatalf("expected fingerprint on report")
	}
	if report.Scores.Overall < 0 || report.Scores.Overall > 100 {
		t.Fatalf("overall score out of range: %d", report.Scores.Overall)
	}
}

func TestKitValidateUsesConfiguredStrictness(t *testing.T) {
	cfg := testsupport.LoadBrandConfig(t, acmePath)

	strict := config.Default()
	strict.Strictness = validation.StrictnessStrict
	kit := brandkit.New(strict, quietLogger())
	standard := brandkit.New(nil, quietLogger())

	fromSettings := kit.Validate(cfg, brandkit.Context{})
	explicit := standard.Validate(cfg, brandkit.Context{Strictness: validation.StrictnessStrict})
	if fromSettings.Fingerprint != explicit.Fingerprint {
		t.Fatalf("expected settings strictness to match explicit strict context")
	}

	overridden := kit.Validate(cfg, brandkit.Context{Strictness: validation.StrictnessRelaxed})
	if overridden.Fingerprint == fromSettings.Fingerprint {
		t.Fatalf("expected per-call strictness to override settings")
	}
}

func TestKitSettingsWireCacheAndRules(t *testing.T) {
	settings := config.Default()
	settings.CacheTTL = time.Minute
	settings.CacheSize = 4
	settings.DisabledRules = []string{validation.RuleBrandNameMemorability}

	kit := brandkit.New(settings, quietLogger())
	cache := kit.Engine().Cache()
	if cache == nil {
		t.Fatalf("expected cache")
	}
	if cache.TTL() != time.Minute {
		t.Fatalf("expected ttl 1m, got %s", cache.TTL())
	}
	for _, status := range kit.Engine().Rules() {
		if status.ID == validation.RuleBrandNameMemorability && status.Enabled {
			t.Fatalf("expected %s to be disabled", validation.RuleBrandNameMemorability)
		}
	}

	settings.CacheEnabled = false
	if brandkit.NewEngine(settings, quietLogger()).Cache() != nil {
		t.Fatalf("expected cache to be disabled")
	}
}

func TestKitMetrics(t *testing.T) {
	cfg := testsupport.LoadBrandConfig(t, acmePath)

	if brandkit.New(nil, quietLogger()).Metrics() != nil {
		t.Fatalf("metrics should be nil unless enabled")
	}

	settings := config.Default()
	settings.MetricsEnabled = true
	kit := brandkit.New(settings, quietLogger())

	reg := prometheus.NewRegistry()
	if err := kit.Metrics().Register(reg); err != nil {
		t.Fatalf("register: %v", err)
	}
	kit.Validate(cfg, brandkit.Context{})
	kit.Validate(cfg, brandkit.Context{})

	count, err := testutil.GatherAndCount(reg, validation.MetricCacheLookupsTotal)
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected hit and miss series, got %d", count)
	}
}

func TestKitStylesheetAndManifest(t *testing.T) {
	cfg := testsupport.LoadBrandConfig(t, acmePath)
	kit := brandkit.New(nil, quietLogger())

	css, captured := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return kit.Stylesheet(cfg, w)
	})
	if css != captured {
		t.Fatalf("writer output differs from returned stylesheet")
	}
	if !strings.Contains(css, "--color-primary-500: #3B82F6;") {
		t.Fatalf("stylesheet missing primary token")
	}

	manifest, err := kit.Manifest(cfg, "2.0.0")
	if err != nil {
		t.Fatalf("manifest: %v", err)
	}
	if manifest.Name != "tenant-acme" || manifest.Version != "2.0.0" {
		t.Fatalf("unexpected manifest identity %q %q", manifest.Name, manifest.Version)
	}

	encoded, err := brandkit.MarshalManifest(manifest)
	if err != nil {
		t.Fatalf("marshal manifest: %v", err)
	}
	if !strings.Contains(string(encoded), "#3B82F6") {
		t.Fatalf("encoded manifest missing primary token:\n%s", encoded)
	}
	if _, err := brandkit.MarshalManifest(nil); err == nil {
		t.Fatalf("expected error for nil manifest")
	}
}

func TestKitGenerateThemeRejectsMissingPrimary(t *testing.T) {
	kit := brandkit.New(nil, quietLogger())
	if _, err := kit.GenerateTheme(brandkit.Config{Name: "Empty"}); err == nil {
		t.Fatalf("expected error for missing primary colour")
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	for _, key := range []string{config.EnvStrictness, config.EnvCacheEnabled, config.EnvCacheTTL,
		config.EnvCacheSize, config.EnvDisabledRules, config.EnvLogLevel, config.EnvMetricsEnabled} {
		t.Setenv(key, "")
	}
	settings, errs := brandkit.LoadSettings("")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if settings.Strictness != validation.StrictnessStandard {
		t.Fatalf("expected standard strictness, got %q", settings.Strictness)
	}
}
