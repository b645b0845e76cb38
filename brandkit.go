package brandkit

import (
	"fmt"
	"io"
	"log/slog"

	json "github.com/goccy/go-json"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-brandkit/pkg/brand"
	"github.com/goliatone/go-brandkit/pkg/config"
	"github.com/goliatone/go-brandkit/pkg/tokens"
	"github.com/goliatone/go-brandkit/pkg/validation"
)

// Config aliases brand.Config so callers can stay on the root package.
type Config = brand.Config

// Report is the aggregated outcome of a validation run.
type Report = validation.Report

// Context carries per-call validation settings.
type Context = validation.Context

// Theme is a generated design token set.
type Theme = tokens.Theme

// Settings aliases config.Settings.
type Settings = config.Settings

// Kit wires a validation engine configured from Settings to the token and
// stylesheet generators.
type Kit struct {
	settings *config.Settings
	engine   *validation.Engine
	metrics  *validation.Metrics
}

// New builds a Kit. Nil settings use config.Default. Options are applied
// after the ones derived from settings, so they win on conflict.
func New(settings *config.Settings, options ...validation.Option) *Kit {
	if settings == nil {
		settings = config.Default()
	}
	k := &Kit{settings: settings}
	if settings.MetricsEnabled {
		k.metrics = validation.NewMetrics()
	}
	opts := append(engineOptions(settings, k.metrics), options...)
	k.engine = validation.New(opts...)
	return k
}

// NewEngine exposes an engine configured from settings without the rest of
// the Kit.
func NewEngine(settings *config.Settings, options ...validation.Option) *validation.Engine {
	return New(settings, options...).engine
}

// LoadSettings reads settings from an optional YAML file and BRANDKIT_*
// environment variables.
func LoadSettings(path string) (*config.Settings, []error) {
	return config.Load(path)
}

// LoadConfig reads a brand configuration YAML file.
func LoadConfig(path string) (brand.Config, error) {
	return brand.LoadFile(path)
}

func engineOptions(s *config.Settings, metrics *validation.Metrics) []validation.Option {
	opts := []validation.Option{
		validation.WithPenalties(s.Penalties),
		validation.WithDisabledRules(s.DisabledRules...),
		validation.WithLogger(s.NewLogger(nil)),
	}
	if s.CacheEnabled {
		opts = append(opts, validation.WithCache(validation.NewCache(
			validation.WithTTL(s.CacheTTL),
			validation.WithMaxEntries(s.CacheSize),
		)))
	} else {
		opts = append(opts, validation.WithCache(nil))
	}
	if metrics != nil {
		opts = append(opts, validation.WithMetrics(metrics))
	}
	return opts
}

// Engine returns the underlying validation engine.
func (k *Kit) Engine() *validation.Engine {
	return k.engine
}

// Metrics returns the engine metrics, or nil when metrics are disabled.
// Register them with a prometheus registry to expose them.
func (k *Kit) Metrics() *validation.Metrics {
	return k.metrics
}

// Logger returns a logger at the configured level writing to w.
func (k *Kit) Logger(w io.Writer) *slog.Logger {
	return k.settings.NewLogger(w)
}

// Validate runs the engine. An empty vctx.Strictness falls back to the
// configured strictness.
func (k *Kit) Validate(cfg brand.Config, vctx validation.Context) validation.Report {
	if vctx.Strictness == "" {
		vctx.Strictness = k.settings.Strictness
	}
	return k.engine.Validate(cfg, vctx)
}

// GenerateTheme builds the design tokens for cfg.
func (k *Kit) GenerateTheme(cfg brand.Config) (tokens.Theme, error) {
	return tokens.Generate(cfg)
}

// Stylesheet generates the theme for cfg and renders its stylesheet. The
// output is also copied to any writers passed in.
func (k *Kit) Stylesheet(cfg brand.Config, out ...io.Writer) (string, error) {
	t, err := tokens.Generate(cfg)
	if err != nil {
		return "", err
	}
	return tokens.Stylesheet(t, out...)
}

// Manifest generates the theme for cfg and packages it as a go-theme
// manifest with a dark variant.
func (k *Kit) Manifest(cfg brand.Config, version string) (*theme.Manifest, error) {
	t, err := tokens.Generate(cfg)
	if err != nil {
		return nil, err
	}
	return tokens.Manifest(t, "", version), nil
}

// MarshalManifest encodes a theme manifest as indented JSON.
func MarshalManifest(m *theme.Manifest) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("brandkit: manifest is nil")
	}
	return json.MarshalIndent(m, "", "  ")
}
