package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/goliatone/go-brandkit/pkg/validation"
)

// Environment variable names.
const (
	EnvStrictness     = "BRANDKIT_STRICTNESS"
	EnvCacheEnabled   = "BRANDKIT_CACHE_ENABLED"
	EnvCacheTTL       = "BRANDKIT_CACHE_TTL"
	EnvCacheSize      = "BRANDKIT_CACHE_MAX_ENTRIES"
	EnvDisabledRules  = "BRANDKIT_DISABLED_RULES"
	EnvLogLevel       = "BRANDKIT_LOG_LEVEL"
	EnvMetricsEnabled = "BRANDKIT_METRICS_ENABLED"
)

// Defaults.
const (
	DefaultStrictness     = validation.StrictnessStandard
	DefaultCacheEnabled   = true
	DefaultCacheTTL       = validation.DefaultCacheTTL
	DefaultCacheSize      = validation.DefaultCacheSize
	DefaultLogLevel       = slog.LevelInfo
	DefaultMetricsEnabled = false
)

// Settings validation errors.
var (
	ErrInvalidStrictness = errors.New("config: strictness must be relaxed, standard or strict")
	ErrInvalidCacheTTL   = errors.New("config: cache ttl must be a positive duration")
	ErrInvalidCacheSize  = errors.New("config: cache max entries must be positive")
	ErrInvalidBool       = errors.New("config: invalid boolean")
	ErrInvalidLogLevel   = errors.New("config: invalid log level")
	ErrUnknownRule       = errors.New("config: unknown rule id")
	ErrUnknownCategory   = errors.New("config: unknown penalty category")
	ErrInvalidPenalty    = errors.New("config: penalties must be non-negative")
)

// Settings configures a validation engine.
type Settings struct {
	Strictness     validation.Strictness
	CacheEnabled   bool
	CacheTTL       time.Duration
	CacheSize      int
	DisabledRules  []string
	LogLevel       slog.Level
	MetricsEnabled bool
	// Penalties overrides entries of validation.DefaultPenalties; categories
	// absent from the file keep their defaults.
	Penalties validation.PenaltyTable
}

// Default returns the settings used when nothing is configured.
func Default() *Settings {
	return &Settings{
		Strictness:     DefaultStrictness,
		CacheEnabled:   DefaultCacheEnabled,
		CacheTTL:       DefaultCacheTTL,
		CacheSize:      DefaultCacheSize,
		LogLevel:       DefaultLogLevel,
		MetricsEnabled: DefaultMetricsEnabled,
		Penalties:      validation.DefaultPenalties(),
	}
}

// Load reads settings from an optional YAML file and the environment.
// Returns the settings and a slice of validation errors (empty if valid).
// A file that cannot be read or parsed is reported as the only error.
func Load(configFilePath string) (*Settings, []error) {
	k := koanf.New(".")
	if configFilePath != "" {
		if err := k.Load(file.Provider(configFilePath), yaml.Parser()); err != nil {
			return nil, []error{fmt.Errorf("config: load %s: %w", configFilePath, err)}
		}
	}

	s := Default()
	var errs []error

	s.Strictness = validation.Strictness(strings.ToLower(
		getEnvOrDefault(EnvStrictness, k.String("strictness"), string(DefaultStrictness)),
	))

	enabled, err := getEnvBoolOrDefault(EnvCacheEnabled, k, "cache.enabled", DefaultCacheEnabled)
	if err != nil {
		errs = append(errs, err)
	}
	s.CacheEnabled = enabled

	ttl, err := getEnvDurationOrDefault(EnvCacheTTL, k, "cache.ttl", DefaultCacheTTL)
	if err != nil {
		errs = append(errs, err)
	}
	s.CacheTTL = ttl

	size, err := getEnvIntOrDefault(EnvCacheSize, k, "cache.max_entries", DefaultCacheSize)
	if err != nil {
		errs = append(errs, err)
	}
	s.CacheSize = size

	metrics, err := getEnvBoolOrDefault(EnvMetricsEnabled, k, "metrics_enabled", DefaultMetricsEnabled)
	if err != nil {
		errs = append(errs, err)
	}
	s.MetricsEnabled = metrics

	if raw := getEnvOrDefault(EnvLogLevel, k.String("log_level"), ""); raw != "" {
		if err := s.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			errs = append(errs, fmt.Errorf("%w %q", ErrInvalidLogLevel, raw))
		}
	}

	if k.Exists("disabled_rules") {
		s.DisabledRules = k.Strings("disabled_rules")
	}
	if val := os.Getenv(EnvDisabledRules); val != "" {
		s.DisabledRules = splitList(val)
	}

	for _, category := range k.MapKeys("penalties") {
		prefix := "penalties." + category
		cat := validation.Category(category)
		p := s.Penalties[cat]
		if k.Exists(prefix + ".error") {
			p.Error = k.Int(prefix + ".error")
		}
		if k.Exists(prefix + ".warning") {
			p.Warning = k.Int(prefix + ".warning")
		}
		s.Penalties[cat] = p
	}

	errs = append(errs, s.Validate()...)
	return s, errs
}

// Validate checks settings values. Returns a slice of validation errors
// (empty if valid).
func (s *Settings) Validate() []error {
	var errs []error

	if _, ok := validation.ParseStrictness(string(s.Strictness)); !ok {
		errs = append(errs, fmt.Errorf("%w: got %q", ErrInvalidStrictness, s.Strictness))
	}
	if s.CacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %s", ErrInvalidCacheTTL, s.CacheTTL))
	}
	if s.CacheSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidCacheSize, s.CacheSize))
	}

	known := make(map[string]struct{})
	for _, rule := range validation.BuiltinRules() {
		known[rule.Info().ID] = struct{}{}
	}
	for _, id := range s.DisabledRules {
		if _, ok := known[id]; !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownRule, id))
		}
	}

	for category, p := range s.Penalties {
		if !category.Valid() {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownCategory, category))
			continue
		}
		if p.Error < 0 || p.Warning < 0 {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidPenalty, category))
		}
	}
	return errs
}

// NewLogger builds a text logger writing to w at the configured level.
func (s *Settings) NewLogger(w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: s.LogLevel}))
}

// getEnvOrDefault returns the environment variable value if set, otherwise the koanf value, or default.
func getEnvOrDefault(envKey string, koanfVal string, defaultVal string) string {
	if val := os.Getenv(envKey); val != "" {
		return strings.TrimSpace(val)
	}
	if koanfVal != "" {
		return koanfVal
	}
	return defaultVal
}

func getEnvBoolOrDefault(envKey string, k *koanf.Koanf, koanfKey string, defaultVal bool) (bool, error) {
	if val := os.Getenv(envKey); val != "" {
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "true", "1", "yes", "on":
			return true, nil
		case "false", "0", "no", "off":
			return false, nil
		default:
			return defaultVal, fmt.Errorf("%w: %s=%q", ErrInvalidBool, envKey, val)
		}
	}
	if k.Exists(koanfKey) {
		return k.Bool(koanfKey), nil
	}
	return defaultVal, nil
}

// getEnvIntOrDefault returns the environment variable as int if set, otherwise the koanf value, or default.
func getEnvIntOrDefault(envKey string, k *koanf.Koanf, koanfKey string, defaultVal int) (int, error) {
	if val := os.Getenv(envKey); val != "" {
		i, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return defaultVal, fmt.Errorf("config: %s must be a valid integer: %w", envKey, err)
		}
		return i, nil
	}
	if k.Exists(koanfKey) {
		return k.Int(koanfKey), nil
	}
	return defaultVal, nil
}

func getEnvDurationOrDefault(envKey string, k *koanf.Koanf, koanfKey string, defaultVal time.Duration) (time.Duration, error) {
	if val := os.Getenv(envKey); val != "" {
		d, err := time.ParseDuration(strings.TrimSpace(val))
		if err != nil {
			return defaultVal, fmt.Errorf("config: %s must be a valid duration: %w", envKey, err)
		}
		return d, nil
	}
	if k.Exists(koanfKey) {
		return k.Duration(koanfKey), nil
	}
	return defaultVal, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
