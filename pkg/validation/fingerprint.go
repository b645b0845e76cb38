package validation

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/goliatone/go-brandkit/pkg/brand"
)

// Fingerprint returns a deterministic cache key for cfg and the parts of
// vctx that influence validation. Fields are normalised and hashed as sorted
// length-prefixed key/value pairs, so the key does not depend on field order
// or on cosmetic differences such as hex casing. Per-call rules are not part
// of the key; calls carrying them bypass the cache.
func Fingerprint(cfg brand.Config, vctx Context) string {
	return fingerprintFields(fingerprintInput(cfg.Normalized(), vctx))
}

func fingerprintInput(cfg brand.Config, vctx Context) map[string]string {
	fields := map[string]string{
		"id":                        cfg.ID,
		"name":                      cfg.Name,
		"colors.primary.hex":        cfg.Colors.Primary.Hex,
		"colors.primary.gradient":   cfg.Colors.Primary.Gradient,
		"colors.secondary.hex":      cfg.Colors.Secondary.Hex,
		"colors.secondary.gradient": cfg.Colors.Secondary.Gradient,
		"colors.accent.hex":         cfg.Colors.Accent.Hex,
		"colors.accent.gradient":    cfg.Colors.Accent.Gradient,
		"typography.family":         cfg.Typography.Family,
		"typography.heading_family": cfg.Typography.HeadingFamily,
		"typography.base_size":      strconv.Itoa(cfg.Typography.BaseSize),
		"logo.source":               cfg.Logo.Source,
		"logo.alt_text":             cfg.Logo.AltText,
		"logo.width":                strconv.Itoa(cfg.Logo.Width),
		"logo.height":               strconv.Itoa(cfg.Logo.Height),
		"logo.initials":             cfg.Logo.Initials,
		"logo.text_color":           cfg.Logo.TextColor,
		"context.strictness":        string(vctx.EffectiveStrictness()),
		"context.industry":          normalizeName(vctx.Industry),
		"context.audience":          normalizeName(vctx.Audience),
	}
	return fields
}

func fingerprintFields(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	digest := xxhash.New()
	for _, key := range keys {
		value := fields[key]
		fmt.Fprintf(digest, "%d:%s=%d:%s;", len(key), key, len(value), value)
	}
	return fmt.Sprintf("%016x", digest.Sum64())
}
