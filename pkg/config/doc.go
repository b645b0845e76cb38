// Package config loads engine settings from an optional YAML file and
// BRANDKIT_* environment variables. Environment variables take precedence
// over file values, which take precedence over defaults.
//
// A settings file looks like:
//
//	strictness: strict
//	cache:
//	  enabled: true
//	  ttl: 10m
//	  max_entries: 64
//	disabled_rules: [brand-name-memorability]
//	log_level: debug
//	metrics_enabled: true
//	penalties:
//	  accessibility: {error: 20, warning: 10}
//
// and the BRANDKIT_STRICTNESS, BRANDKIT_CACHE_ENABLED, BRANDKIT_CACHE_TTL,
// BRANDKIT_CACHE_MAX_ENTRIES, BRANDKIT_DISABLED_RULES (comma separated),
// BRANDKIT_LOG_LEVEL and BRANDKIT_METRICS_ENABLED environment variables.
package config
