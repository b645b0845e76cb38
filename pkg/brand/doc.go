// Package brand defines the brand/theme configuration value that brandkit
// validates and turns into design tokens. Configurations are plain values:
// persistence and asset resolution live with the caller, which hands brandkit
// an already-resolved Config.
package brand
