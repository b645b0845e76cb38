// Package tokens derives design tokens from a brand configuration: shade
// scales for every semantic colour role, typography, spacing, shadow and
// radius scales, a flat map of CSS custom properties and an exportable
// stylesheet. Themes can also be exported as go-theme manifests so renderers
// that already consume go-theme pick up tenant branding unchanged.
package tokens
