// Package validation runs brand configurations through an ordered registry of
// typed rules and aggregates the outcomes into severity-weighted,
// category-scored reports.
//
// An Engine is an explicit value: construct one with New, register custom
// rules with AddCustomRule, and call Validate as often as needed from any
// goroutine. Built-in rules cover accessibility, usability, design and
// branding checks and lean on package color for contrast, scale and harmony
// math. A rule that panics or returns an error is isolated into a failing
// "technical" result; nothing a rule does escapes Validate.
//
// Reports can optionally be memoised in a Cache keyed by a structural
// fingerprint of the normalised input. Caching never changes results.
package validation
