// Package template defines the renderer contract used to turn design tokens
// into text artefacts such as stylesheets. The pongo subpackage provides the
// pongo2 implementation.
package template
