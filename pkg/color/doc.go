// Package color implements the colour-science primitives used by brandkit:
// hex/RGB/HSL conversion, Tailwind-style 11-stop shade scales, WCAG relative
// luminance and contrast checks, and a hue-relationship harmony heuristic.
//
// Every function is pure and safe for concurrent use. Malformed hex input is
// reported as ErrInvalidColorFormat and is never silently defaulted, since
// scale and contrast math is meaningless on bad input.
package color
