package brand

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy

	svgPolicyOnce sync.Once
	svgPolicy     *bluemonday.Policy
)

// ContainsMarkup reports whether text carries HTML tags that a strict
// sanitiser would strip. Plain characters such as "&" or "<" on their own do
// not count.
func ContainsMarkup(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	cleaned := html.UnescapeString(strictText().Sanitize(trimmed))
	return cleaned != trimmed
}

// IsInlineSVG reports whether source is inline SVG markup rather than a
// reference.
func IsInlineSVG(source string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(source))
	return strings.HasPrefix(trimmed, "<svg") || strings.HasPrefix(trimmed, "<?xml")
}

// SanitizeSVG strips scripts, event handlers and foreign content from inline
// SVG logo markup, keeping drawing primitives.
func SanitizeSVG(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(svgSanitizer().Sanitize(trimmed))
}

var eventHandlerAttr = regexp.MustCompile(`(?i)\son[a-z]+\s*=`)

// UnsafeSVGReasons lists the active-content constructs found in inline SVG
// markup. An empty result means the markup only carries drawing content.
func UnsafeSVGReasons(raw string) []string {
	lower := strings.ToLower(raw)
	var reasons []string
	if strings.Contains(lower, "<script") {
		reasons = append(reasons, "script element")
	}
	if strings.Contains(lower, "<foreignobject") {
		reasons = append(reasons, "foreignObject element")
	}
	if strings.Contains(lower, "javascript:") {
		reasons = append(reasons, "javascript: URL")
	}
	if eventHandlerAttr.MatchString(raw) {
		reasons = append(reasons, "event handler attribute")
	}
	return reasons
}

func strictText() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

func svgSanitizer() *bluemonday.Policy {
	svgPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"svg", "g", "path", "circle", "rect", "line", "polyline", "polygon",
			"ellipse", "text", "tspan", "title", "desc", "defs", "use",
			"clipPath", "linearGradient", "radialGradient", "stop",
		)

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "role", "aria-label", "aria-hidden", "focusable",
			"preserveAspectRatio",
		).OnElements("svg")

		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse", "text", "tspan"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "fill", "stroke", "stroke-width",
				"transform", "font-family", "font-size", "font-weight",
				"text-anchor",
			).OnElements(el)
		}

		policy.AllowAttrs("href", "xlink:href").OnElements("use")
		policy.AllowAttrs("id", "x1", "y1", "x2", "y2", "cx", "cy", "r", "gradientUnits").OnElements("linearGradient", "radialGradient")
		policy.AllowAttrs("offset", "stop-color", "stop-opacity").OnElements("stop")
		policy.AllowAttrs("id").OnElements("clipPath", "defs", "g")
		policy.AllowAttrs("transform", "fill", "clip-path").OnElements("g")

		svgPolicy = policy
	})
	return svgPolicy
}
