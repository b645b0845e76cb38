package tokens

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
	"sync"

	"github.com/goliatone/go-brandkit/pkg/color"
	"github.com/goliatone/go-brandkit/pkg/render/template"
	"github.com/goliatone/go-brandkit/pkg/render/template/pongo"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

const (
	stylesheetTemplate  = "stylesheet"
	stylesheetExtension = ".css.tpl"
)

var (
	defaultRendererOnce sync.Once
	defaultRenderer     template.Renderer
	defaultRendererErr  error
)

// Templates exposes the embedded stylesheet templates.
func Templates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// NewStylesheetRenderer returns a renderer for StylesheetWith. Templates in
// overrides take precedence over the embedded ones, so a caller can replace
// "stylesheet.css.tpl" while keeping the default for anything it omits.
// Override templates receive a StylesheetView and the cssvar filter.
func NewStylesheetRenderer(overrides ...fs.FS) (template.Renderer, error) {
	opts := make([]pongo.Option, 0, len(overrides)+2)
	for _, src := range overrides {
		opts = append(opts, pongo.WithFS(src))
	}
	opts = append(opts, pongo.WithFS(Templates()), pongo.WithExtension(stylesheetExtension))
	return pongo.New(opts...)
}

func stylesheetRenderer() (template.Renderer, error) {
	defaultRendererOnce.Do(func() {
		defaultRenderer, defaultRendererErr = NewStylesheetRenderer()
	})
	return defaultRenderer, defaultRendererErr
}

// Stylesheet renders the theme as CSS with the embedded template.
func Stylesheet(theme Theme, out ...io.Writer) (string, error) {
	renderer, err := stylesheetRenderer()
	if err != nil {
		return "", fmt.Errorf("tokens: stylesheet renderer: %w", err)
	}
	return StylesheetWith(renderer, theme, out...)
}

// StylesheetWith renders the theme through renderer's "stylesheet" template.
func StylesheetWith(renderer template.Renderer, theme Theme, out ...io.Writer) (string, error) {
	if renderer == nil {
		return "", fmt.Errorf("tokens: renderer is nil")
	}
	if len(theme.Colors) == 0 {
		return "", fmt.Errorf("tokens: theme has no colors")
	}
	css, err := renderer.RenderTemplate(stylesheetTemplate, NewStylesheetView(theme).context(), out...)
	if err != nil {
		return "", fmt.Errorf("tokens: render stylesheet: %w", err)
	}
	return css, nil
}

// Utility is one colour stop exposed as .text-, .bg- and .border- classes.
type Utility struct {
	// Name is the class suffix, e.g. "primary-500".
	Name string
	// Token is the custom property without dashes, e.g. "color-primary-500".
	Token string
}

// StylesheetView is what the stylesheet template renders. Templates see each
// field under its lower-case name: brand, vars, utilities, dark, contrast
// and small.
type StylesheetView struct {
	Brand     string
	Vars      []Token
	Utilities []Utility
	Dark      []Token
	Contrast  []Token
	Small     []Token
}

// NewStylesheetView prepares theme for rendering. The brand name is cleaned
// so it cannot close the header comment.
func NewStylesheetView(theme Theme) StylesheetView {
	utilities := make([]Utility, 0, len(Roles)*len(color.Stops))
	for _, role := range Roles {
		for _, stop := range color.Stops {
			name := string(role) + "-" + strconv.Itoa(int(stop))
			utilities = append(utilities, Utility{Name: name, Token: "color-" + name})
		}
	}

	brand := strings.TrimSpace(theme.BrandName)
	if brand == "" {
		brand = "Brand"
	}
	return StylesheetView{
		Brand:     strings.ReplaceAll(brand, "*/", ""),
		Vars:      theme.Vars(),
		Utilities: utilities,
		Dark:      prefixed("--color-", theme.Dark),
		Contrast:  prefixed("--color-", theme.Contrast),
		Small:     smallScreenTokens(theme.Typography),
	}
}

func (v StylesheetView) context() map[string]any {
	return map[string]any{
		"brand":     v.Brand,
		"vars":      v.Vars,
		"utilities": v.Utilities,
		"dark":      v.Dark,
		"contrast":  v.Contrast,
		"small":     v.Small,
	}
}

// smallScreenTokens steps the two largest type sizes down one step.
func smallScreenTokens(typo Typography) []Token {
	n := len(typo.Sizes)
	if n < 3 {
		return nil
	}
	var out []Token
	for i := n - 2; i < n; i++ {
		out = append(out, Token{Name: "--font-size-" + typo.Sizes[i].Name, Value: typo.Sizes[i-1].Value})
	}
	return out
}
