package pongo

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-brandkit/pkg/render/template"
)

// Option configures an Engine.
type Option func(*Engine)

// WithFS adds a template source. Sources are searched in the order they were
// added, so an earlier source overrides templates of the same name in a
// later one.
func WithFS(files fs.FS) Option {
	return func(e *Engine) {
		if files != nil {
			e.sources = append(e.sources, files)
		}
	}
}

// WithExtension sets the suffix appended to template names that lack it.
// Defaults to ".tpl".
func WithExtension(ext string) Option {
	return func(e *Engine) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		e.extension = ext
	}
}

// Engine renders templates from one or more fs.FS sources with pongo2.
// Parsed templates are cached by the underlying template set; an Engine is
// safe for concurrent use.
type Engine struct {
	set       *pongo2.TemplateSet
	sources   []fs.FS
	extension string
}

var _ template.Renderer = (*Engine)(nil)

// New builds an Engine. At least one WithFS source is required.
func New(options ...Option) (*Engine, error) {
	e := &Engine{extension: ".tpl"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if len(e.sources) == 0 {
		return nil, errors.New("pongo: at least one template source is required")
	}

	loaders := make([]pongo2.TemplateLoader, len(e.sources))
	for i, src := range e.sources {
		loaders[i] = pongo2.NewFSLoader(src)
	}
	e.set = pongo2.NewSet("brandkit", loaders...)
	registerFilters()
	return e, nil
}

// RenderTemplate renders name, adding the configured extension when the
// name has none. Struct values in data are addressed by their Go field names.
func (e *Engine) RenderTemplate(name string, data map[string]any, out ...io.Writer) (string, error) {
	if e == nil || e.set == nil {
		return "", errors.New("pongo: engine is nil")
	}
	path := strings.TrimSpace(name)
	if !strings.HasSuffix(path, e.extension) {
		path += e.extension
	}

	tmpl, err := e.set.FromCache(path)
	if err != nil {
		return "", fmt.Errorf("pongo: load template %q: %w", path, err)
	}
	ctx := pongo2.Context(data)
	if ctx == nil {
		ctx = pongo2.Context{}
	}
	rendered, err := tmpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("pongo: execute template %q: %w", path, err)
	}
	for _, w := range out {
		if _, err := io.WriteString(w, rendered); err != nil {
			return rendered, fmt.Errorf("pongo: write output: %w", err)
		}
	}
	return rendered, nil
}
