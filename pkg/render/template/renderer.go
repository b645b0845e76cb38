package template

import (
	"io"
)

// Renderer renders a named template with data. Output is returned and, when
// writers are passed, copied to each of them.
type Renderer interface {
	RenderTemplate(name string, data map[string]any, out ...io.Writer) (string, error)
}
