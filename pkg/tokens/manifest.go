package tokens

import (
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-brandkit/pkg/render/template/pongo"
)

// DarkVariant names the dark variant added to exported manifests.
const DarkVariant = "dark"

const (
	defaultManifestVersion = "1.0.0"
	stylesheetAsset        = "stylesheet"
	stylesheetFile         = "brand.css"
)

// Manifest exports the theme as a go-theme manifest. Token keys are the CSS
// custom property names without the leading dashes, and the dark surfaces
// become the "dark" variant. An empty name falls back to the brand id, then
// the brand name.
func Manifest(t Theme, name, version string) *theme.Manifest {
	name = manifestName(t, name)
	if strings.TrimSpace(version) == "" {
		version = defaultManifestVersion
	}
	return &theme.Manifest{
		Name:    name,
		Version: version,
		Tokens:  manifestTokens(t.Vars()),
		Assets: theme.Assets{
			Prefix: "/assets/themes/" + name,
			Files: map[string]string{
				stylesheetAsset: stylesheetFile,
			},
		},
		Variants: map[string]theme.Variant{
			DarkVariant: {
				Tokens: manifestTokens(prefixed("--color-", t.Dark)),
			},
		},
	}
}

// RendererConfig resolves a manifest variant into the configuration go-theme
// renderers consume. Variant tokens override base tokens; unknown variants
// yield the base tokens.
func RendererConfig(m *theme.Manifest, variant string) *theme.RendererConfig {
	if m == nil {
		return nil
	}
	tokens := make(map[string]string, len(m.Tokens))
	for key, value := range m.Tokens {
		tokens[key] = value
	}
	files := make(map[string]string, len(m.Assets.Files))
	for key, value := range m.Assets.Files {
		files[key] = value
	}
	if v, ok := m.Variants[variant]; ok {
		for key, value := range v.Tokens {
			tokens[key] = value
		}
		for key, value := range v.Assets.Files {
			files[key] = value
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	prefix := strings.TrimRight(m.Assets.Prefix, "/")
	return &theme.RendererConfig{
		Theme:   m.Name,
		Variant: variant,
		Tokens:  tokens,
		CSSVars: cssVars,
		AssetURL: func(key string) string {
			file, ok := files[key]
			if !ok || file == "" {
				return ""
			}
			if prefix == "" {
				return file
			}
			return prefix + "/" + file
		},
	}
}

func manifestName(t Theme, name string) string {
	for _, candidate := range []string{name, t.BrandID, t.BrandName} {
		if id := pongo.CSSIdent(candidate); id != "" {
			return id
		}
	}
	return "brand"
}

func manifestTokens(vars []Token) map[string]string {
	out := make(map[string]string, len(vars))
	for _, tok := range vars {
		out[strings.TrimPrefix(tok.Name, "--")] = tok.Value
	}
	return out
}
