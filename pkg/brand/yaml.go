package brand

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts either a bare colour (`primary: "#3B82F6"`) or a
// mapping with hex and gradient keys.
func (s *Swatch) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = Swatch{Hex: strings.TrimSpace(node.Value)}
		return nil
	case yaml.MappingNode:
		type plain Swatch
		var decoded plain
		if err := node.Decode(&decoded); err != nil {
			return err
		}
		*s = Swatch(decoded)
		return nil
	default:
		return fmt.Errorf("brand: swatch at line %d must be a string or mapping", node.Line)
	}
}

// MarshalYAML writes swatches without a gradient as a bare string.
func (s Swatch) MarshalYAML() (any, error) {
	if s.Gradient == "" {
		return s.Hex, nil
	}
	type plain Swatch
	return plain(s), nil
}

// Load decodes a YAML brand configuration. Unknown keys are rejected.
func Load(r io.Reader) (Config, error) {
	if r == nil {
		return Config{}, errors.New("brand: reader is required")
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, errors.New("brand: empty configuration")
		}
		return Config{}, fmt.Errorf("brand: decode configuration: %w", err)
	}
	return cfg, nil
}

// LoadBytes decodes a YAML brand configuration from memory.
func LoadBytes(data []byte) (Config, error) {
	return Load(bytes.NewReader(data))
}

// LoadFile reads and decodes a YAML brand configuration from disk.
func LoadFile(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return Config{}, errors.New("brand: configuration path is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("brand: open configuration: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Marshal encodes cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("brand: encode configuration: %w", err)
	}
	return out, nil
}
