// Package theme loads the optional YAML theme document applied by the
// terminal surface.
package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme describes terminal colors as names or hex strings ("red",
// "#rrggbb"). Empty fields keep the terminal defaults; unrecognized color
// names degrade to the defaults rather than failing, matching the parser's
// permissive policy.
type Theme struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
	Bold       bool   `yaml:"bold"`
}

// Default returns the zero theme: terminal defaults throughout.
func Default() Theme {
	return Theme{}
}

// Load decodes a theme document. Unknown keys are ignored.
func Load(data []byte) (Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("theme: decode: %w", err)
	}
	return t, nil
}

// LoadFile reads and decodes the theme document at path.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: open %s: %w", path, err)
	}
	return Load(data)
}
