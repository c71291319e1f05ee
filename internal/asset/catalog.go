// Package asset loads the sprite catalog used to draw the game in the terminal.
// Sprites are described in YAML; a default pack is embedded in the binary.
package asset

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/kokaton/internal/core"
)

//go:embed defaults/sprites.yaml
var defaultSpritesYAML []byte

// ErrNotFound is returned when a sprite name is not in the catalog.
var ErrNotFound = errors.New("asset: sprite not found")

// spriteFile is the on-disk layout of a sprite pack.
type spriteFile struct {
	Sprites []spriteSpec `yaml:"sprites"`
}

type spriteSpec struct {
	Name       string   `yaml:"name"`
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	Glyph      string   `yaml:"glyph"`
	Art        []string `yaml:"art"`
	Color      string   `yaml:"color"`
	Stipple    int      `yaml:"stipple"`
	Orientable bool     `yaml:"orientable"`
}

// Catalog is a set of named sprites.
type Catalog struct {
	sprites map[string]Sprite
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(defaultSpritesYAML)
}

// LoadFile reads a sprite pack from disk. Sprites it defines replace the
// embedded ones with the same name; everything else falls back to defaults.
func LoadFile(path string) (*Catalog, error) {
	base, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("asset: failed to read sprite pack %s: %w", path, err)
	}
	overlay, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("asset: %s: %w", path, err)
	}
	for name, s := range overlay.sprites {
		base.sprites[name] = s
	}
	return base, nil
}

// Parse decodes and validates a YAML sprite pack.
func Parse(data []byte) (*Catalog, error) {
	var file spriteFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("asset: failed to parse sprite pack: %w", err)
	}

	c := &Catalog{sprites: make(map[string]Sprite, len(file.Sprites))}
	for i, spec := range file.Sprites {
		s, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("asset: sprite #%d: %w", i, err)
		}
		if _, dup := c.sprites[s.Name]; dup {
			return nil, fmt.Errorf("asset: duplicate sprite %q", s.Name)
		}
		c.sprites[s.Name] = s
	}
	return c, nil
}

// build validates a spec and converts it to a Sprite.
func (spec spriteSpec) build() (Sprite, error) {
	if spec.Name == "" {
		return Sprite{}, errors.New("missing name")
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return Sprite{}, fmt.Errorf("%s: width and height must be positive", spec.Name)
	}
	if spec.Stipple < 0 {
		return Sprite{}, fmt.Errorf("%s: stipple must not be negative", spec.Name)
	}

	color, ok := core.ParseColor(spec.Color)
	if !ok {
		return Sprite{}, fmt.Errorf("%s: unknown color %q", spec.Name, spec.Color)
	}

	s := Sprite{
		Name:       spec.Name,
		Width:      spec.Width,
		Height:     spec.Height,
		Art:        spec.Art,
		Color:      color,
		Stipple:    spec.Stipple,
		Orientable: spec.Orientable,
	}

	switch {
	case spec.Glyph != "":
		if utf8.RuneCountInString(spec.Glyph) != 1 {
			return Sprite{}, fmt.Errorf("%s: glyph must be a single character", spec.Name)
		}
		s.Glyph, _ = utf8.DecodeRuneInString(spec.Glyph)
	case len(spec.Art) == 0:
		return Sprite{}, fmt.Errorf("%s: needs a glyph or art", spec.Name)
	}

	return s, nil
}

// Sprite looks up a sprite by name.
func (c *Catalog) Sprite(name string) (Sprite, error) {
	s, ok := c.sprites[name]
	if !ok {
		return Sprite{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return s, nil
}

// Require checks that every named sprite exists.
func (c *Catalog) Require(names ...string) error {
	for _, name := range names {
		if _, err := c.Sprite(name); err != nil {
			return err
		}
	}
	return nil
}

// Names returns all sprite names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.sprites))
	for name := range c.sprites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Circle builds a filled circle sprite, the terminal equivalent of drawing a
// circle of the given radius onto a transparent surface.
func Circle(name string, radius int, color core.Color) Sprite {
	return Sprite{
		Name:   name,
		Width:  2 * radius,
		Height: 2 * radius,
		Glyph:  '●',
		Color:  color,
	}
}
