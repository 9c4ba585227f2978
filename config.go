package arbor

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// ColorValue is a Color written in YAML as [r, g, b] or [r, g, b, a] with
// 0-255 components.
type ColorValue Color

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ColorValue) UnmarshalYAML(value *yaml.Node) error {
	var parts []int
	if err := value.Decode(&parts); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	if len(parts) != 3 && len(parts) != 4 {
		return fmt.Errorf("color: want 3 or 4 components, got %d", len(parts))
	}
	for _, p := range parts {
		if p < 0 || p > 255 {
			return fmt.Errorf("color: component %d out of range 0-255", p)
		}
	}
	a := 255
	if len(parts) == 4 {
		a = parts[3]
	}
	*c = ColorValue(RGBA(uint8(parts[0]), uint8(parts[1]), uint8(parts[2]), uint8(a)))
	return nil
}

// ThemeValue is a text theme in YAML form.
type ThemeValue struct {
	Base   ColorValue `yaml:"base"`
	Shadow ColorValue `yaml:"shadow"`
}

// Config holds the tunables of the dialog and window layer.
type Config struct {
	// TPS is the number of updates per second; sprite Update calls receive
	// 1/TPS as dt.
	TPS int `yaml:"tps"`

	// FadeFrames is how many frames FadeIn and FadeOut take.
	FadeFrames int `yaml:"fadeFrames"`

	// TextSpeed is how many characters message windows reveal per frame.
	// Zero shows each page at once.
	TextSpeed float64 `yaml:"textSpeed"`

	// MessageLines is the page height of the message and speech boxes.
	MessageLines int `yaml:"messageLines"`

	WindowPadding int        `yaml:"windowPadding"`
	WindowFill    ColorValue `yaml:"windowFill"`
	WindowBorder  ColorValue `yaml:"windowBorder"`
	WindowText    ThemeValue `yaml:"windowText"`
	WindowCursor  ColorValue `yaml:"windowCursor"`

	// Themes are added to every overlay on top of the built-in "default".
	Themes map[string]ThemeValue `yaml:"themes"`

	// Keys overrides the default key bindings per action, e.g.
	// confirm: [Enter, Z].
	Keys map[Action][]ebiten.Key `yaml:"keys"`

	// Sounds lists the sound effect files.
	Sounds SEFiles `yaml:"sounds"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	skin := DefaultWindowSkin()
	return Config{
		TPS:           60,
		FadeFrames:    8,
		TextSpeed:     1,
		MessageLines:  2,
		WindowPadding: skin.Padding,
		WindowFill:    ColorValue(skin.Fill),
		WindowBorder:  ColorValue(skin.Border),
		WindowText:    ThemeValue{Base: ColorValue(skin.Text.Base), Shadow: ColorValue(skin.Text.Shadow)},
		WindowCursor:  ColorValue(skin.Cursor),
	}
}

// ParseConfig parses YAML over DefaultConfig, so omitted keys keep their
// defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("arbor: failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("arbor: invalid config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("arbor: failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.TPS <= 0:
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	case c.FadeFrames < 0:
		return fmt.Errorf("fadeFrames must not be negative, got %d", c.FadeFrames)
	case c.TextSpeed < 0:
		return fmt.Errorf("textSpeed must not be negative, got %g", c.TextSpeed)
	case c.MessageLines < 1:
		return fmt.Errorf("messageLines must be at least 1, got %d", c.MessageLines)
	case c.WindowPadding < 0:
		return fmt.Errorf("windowPadding must not be negative, got %d", c.WindowPadding)
	}
	return nil
}

// Skin returns the window skin described by the config.
func (c *Config) Skin() WindowSkin {
	skin := DefaultWindowSkin()
	skin.Padding = c.WindowPadding
	skin.Fill = Color(c.WindowFill)
	skin.Border = Color(c.WindowBorder)
	skin.Text = TextTheme{Base: Color(c.WindowText.Base), Shadow: Color(c.WindowText.Shadow)}
	skin.Cursor = Color(c.WindowCursor)
	return skin
}

// TextThemes returns the default themes merged with the configured ones.
func (c *Config) TextThemes() map[string]TextTheme {
	themes := DefaultTextThemes()
	for k, v := range c.Themes {
		themes[k] = TextTheme{Base: Color(v.Base), Shadow: Color(v.Shadow)}
	}
	return themes
}

// KeyBindings returns the default bindings with configured actions replaced.
func (c *Config) KeyBindings() map[Action][]ebiten.Key {
	b := DefaultKeyBindings()
	for a, keys := range c.Keys {
		b[a] = keys
	}
	return b
}
