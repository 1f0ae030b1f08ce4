package internal

import (
	"log/slog"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/tiwaz/internal/makefile"
	"github.com/starford/tiwaz/internal/term"
)

// Supported picker names.
const (
	PickerFzf = "fzf"
	PickerSk  = "sk"
)

// keymapRe accepts key sequences of the form ctrl-<letter> or alt-<letter>.
var keymapRe = regexp.MustCompile(`^(ctrl|alt)-[a-z]$`)

// Config represents the application configuration.
type Config struct {
	App      ApplicationConfig `yaml:"app"`
	Keymap   string            `yaml:"keymap"`
	Picker   PickerConfig      `yaml:"picker"`
	Terminal TerminalConfig    `yaml:"terminal"`
	Targets  TargetsConfig     `yaml:"targets"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Keymap, validation.Required, validation.Match(keymapRe)),
	); err != nil {
		return err
	}
	if err := c.Picker.Validate(); err != nil {
		return err
	}
	return c.Terminal.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// PickerConfig selects the fuzzy picker backend.
//
// An empty Preference probes the supported pickers in order and uses the
// first one installed; a non-empty value forces that picker.
type PickerConfig struct {
	Preference string `yaml:"preference"`
}

// Validate validates the picker configuration.
func (c *PickerConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Preference, validation.In(PickerFzf, PickerSk)),
	)
}

// TerminalConfig holds the presentation of the spawned terminal surface.
type TerminalConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Kind      string  `yaml:"kind"`
	Position  string  `yaml:"position"`
	AutoClose int     `yaml:"autoclose"`
}

// Validate validates the terminal configuration.
func (c *TerminalConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Width, validation.Required, validation.Min(0.0).Exclusive(), validation.Max(1.0)),
		validation.Field(&c.Height, validation.Required, validation.Min(0.0).Exclusive(), validation.Max(1.0)),
		validation.Field(&c.Kind, validation.Required, validation.In(term.KindPopup, term.KindSplit)),
		validation.Field(&c.Position, validation.Required, validation.In(term.PositionCenter, term.PositionTop, term.PositionBottom)),
		validation.Field(&c.AutoClose, validation.Min(0)),
	)
}

// Options converts the configuration into terminal surface options.
func (c *TerminalConfig) Options() term.Options {
	return term.Options{
		Width:     c.Width,
		Height:    c.Height,
		Kind:      c.Kind,
		Position:  c.Position,
		AutoClose: c.AutoClose,
	}
}

// TargetsConfig controls which targets are shown and how.
type TargetsConfig struct {
	ShowDescriptions bool     `yaml:"show_descriptions"`
	Exclude          []string `yaml:"exclude"`
	IncludeHidden    bool     `yaml:"include_hidden"`
}

// ParseOptions converts the configuration into extractor options.
func (c *TargetsConfig) ParseOptions() makefile.ParseOptions {
	return makefile.ParseOptions{
		IncludeHidden: c.IncludeHidden,
		Exclude:       c.Exclude,
	}
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Keymap: "ctrl-t",
		Terminal: TerminalConfig{
			Width:     0.85,
			Height:    0.80,
			Kind:      term.KindPopup,
			Position:  term.PositionCenter,
			AutoClose: 0,
		},
		Targets: TargetsConfig{
			ShowDescriptions: true,
		},
	}
}
