package internal

import (
	"io"

	"github.com/starford/tiwaz/internal/flow"
	"github.com/starford/tiwaz/internal/picker"
	"github.com/starford/tiwaz/internal/term"
)

// Option is a functional option for configuring the application.
type Option func(*App)

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *App) {
		a.config = cfg
	}
}

// WithWorkdir sets the directory the Makefile search starts from.
func WithWorkdir(dir string) Option {
	return func(a *App) {
		a.workdir = dir
	}
}

// WithPickers overrides the picker candidates (used in tests).
func WithPickers(pickers []picker.Picker) Option {
	return func(a *App) {
		a.pickers = pickers
	}
}

// WithPrompter overrides the parameter prompter (used in tests).
func WithPrompter(p flow.Prompter) Option {
	return func(a *App) {
		a.prompter = p
	}
}

// WithHost overrides terminal host resolution (used in tests).
func WithHost(h term.Host) Option {
	return func(a *App) {
		a.host = h
	}
}

// WithOutput redirects listing output away from stdout.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.out = w
	}
}
