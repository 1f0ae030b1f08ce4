// Package internal wires the Makefile extractor, picker, prompter, and
// terminal host into the commands exposed by the CLI.
package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/starford/tiwaz/internal/apperr"
	"github.com/starford/tiwaz/internal/flow"
	"github.com/starford/tiwaz/internal/makefile"
	"github.com/starford/tiwaz/internal/mcpserver"
	"github.com/starford/tiwaz/internal/picker"
	"github.com/starford/tiwaz/internal/shellinit"
	"github.com/starford/tiwaz/internal/term"
)

// App is the assembled application. Configuration is immutable after New.
type App struct {
	config   *Config
	logger   *slog.Logger
	workdir  string
	pickers  []picker.Picker
	prompter flow.Prompter
	host     term.Host
	out      io.Writer
}

// New builds the application from options. Only the configuration is
// required; every capability has a live default.
func New(opts ...Option) (*App, error) {
	app := &App{
		workdir:  ".",
		pickers:  picker.Default(),
		prompter: flow.TTYPrompter{},
		out:      os.Stdout,
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: app.config.App.LogLevel,
	}))
	slog.SetDefault(logger)
	app.logger = logger

	return app, nil
}

// loadTargets re-reads and re-parses the nearest Makefile. No caching.
func (a *App) loadTargets() ([]makefile.Target, error) {
	return makefile.Load(a.workdir, a.config.Targets.ParseOptions())
}

// resolveHost returns the injected host or the first available real one.
func (a *App) resolveHost() (term.Host, error) {
	if a.host != nil {
		return a.host, nil
	}
	return term.Resolve(term.Hosts()...)
}

// session assembles a flow session. pickerOverride, when non-empty, wins
// over the configured preference. withPicker=false skips picker resolution
// for the direct-run path, which never needs one.
func (a *App) session(pickerOverride string, withPicker bool) (*flow.Session, error) {
	host, err := a.resolveHost()
	if err != nil {
		return nil, err
	}
	s := &flow.Session{
		Load:             a.loadTargets,
		Prompter:         a.prompter,
		Host:             host,
		Terminal:         a.config.Terminal.Options(),
		ShowDescriptions: a.config.Targets.ShowDescriptions,
		Logger:           a.logger,
	}
	if withPicker {
		pref := pickerOverride
		if pref == "" {
			pref = a.config.Picker.Preference
		}
		p, err := picker.Resolve(pref, a.pickers)
		if err != nil {
			return nil, err
		}
		s.Picker = p
	}
	return s, nil
}

// Show runs the interactive show-pick-run flow.
func (a *App) Show(ctx context.Context, pickerOverride string) error {
	s, err := a.session(pickerOverride, true)
	if err != nil {
		return err
	}
	return s.Show(ctx)
}

// List prints the formatted target list. With watch enabled it blocks and
// re-prints whenever the Makefile changes.
func (a *App) List(ctx context.Context, watch bool) error {
	if err := a.printTargets(); err != nil {
		return err
	}
	if !watch {
		return nil
	}
	path, err := makefile.Locate(a.workdir)
	if err != nil {
		return err
	}
	return makefile.Watch(ctx, path, a.logger, func() {
		if err := a.printTargets(); err != nil {
			a.logger.Warn("list: reload failed", slog.String("error", err.Error()))
		}
	})
}

func (a *App) printTargets() error {
	targets, err := a.loadTargets()
	if err != nil {
		if errors.Is(err, apperr.ErrNoTargets) {
			a.logger.Warn("Makefile has no eligible targets")
			return nil
		}
		return err
	}
	for _, t := range targets {
		fmt.Fprintln(a.out, makefile.FormatTarget(t, a.config.Targets.ShowDescriptions))
	}
	return nil
}

// Run dispatches a named target directly, bypassing the picker.
func (a *App) Run(ctx context.Context, name string) error {
	s, err := a.session("", false)
	if err != nil {
		return err
	}
	return s.RunTarget(ctx, name)
}

// TargetNames returns the current target names for shell completion.
// Errors are swallowed: completion must never fail loudly.
func (a *App) TargetNames() []string {
	targets, err := a.loadTargets()
	if err != nil {
		return nil
	}
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.Name
	}
	return names
}

// InitShell writes the keybinding snippet for the given shell.
func (a *App) InitShell(shell string) error {
	snippet, err := shellinit.Snippet(shell, a.config.Keymap)
	if err != nil {
		return err
	}
	_, err = io.WriteString(a.out, snippet)
	return err
}

// ServeMCP runs the MCP stdio server until the client disconnects.
func (a *App) ServeMCP(ctx context.Context) error {
	srv := mcpserver.New(a.loadTargets, func(ctx context.Context, name string) error {
		return a.Run(ctx, name)
	})
	a.logger.Info("MCP server starting on stdio")
	return srv.ServeStdio()
}
