// Package flow drives the show-pick-run state machine that connects the
// Makefile extractor, the picker, the parameter prompt, and the terminal
// host.
package flow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/starford/tiwaz/internal/apperr"
	"github.com/starford/tiwaz/internal/makefile"
	"github.com/starford/tiwaz/internal/param"
	"github.com/starford/tiwaz/internal/picker"
	"github.com/starford/tiwaz/internal/term"
)

// State is the orchestrator's current position in the selection flow.
type State int

const (
	StateIdle State = iota
	StateListingTargets
	StateAwaitingSelection
	StateAwaitingParameterInput
	StateDispatched
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateListingTargets:
		return "listing-targets"
	case StateAwaitingSelection:
		return "awaiting-selection"
	case StateAwaitingParameterInput:
		return "awaiting-parameter-input"
	case StateDispatched:
		return "dispatched"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Prompter asks the user for one line of text. reply is invoked exactly
// once, with ok=false on cancellation.
type Prompter interface {
	Prompt(ctx context.Context, message string, reply func(text string, ok bool))
}

// Session runs one selection flow. All collaborators are injected; a
// session holds no state across invocations beyond the configuration it
// was built with.
type Session struct {
	Load             func() ([]makefile.Target, error)
	Picker           picker.Picker
	Prompter         Prompter
	Host             term.Host
	Terminal         term.Options
	ShowDescriptions bool
	Logger           *slog.Logger

	state State
}

// State returns the session's current state.
func (s *Session) State() State { return s.state }

// Show runs the full flow: load targets, present the picker, detect a
// parameter requirement, and dispatch the run command. Cancellations end
// the flow without a dispatch and without error; empty results are
// reported as warnings, not failures.
func (s *Session) Show(ctx context.Context) error {
	s.state = StateListingTargets
	targets, err := s.Load()
	if err != nil {
		s.state = StateIdle
		if errors.Is(err, apperr.ErrNoTargets) {
			s.Logger.Warn("Makefile has no eligible targets")
			return nil
		}
		return err
	}

	items := make([]string, len(targets))
	for i, t := range targets {
		items[i] = makefile.FormatTarget(t, s.ShowDescriptions)
	}

	s.state = StateAwaitingSelection
	choice, ok, err := s.Picker.Pick(ctx, items)
	if err != nil {
		s.state = StateIdle
		return err
	}
	if !ok {
		s.state = StateIdle
		s.Logger.Info("selection cancelled")
		return nil
	}

	// The picker returns the formatted line; the name is its first token.
	name := strings.Fields(choice)[0]
	hint := param.Detect(description(targets, name))
	if !hint.NeedsParam {
		return s.dispatch(ctx, name, "")
	}

	s.state = StateAwaitingParameterInput
	var dispatchErr error
	s.Prompter.Prompt(ctx, promptMessage(name, hint.Example), func(text string, ok bool) {
		if !ok {
			s.state = StateIdle
			s.Logger.Info("parameter input cancelled")
			return
		}
		dispatchErr = s.dispatch(ctx, name, strings.TrimSpace(text))
	})
	return dispatchErr
}

// dispatch builds the opaque command string and hands it to the host.
func (s *Session) dispatch(ctx context.Context, name, paramValue string) error {
	command := term.Build(term.MakeCommand(name, paramValue), s.Terminal)
	if err := s.Host.Open(ctx, command); err != nil {
		s.state = StateIdle
		return fmt.Errorf("dispatch %q: %w", name, err)
	}
	s.state = StateDispatched
	s.Logger.Info("target dispatched",
		slog.String("target", name),
		slog.String("host", s.Host.Name()))
	return nil
}

// RunTarget dispatches a named target directly, bypassing the picker and
// parameter detection. This path has no description to inspect, so it
// never prompts.
func (s *Session) RunTarget(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("run: target name is required")
	}
	return s.dispatch(ctx, name, "")
}

func description(targets []makefile.Target, name string) string {
	for _, t := range targets {
		if t.Name == name {
			return t.Description
		}
	}
	return ""
}

func promptMessage(name, example string) string {
	if example != "" {
		return fmt.Sprintf("parameter for %s (e.g. %s)", name, example)
	}
	return fmt.Sprintf("parameter for %s", name)
}
