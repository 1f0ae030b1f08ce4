// Package term composes run commands and dispatches them to a terminal
// host (a tmux popup or split, or the current terminal as fallback).
package term

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/starford/tiwaz/internal/apperr"
)

// Surface kinds and positions understood by hosts.
const (
	KindPopup = "popup"
	KindSplit = "split"

	PositionCenter = "center"
	PositionTop    = "top"
	PositionBottom = "bottom"
)

// Options describe the terminal surface a command runs in.
type Options struct {
	// Width and Height are fractions of the client terminal in (0, 1].
	Width  float64
	Height float64
	// Kind is KindPopup or KindSplit.
	Kind string
	// Position is PositionCenter, PositionTop, or PositionBottom.
	Position string
	// AutoClose is the delay in seconds before the surface closes after
	// the command finishes. 0 keeps it open until a keypress.
	AutoClose int
}

// Build composes the presentation options and the shell command into one
// opaque string. Hosts receive it unmodified and parse it themselves.
func Build(baseCmd string, o Options) string {
	return fmt.Sprintf("--width=%.2f --height=%.2f --kind=%s --position=%s --autoclose=%d -- %s",
		o.Width, o.Height, o.Kind, o.Position, o.AutoClose, baseCmd)
}

// MakeCommand builds the shell invocation for a make target. A non-empty
// parameter value is passed as c="<value>"; the value is quoted verbatim,
// embedded double quotes are not escaped.
func MakeCommand(target, paramValue string) string {
	if paramValue == "" {
		return "make " + target
	}
	return `make ` + target + ` c="` + paramValue + `"`
}

// Host runs an opaque command string on some terminal surface.
type Host interface {
	// Name identifies the host ("tmux", "inline").
	Name() string
	// Available reports whether this host can run commands right now.
	Available() bool
	// Open parses the command string produced by Build and runs it.
	Open(ctx context.Context, command string) error
}

// Resolve returns the first available host, or apperr.ErrNoHost.
func Resolve(hosts ...Host) (Host, error) {
	for _, h := range hosts {
		if h.Available() {
			return h, nil
		}
	}
	return nil, apperr.ErrNoHost
}

// Hosts returns the supported hosts in preference order.
func Hosts() []Host {
	return []Host{&TmuxHost{}, &InlineHost{}}
}

// parseCommand splits an opaque command string back into options and the
// shell command following the "--" separator.
func parseCommand(s string) (Options, string, error) {
	var o Options
	rest := s
	for rest != "" {
		rest = strings.TrimLeft(rest, " ")
		if strings.HasPrefix(rest, "-- ") {
			return o, rest[len("-- "):], nil
		}
		field := rest
		if i := strings.IndexByte(rest, ' '); i >= 0 {
			field, rest = rest[:i], rest[i+1:]
		} else {
			rest = ""
		}
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return o, "", fmt.Errorf("term: malformed field %q in %q", field, s)
		}
		var err error
		switch key {
		case "--width":
			o.Width, err = strconv.ParseFloat(value, 64)
		case "--height":
			o.Height, err = strconv.ParseFloat(value, 64)
		case "--kind":
			o.Kind = value
		case "--position":
			o.Position = value
		case "--autoclose":
			o.AutoClose, err = strconv.Atoi(value)
		default:
			err = fmt.Errorf("unknown option %q", key)
		}
		if err != nil {
			return o, "", fmt.Errorf("term: parse %q: %w", field, err)
		}
	}
	return o, "", fmt.Errorf("term: missing command separator in %q", s)
}

// wrapAutoClose appends the post-exit behavior to a shell command: sleep
// for the delay, or wait for a keypress when the delay is zero.
func wrapAutoClose(cmd string, autoClose int) string {
	if autoClose > 0 {
		return fmt.Sprintf("%s; sleep %d", cmd, autoClose)
	}
	return cmd + `; printf '\n[press enter to close]'; read -r _`
}
