// Package picker abstracts interactive fuzzy selection over a list of
// lines, backed by external picker binaries.
package picker

import (
	"context"
	"fmt"

	"github.com/starford/tiwaz/internal/apperr"
)

// Picker presents items and returns the user's single choice.
type Picker interface {
	// Name identifies the picker ("fzf", "sk").
	Name() string
	// Available reports whether the picker can run on this system.
	Available() bool
	// Pick shows items and returns the chosen line. ok is false when the
	// user cancelled; err covers everything that is not a cancellation.
	Pick(ctx context.Context, items []string) (choice string, ok bool, err error)
}

// Default returns the supported pickers in probe order.
func Default() []Picker {
	return []Picker{NewFzf(), NewSk()}
}

// Resolve selects a picker from candidates. A non-empty preference forces
// that picker and fails if it is unknown or not installed; otherwise the
// first available candidate wins. Returns apperr.ErrNoPicker when nothing
// can serve.
func Resolve(preference string, candidates []Picker) (Picker, error) {
	if preference != "" {
		for _, p := range candidates {
			if p.Name() != preference {
				continue
			}
			if !p.Available() {
				return nil, fmt.Errorf("picker %q is not installed: %w", preference, apperr.ErrNoPicker)
			}
			return p, nil
		}
		return nil, fmt.Errorf("unknown picker %q: %w", preference, apperr.ErrNoPicker)
	}
	for _, p := range candidates {
		if p.Available() {
			return p, nil
		}
	}
	return nil, apperr.ErrNoPicker
}
