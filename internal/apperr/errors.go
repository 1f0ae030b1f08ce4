// Package apperr defines sentinel errors shared across the application.
package apperr

import "errors"

var (
	// ErrNoMakefile means no file named Makefile exists in the working
	// directory or any of its parents.
	ErrNoMakefile = errors.New("no Makefile found")
	// ErrNoTargets means the Makefile parsed to zero eligible targets.
	ErrNoTargets = errors.New("no targets found")
	// ErrNoPicker means no fuzzy picker binary is installed or the
	// configured preference is unavailable.
	ErrNoPicker = errors.New("no picker available")
	// ErrNoHost means no terminal host can run the selected target.
	ErrNoHost = errors.New("no terminal host available")
)
