package term

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// InlineHost runs the command in the current terminal, attached to the
// process stdio. Geometry and auto-close options do not apply; it is the
// fallback when no multiplexer surface is available.
type InlineHost struct{}

// Name implements Host.
func (h *InlineHost) Name() string { return "inline" }

// Available reports true when a POSIX shell is on PATH.
func (h *InlineHost) Available() bool {
	_, err := exec.LookPath("sh")
	return err == nil
}

// Open implements Host. Unlike the tmux host it waits for the command so
// its output interleaves correctly with the caller's terminal.
func (h *InlineHost) Open(ctx context.Context, command string) error {
	_, shellCmd, err := parseCommand(command)
	if err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, "sh", "-c", shellCmd)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("term: run %q: %w", shellCmd, err)
	}
	return nil
}
