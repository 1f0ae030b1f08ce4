package term

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// TmuxHost runs commands in a tmux popup or split pane. Dispatch is
// fire-and-forget: the tmux client process is started and reaped in the
// background, and its outcome is not reported back.
type TmuxHost struct{}

// Name implements Host.
func (h *TmuxHost) Name() string { return "tmux" }

// Available reports true when running inside tmux with the binary on PATH.
func (h *TmuxHost) Available() bool {
	if os.Getenv("TMUX") == "" {
		return false
	}
	_, err := exec.LookPath("tmux")
	return err == nil
}

// Open implements Host.
func (h *TmuxHost) Open(_ context.Context, command string) error {
	opts, shellCmd, err := parseCommand(command)
	if err != nil {
		return err
	}
	args := tmuxArgs(opts, wrapAutoClose(shellCmd, opts.AutoClose))
	cmd := exec.Command("tmux", args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("term: start tmux: %w", err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// tmuxArgs translates surface options into a tmux command line.
func tmuxArgs(o Options, shellCmd string) []string {
	if o.Kind == KindSplit {
		args := []string{"split-window", "-l", percent(o.Height)}
		if o.Position == PositionTop {
			args = append(args, "-b")
		}
		return append(args, "sh", "-c", shellCmd)
	}
	args := []string{"display-popup", "-w", percent(o.Width), "-h", percent(o.Height)}
	switch o.Position {
	case PositionTop:
		args = append(args, "-y", "0")
	case PositionBottom:
		args = append(args, "-y", "100%")
	}
	return append(args, "-E", "sh -c "+shellQuote(shellCmd))
}

func percent(f float64) string {
	return fmt.Sprintf("%d%%", int(f*100+0.5))
}

// shellQuote single-quotes a string for embedding in a popup -E command.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
