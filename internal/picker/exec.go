package picker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"
)

// execPicker runs an external picker binary, feeding items over stdin and
// reading the selected line from stdout. The picker draws its UI on the
// controlling tty, so stderr is passed through.
type execPicker struct {
	bin  string
	args []string
}

// NewFzf returns the fzf-backed picker.
func NewFzf() Picker {
	return &execPicker{bin: "fzf", args: []string{"--prompt=make> ", "--reverse", "--no-multi"}}
}

// NewSk returns the skim-backed picker.
func NewSk() Picker {
	return &execPicker{bin: "sk", args: []string{"--prompt=make> ", "--reverse", "--no-multi"}}
}

func (p *execPicker) Name() string { return p.bin }

func (p *execPicker) Available() bool {
	_, err := exec.LookPath(p.bin)
	return err == nil
}

func (p *execPicker) Pick(ctx context.Context, items []string) (string, bool, error) {
	cmd := exec.CommandContext(ctx, p.bin, p.args...)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return "", false, fmt.Errorf("picker %s: stdin: %w", p.bin, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", false, fmt.Errorf("picker %s: stdout: %w", p.bin, err)
	}
	if err := cmd.Start(); err != nil {
		return "", false, fmt.Errorf("picker %s: start: %w", p.bin, err)
	}

	var out []byte
	g := new(errgroup.Group)
	g.Go(func() error {
		defer stdin.Close()
		for _, item := range items {
			if _, err := fmt.Fprintln(stdin, item); err != nil {
				// The picker exits as soon as the user chooses; a broken
				// pipe on the remaining items is expected.
				if errors.Is(err, syscall.EPIPE) {
					return nil
				}
				return err
			}
		}
		return nil
	})
	g.Go(func() error {
		b, err := io.ReadAll(stdout)
		out = b
		return err
	})

	ioErr := g.Wait()
	waitErr := cmd.Wait()

	if waitErr != nil {
		if cancelled(waitErr) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("picker %s: %w", p.bin, waitErr)
	}
	if ioErr != nil {
		return "", false, fmt.Errorf("picker %s: %w", p.bin, ioErr)
	}

	choice := strings.TrimRight(string(out), "\n")
	if choice == "" {
		return "", false, nil
	}
	return choice, true, nil
}

// cancelled classifies picker exit codes: 130 is user abort (esc/ctrl-c),
// 1 is "no match accepted". Both mean nothing was chosen.
func cancelled(err error) bool {
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return false
	}
	code := exitErr.ExitCode()
	return code == 130 || code == 1
}
