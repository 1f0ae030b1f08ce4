package flow

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// TTYPrompter reads one line from the controlling terminal. Cancellation
// is EOF (ctrl-d) or an unopenable tty.
type TTYPrompter struct{}

// Prompt implements Prompter.
func (TTYPrompter) Prompt(_ context.Context, message string, reply func(text string, ok bool)) {
	tty, err := os.Open("/dev/tty")
	if err != nil {
		reply("", false)
		return
	}
	defer tty.Close()

	fmt.Fprintf(os.Stderr, "%s: ", message)
	scanner := bufio.NewScanner(tty)
	if !scanner.Scan() {
		reply("", false)
		return
	}
	reply(strings.TrimSpace(scanner.Text()), true)
}
