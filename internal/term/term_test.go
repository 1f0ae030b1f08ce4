package term

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/starford/tiwaz/internal/apperr"
)

func testOptions() Options {
	return Options{Width: 0.85, Height: 0.8, Kind: KindPopup, Position: PositionCenter, AutoClose: 3}
}

func TestBuild_EmbedsOptionsBeforeCommand(t *testing.T) {
	got := Build("make build", testOptions())
	want := "--width=0.85 --height=0.80 --kind=popup --position=center --autoclose=3 -- make build"
	if got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestParseCommand_RoundTrip(t *testing.T) {
	opts := testOptions()
	parsed, cmd, err := parseCommand(Build(`make build c="a b"`, opts))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != opts {
		t.Errorf("options = %+v, want %+v", parsed, opts)
	}
	if cmd != `make build c="a b"` {
		t.Errorf("command = %q", cmd)
	}
}

func TestParseCommand_MissingSeparator(t *testing.T) {
	if _, _, err := parseCommand("--width=0.5 --height=0.5"); err == nil {
		t.Fatal("missing -- separator should fail")
	}
}

func TestParseCommand_MalformedField(t *testing.T) {
	if _, _, err := parseCommand("--width -- make build"); err == nil {
		t.Fatal("field without value should fail")
	}
}

func TestMakeCommand_NoParameter(t *testing.T) {
	if got := MakeCommand("build", ""); got != "make build" {
		t.Errorf("got %q", got)
	}
}

func TestMakeCommand_ParameterQuotedVerbatim(t *testing.T) {
	if got := MakeCommand("deploy", "eu west"); got != `make deploy c="eu west"` {
		t.Errorf("got %q", got)
	}
}

func TestWrapAutoClose(t *testing.T) {
	if got := wrapAutoClose("make x", 5); got != "make x; sleep 5" {
		t.Errorf("got %q", got)
	}
	if got := wrapAutoClose("make x", 0); !strings.Contains(got, "read -r _") {
		t.Errorf("got %q, want keypress wait when autoclose is 0", got)
	}
}

func TestTmuxArgs_Popup(t *testing.T) {
	args := tmuxArgs(Options{Width: 0.85, Height: 0.8, Kind: KindPopup, Position: PositionCenter}, "make build")
	joined := strings.Join(args, " ")
	if !strings.HasPrefix(joined, "display-popup -w 85% -h 80%") {
		t.Errorf("args = %q", joined)
	}
	if strings.Contains(joined, "-y") {
		t.Errorf("center position must not set -y: %q", joined)
	}
}

func TestTmuxArgs_PopupPositions(t *testing.T) {
	top := strings.Join(tmuxArgs(Options{Kind: KindPopup, Position: PositionTop}, "x"), " ")
	if !strings.Contains(top, "-y 0") {
		t.Errorf("top args = %q", top)
	}
	bottom := strings.Join(tmuxArgs(Options{Kind: KindPopup, Position: PositionBottom}, "x"), " ")
	if !strings.Contains(bottom, "-y 100%") {
		t.Errorf("bottom args = %q", bottom)
	}
}

func TestTmuxArgs_Split(t *testing.T) {
	args := tmuxArgs(Options{Height: 0.3, Kind: KindSplit, Position: PositionTop}, "make build")
	joined := strings.Join(args, " ")
	if !strings.HasPrefix(joined, "split-window -l 30% -b") {
		t.Errorf("args = %q", joined)
	}
}

func TestShellQuote(t *testing.T) {
	if got := shellQuote("echo 'hi'"); got != `'echo '\''hi'\'''` {
		t.Errorf("got %q", got)
	}
}

type fakeHost struct {
	name      string
	available bool
	opened    []string
	err       error
}

func (h *fakeHost) Name() string    { return h.name }
func (h *fakeHost) Available() bool { return h.available }
func (h *fakeHost) Open(_ context.Context, command string) error {
	h.opened = append(h.opened, command)
	return h.err
}

func TestResolve_PrefersFirstAvailable(t *testing.T) {
	a := &fakeHost{name: "a"}
	b := &fakeHost{name: "b", available: true}
	h, err := Resolve(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Name() != "b" {
		t.Errorf("resolved %q, want b", h.Name())
	}
}

func TestResolve_NoneAvailable(t *testing.T) {
	_, err := Resolve(&fakeHost{name: "a"})
	if !errors.Is(err, apperr.ErrNoHost) {
		t.Fatalf("err = %v, want ErrNoHost", err)
	}
}
