package internal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/starford/tiwaz/internal/apperr"
	"github.com/starford/tiwaz/internal/testutil"
)

type recordingHost struct {
	opened []string
}

func (h *recordingHost) Name() string    { return "recording" }
func (h *recordingHost) Available() bool { return true }
func (h *recordingHost) Open(_ context.Context, command string) error {
	h.opened = append(h.opened, command)
	return nil
}

func TestNew_RequiresConfig(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("missing config should fail")
	}
}

func TestList_PrintsFormattedTargets(t *testing.T) {
	dir := testutil.TempMakefile(t, "build: ## compile sources\nclean:\n")
	var out bytes.Buffer
	app, err := New(
		WithConfig(NewDefaultConfig()),
		WithWorkdir(dir),
		WithOutput(&out),
	)
	if err != nil {
		t.Fatal(err)
	}

	if err := app.List(context.Background(), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %q, want 2", lines)
	}
	if !strings.HasPrefix(lines[0], "build ") || !strings.Contains(lines[0], "# compile sources") {
		t.Errorf("lines[0] = %q", lines[0])
	}
	if lines[1] != "clean" {
		t.Errorf("lines[1] = %q", lines[1])
	}
}

func TestList_NoMakefile(t *testing.T) {
	app, err := New(
		WithConfig(NewDefaultConfig()),
		WithWorkdir(t.TempDir()),
		WithOutput(&bytes.Buffer{}),
	)
	if err != nil {
		t.Fatal(err)
	}

	if err := app.List(context.Background(), false); !errors.Is(err, apperr.ErrNoMakefile) {
		t.Fatalf("err = %v, want ErrNoMakefile", err)
	}
}

func TestList_ZeroTargetsIsWarningOnly(t *testing.T) {
	dir := testutil.TempMakefile(t, "# just a comment\n")
	var out bytes.Buffer
	app, err := New(WithConfig(NewDefaultConfig()), WithWorkdir(dir), WithOutput(&out))
	if err != nil {
		t.Fatal(err)
	}

	if err := app.List(context.Background(), false); err != nil {
		t.Fatalf("zero targets should not fail the command: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("output = %q, want empty", out.String())
	}
}

func TestRun_DispatchesThroughHost(t *testing.T) {
	dir := testutil.TempMakefile(t, "build:\n")
	host := &recordingHost{}
	app, err := New(
		WithConfig(NewDefaultConfig()),
		WithWorkdir(dir),
		WithHost(host),
	)
	if err != nil {
		t.Fatal(err)
	}

	if err := app.Run(context.Background(), "build"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(host.opened) != 1 || !strings.HasSuffix(host.opened[0], "-- make build") {
		t.Errorf("opened = %v", host.opened)
	}
}

func TestRun_EmptyName(t *testing.T) {
	app, err := New(WithConfig(NewDefaultConfig()), WithHost(&recordingHost{}))
	if err != nil {
		t.Fatal(err)
	}
	if err := app.Run(context.Background(), ""); err == nil {
		t.Fatal("empty target name should fail")
	}
}

func TestTargetNames_ForCompletion(t *testing.T) {
	dir := testutil.TempMakefile(t, "build:\ntest:\n_hidden:\n")
	app, err := New(WithConfig(NewDefaultConfig()), WithWorkdir(dir))
	if err != nil {
		t.Fatal(err)
	}

	names := app.TargetNames()
	if len(names) != 2 || names[0] != "build" || names[1] != "test" {
		t.Errorf("names = %v", names)
	}
}

func TestTargetNames_SwallowsErrors(t *testing.T) {
	app, err := New(WithConfig(NewDefaultConfig()), WithWorkdir(t.TempDir()))
	if err != nil {
		t.Fatal(err)
	}
	if names := app.TargetNames(); names != nil {
		t.Errorf("names = %v, want nil on failure", names)
	}
}

func TestInitShell_WritesSnippet(t *testing.T) {
	var out bytes.Buffer
	app, err := New(WithConfig(NewDefaultConfig()), WithOutput(&out))
	if err != nil {
		t.Fatal(err)
	}

	if err := app.InitShell("zsh"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "bindkey '^t'") {
		t.Errorf("snippet = %q", out.String())
	}
}
