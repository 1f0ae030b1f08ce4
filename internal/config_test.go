package internal

import (
	"testing"

	"github.com/starford/tiwaz/internal/term"
)

func TestDefaultConfig_Valid(t *testing.T) {
	if err := NewDefaultConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestTerminalConfig_WidthOutOfRange(t *testing.T) {
	for _, width := range []float64{0, -0.2, 1.5} {
		cfg := NewDefaultConfig()
		cfg.Terminal.Width = width
		if err := cfg.Validate(); err == nil {
			t.Errorf("width %v should fail validation", width)
		}
	}
}

func TestTerminalConfig_InvalidKind(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Terminal.Kind = "window"
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown kind should fail validation")
	}
}

func TestTerminalConfig_InvalidPosition(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Terminal.Position = "left"
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown position should fail validation")
	}
}

func TestTerminalConfig_NegativeAutoClose(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Terminal.AutoClose = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("negative autoclose should fail validation")
	}
}

func TestPickerConfig_Preference(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Picker.Preference = PickerFzf
	if err := cfg.Validate(); err != nil {
		t.Errorf("fzf preference should pass: %v", err)
	}

	cfg.Picker.Preference = "dmenu"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown preference should fail validation")
	}

	cfg.Picker.Preference = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("empty preference means auto-detect and should pass: %v", err)
	}
}

func TestConfig_Keymap(t *testing.T) {
	for keymap, valid := range map[string]bool{
		"ctrl-t":  true,
		"alt-m":   true,
		"ctrl-T":  false,
		"super-t": false,
		"t":       false,
		"":        false,
	} {
		cfg := NewDefaultConfig()
		cfg.Keymap = keymap
		err := cfg.Validate()
		if valid && err != nil {
			t.Errorf("keymap %q should pass: %v", keymap, err)
		}
		if !valid && err == nil {
			t.Errorf("keymap %q should fail validation", keymap)
		}
	}
}

func TestTerminalConfig_Options(t *testing.T) {
	cfg := TerminalConfig{Width: 0.5, Height: 0.4, Kind: term.KindSplit, Position: term.PositionBottom, AutoClose: 2}
	opts := cfg.Options()
	want := term.Options{Width: 0.5, Height: 0.4, Kind: term.KindSplit, Position: term.PositionBottom, AutoClose: 2}
	if opts != want {
		t.Errorf("options = %+v, want %+v", opts, want)
	}
}

func TestTargetsConfig_ParseOptions(t *testing.T) {
	cfg := TargetsConfig{IncludeHidden: true, Exclude: []string{"vendor"}}
	opts := cfg.ParseOptions()
	if !opts.IncludeHidden || len(opts.Exclude) != 1 || opts.Exclude[0] != "vendor" {
		t.Errorf("got %+v", opts)
	}
}
