// Package shellinit emits shell snippets that bind a key sequence to the
// show-and-run flow, in the style of fzf's keybinding scripts.
package shellinit

import (
	"fmt"
	"strings"
)

// Snippet returns a sourceable snippet for shell binding keymap to
// "tiwaz show". Supported shells: bash, zsh, fish. keymap has the form
// ctrl-<letter> or alt-<letter>.
func Snippet(shell, keymap string) (string, error) {
	mod, letter, ok := splitKeymap(keymap)
	if !ok {
		return "", fmt.Errorf("shellinit: unsupported keymap %q", keymap)
	}

	switch shell {
	case "bash":
		seq := `\C-` + letter
		if mod == "alt" {
			seq = `\e` + letter
		}
		return fmt.Sprintf("bind -x '\"%s\": tiwaz show'\n", seq), nil
	case "zsh":
		seq := "^" + letter
		if mod == "alt" {
			seq = "^[" + letter
		}
		return fmt.Sprintf(`_tiwaz_show() { tiwaz show; zle reset-prompt }
zle -N _tiwaz_show
bindkey '%s' _tiwaz_show
`, seq), nil
	case "fish":
		seq := `\c` + letter
		if mod == "alt" {
			seq = `\e` + letter
		}
		return fmt.Sprintf("bind %s 'tiwaz show'\n", seq), nil
	}
	return "", fmt.Errorf("shellinit: unsupported shell %q", shell)
}

func splitKeymap(keymap string) (mod, letter string, ok bool) {
	mod, letter, found := strings.Cut(keymap, "-")
	if !found || (mod != "ctrl" && mod != "alt") {
		return "", "", false
	}
	if len(letter) != 1 || letter[0] < 'a' || letter[0] > 'z' {
		return "", "", false
	}
	return mod, letter, true
}
