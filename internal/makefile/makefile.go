// Package makefile locates a Makefile and extracts target names together
// with their human-readable descriptions.
package makefile

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/starford/tiwaz/internal/apperr"
)

const fileName = "Makefile"

var (
	// target: prerequisites ## description
	inlineRe = regexp.MustCompile(`^([\w.\-]+)\s*:[^#]*##\s*(.*)$`)
	// target: (no inline description)
	looseRe = regexp.MustCompile(`^([\w.\-]+)\s*:`)
	// # comment content
	commentRe = regexp.MustCompile(`^\s*#\s*(.*?)\s*$`)
	// decorative banner: comment content opening with separator punctuation
	bannerRe = regexp.MustCompile(`^[—\-=_*#]`)
	// trailing backslash marks a line continuation
	continuationRe = regexp.MustCompile(`\\\s*$`)
)

// Target is a single named build unit. An empty Description means the
// Makefile carried no description for it.
type Target struct {
	Name        string
	Description string
}

// Hidden reports whether the target is conventionally internal, i.e. its
// name starts with an underscore or a dot.
func (t Target) Hidden() bool {
	return strings.HasPrefix(t.Name, "_") || strings.HasPrefix(t.Name, ".")
}

// ParseOptions controls which targets a parse pass emits.
type ParseOptions struct {
	// IncludeHidden keeps targets whose names start with "_" or ".".
	IncludeHidden bool
	// Exclude drops targets by exact name, regardless of hidden status.
	Exclude []string
}

func (o ParseOptions) excluded(name string) bool {
	for _, e := range o.Exclude {
		if e == name {
			return true
		}
	}
	return false
}

// Parse scans raw Makefile content in a single forward pass and returns
// targets in file order. Duplicate declarations yield duplicate records.
//
// A description comes from an inline "## ..." comment on the declaration
// line, or failing that from the comment line immediately preceding it.
// Decorative banner comments (runs of -, =, _, *, #) never count as
// descriptions and do not displace a captured one. Lines inside a
// backslash continuation never capture comments. Recipe lines are indented
// and therefore never match a declaration.
func Parse(data []byte, opts ParseOptions) []Target {
	var targets []Target
	lastComment := ""
	inContinuation := false

	for _, line := range strings.Split(string(data), "\n") {
		if m := commentRe.FindStringSubmatch(line); m != nil {
			if !inContinuation && !bannerRe.MatchString(m[1]) {
				lastComment = m[1]
			}
			inContinuation = continuationRe.MatchString(line)
			continue
		}

		// Declarations start at column zero; anything indented is a
		// recipe or continuation body and leaves lastComment alone.
		if len(line) > 0 && (line[0] == ' ' || line[0] == '\t') {
			inContinuation = continuationRe.MatchString(line)
			continue
		}

		name, desc := "", ""
		if m := inlineRe.FindStringSubmatch(line); m != nil {
			name, desc = m[1], strings.TrimRight(m[2], " \t")
		} else if m := looseRe.FindStringSubmatch(line); m != nil {
			name = m[1]
		}

		if name != "" && !opts.excluded(name) {
			t := Target{Name: name, Description: desc}
			if t.Description == "" {
				t.Description = lastComment
			}
			if opts.IncludeHidden || !t.Hidden() {
				targets = append(targets, t)
			}
		}

		// A preceding comment attaches only to the line straight after it.
		lastComment = ""
		inContinuation = continuationRe.MatchString(line)
	}

	return targets
}

// Locate walks from startDir up through its parents and returns the path
// of the first file literally named Makefile. Returns apperr.ErrNoMakefile
// when the root is reached without a match.
func Locate(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("makefile: resolve %s: %w", startDir, err)
	}
	for {
		path := filepath.Join(dir, fileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", apperr.ErrNoMakefile
		}
		dir = parent
	}
}

// Load locates, reads, and parses the nearest Makefile. Every call
// re-reads the file; nothing is cached. Returns apperr.ErrNoTargets when
// the parse yields zero eligible records.
func Load(startDir string, opts ParseOptions) ([]Target, error) {
	path, err := Locate(startDir)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("makefile: read %s: %w", path, err)
	}
	targets := Parse(data, opts)
	if len(targets) == 0 {
		return nil, apperr.ErrNoTargets
	}
	return targets, nil
}
