// Package param detects whether a target's description asks for a
// runtime-supplied parameter.
package param

import (
	"regexp"
	"strings"
)

// exampleRe pulls the argument part out of "example: make <target> <args>".
var exampleRe = regexp.MustCompile(`example:\s*make\s+\S+\s+(.*)`)

// Hint is the outcome of inspecting a description.
type Hint struct {
	NeedsParam bool
	// Example is the argument portion of an "example: make ..." phrase,
	// offered to the user as a prompt hint. Empty when no example exists.
	Example string
}

// Detect scans a description for the conventions that mark a target as
// parameterized: a "c=" variable mention, the phrase "pass the parameter",
// or an "example:" invocation. Matching is case-sensitive substring search,
// not a grammar.
func Detect(description string) Hint {
	if description == "" {
		return Hint{}
	}
	h := Hint{
		NeedsParam: strings.Contains(description, "c=") ||
			strings.Contains(description, "pass the parameter") ||
			strings.Contains(description, "example:"),
	}
	if m := exampleRe.FindStringSubmatch(description); m != nil {
		h.Example = strings.TrimSpace(m[1])
	}
	return h
}
