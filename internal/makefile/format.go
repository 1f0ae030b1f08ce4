package makefile

import "fmt"

// nameColumn is the display width of the name column. Longer names are
// never truncated so the name stays recoverable from the formatted line.
const nameColumn = 20

// FormatTarget renders a target for list presentation. With descriptions
// enabled the name is padded into a fixed column followed by "# desc";
// otherwise the bare name is returned. The first whitespace-delimited
// token of the result is always the exact target name.
func FormatTarget(t Target, showDescriptions bool) string {
	if !showDescriptions || t.Description == "" {
		return t.Name
	}
	return fmt.Sprintf("%-*s # %s", nameColumn, t.Name, t.Description)
}
