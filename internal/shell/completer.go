package shell

import (
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/gYonder/posh/internal/commands"
	"github.com/gYonder/posh/internal/resolver"
)

// Completer completes command names only: built-ins and everything
// executable on PATH. It does not complete arguments or paths.
type Completer struct{}

// NewCompleter builds the REPL's tab-completion hook.
func NewCompleter() readline.AutoCompleter {
	return &Completer{}
}

// Do implements readline.AutoCompleter.
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	lineStr := string(line[:pos])
	if strings.ContainsAny(lineStr, " \t") {
		// Only the first word (the command name) is completed.
		return nil, 0
	}

	prefix := lineStr
	matches := c.matchingNames(prefix)

	result := make([][]rune, len(matches))
	for i, m := range matches {
		result[i] = []rune(m[len(prefix):] + " ")
	}
	return result, len(prefix)
}

func (c *Completer) matchingNames(prefix string) []string {
	seen := make(map[string]bool)
	var names []string

	for name := range commands.Registry {
		if strings.HasPrefix(name, prefix) && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, name := range resolver.Enumerate() {
		if strings.HasPrefix(name, prefix) && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names
}
