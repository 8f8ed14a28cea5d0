package config

import (
	"fmt"
	"strings"
)

// The input lists are plaintext: whitespace-separated tokens, one logical
// entry per line for record lists. A `#` starts a comment that runs to the
// end of the line; blank lines are skipped.

// ParseTokens splits a plaintext list into its tokens. Used for the dotfiles
// and OS package lists, where every token is one entry.
func ParseTokens(raw string) []string {
	var tokens []string
	for _, line := range strings.Split(raw, "\n") {
		tokens = append(tokens, strings.Fields(stripComment(line))...)
	}
	return tokens
}

// ParseRuntimes parses the runtime spec list. Each token is `name` or
// `name@version`; an unpinned name resolves to "latest".
func ParseRuntimes(raw string) []Runtime {
	var runtimes []Runtime
	for _, tok := range ParseTokens(raw) {
		name, version, found := strings.Cut(tok, "@")
		if !found || version == "" {
			version = "latest"
		}
		runtimes = append(runtimes, Runtime{Name: name, Version: version})
	}
	return runtimes
}

// ParseServers parses the language-server record list. Each line holds
// whitespace-separated fields:
//
//	name kind [source] [renameFrom]
//
// The source field defaults to the record name for the package-manager kinds,
// where package and tool usually share a name. A line with fewer than two
// fields is malformed and fails the whole load. An unrecognized kind is kept
// as-is: the dispatch layer downgrades it to a warning so one bad line cannot
// sink the rest of the list.
func ParseServers(raw string) ([]Record, error) {
	var records []Record
	for i, line := range strings.Split(raw, "\n") {
		fields := strings.Fields(stripComment(line))
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: want at least name and kind, got %q", i+1, strings.TrimSpace(line))
		}

		kind, _ := ParseKind(fields[1])
		rec := Record{
			Name:   fields[0],
			Kind:   kind,
			Source: fields[0],
		}
		if len(fields) > 2 {
			rec.Source = fields[2]
		}
		if len(fields) > 3 {
			rec.RenameFrom = fields[3]
		}
		records = append(records, rec)
	}
	return records, nil
}

func stripComment(line string) string {
	if i := strings.Index(line, "#"); i >= 0 {
		return line[:i]
	}
	return line
}
