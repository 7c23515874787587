// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package partyname

import (
	"regexp"
	"strings"
)

// rule maps a source-name pattern to the canonical party name. Rules
// are tried in order and the first match wins, so combined-list
// patterns must precede their component parties.
type rule struct {
	pattern   *regexp.Regexp
	canonical string
}

var rules = []rule{
	{regexp.MustCompile(`(?i)groenlinks.?pvda|gl.?pvda|pvda.?gl`), "GroenLinks-PvdA"},
	{regexp.MustCompile(`(?i)groenlinks|pvda`), "GroenLinks-PvdA"},
	{regexp.MustCompile(`(?i)\bvvd\b|volkspartij voor vrijheid`), "VVD"},
	{regexp.MustCompile(`(?i)\bd66\b|democraten 66`), "D66"},
	{regexp.MustCompile(`(?i)\bcda\b|christen.?democratisch app`), "CDA"},
	{regexp.MustCompile(`(?i)\bpvv\b|partij voor de vrijheid`), "PVV"},
	{regexp.MustCompile(`(?i)\bnsc\b|nieuw sociaal contract`), "NSC"},
	{regexp.MustCompile(`(?i)\bbbb\b|boerburgerbeweging`), "BBB"},
	{regexp.MustCompile(`(?i)\bpvdd\b|partij voor de dieren`), "Partij voor de Dieren"},
	{regexp.MustCompile(`(?i)christenunie|\bcu\b`), "ChristenUnie"},
	{regexp.MustCompile(`(?i)\bvolt\b`), "Volt"},
	{regexp.MustCompile(`(?i)\bja21\b`), "JA21"},
	{regexp.MustCompile(`(?i)\bbvnl\b|belang van nederland`), "BVNL"},
	{regexp.MustCompile(`(?i)\bfvd\b|forum voor democratie`), "FvD"},
	{regexp.MustCompile(`(?i)\bsgp\b|staatkundig gereformeerde`), "SGP"},
	{regexp.MustCompile(`(?i)\bdenk\b`), "DENK"},
	{regexp.MustCompile(`(?i)\bsp\b|socialistische partij`), "SP"},
	{regexp.MustCompile(`(?i)50plus|50\+`), "50PLUS"},
}

// Normalize maps a free-form party name, as it appears in source
// documents and voting records, to its canonical form. Unrecognized
// names are returned trimmed so downstream grouping still works.
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	for _, r := range rules {
		if r.pattern.MatchString(trimmed) {
			return r.canonical
		}
	}
	return trimmed
}
