// Package sanitizer repairs markdown snapshots taken from a live token
// stream. A string cut off mid-stream routinely ends inside an unclosed
// code fence or emphasis span; feeding that to a parser produces a tree
// that flickers between interpretations as more tokens arrive. Sanitize
// closes the open delimiters so every prefix of a growing document parses
// to something stable.
package sanitizer

import "strings"

const fence = "```"

// Sanitize returns raw with best-effort closers appended for every
// delimiter pair left unterminated: fenced code, inline code, bold,
// italic and strikethrough.
//
// Each delimiter is counted independently over the original input, and
// the closers are appended cumulatively in a fixed order (fence first,
// since an open fence must win over any inline interpretation of its
// interior). The counts do not track nesting and do not exclude fence
// interiors, so a stray backtick inside an open fence can trigger a
// second repair; callers get deterministic, append-only output either
// way. Characters are never removed.
//
// Sanitize is pure and idempotent on already-balanced input. Empty input
// returns the empty string.
func Sanitize(raw string) string {
	if raw == "" {
		return ""
	}

	var closers []string
	if strings.Count(raw, fence)%2 == 1 {
		closers = append(closers, "\n"+fence)
	}
	if countLoneRuns(raw, '`')%2 == 1 {
		closers = append(closers, "`")
	}
	if strings.Count(raw, "**")%2 == 1 {
		closers = append(closers, "**")
	}
	if countLoneRuns(raw, '*')%2 == 1 {
		closers = append(closers, "*")
	}
	if strings.Count(raw, "~~")%2 == 1 {
		closers = append(closers, "~~")
	}

	if len(closers) == 0 {
		return raw
	}
	return raw + strings.Join(closers, "")
}

// countLoneRuns counts runs of exactly one ch. Longer runs belong to a
// wider delimiter (a fence or **) and are counted by their own pass.
func countLoneRuns(s string, ch byte) int {
	count := 0
	for i := 0; i < len(s); {
		if s[i] != ch {
			i++
			continue
		}
		j := i
		for j < len(s) && s[j] == ch {
			j++
		}
		if j-i == 1 {
			count++
		}
		i = j
	}
	return count
}
