package sanitizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeEmptyInput(t *testing.T) {
	assert.Equal(t, "", Sanitize(""))
}

func TestSanitizeBalancedInputUnchanged(t *testing.T) {
	inputs := []string{
		"plain text with no delimiters",
		"**bold** and *italic*",
		"`code` spans",
		"```go\nfmt.Println(\"hi\")\n```",
		"~~strike~~ through",
		"**bold with *nested italic* inside**",
		"a ``` b ``` c",
	}

	for _, input := range inputs {
		assert.Equal(t, input, Sanitize(input), "balanced input must pass through: %q", input)
	}
}

func TestSanitizeClosesUnterminatedDelimiters(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bold", "**bold", "**bold**"},
		{"italic", "*italic", "*italic*"},
		{"inline code", "`code", "`code`"},
		{"fence with language", "```js\ncode", "```js\ncode\n```"},
		{"bare fence", "```\npartial", "```\npartial\n```"},
		{"strikethrough", "~~gone", "~~gone~~"},
		{"bold mid-word", "some **unfinished emphas", "some **unfinished emphas**"},
		{"bold then italic", "**a** *b", "**a** *b*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestSanitizeIdempotentOnRepairedOutput(t *testing.T) {
	inputs := []string{
		"**bold",
		"`code",
		"```python\nx = 1",
		"*ital",
		"~~str",
		"mixed **bold and `code",
	}

	for _, input := range inputs {
		once := Sanitize(input)
		assert.Equal(t, once, Sanitize(once), "repair must be stable for %q", input)
	}
}

func TestSanitizeEveryPrefixOfStreamingFeed(t *testing.T) {
	document := "# Title\n\nSome **bold** text with `inline code`.\n\n```go\nfunc main() {}\n```\n"

	for i := 0; i <= len(document); i++ {
		prefix := document[:i]
		repaired := Sanitize(prefix)

		assert.True(t, strings.HasPrefix(repaired, prefix), "repair only appends, prefix %d", i)
	}
}

func TestSanitizeDelimiterCountsAreEven(t *testing.T) {
	inputs := []string{
		"**bold",
		"*it",
		"`c",
		"```js\nx",
		"~~s",
		"**a** и *б",
		"text `one` and `two",
		"**x** **y",
	}

	for _, input := range inputs {
		repaired := Sanitize(input)
		assert.Zero(t, strings.Count(repaired, "```")%2, "fence count must be even in %q", repaired)
		assert.Zero(t, countLoneRuns(repaired, '`')%2, "lone backtick count must be even in %q", repaired)
		assert.Zero(t, strings.Count(repaired, "**")%2, "bold count must be even in %q", repaired)
		assert.Zero(t, countLoneRuns(repaired, '*')%2, "lone asterisk count must be even in %q", repaired)
		assert.Zero(t, strings.Count(repaired, "~~")%2, "strike count must be even in %q", repaired)
	}
}

func TestSanitizeFencePriorityOverInline(t *testing.T) {
	// An open fence is closed with a newline before the fence marker so
	// the closer lands on its own line.
	got := Sanitize("```js\nconst x = 1;")
	assert.Equal(t, "```js\nconst x = 1;\n```", got)
}

func TestCountLoneRuns(t *testing.T) {
	tests := []struct {
		input string
		ch    byte
		want  int
	}{
		{"", '*', 0},
		{"*", '*', 1},
		{"**", '*', 0},
		{"***", '*', 0},
		{"*a*", '*', 2},
		{"**a*", '*', 1},
		{"`a``b`", '`', 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, countLoneRuns(tt.input, tt.ch), "input %q", tt.input)
	}
}

func TestStreamAccumulatesAndRepairs(t *testing.T) {
	var s Stream
	s.Append("some **bo")
	assert.Equal(t, "some **bo", s.String())
	assert.Equal(t, "some **bo**", s.Sanitized())

	s.Append("ld** done")
	assert.Equal(t, "some **bold** done", s.Sanitized())

	s.Reset()
	assert.Equal(t, "", s.String())
	assert.Equal(t, "", s.Sanitized())
}
