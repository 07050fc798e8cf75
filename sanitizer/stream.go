package sanitizer

import "strings"

// Stream accumulates markdown chunks as they arrive. It holds only the
// raw text; every Sanitized call recomputes the repair from scratch, so
// a Stream can be read at any prefix of the feed.
//
// Stream is not safe for concurrent use.
type Stream struct {
	buf strings.Builder
}

// Append adds a chunk to the accumulated document.
func (s *Stream) Append(chunk string) {
	s.buf.WriteString(chunk)
}

// String returns the raw accumulated text.
func (s *Stream) String() string {
	return s.buf.String()
}

// Sanitized returns the accumulated text with unterminated delimiters
// closed.
func (s *Stream) Sanitized() string {
	return Sanitize(s.buf.String())
}

// Reset discards the accumulated text.
func (s *Stream) Reset() {
	s.buf.Reset()
}
