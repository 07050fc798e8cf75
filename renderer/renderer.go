// Package renderer maps GFM markdown to a typed render-node tree.
//
// Parsing is delegated to goldmark; this package owns the mapping policy
// applied to each parsed node kind: link and image destinations are
// checked against configurable allow-list prefixes and degrade to text
// when disallowed, code fences carry a detected language tag, task-list
// checkboxes always render read-only, and per-kind overrides can replace
// any default mapping wholesale. Renders are stateless and reentrant; a
// single Renderer may serve concurrent calls.
package renderer

import (
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/rgonek/streamdown/sanitizer"
)

// Renderer converts markdown text to a render-node tree.
type Renderer struct {
	config Config
	parser goldmark.Markdown
}

type state struct {
	config   Config
	source   []byte
	ctx      context.Context
	warnings []Warning
}

// New creates a Renderer with the given config.
func New(config Config) (*Renderer, error) {
	cfg := config.applyDefaults().clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Renderer{
		config: cfg,
		parser: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}, nil
}

// Render converts a markdown document, possibly truncated mid-stream,
// into a render tree. Unless DisableSanitize is set, unterminated
// delimiters are repaired before parsing, so Render may be called on
// every partial prefix of a growing document. Malformed markdown never
// errors; outside Strict mode the worst case is a tree that degrades
// unknown constructs to text, with a Warning per degradation.
func (r *Renderer) Render(markdown string) (Result, error) {
	return r.RenderWithContext(context.Background(), markdown)
}

// RenderWithContext is Render with cancellation checked between blocks.
// Override callbacks may run for a while on pathological documents; the
// context lets a caller abandon such a render.
func (r *Renderer) RenderWithContext(ctx context.Context, markdown string) (Result, error) {
	if !r.config.DisableSanitize {
		markdown = sanitizer.Sanitize(markdown)
	}

	s := &state{
		config: r.config,
		source: []byte(markdown),
		ctx:    ctx,
	}

	root := r.parser.Parser().Parse(text.NewReader(s.source))
	doc, err := s.convertDocument(root)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Root:     doc,
		Warnings: s.warnings,
	}, nil
}

func (s *state) checkContext() error {
	if s.ctx == nil {
		return nil
	}
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
		return nil
	}
}

func (s *state) addWarning(warnType WarningType, nodeType, message string) {
	s.warnings = append(s.warnings, Warning{
		Type:     warnType,
		NodeType: nodeType,
		Message:  message,
	})
}

func (s *state) warnDisallowedLink(destination string) {
	s.addWarning(
		WarningDisallowedLink,
		string(NodeLink),
		fmt.Sprintf("link destination %q does not match an allowed prefix; rendered as text", destination),
	)
}

func (s *state) warnDisallowedImage(source string) {
	s.addWarning(
		WarningDisallowedImage,
		string(NodeImage),
		fmt.Sprintf("image source %q does not match an allowed prefix; rendered as placeholder", source),
	)
}
