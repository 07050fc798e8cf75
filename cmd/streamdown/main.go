// Command streamdown renders markdown to a JSON render-node tree on
// stdout. With --watch it re-renders a file on every change, which is
// useful for inspecting how a document streaming into a file maps to
// the tree as it grows.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/rgonek/streamdown/renderer"
)

var CLI struct {
	File       string   `arg:"" optional:"" help:"Markdown file to render (reads stdin when omitted)" type:"path"`
	Config     string   `short:"c" help:"YAML configuration file path" type:"path"`
	AllowLink  []string `help:"Allowed link destination prefixes (replaces defaults)"`
	AllowImage []string `help:"Allowed image source prefixes (replaces defaults)"`
	Strict     bool     `help:"Fail on unknown markdown constructs"`
	NoSanitize bool     `help:"Skip incomplete-delimiter repair before parsing"`
	Watch      bool     `short:"w" help:"Re-render the file on every change (requires a file argument)"`
	Verbose    bool     `short:"v" help:"Enable verbose logging"`
}

func main() {
	kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg, err := resolveConfig(CLI.Config, CLI.AllowLink, CLI.AllowImage, CLI.Strict, CLI.NoSanitize)
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	r, err := renderer.New(cfg)
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	if CLI.Watch {
		if CLI.File == "" {
			slog.Error("--watch requires a file argument")
			os.Exit(1)
		}
		if err := watchAndRender(r, CLI.File); err != nil {
			slog.Error("Watch failed", "error", err)
			os.Exit(1)
		}
		return
	}

	data, err := readInput(CLI.File)
	if err != nil {
		slog.Error("Failed to read input", "error", err)
		os.Exit(1)
	}

	if err := renderOnce(r, string(data), os.Stdout); err != nil {
		slog.Error("Render failed", "error", err)
		os.Exit(1)
	}
}

func readInput(file string) ([]byte, error) {
	if file == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(file)
}

func renderOnce(r *renderer.Renderer, markdown string, out io.Writer) error {
	result, err := r.Render(markdown)
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		slog.Warn("Render warning", "type", warning.Type, "node", warning.NodeType, "message", warning.Message)
	}

	pretty, err := json.MarshalIndent(result.Root, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode render tree: %w", err)
	}

	fmt.Fprintln(out, string(pretty))
	return nil
}
