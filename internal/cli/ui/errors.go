package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ErrorOptions configures a formatted error message
type ErrorOptions struct {
	Context      string
	Problem      string
	Suggestions  []string
	HelpCommands []string
	NoColor      bool
}

// FormatError builds a CLI error message:
//
//	❌ CLASS NOT FOUND: Cannot find class 'UserServise'.
//
//	   Did you mean: UserService?
//
//	   → See all classes: annotate classes
func FormatError(opts ErrorOptions) string {
	var b strings.Builder

	header := style(opts.NoColor, color.FgRed, color.Bold)
	if opts.Context != "" {
		header.Fprintf(&b, "❌ %s: %s\n", strings.ToUpper(opts.Context), opts.Problem)
	} else {
		header.Fprintf(&b, "❌ %s\n", opts.Problem)
	}

	if len(opts.Suggestions) > 0 {
		b.WriteString("\n")
		style(opts.NoColor, color.FgYellow).Fprintf(&b, "   Did you mean: %s?\n", strings.Join(opts.Suggestions, ", "))
	}

	if len(opts.HelpCommands) > 0 {
		b.WriteString("\n")
		cyan := style(opts.NoColor, color.FgCyan)
		for _, cmd := range opts.HelpCommands {
			cyan.Fprintf(&b, "   → %s\n", cmd)
		}
	}

	return b.String()
}

// WriteError writes a formatted error message to w
func WriteError(w io.Writer, opts ErrorOptions) {
	fmt.Fprint(w, FormatError(opts))
}

// ClassNotFoundError reports an unknown class name
func ClassNotFoundError(name string, suggestions []string, noColor bool) string {
	return FormatError(ErrorOptions{
		Context:     "class not found",
		Problem:     fmt.Sprintf("Cannot find class '%s'.", name),
		Suggestions: suggestions,
		HelpCommands: []string{
			"See all classes: annotate classes",
			"Get help: annotate inspect --help",
		},
		NoColor: noColor,
	})
}

// ConfigError reports an invalid configuration
func ConfigError(message string, noColor bool) string {
	return FormatError(ErrorOptions{
		Context: "configuration error",
		Problem: message,
		HelpCommands: []string{
			"View config: cat annotate.yml",
			"Get help: annotate --help",
		},
		NoColor: noColor,
	})
}
