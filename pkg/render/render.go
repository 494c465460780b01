// Package render writes operation results as text, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/MacroPower/ospath/pkg/batch"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses an output format name. The empty string is text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
}

// IsStyled reports whether styled output should be written to f.
func IsStyled(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) && !termenv.EnvNoColor()
}

// Renderer writes values in one [Format].
type Renderer struct {
	w        io.Writer
	format   Format
	okMark   lipgloss.Style
	errMark  lipgloss.Style
	errStyle lipgloss.Style
}

// NewRenderer creates a [Renderer] writing to w. When styled is false no
// ANSI sequences are written.
func NewRenderer(w io.Writer, format Format, styled bool) *Renderer {
	re := lipgloss.NewRenderer(w)
	if !styled {
		re.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		w:        w,
		format:   format,
		okMark:   re.NewStyle().Foreground(lipgloss.Color("42")).SetString("✓"),
		errMark:  re.NewStyle().Foreground(lipgloss.Color("196")).SetString("✗"),
		errStyle: re.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// Value writes v. In text format, text is written instead.
func (r *Renderer) Value(v any, text string) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return nil
	}

	_, err := fmt.Fprintln(r.w, text)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

// Results writes batch results. In text format each result is one line
// prefixed with a success or failure mark.
func (r *Renderer) Results(results []batch.Result) error {
	if r.format != FormatText {
		return r.Value(results, "")
	}

	for _, res := range results {
		if _, err := fmt.Fprintln(r.w, r.resultLine(res)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	return nil
}

func (r *Renderer) resultLine(res batch.Result) string {
	label := string(res.Op)
	if res.Name != "" {
		label = res.Name
	}

	args := strings.Join(quoteAll(res.Paths), " ")

	switch {
	case res.Failed():
		return fmt.Sprintf("%s %s %s: %s", r.errMark, label, args, r.errStyle.Render(res.Error))
	case res.Absolute != nil:
		return fmt.Sprintf("%s %s %s: %t", r.okMark, label, args, *res.Absolute)
	case res.Path != nil:
		return fmt.Sprintf("%s %s %s: %q", r.okMark, label, args, *res.Path)
	}

	return fmt.Sprintf("%s %s %s", r.okMark, label, args)
}

func quoteAll(ss []string) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		out = append(out, fmt.Sprintf("%q", s))
	}

	return out
}
