package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guiyumin/urlcat/internal/categorize"
	"gopkg.in/yaml.v3"
)

var (
	urlStyle      = lipgloss.NewStyle().Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	providerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	missStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// paint applies style only when output is styled
func paint(styled bool, style lipgloss.Style, s string) string {
	if !styled {
		return s
	}
	return style.Render(s)
}

func renderResults(w io.Writer, urls []string, results []categorize.Result, opts outputOptions) error {
	switch opts.format {
	case "json":
		return writeJSON(w, results)
	case "yaml":
		return writeYAML(w, results)
	}

	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprint(w, formatResult(urls[i], r, opts.styled))
	}
	return nil
}

// formatResult renders one result as an indented text block
func formatResult(raw string, r categorize.Result, styled bool) string {
	var b strings.Builder
	b.WriteString(paint(styled, urlStyle, raw))
	b.WriteString("\n")

	if !r.Matched() {
		fmt.Fprintf(&b, "  %s\n", paint(styled, missStyle, "no matching provider"))
		return b.String()
	}

	resource := paint(styled, valueStyle, r.ResourceOrEmpty())
	if r.Resource == nil {
		resource = paint(styled, missStyle, "(not found)")
	}

	writeField(&b, styled, "provider", paint(styled, providerStyle, r.Provider))
	writeField(&b, styled, "resource_type", string(r.ResourceType))
	writeField(&b, styled, "resource", resource)
	writeField(&b, styled, "canonical_url", r.CanonicalOrEmpty())
	return b.String()
}

func writeField(b *strings.Builder, styled bool, label, value string) {
	fmt.Fprintf(b, "  %s %s\n", paint(styled, labelStyle, fmt.Sprintf("%-14s", label+":")), value)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
