// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Faint(true)
	cellStyle  = lipgloss.NewStyle().Padding(0, 1)
	countStyle = cellStyle.Align(lipgloss.Right)
)

// WriteJSON writes the report as indented JSON
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteText writes a human-readable summary: configuration, then the outcome table
func WriteText(w io.Writer, r *Report) error {
	var sb strings.Builder

	title := r.Method
	if r.Name != "" {
		title = r.Name + " · " + r.Method
	}
	sb.WriteString(titleStyle.Render(title) + "\n")
	sb.WriteString(mutedStyle.Render(fmt.Sprintf("%s runs · seed %d · %s voters · %s ballots",
		humanize.Comma(int64(r.Runs)), r.Seed, humanize.Comma(int64(r.Voters)), r.Configuration.Ballot)) + "\n\n")

	for _, c := range r.Configuration.Candidates {
		line := fmt.Sprintf("  %d  %s", c.ID(), c.Name())
		if party, ok := c.Party(); ok {
			line += " (" + party + ")"
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\n")
	for _, b := range r.Configuration.Blocs {
		sb.WriteString(fmt.Sprintf("  %s × %s, %s\n", humanize.Comma(int64(b.Members)), b.Preference, b.Strategy))
	}
	sb.WriteString("\n")

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Outcome", "Times", "Share").
		StyleFunc(func(row, col int) lipgloss.Style {
			if col > 0 {
				return countStyle
			}
			return cellStyle
		})
	for _, o := range r.Outcomes {
		t.Row(o.Label, humanize.Comma(int64(o.Times)), fmt.Sprintf("%.1f%%", o.Share*100))
	}
	sb.WriteString(t.Render() + "\n")
	sb.WriteString(mutedStyle.Render("fingerprint "+r.Fingerprint) + "\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
