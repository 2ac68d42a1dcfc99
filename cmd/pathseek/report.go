package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorMuted  = lipgloss.Color("#2C4A54")
	colorError  = lipgloss.Color("#E74C3C")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle = lipgloss.NewStyle().Foreground(colorError)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)
)

// section is a titled group of rows.
type section struct {
	Title string
	Rows  []row
	Note  string
}

// renderer writes sections either plain or styled.
type renderer struct {
	w      io.Writer
	styled bool
}

func (r renderer) title(s string) string {
	if r.styled {
		return titleStyle.Render(s)
	}
	return s
}

func (r renderer) muted(s string) string {
	if r.styled {
		return mutedStyle.Render(s)
	}
	return s
}

func (r renderer) failure(s string) string {
	if r.styled {
		return errorStyle.Render(s)
	}
	return s
}

// line formats one row as "label: count = N ..." followed by the plan.
func (r renderer) line(x row) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: count = %d", x.Label, x.Expanded)
	switch {
	case x.Err != nil:
		b.WriteString(" " + r.failure("error: "+x.Err.Error()))
	case x.Found:
		fmt.Fprintf(&b, ", depth = %d", x.Depth)
		if len(x.Plan) > 0 {
			b.WriteString(" " + r.muted("["+strings.Join(x.Plan, " ")+"]"))
		}
	default:
		b.WriteString(" " + r.muted("(no solution)"))
	}

	return b.String()
}

// render writes every section; styled output wraps each in a box.
func (r renderer) render(sections ...section) {
	for i, s := range sections {
		lines := make([]string, 0, len(s.Rows)+2)
		lines = append(lines, r.title(s.Title))
		for _, x := range s.Rows {
			lines = append(lines, r.line(x))
		}
		if s.Note != "" {
			lines = append(lines, r.failure(s.Note))
		}
		body := strings.Join(lines, "\n")
		if r.styled {
			body = boxStyle.Render(body)
		}
		if i > 0 {
			fmt.Fprintln(r.w)
		}
		fmt.Fprintln(r.w, body)
	}
}
