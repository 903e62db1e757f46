// ABOUTME: Markdown overlay content rendered with glamour off the event loop
// ABOUTME: Completion is posted back through the overlay's scheduler

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"

	"github.com/mauromedda/fly-go/pkg/fly"
)

// Markdown returns deferred content that renders src as plain text wrapped
// at width cells. If rendering fails the raw source is shown.
func Markdown(src string, width int) fly.Content {
	return fly.Deferred(func(o *fly.Overlay, done func(string)) {
		sched := o.Scheduler()
		go func() {
			out, err := RenderMarkdown(src, width)
			if err != nil {
				out = src
			}
			sched.AfterFunc(0, func() { done(out) })
		}()
	})
}

// RenderMarkdown renders src with glamour's no-TTY style, stripped of
// escape sequences and surrounding blank lines.
func RenderMarkdown(src string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(src)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}

	lines := strings.Split(ansi.Strip(out), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n"), nil
}
