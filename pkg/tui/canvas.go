// ABOUTME: Cell canvas for compositing anchors and panels into terminal lines
// ABOUTME: Grapheme-aware: wide clusters occupy two cells, styles are applied per run

package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

type cell struct {
	text  string // grapheme cluster; "" marks the tail of a wide cluster
	style int
}

// canvas is a fixed grid of cells. Style 0 is unstyled.
type canvas struct {
	w, h   int
	cells  [][]cell
	styles []lipgloss.Style
}

var builderPool = sync.Pool{
	New: func() any { return new(strings.Builder) },
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, styles: []lipgloss.Style{lipgloss.NewStyle()}}
	c.cells = make([][]cell, h)
	for y := range c.cells {
		row := make([]cell, w)
		for x := range row {
			row[x] = cell{text: " "}
		}
		c.cells[y] = row
	}
	return c
}

// style registers s and returns its index.
func (c *canvas) style(s lipgloss.Style) int {
	c.styles = append(c.styles, s)
	return len(c.styles) - 1
}

// put writes s starting at (x, y) and returns the column after the last
// cell written. Cells outside the grid are clipped.
func (c *canvas) put(x, y int, s string, style int) int {
	if y < 0 || y >= c.h {
		return x + textWidth(s)
	}
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		w := runewidth.StringWidth(cluster)
		if w == 0 {
			continue
		}
		if x >= 0 && x+w <= c.w {
			for i := range w {
				c.clearWide(x+i, y)
			}
			c.cells[y][x] = cell{text: cluster, style: style}
			for i := 1; i < w; i++ {
				c.cells[y][x+i] = cell{style: style}
			}
		}
		x += w
	}
	return x
}

// clearWide blanks the head of a wide cluster whose tail is about to be
// overwritten, and the tail of one whose head is.
func (c *canvas) clearWide(x, y int) {
	row := c.cells[y]
	if row[x].text == "" && x > 0 {
		row[x-1] = cell{text: " "}
	}
	if x+1 < c.w && row[x+1].text == "" && row[x].text != "" {
		row[x+1] = cell{text: " "}
	}
}

// fill paints a run of n blank cells in style.
func (c *canvas) fill(x, y, n, style int) {
	c.put(x, y, strings.Repeat(" ", max(n, 0)), style)
}

// lines renders each row, grouping cells that share a style into one run.
func (c *canvas) lines() []string {
	out := make([]string, c.h)
	run := builderPool.Get().(*strings.Builder)
	line := builderPool.Get().(*strings.Builder)
	defer builderPool.Put(run)
	defer builderPool.Put(line)

	for y, row := range c.cells {
		line.Reset()
		run.Reset()
		cur := 0
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if cur == 0 {
				line.WriteString(run.String())
			} else {
				line.WriteString(c.styles[cur].Render(run.String()))
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.text == "" {
				continue
			}
			if cl.style != cur {
				flush()
				cur = cl.style
			}
			run.WriteString(cl.text)
		}
		flush()
		out[y] = strings.TrimRight(line.String(), " ")
	}
	return out
}

// textWidth returns the display width of s in cells.
func textWidth(s string) int {
	w := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w += runewidth.StringWidth(gr.Str())
	}
	return w
}
