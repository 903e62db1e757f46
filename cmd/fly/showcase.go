// ABOUTME: Demo model: anchors with overlays, a fuzzy command palette and a footer
// ABOUTME: Wraps the tui model and intercepts keys while the palette is open

package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/mauromedda/fly-go/internal/config"
	"github.com/mauromedda/fly-go/internal/keybindings"
	ilog "github.com/mauromedda/fly-go/internal/log"
	"github.com/mauromedda/fly-go/pkg/fly"
	"github.com/mauromedda/fly-go/pkg/fly/loop"
	"github.com/mauromedda/fly-go/pkg/tui"
	"github.com/mauromedda/fly-go/pkg/tui/theme"
)

const paletteRows = 6

const helpMarkdown = `# fly demo

Hover an anchor to see its **tooltip**.
Click an anchor for its *dropdown*;
click outside or press Esc to close it.

Press / to search commands.`

type demoAnchor struct {
	box     *tui.Box
	variant string
	content fly.Content
	opts    []fly.Option
}

type command struct {
	name string
	run  func(d *demo) tea.Cmd
}

type demo struct {
	model    *tui.Model
	screen   *tui.Screen
	reg      *fly.Registry
	anchors  []demoAnchor
	palette  *tui.Box
	commands []command
	keys     *keybindings.Manager
	query    string
	status   string
}

// newDemo lays out the demo screen. Footer space is taken from height.
// A nil sched uses the program-posted scheduler.
func newDemo(s *config.Settings, width, height int, names fly.NamespaceSource, sched loop.Scheduler) (*demo, error) {
	screen := tui.NewScreen(width, max(height-1, 1))
	model := tui.NewModel(screen)
	if sched == nil {
		sched = model.Scheduler()
	}

	fopts := []fly.FactoryOption{fly.WithLogger(ilog.Logger().WithPrefix("fly"))}
	if names != nil {
		fopts = append(fopts, fly.WithNamespaces(names))
	}

	d := &demo{
		model:  model,
		screen: screen,
		reg:    fly.NewRegistry(fly.NewFactory(screen, sched, fopts...), tui.Variants()...),
	}
	d.commands = defaultCommands()
	d.layout()

	if s == nil {
		s = &config.Settings{}
	}
	if err := d.apply(s); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *demo) layout() {
	add := func(label string, x, y int, variant string, content fly.Content, opts ...fly.Option) *tui.Box {
		b := d.screen.NewAnchor(label, x, y)
		d.anchors = append(d.anchors, demoAnchor{box: b, variant: variant, content: content, opts: opts})
		return b
	}

	add("File", 2, 1, fly.DropdownName, fly.Static("New\nOpen…\nSave\nQuit"))
	add("Edit", 10, 1, fly.DropdownName, fly.Static("Undo\nRedo\nCut\nCopy\nPaste"))
	d.palette = add("/ Palette", 18, 1, fly.DropdownName, fly.Computed(d.paletteContent))

	add("Help", 2, 8, fly.TooltipName, tui.Markdown(helpMarkdown, 40))
	add("About", 12, 8, fly.TooltipName, fly.Computed(func(o *fly.Overlay) string {
		return fmt.Sprintf("fly %s\ninstance %s", version, o.Namespace())
	}))
	add("Above", 24, 16, fly.TooltipName, fly.Static("placed on top,\narrow on the left"),
		fly.WithPlacement("top left"))
	add("Beside", 40, 16, fly.TooltipName, fly.Static("placed to the right"),
		fly.WithPlacement("right center"))
}

// apply (re)creates every overlay from s. Existing instances are replaced.
func (d *demo) apply(s *config.Settings) error {
	if s.Theme != "" {
		th, err := theme.Resolve(s.Theme)
		if err != nil {
			return fmt.Errorf("loading theme: %w", err)
		}
		theme.Set(th)
	}

	keys, err := keybindings.New(s.Keys)
	if err != nil {
		ilog.Warn("keybindings: %v", err)
	}
	for _, c := range keys.Conflicts() {
		ilog.Warn("key %q bound to %v", c.Key, c.Actions)
	}
	d.keys = keys

	for _, a := range d.anchors {
		opts := append(s.ForVariant(a.variant).Options(), fly.WithContent(a.content))
		opts = append(opts, a.opts...)
		if _, err := d.reg.Apply(a.variant, a.box, opts...); err != nil {
			return err
		}
	}
	ilog.Debug("applied %d overlays", d.reg.Len())
	return nil
}

func (d *demo) instance(label string) *fly.Overlay {
	for _, a := range d.anchors {
		if a.box.Label() == label {
			return d.reg.Instance(a.variant, a.box)
		}
	}
	return nil
}

func (d *demo) hideAll() {
	for _, a := range d.anchors {
		if o := d.reg.Instance(a.variant, a.box); o != nil {
			o.Hide()
		}
	}
}

func (d *demo) paletteOverlay() *fly.Overlay {
	return d.reg.Instance(fly.DropdownName, d.palette)
}

func (d *demo) paletteOpen() bool {
	o := d.paletteOverlay()
	return o != nil && !o.Hidden()
}

// Init implements tea.Model.
func (d *demo) Init() tea.Cmd {
	return d.model.Init()
}

// Update implements tea.Model.
func (d *demo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		msg.Height = max(msg.Height-1, 1)
		_, cmd := d.model.Update(msg)
		return d, cmd
	case tea.KeyMsg:
		if d.paletteOpen() {
			if cmd, ok := d.paletteKey(msg); ok {
				return d, cmd
			}
			break
		}
		switch d.keys.ActionForKey(msg.String()) {
		case keybindings.ActionQuit:
			return d, tea.Quit
		case keybindings.ActionPalette:
			d.query = ""
			d.paletteOverlay().Show()
			return d, nil
		case keybindings.ActionHideAll:
			d.hideAll()
			return d, nil
		}
	}
	_, cmd := d.model.Update(msg)
	return d, cmd
}

// paletteKey edits the query or runs the best match. Keys it does not
// handle fall through to the screen, so Esc reaches the autohide listener.
func (d *demo) paletteKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		matches := d.matches()
		d.paletteOverlay().Hide()
		if len(matches) == 0 {
			d.status = "no command matches " + d.query
			return nil, true
		}
		d.status = "ran: " + matches[0].name
		return matches[0].run(d), true
	case tea.KeyBackspace:
		if r := []rune(d.query); len(r) > 0 {
			d.query = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		d.query += " "
	case tea.KeyRunes:
		d.query += string(msg.Runes)
	default:
		return nil, false
	}

	o := d.paletteOverlay()
	o.Redraw(func(string) { o.Reposition() })
	return nil, true
}

// matches returns the commands matching the query, best first.
func (d *demo) matches() []command {
	if d.query == "" {
		return d.commands
	}
	names := make([]string, len(d.commands))
	for i, c := range d.commands {
		names[i] = c.name
	}
	found := fuzzy.Find(d.query, names)
	out := make([]command, len(found))
	for i, m := range found {
		out[i] = d.commands[m.Index]
	}
	return out
}

func (d *demo) paletteContent(*fly.Overlay) string {
	var b strings.Builder
	b.WriteString("> " + d.query)
	matches := d.matches()
	if len(matches) == 0 {
		b.WriteString("\n  (no matches)")
	}
	for i, m := range matches {
		if i == paletteRows {
			break
		}
		b.WriteString("\n  " + m.name)
	}
	return b.String()
}

// View implements tea.Model.
func (d *demo) View() string {
	footer := d.status
	if footer == "" {
		footer = "hover: tooltip · click: menu"
		if hint := d.keys.Hint(keybindings.ActionPalette, keybindings.ActionQuit); hint != "" {
			footer += " · " + hint
		}
	}
	return d.model.View() + "\n" + d.screen.Theme().Palette.Muted.Apply(footer)
}

func defaultCommands() []command {
	show := func(label string) func(d *demo) tea.Cmd {
		return func(d *demo) tea.Cmd {
			if o := d.instance(label); o != nil {
				o.Show()
			}
			return nil
		}
	}
	useTheme := func(name string) command {
		return command{name: "theme " + name, run: func(d *demo) tea.Cmd {
			d.screen.SetTheme(theme.Builtin(name))
			return nil
		}}
	}

	cmds := []command{
		{name: "open file menu", run: show("File")},
		{name: "open edit menu", run: show("Edit")},
		{name: "show help", run: show("Help")},
		{name: "hide all", run: func(d *demo) tea.Cmd {
			d.hideAll()
			return nil
		}},
	}
	for _, name := range theme.BuiltinNames() {
		cmds = append(cmds, useTheme(name))
	}
	return append(cmds, command{name: "quit", run: func(*demo) tea.Cmd { return tea.Quit }})
}
