// ABOUTME: Tests for the demo model: palette filtering, command dispatch, config apply
// ABOUTME: Uses a virtual clock so no terminal or program is needed

package main

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/fly-go/internal/config"
	"github.com/mauromedda/fly-go/pkg/fly"
	"github.com/mauromedda/fly-go/pkg/fly/loop"
	"github.com/mauromedda/fly-go/pkg/fly/place"
	"github.com/mauromedda/fly-go/pkg/tui"
)

func newTestDemo(t *testing.T, s *config.Settings) (*demo, *loop.Manual) {
	t.Helper()
	sched := loop.NewManual()
	d, err := newDemo(s, 80, 24, nil, sched)
	if err != nil {
		t.Fatalf("newDemo() error: %v", err)
	}
	t.Cleanup(d.reg.DestroyAll)
	return d, sched
}

func keys(d *demo, s string) tea.Cmd {
	var cmd tea.Cmd
	for _, r := range s {
		_, cmd = d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestDemo_PaletteRunsBestMatch(t *testing.T) {
	t.Parallel()

	d, _ := newTestDemo(t, nil)
	keys(d, "/")
	if !d.paletteOpen() {
		t.Fatal("/ did not open the palette")
	}

	keys(d, "dark")
	content := d.paletteOverlay().Root().(*tui.Box).Content()
	if !strings.HasPrefix(content, "> dark\n  theme dark") {
		t.Errorf("palette content = %q", content)
	}

	d.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if d.paletteOpen() {
		t.Error("enter did not close the palette")
	}
	if d.screen.Theme().Name != "dark" || d.status != "ran: theme dark" {
		t.Errorf("theme = %q status = %q", d.screen.Theme().Name, d.status)
	}
}

func TestDemo_PaletteEditing(t *testing.T) {
	t.Parallel()

	d, _ := newTestDemo(t, nil)
	keys(d, "/")
	if cmd := keys(d, "qx"); isQuit(cmd) {
		t.Fatal("q quit while typing in the palette")
	}
	d.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	d.Update(tea.KeyMsg{Type: tea.KeySpace})

	if d.query != "q " {
		t.Errorf("query = %q; want %q", d.query, "q ")
	}

	keys(d, "zzzz")
	if !strings.Contains(d.paletteOverlay().Root().(*tui.Box).Content(), "(no matches)") {
		t.Error("palette should report no matches")
	}
	d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.HasPrefix(d.status, "no command matches") {
		t.Errorf("status = %q", d.status)
	}
}

func TestDemo_EscapeClosesPalette(t *testing.T) {
	t.Parallel()

	d, sched := newTestDemo(t, nil)
	keys(d, "/")
	sched.Flush()

	d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if d.paletteOpen() {
		t.Error("esc did not close the palette")
	}
}

func TestDemo_QuitKey(t *testing.T) {
	t.Parallel()

	d, _ := newTestDemo(t, nil)
	if !isQuit(keys(d, "q")) {
		t.Error("q did not quit")
	}
}

func TestDemo_OpenMenuCommand(t *testing.T) {
	t.Parallel()

	d, _ := newTestDemo(t, nil)
	keys(d, "/")
	keys(d, "file")
	d.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if d.instance("File").Hidden() {
		t.Error("open file menu did not show the File dropdown")
	}
}

func TestDemo_TooltipHover(t *testing.T) {
	t.Parallel()

	d, sched := newTestDemo(t, nil)
	d.Update(tea.MouseMsg{X: 13, Y: 8, Action: tea.MouseActionMotion})
	sched.Advance(300 * time.Millisecond)

	o := d.instance("About")
	if o.Hidden() {
		t.Fatal("hovering About did not show its tooltip")
	}
	if got := o.Root().(*tui.Box).Content(); !strings.Contains(got, "instance "+o.Namespace()) {
		t.Errorf("About content = %q", got)
	}
}

func TestDemo_ApplySettings(t *testing.T) {
	t.Parallel()

	pos := "left top"
	d, _ := newTestDemo(t, &config.Settings{Tooltip: config.VariantConfig{Position: &pos}})

	if got := d.instance("Help").Options().Position; got != (place.Spec{Side: place.Left, Arrow: place.ArrowTop}) {
		t.Errorf("Help position = %+v; want config override", got)
	}
	if got := d.instance("Above").Options().Position; got != (place.Spec{Side: place.Top, Arrow: place.ArrowLeft}) {
		t.Errorf("Above position = %+v; want its own placement", got)
	}
	if got := d.instance("File").Options().ArrowSize; got != tui.CellArrowSize {
		t.Errorf("File arrow size = %v; want %v", got, tui.CellArrowSize)
	}

	first := d.instance("Help")
	if err := d.apply(&config.Settings{}); err != nil {
		t.Fatalf("apply() error: %v", err)
	}
	if !first.Destroyed() || d.reg.Len() != len(d.anchors) {
		t.Error("re-applying did not replace the overlays")
	}
}

func TestDemo_BadTheme(t *testing.T) {
	t.Parallel()

	if _, err := newDemo(&config.Settings{Theme: "/nonexistent/theme.json"}, 80, 24, nil, loop.NewManual()); err == nil {
		t.Error("newDemo() should fail for an unknown theme")
	}
}

func TestDemo_ViewAndResize(t *testing.T) {
	t.Parallel()

	d, _ := newTestDemo(t, nil)
	d.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	if w, h := d.screen.Size(); w != 100 || h != 29 {
		t.Errorf("screen = %dx%d; want 100x29", w, h)
	}
	if !strings.Contains(d.View(), "q: quit") {
		t.Error("footer hint missing from view")
	}
	if fly.DropdownName != d.anchors[0].variant {
		t.Error("first anchor should be the File dropdown")
	}
}

func TestDemo_ConfiguredKeys(t *testing.T) {
	t.Parallel()

	d, _ := newTestDemo(t, &config.Settings{Keys: map[string][]string{"quit": {"x"}}})

	if isQuit(keys(d, "q")) {
		t.Error("q still quits after rebinding")
	}
	if !isQuit(keys(d, "x")) {
		t.Error("x did not quit")
	}
	if !strings.Contains(d.View(), "x: quit") {
		t.Error("footer does not show the configured key")
	}
}

func TestDemo_HideAllKey(t *testing.T) {
	t.Parallel()

	d, _ := newTestDemo(t, nil)
	d.instance("File").Show()
	d.instance("Help").Show()

	keys(d, "h")

	if !d.instance("File").Hidden() || !d.instance("Help").Hidden() {
		t.Error("hide all key left overlays visible")
	}
}

func TestCLI_WatchPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := t.TempDir()

	c := &CLI{projectRoot: root}
	if got, want := c.watchPaths(), config.WatchPaths(root); !reflect.DeepEqual(got, want) {
		t.Errorf("watchPaths() = %v; want %v", got, want)
	}

	c.configPath = filepath.Join(root, "x.yaml")
	if got := c.watchPaths(); !reflect.DeepEqual(got, []string{c.configPath}) {
		t.Errorf("watchPaths() with --config = %v; want only the config file", got)
	}
}

func TestCLI_WatchExplicitConfigReloads(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvTheme, "")
	t.Setenv(config.EnvLogLevel, "")

	path := filepath.Join(t.TempDir(), "x.yaml")
	if err := os.WriteFile(path, []byte("theme: dark\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	c := &CLI{configPath: path, projectRoot: t.TempDir()}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	themes := make(chan string, 8)
	go config.Watch(ctx, c.watchPaths(), 10*time.Millisecond, func() {
		if s, err := c.reload(); err == nil && s.Theme != "" {
			themes <- s.Theme
		}
	})

	// Let the watcher take its initial snapshot; then move the mtime
	// forward so coarse filesystem clocks still see a change.
	time.Sleep(30 * time.Millisecond)
	if err := os.WriteFile(path, []byte("theme: light\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	later := time.Now().Add(time.Second)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-themes:
		if got != "light" {
			t.Errorf("reloaded theme = %q; want light", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("editing the --config file did not trigger a reload")
	}
}
