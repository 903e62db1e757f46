// ABOUTME: Bubbletea adapter: translates terminal messages into Screen input
// ABOUTME: Overlay timers are posted back into the program so callbacks run on its loop

package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/fly-go/pkg/fly/loop"
)

// Sender delivers messages into a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// taskMsg carries a scheduler callback onto the program's goroutine.
type taskMsg struct {
	fn func()
}

// Model drives a Screen from bubbletea messages.
type Model struct {
	screen *Screen
	sched  *loop.Posted

	mu     sync.Mutex
	sender Sender
}

// NewModel creates a model for screen. Call Attach before timers fire.
func NewModel(screen *Screen) *Model {
	m := &Model{screen: screen}
	m.sched = loop.NewPosted(m.post)
	return m
}

// Screen returns the driven screen.
func (m *Model) Screen() *Screen { return m.screen }

// Scheduler returns the scheduler overlays on this screen must use.
func (m *Model) Scheduler() loop.Scheduler { return m.sched }

// Attach sets the destination for posted callbacks.
func (m *Model) Attach(s Sender) {
	m.mu.Lock()
	m.sender = s
	m.mu.Unlock()
}

func (m *Model) post(fn func()) {
	m.mu.Lock()
	s := m.sender
	m.mu.Unlock()
	if s == nil {
		return
	}
	s.Send(taskMsg{fn: fn})
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskMsg:
		msg.fn()
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
	case tea.MouseMsg:
		switch {
		case msg.Action == tea.MouseActionMotion:
			m.screen.MouseMove(msg.X, msg.Y)
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			m.screen.Click(msg.X, msg.Y)
		}
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		m.screen.KeyDown(msg.String())
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	return m.screen.Render()
}

// Run starts a full-screen program for top, attaching m so scheduled
// callbacks reach it. top is usually m or a model wrapping it.
func Run(ctx context.Context, top tea.Model, m *Model, opts ...tea.ProgramOption) error {
	base := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
	p := tea.NewProgram(top, append(base, opts...)...)
	m.Attach(p)
	defer m.Attach(nil)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
