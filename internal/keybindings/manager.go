// ABOUTME: Keybindings manager with O(1) key-to-action lookup for the demo
// ABOUTME: Configured keys replace an action's defaults; conflicts are reported

package keybindings

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Action is a named demo command reachable from the keyboard.
type Action string

const (
	ActionQuit    Action = "quit"
	ActionPalette Action = "palette"
	ActionHideAll Action = "hide_all"
)

// Defaults returns the built-in bindings. Keys use bubbletea key names.
func Defaults() map[Action][]string {
	return map[Action][]string{
		ActionQuit:    {"q"},
		ActionPalette: {"/", "ctrl+p"},
		ActionHideAll: {"h"},
	}
}

// Conflict describes a key bound to more than one action.
type Conflict struct {
	Key     string
	Actions []Action
}

// Manager maps keys to actions.
type Manager struct {
	bindings map[Action][]string
	lookup   map[string]Action
}

// New creates a Manager from the defaults with overrides applied. An
// override replaces every key of its action; an empty list unbinds it.
// Unknown action names are returned as an error and otherwise ignored.
func New(overrides map[string][]string) (*Manager, error) {
	bindings := Defaults()
	var unknown []string
	for name, keys := range overrides {
		a := Action(name)
		if _, ok := bindings[a]; !ok {
			unknown = append(unknown, name)
			continue
		}
		bindings[a] = slices.Clone(keys)
	}

	m := &Manager{bindings: bindings}
	m.buildLookup()

	if len(unknown) > 0 {
		slices.Sort(unknown)
		return m, fmt.Errorf("unknown key actions: %s", strings.Join(unknown, ", "))
	}
	return m, nil
}

// ActionForKey returns the action bound to key, or "" if unbound.
func (m *Manager) ActionForKey(key string) Action {
	return m.lookup[key]
}

// Keys returns the keys bound to action.
func (m *Manager) Keys(a Action) []string {
	return slices.Clone(m.bindings[a])
}

// Conflicts returns keys bound to several actions, sorted by key.
func (m *Manager) Conflicts() []Conflict {
	byKey := make(map[string][]Action)
	for a, keys := range m.bindings {
		for _, k := range keys {
			byKey[k] = append(byKey[k], a)
		}
	}

	var out []Conflict
	for _, k := range slices.Sorted(maps.Keys(byKey)) {
		if actions := byKey[k]; len(actions) > 1 {
			slices.Sort(actions)
			out = append(out, Conflict{Key: k, Actions: actions})
		}
	}
	return out
}

// Hint formats the first key of each action for a status line.
func (m *Manager) Hint(actions ...Action) string {
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		if keys := m.bindings[a]; len(keys) > 0 {
			parts = append(parts, keys[0]+": "+strings.ReplaceAll(string(a), "_", " "))
		}
	}
	return strings.Join(parts, " · ")
}

// buildLookup indexes keys; when keys conflict the lexically first action wins.
func (m *Manager) buildLookup() {
	m.lookup = make(map[string]Action, len(m.bindings)*2)
	for _, a := range slices.Sorted(maps.Keys(m.bindings)) {
		for _, k := range m.bindings[a] {
			if _, taken := m.lookup[k]; !taken {
				m.lookup[k] = a
			}
		}
	}
}
