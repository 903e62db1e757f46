// ABOUTME: Fixes the lipgloss background mode before bubbletea's init sends OSC queries
// ABOUTME: Must be imported (with _) before any package that imports bubbletea

package termfix

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// EnvBackground selects the assumed terminal background: "light" or "dark".
const EnvBackground = "FLY_BACKGROUND"

func init() {
	// An explicit background skips the OSC 10/11 query whose late reply
	// would otherwise arrive as stray key input in the demo.
	// This package must not import bubbletea so it initialises first.
	lipgloss.SetHasDarkBackground(os.Getenv(EnvBackground) != "light")
}
