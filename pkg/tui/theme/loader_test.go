// ABOUTME: Tests for JSON theme file loading and name resolution
// ABOUTME: Covers valid load, missing fields fallback, invalid JSON, and file not found

package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTheme(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.json")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile_ValidJSON(t *testing.T) {
	t.Parallel()

	path := writeTheme(t, `{
		"name": "custom",
		"palette": {
			"anchor": "15",
			"anchor_hover": "#ff8800",
			"tooltip_text": "230",
			"tooltip_border": "244",
			"dropdown_text": "255",
			"dropdown_border": "117",
			"arrow": "244",
			"muted": "240"
		}
	}`)

	th, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if th.Name != "custom" {
		t.Errorf("Name = %q; want %q", th.Name, "custom")
	}
	if got := th.Palette.AnchorHover.Spec(); got != "#ff8800" {
		t.Errorf("AnchorHover = %q; want %q", got, "#ff8800")
	}
}

func TestLoadFile_MissingFields_FallsBackToDefault(t *testing.T) {
	t.Parallel()

	path := writeTheme(t, `{"name": "partial", "palette": {"arrow": "9"}}`)

	th, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if th.Palette.Arrow.Spec() != "9" {
		t.Errorf("Arrow = %q; want %q", th.Palette.Arrow.Spec(), "9")
	}
	if th.Palette.DropdownBorder != DefaultPalette().DropdownBorder {
		t.Error("DropdownBorder should fall back to default")
	}
}

func TestLoadFile_InvalidJSON(t *testing.T) {
	t.Parallel()

	if _, err := LoadFile(writeTheme(t, "{not json")); err == nil {
		t.Error("LoadFile() should return error for invalid JSON")
	}
}

func TestLoadFile_NotFound(t *testing.T) {
	t.Parallel()

	if _, err := LoadFile("/nonexistent/theme.json"); err == nil {
		t.Error("LoadFile() should return error for missing file")
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	th, err := Resolve("dark")
	if err != nil || th.Name != "dark" {
		t.Fatalf("Resolve(dark) = %v, %v", th, err)
	}

	th, err = Resolve(writeTheme(t, `{"name": "file"}`))
	if err != nil || th.Name != "file" {
		t.Fatalf("Resolve(path) = %v, %v", th, err)
	}

	if _, err := Resolve("no-such-theme"); err == nil {
		t.Error("Resolve() should fail for unknown names")
	}
}
