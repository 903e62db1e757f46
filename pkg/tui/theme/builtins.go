// ABOUTME: Built-in themes: default, dark, light, monochrome
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

var builtins = map[string]*Theme{
	"default": {
		Name:    "default",
		Palette: DefaultPalette(),
	},
	"dark": {
		Name: "dark",
		Palette: Palette{
			Anchor:      NewColor("15"),
			AnchorHover: NewColor("221"),

			TooltipText:   NewColor("253"),
			TooltipBorder: NewColor("240"),

			DropdownText:   NewColor("15"),
			DropdownBorder: NewColor("183"),

			Arrow: NewColor("240"),
			Muted: NewColor("238"),
		},
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Anchor:      NewColor("0"),
			AnchorHover: NewColor("166"),

			TooltipText:   NewColor("235"),
			TooltipBorder: NewColor("248"),

			DropdownText:   NewColor("0"),
			DropdownBorder: NewColor("25"),

			Arrow: NewColor("248"),
			Muted: NewColor("250"),
		},
	},
	"monochrome": {
		Name: "monochrome",
		Palette: Palette{
			Anchor:      NewColor("7"),
			AnchorHover: NewColor("15"),

			TooltipText:   NewColor("7"),
			TooltipBorder: NewColor("8"),

			DropdownText:   NewColor("15"),
			DropdownBorder: NewColor("7"),

			Arrow: NewColor("8"),
			Muted: NewColor("8"),
		},
	},
}

// Builtin returns a built-in theme by name, or nil if unknown.
func Builtin(name string) *Theme {
	return builtins[name]
}

// BuiltinNames returns the names of all built-in themes.
func BuiltinNames() []string {
	return []string{"default", "dark", "light", "monochrome"}
}
