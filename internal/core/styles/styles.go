// Package styles provides shared lipgloss styles for CLI output.
package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/todos/internal/core/todo"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// Shared styles, rebuilt by SetTheme.
var (
	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Success  lipgloss.Style
	ErrorMsg lipgloss.Style

	priorityStyles map[todo.Priority]lipgloss.Style
	statusStyles   map[todo.Status]lipgloss.Style
)

func init() {
	SetTheme(themes[DefaultTheme])
}

// SetTheme rebuilds the shared styles from the given palette.
func SetTheme(p Palette) {
	Title = lipgloss.NewStyle().Bold(true).Foreground(p.Primary)
	Subtle = lipgloss.NewStyle().Foreground(p.Muted)
	Success = lipgloss.NewStyle().Foreground(p.Success)
	ErrorMsg = lipgloss.NewStyle().Foreground(p.Error)

	priorityStyles = map[todo.Priority]lipgloss.Style{
		todo.PriorityHigh: lipgloss.NewStyle().Bold(true).Foreground(p.Error),
		todo.PriorityMid:  lipgloss.NewStyle().Foreground(p.Warning),
		todo.PriorityLow:  lipgloss.NewStyle().Foreground(p.Muted),
	}
	statusStyles = map[todo.Status]lipgloss.Style{
		todo.StatusPending:   lipgloss.NewStyle().Foreground(p.Warning),
		todo.StatusCompleted: lipgloss.NewStyle().Foreground(p.Success),
	}
}

// RenderPriority returns the priority tag in its theme color.
func RenderPriority(p todo.Priority) string {
	if style, ok := priorityStyles[p]; ok {
		return style.Render(string(p))
	}
	return string(p)
}

// RenderStatus returns the status tag in its theme color.
func RenderStatus(s todo.Status) string {
	if style, ok := statusStyles[s]; ok {
		return style.Render(string(s))
	}
	return string(s)
}
