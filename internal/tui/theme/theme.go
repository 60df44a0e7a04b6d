// Package theme defines color themes for the moneymirror TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceHover  lipgloss.Color // Active tab, selected row
	Border        lipgloss.Color // Subtle borders
	BorderAccent  lipgloss.Color // Focused card borders
	TextDim       lipgloss.Color // Hints, disabled
	TextMuted     lipgloss.Color // Labels, metadata
	TextPrimary   lipgloss.Color // Primary content text
	Accent        lipgloss.Color // Links, active states
	AccentBright  lipgloss.Color
	Income        lipgloss.Color
	Expense       lipgloss.Color
	Warn          lipgloss.Color
	GoalReached   lipgloss.Color
	EmptyGradient lipgloss.Color // Donut fill when there is nothing to chart
}

// Active is the currently selected theme.
var Active = Slate

// Slate is the default theme: the dark slate/emerald palette of the web app.
var Slate = Theme{
	Name:          "slate",
	Background:    lipgloss.Color("#0F172A"),
	Surface:       lipgloss.Color("#1E293B"),
	SurfaceHover:  lipgloss.Color("#334155"),
	Border:        lipgloss.Color("#334155"),
	BorderAccent:  lipgloss.Color("#10B981"),
	TextDim:       lipgloss.Color("#475569"),
	TextMuted:     lipgloss.Color("#94A3B8"),
	TextPrimary:   lipgloss.Color("#F8FAFC"),
	Accent:        lipgloss.Color("#10B981"),
	AccentBright:  lipgloss.Color("#34D399"),
	Income:        lipgloss.Color("#10B981"),
	Expense:       lipgloss.Color("#F43F5E"),
	Warn:          lipgloss.Color("#F59E0B"),
	GoalReached:   lipgloss.Color("#06B6D4"),
	EmptyGradient: lipgloss.Color("#222222"),
}

// FlexokiDark is a warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    lipgloss.Color("#100F0F"),
	Surface:       lipgloss.Color("#1C1B1A"),
	SurfaceHover:  lipgloss.Color("#282726"),
	Border:        lipgloss.Color("#403E3C"),
	BorderAccent:  lipgloss.Color("#3AA99F"),
	TextDim:       lipgloss.Color("#575653"),
	TextMuted:     lipgloss.Color("#878580"),
	TextPrimary:   lipgloss.Color("#FFFCF0"),
	Accent:        lipgloss.Color("#3AA99F"),
	AccentBright:  lipgloss.Color("#5BC8BE"),
	Income:        lipgloss.Color("#879A39"),
	Expense:       lipgloss.Color("#D14D41"),
	Warn:          lipgloss.Color("#DA702C"),
	GoalReached:   lipgloss.Color("#4385BE"),
	EmptyGradient: lipgloss.Color("#282726"),
}

// TokyoNight is a cool blue/purple theme.
var TokyoNight = Theme{
	Name:          "tokyo-night",
	Background:    lipgloss.Color("#1A1B26"),
	Surface:       lipgloss.Color("#24283B"),
	SurfaceHover:  lipgloss.Color("#343A52"),
	Border:        lipgloss.Color("#565F89"),
	BorderAccent:  lipgloss.Color("#7AA2F7"),
	TextDim:       lipgloss.Color("#565F89"),
	TextMuted:     lipgloss.Color("#A9B1D6"),
	TextPrimary:   lipgloss.Color("#C0CAF5"),
	Accent:        lipgloss.Color("#7AA2F7"),
	AccentBright:  lipgloss.Color("#A9C1FF"),
	Income:        lipgloss.Color("#9ECE6A"),
	Expense:       lipgloss.Color("#F7768E"),
	Warn:          lipgloss.Color("#E0AF68"),
	GoalReached:   lipgloss.Color("#7DCFFF"),
	EmptyGradient: lipgloss.Color("#343A52"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceHover:  lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderAccent:  lipgloss.Color("6"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("6"),
	AccentBright:  lipgloss.Color("14"),
	Income:        lipgloss.Color("2"),
	Expense:       lipgloss.Color("1"),
	Warn:          lipgloss.Color("3"),
	GoalReached:   lipgloss.Color("4"),
	EmptyGradient: lipgloss.Color("8"),
}

// All available themes.
var All = []Theme{Slate, FlexokiDark, TokyoNight, Terminal}

// ByName returns a theme by its name, defaulting to Slate.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return Slate
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// Names lists the theme names in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}
