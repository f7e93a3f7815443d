// Package theme owns the Lip Gloss styles shared across the UI. Styles are
// grouped into named palettes so the settings screen can cycle between them;
// the view resolves the active palette on every render rather than mutating
// package state.
package theme

import "github.com/charmbracelet/lipgloss"

// Name identifies one of the selectable palettes.
type Name string

const (
	Default  Name = "default"
	Dark     Name = "dark"
	Light    Name = "light"
	Colorful Name = "colorful"
)

// Styles describes the reusable styles a palette provides.
type Styles struct {
	Header                *lipgloss.Style
	Title                 *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItem          *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	Body                  *lipgloss.Style
	Info                  *lipgloss.Style
	Error                 *lipgloss.Style
	Footer                *lipgloss.Style
	Accent                *lipgloss.Style
}

// Names returns the palettes in cycle order.
func Names() []Name {
	return []Name{Default, Dark, Light, Colorful}
}

// Next returns the palette following n in cycle order.
func Next(n Name) Name {
	names := Names()
	for i, candidate := range names {
		if candidate == n {
			return names[(i+1)%len(names)]
		}
	}
	return Default
}

// Lookup resolves a palette by name, falling back to the default palette.
func Lookup(n Name) Styles {
	if s, ok := palettes[n]; ok {
		return s
	}
	return palettes[Default]
}

var palettes = map[Name]Styles{
	Default:  paletteFrom("245", "249", "255", "238", "33", "196"),
	Dark:     paletteFrom("240", "246", "252", "235", "39", "160"),
	Light:    paletteFrom("240", "236", "232", "252", "27", "124"),
	Colorful: paletteFrom("213", "222", "230", "54", "48", "197"),
}

// paletteFrom builds a Styles set from a small base of colours: header text,
// item text, selected text, selected background, accent, and error.
func paletteFrom(header, item, selected, selectedBG, accent, errColor string) Styles {
	return Styles{
		Header: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(header)).Bold(true),
		),
		Title: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
		),
		Item: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(item)),
		),
		ItemIndicator: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(selectedBG)),
		),
		SelectedItem: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(selected)).Background(lipgloss.Color(selectedBG)).Bold(true),
		),
		SelectedItemIndicator: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Background(lipgloss.Color(selectedBG)),
		),
		Body: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(item)),
		),
		Info: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(item)).Italic(true),
		),
		Error: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(errColor)).Bold(true),
		),
		Footer: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(header)),
		),
		Accent: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(accent)),
		),
	}
}

func ptr(s lipgloss.Style) *lipgloss.Style {
	return &s
}
