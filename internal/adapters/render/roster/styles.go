package roster

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	name      lipgloss.Style
	detail    lipgloss.Style
	meta      lipgloss.Style
	empty     lipgloss.Style
	section   lipgloss.Style
	active    lipgloss.Style
	blocked   lipgloss.Style
	pending   lipgloss.Style
	published lipgloss.Style
	unapplied lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		name:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty:     lipgloss.NewStyle().Faint(true),
		section:   lipgloss.NewStyle().MarginTop(1),
		active:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		blocked:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		published: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		unapplied: lipgloss.NewStyle().Faint(true),
	}
}
