package roster

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rentora/admin-cli/internal/domain"
)

type RenderOptions struct {
	Title   string
	Total   int
	Visible int
}

func renderView(records []domain.Record, opts RenderOptions, s styles) string {
	title := opts.Title
	if title == "" {
		title = "Rentora Records"
	}

	lines := []string{
		s.title.Render(title),
		s.header.Render(fmt.Sprintf("showing %d of %d", opts.Visible, opts.Total)),
	}

	if len(records) == 0 {
		lines = append(lines, s.empty.Render("No records match the current view."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, record := range records {
		lines = append(lines, s.section.Render(renderRecord(record, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderRecord(record domain.Record, s styles) string {
	parts := []string{
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.name.Render(recordTitle(record)),
			" ",
			statusStyle(record.Status, s).Render("["+record.Status.Label()+"]"),
		),
	}

	if contact := contactLine(record); contact != "" {
		parts = append(parts, s.detail.Render(contact))
	}
	if meta := metaLine(record); meta != "" {
		parts = append(parts, s.meta.Render(meta))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func recordTitle(record domain.Record) string {
	if record.Name == "" {
		return record.ID
	}

	return fmt.Sprintf("%s (%s)", record.Name, record.ID)
}

func contactLine(record domain.Record) string {
	fields := make([]string, 0, 3)
	for _, field := range []string{record.Email, record.Phone, record.AlternatePhone} {
		if field != "" {
			fields = append(fields, field)
		}
	}

	return strings.Join(fields, " · ")
}

func metaLine(record domain.Record) string {
	fields := make([]string, 0, 3)
	if record.Role != "" {
		fields = append(fields, record.Role)
	}
	if record.Address.City != "" {
		fields = append(fields, record.Address.City)
	}
	if !record.CreatedAt.IsZero() {
		fields = append(fields, "joined "+record.CreatedAt.Format(time.DateOnly))
	}

	return strings.Join(fields, " · ")
}

func statusStyle(status domain.ModerationStatus, s styles) lipgloss.Style {
	switch status {
	case domain.StatusActive:
		return s.active
	case domain.StatusBlocked:
		return s.blocked
	case domain.StatusPending:
		return s.pending
	case domain.StatusPublished:
		return s.published
	default:
		return s.unapplied
	}
}
