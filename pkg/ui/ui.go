package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rafabd1/Registro/internal/student"
)

// Package ui renders line-oriented terminal output for the CLI.

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	menuStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
)

// Title renders a section heading.
func Title(s string) string {
	return titleStyle.Render(s)
}

// MenuItem renders one numbered menu entry.
func MenuItem(number int, label string) string {
	return menuStyle.Render(fmt.Sprintf("%d. %s", number, label))
}

// Success renders a confirmation line.
func Success(format string, args ...any) string {
	return successStyle.Render(fmt.Sprintf(format, args...))
}

// Error renders a failure line.
func Error(format string, args ...any) string {
	return errorStyle.Render(fmt.Sprintf(format, args...))
}

// Help renders secondary guidance text.
func Help(s string) string {
	return helpStyle.Render(s)
}

// Table renders the collection as a fixed-width table, one student per row.
func Table(records []student.Student) string {
	var b strings.Builder
	header := fmt.Sprintf("%-10s %-20s %-24s %-16s %-6s %5s", "ID", "NAME", "EMAIL", "COURSE", "YEAR", "GPA")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")
	for _, s := range records {
		b.WriteString(fmt.Sprintf("%-10s %-20s %-24s %-16s %-6s %5.2f\n",
			s.ID, s.Name, s.Email, s.Course, s.YearLevel, s.GPA))
	}
	return b.String()
}

// Details renders one record field-per-line.
func Details(s student.Student) string {
	var b strings.Builder
	write := func(field, value string) {
		b.WriteString(headerStyle.Render(field+":") + " " + value + "\n")
	}
	write("student_id", s.ID)
	write("name", s.Name)
	write("email", s.Email)
	write("course", s.Course)
	write("year_level", s.YearLevel)
	write("gpa", fmt.Sprintf("%.2f", s.GPA))
	write("created_at", s.CreatedAt)
	write("updated_at", s.UpdatedAt)
	return b.String()
}
