package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateHabits:
		content = m.viewHabits()
	case StateAnalytics:
		content = m.viewAnalytics()
	case StateAddHabit:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	sections := []string{m.viewTabs(), content}
	if m.statusMsg != "" {
		sections = append(sections, statStyle.Render(m.statusMsg))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Habits", "Analytics"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHabits() string {
	return docStyle.Render(m.habitsModel.View())
}

func (m Model) viewAnalytics() string {
	var b strings.Builder

	overall := m.report.LongestStreakOverall(m.user)
	fmt.Fprintf(&b, "Longest streak overall: %s\n\n", statStyle.Render(fmt.Sprintf("%d", overall)))

	if len(m.user.Habits) == 0 {
		b.WriteString("No habits tracked yet.\n")
		return docStyle.Render(b.String())
	}

	for _, h := range m.report.AllHabits(m.user) {
		fmt.Fprintf(&b, "[%d] %-20s %-12s streak %3d  best %3d  check-ins %d\n",
			h.ID, h.Name, h.Periodicity.String(), h.Streak, h.LongestStreak, len(h.History))
	}

	return docStyle.Render(b.String())
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete habit %d and all of its check-ins?", m.habitToDeleteID)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
