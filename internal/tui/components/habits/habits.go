package habits

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ritual-cli/ritual/internal/models"
)

type AddHabitMsg struct{}

type CheckInMsg struct {
	ID int
}

type DeleteHabitMsg struct {
	ID int
}

type Item struct {
	Habit *models.Habit
}

func (i Item) Title() string {
	return fmt.Sprintf("[%d] %s", i.Habit.ID, i.Habit.Name)
}

func (i Item) Description() string {
	return fmt.Sprintf("%s | streak %d (best %d) | %d check-in(s)",
		i.Habit.Periodicity, i.Habit.Streak, i.Habit.LongestStreak, len(i.Habit.History))
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Add     key.Binding
	CheckIn key.Binding
	Delete  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		CheckIn: key.NewBinding(
			key.WithKeys("c", "enter"),
			key.WithHelp("c", "check in"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(habits []*models.Habit, width, height int) Model {
	l := list.New(toItems(habits), list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.CheckIn, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.CheckIn, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func toItems(habits []*models.Habit) []list.Item {
	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = Item{Habit: h}
	}
	return items
}

func (m *Model) SetHabits(habits []*models.Habit) {
	m.list.SetItems(toItems(habits))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.CheckIn):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return CheckInMsg{ID: i.Habit.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteHabitMsg{ID: i.Habit.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No habits yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
