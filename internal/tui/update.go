package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ritual-cli/ritual/internal/models"
	"github.com/ritual-cli/ritual/internal/tui/components/habits"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle Add Habit State
	if m.state == StateAddHabit {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StateHabits
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			p, err := m.habitForm.formPeriodicity()
			if err != nil {
				// Stay in form state so the user can fix the custom
				// fields or cancel with ESC.
				m.statusMsg = fmt.Sprintf("invalid periodicity: %v", err)
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}
			habit, err := models.NewHabit(m.store.Allocator(), m.habitForm.Name, p, time.Now())
			if err != nil {
				m.statusMsg = err.Error()
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}
			m.user.AddHabit(habit)
			if err := m.store.Save(); err != nil {
				m.statusMsg = fmt.Sprintf("save failed: %v", err)
			} else {
				m.statusMsg = fmt.Sprintf("added habit %q", habit.Name)
			}
			m.habitsModel.SetHabits(m.user.Habits)
			m.state = StateHabits
		case huh.StateAborted:
			m.state = StateHabits
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Confirm Delete State
	if m.state == StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				if err := m.user.DeleteHabit(m.habitToDeleteID); err != nil {
					m.statusMsg = err.Error()
				} else if err := m.store.Save(); err != nil {
					m.statusMsg = fmt.Sprintf("save failed: %v", err)
				} else {
					m.statusMsg = fmt.Sprintf("deleted habit %d", m.habitToDeleteID)
				}
				m.habitsModel.SetHabits(m.user.Habits)
				m.state = StateHabits
			case "n", "N", "esc":
				m.state = StateHabits
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		m.habitsModel.SetSize(msg.Width-h, msg.Height-v-4)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		}

	case habits.AddHabitMsg:
		m.previousState = m.state
		m.habitForm = &HabitFormModel{}
		m.form = newHabitForm(m.habitForm)
		m.state = StateAddHabit
		return m, m.form.Init()

	case habits.CheckInMsg:
		habit, err := m.user.FindHabit(msg.ID)
		if err != nil {
			m.statusMsg = err.Error()
			return m, nil
		}
		habit.CheckIn(time.Now())
		m.engine.Update(habit, time.Time{})
		if err := m.store.Save(); err != nil {
			m.statusMsg = fmt.Sprintf("save failed: %v", err)
		} else {
			m.statusMsg = fmt.Sprintf("checked in %q, streak %d", habit.Name, habit.Streak)
		}
		m.habitsModel.SetHabits(m.user.Habits)
		return m, nil

	case habits.DeleteHabitMsg:
		m.previousState = m.state
		m.habitToDeleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil
	}

	if m.state == StateHabits {
		var cmd tea.Cmd
		m.habitsModel, cmd = m.habitsModel.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}
