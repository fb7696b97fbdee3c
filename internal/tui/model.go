package tui

import (
	"errors"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ritual-cli/ritual/internal/analytics"
	"github.com/ritual-cli/ritual/internal/models"
	"github.com/ritual-cli/ritual/internal/storage"
	"github.com/ritual-cli/ritual/internal/streak"
	"github.com/ritual-cli/ritual/internal/tui/components/habits"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateAnalytics
	StateAddHabit
	StateConfirmDelete
)

// tabCount covers the cyclable tabs only; the modal states are entered
// through key handlers and exited back to StateHabits.
const tabCount = 2

var errEmptyName = errors.New("name must not be empty")

type HabitFormModel struct {
	Name      string
	Kind      string
	Frequency string
	Period    string
}

type Model struct {
	store  storage.Provider
	engine *streak.Engine
	report *analytics.Reporter
	user   *models.User

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	habitsModel   habits.Model
	form          *huh.Form
	habitForm     *HabitFormModel
	statusMsg     string

	habitToDeleteID int
	quitting        bool
	width           int
	height          int
}

func NewModel(store storage.Provider, engine *streak.Engine, report *analytics.Reporter, user *models.User) Model {
	// Refresh every streak before the first render so the list shows
	// current values, not whatever the last save recorded.
	report.AllHabits(user)

	return Model{
		store:       store,
		engine:      engine,
		report:      report,
		user:        user,
		state:       StateHabits,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		habitsModel: habits.New(user.Habits, 0, 0),
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateHabits {
		keys = append(keys, m.keys.Add, m.keys.CheckIn, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	if m.state == StateHabits {
		actions = []key.Binding{m.keys.Add, m.keys.CheckIn, m.keys.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func newHabitForm(f *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&f.Name).
				Validate(func(s string) error {
					if s == "" {
						return errEmptyName
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Periodicity").
				Options(
					huh.NewOption("Daily", "daily"),
					huh.NewOption("Weekly", "weekly"),
					huh.NewOption("Custom", "custom"),
				).
				Value(&f.Kind),
			huh.NewInput().
				Title("Frequency").
				Description("Check-ins per period (custom only)").
				Value(&f.Frequency),
			huh.NewInput().
				Title("Period").
				Description("Period length in days (custom only)").
				Value(&f.Period),
		),
	)
}

// formPeriodicity resolves the submitted form into a Periodicity, validating
// the custom fields when the custom kind was chosen.
func (f *HabitFormModel) formPeriodicity() (models.Periodicity, error) {
	switch f.Kind {
	case "weekly":
		return models.Periodicity{Frequency: 1, Period: 7}, nil
	case "custom":
		freq, err := strconv.Atoi(f.Frequency)
		if err != nil {
			return models.Periodicity{}, models.ErrInvalidPeriodicity
		}
		period, err := strconv.Atoi(f.Period)
		if err != nil {
			return models.Periodicity{}, models.ErrInvalidPeriodicity
		}
		p := models.Periodicity{Frequency: freq, Period: period}
		if err := p.Validate(); err != nil {
			return models.Periodicity{}, err
		}
		return p, nil
	default:
		return models.Periodicity{Frequency: 1, Period: 1}, nil
	}
}
