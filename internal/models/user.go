package models

import "fmt"

// User is the owner record: a single person and the habits they track.
// Habits are owned exclusively; deleting the user deletes all of them.
type User struct {
	ID     int      `json:"user_id"`
	Name   string   `json:"name"`
	Habits []*Habit `json:"habits"`
}

// NewUser creates an owner record with no habits.
func NewUser(name string) *User {
	return &User{
		Name:   name,
		Habits: []*Habit{},
	}
}

// AddHabit appends the habit to the user's collection, preserving
// insertion order.
func (u *User) AddHabit(h *Habit) {
	u.Habits = append(u.Habits, h)
}

// FindHabit returns the habit with the given ID, or ErrHabitNotFound.
func (u *User) FindHabit(id int) (*Habit, error) {
	for _, h := range u.Habits {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrHabitNotFound, id)
}

// DeleteHabit removes the habit with the given ID from the collection.
// The ID is never reused afterwards.
func (u *User) DeleteHabit(id int) error {
	for i, h := range u.Habits {
		if h.ID == id {
			u.Habits = append(u.Habits[:i], u.Habits[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: id %d", ErrHabitNotFound, id)
}

// MaxHabitID returns the highest habit ID in the collection, or -1 if the
// collection is empty. Used to re-seed the ID allocator after a reload.
func (u *User) MaxHabitID() int {
	max := -1
	for _, h := range u.Habits {
		if h.ID > max {
			max = h.ID
		}
	}
	return max
}
