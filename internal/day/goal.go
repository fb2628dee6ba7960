package day

import "strings"

// Goal is a free-text objective for the day.
type Goal struct {
	ID        ID     `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// GoalList holds the active day's goals in insertion order.
type GoalList struct {
	goals []Goal
}

// Load replaces the list contents.
func (l *GoalList) Load(goals []Goal) {
	l.goals = append([]Goal(nil), goals...)
}

// Reset empties the list.
func (l *GoalList) Reset() {
	l.goals = nil
}

// All returns a copy of the goals.
func (l *GoalList) All() []Goal {
	result := make([]Goal, len(l.goals))
	copy(result, l.goals)
	return result
}

// Len returns the number of goals.
func (l *GoalList) Len() int {
	return len(l.goals)
}

// Add appends a goal. Blank text is rejected with ErrEmptyGoal.
func (l *GoalList) Add(text string) (Goal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Goal{}, ErrEmptyGoal
	}
	g := Goal{ID: NewID(), Text: text}
	l.goals = append(l.goals, g)
	return g, nil
}

// Toggle flips a goal's completion. Returns false if the id is unknown.
func (l *GoalList) Toggle(id ID) bool {
	for i := range l.goals {
		if l.goals[i].ID == id {
			l.goals[i].Completed = !l.goals[i].Completed
			return true
		}
	}
	return false
}

// Remove deletes a goal by id. Returns false if the id is unknown.
func (l *GoalList) Remove(id ID) bool {
	for i, g := range l.goals {
		if g.ID == id {
			l.goals = append(l.goals[:i], l.goals[i+1:]...)
			return true
		}
	}
	return false
}

// Find resolves an id or a unique id prefix, the way the CLI accepts ids.
func (l *GoalList) Find(ref string) (Goal, bool) {
	return findByRef(l.goals, ref, func(g Goal) ID { return g.ID })
}

func findByRef[T any](items []T, ref string, id func(T) ID) (T, bool) {
	var zero T
	if ref == "" {
		return zero, false
	}
	var match T
	found := 0
	for _, it := range items {
		got := id(it)
		if string(got) == ref {
			return it, true
		}
		if strings.HasPrefix(string(got), ref) {
			match = it
			found++
		}
	}
	if found == 1 {
		return match, true
	}
	return zero, false
}
