package state

import (
	"github.com/tbracken/liftlog/internal/workout"
)

// List is the client-side collection of workout records. The visible table
// is a pure projection of this collection; rows are never read back out of
// the rendering. Order is last-fetched order with optimistic creations
// appended at the end.
type List struct {
	workouts []workout.Workout
}

// Replace swaps in a freshly fetched set of workouts.
func (l *List) Replace(workouts []workout.Workout) {
	l.workouts = cloneWorkouts(workouts)
}

// Append adds a just-created workout without refetching the list.
func (l *List) Append(w workout.Workout) {
	l.workouts = append(l.workouts, w)
}

// Remove deletes the workout whose date-only key matches date. It returns
// true when exactly one row was removed.
func (l *List) Remove(date string) bool {
	key := workout.DateOnly(date)
	for i, w := range l.workouts {
		if workout.DateOnly(w.Date) == key {
			l.workouts = append(l.workouts[:i], l.workouts[i+1:]...)
			return true
		}
	}
	return false
}

// Update replaces the stored record with the same date key, if present.
func (l *List) Update(updated workout.Workout) {
	key := workout.DateOnly(updated.Date)
	for i, w := range l.workouts {
		if workout.DateOnly(w.Date) == key {
			l.workouts[i] = updated
			return
		}
	}
}

// Get returns the workout at index, or false when out of range.
func (l *List) Get(index int) (workout.Workout, bool) {
	if index < 0 || index >= len(l.workouts) {
		return workout.Workout{}, false
	}
	return l.workouts[index], true
}

// Len returns the number of workouts.
func (l *List) Len() int {
	return len(l.workouts)
}

// Workouts returns a copy of the collection for rendering.
func (l *List) Workouts() []workout.Workout {
	return cloneWorkouts(l.workouts)
}

func cloneWorkouts(workouts []workout.Workout) []workout.Workout {
	if len(workouts) == 0 {
		return nil
	}
	dup := make([]workout.Workout, len(workouts))
	copy(dup, workouts)
	return dup
}
