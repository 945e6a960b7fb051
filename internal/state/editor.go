package state

import (
	"github.com/tbracken/liftlog/internal/workout"
)

// Field identifies one editable column of a staged row.
type Field int

const (
	FieldName Field = iota
	FieldSets
	FieldReps
	FieldWeight
	FieldNotes

	FieldCount
)

// Row is one staged exercise edit. Fields hold raw text exactly as typed;
// coercion to typed values happens only when the editor encodes for a save.
// ID is a session-scoped monotonically increasing identifier so that adding
// and removing rows never renumbers unrelated entries.
type Row struct {
	ID     int
	Fields [FieldCount]string
}

// Editor is the detail-edit state machine: Closed until Open succeeds, then
// Open(date, staged rows) until Close. Staging operations are no-ops while
// Closed, so a save with nothing loaded is unrepresentable upstream.
type Editor struct {
	open   bool
	date   string
	rows   []Row
	nextID int
}

// Open stages one row per decoded exercise and records date as the active
// edit target. The date is reduced to its date-only key because it is used
// verbatim in the update request path.
func (e *Editor) Open(date string, exercises []workout.Exercise) {
	e.open = true
	e.date = workout.DateOnly(date)
	e.rows = nil
	for _, ex := range exercises {
		e.rows = append(e.rows, e.newRow(ex))
	}
}

// IsOpen reports whether a workout is loaded for editing.
func (e *Editor) IsOpen() bool {
	return e.open
}

// Date returns the active edit target. ok is false while Closed.
func (e *Editor) Date() (string, bool) {
	if !e.open {
		return "", false
	}
	return e.date, true
}

// AddRow appends one default-valued staged row. No-op while Closed.
func (e *Editor) AddRow() {
	if !e.open {
		return
	}
	e.rows = append(e.rows, e.newRow(workout.Exercise{Name: "New Exercise"}))
}

// RemoveLastRow removes the most recently added staged row. It returns false
// when the staged set is empty or the editor is Closed.
func (e *Editor) RemoveLastRow() bool {
	if !e.open || len(e.rows) == 0 {
		return false
	}
	e.rows = e.rows[:len(e.rows)-1]
	return true
}

// SetField stages text for one cell. Out-of-range indices are ignored.
func (e *Editor) SetField(row int, field Field, value string) {
	if !e.open || row < 0 || row >= len(e.rows) || field < 0 || field >= FieldCount {
		return
	}
	e.rows[row].Fields[field] = value
}

// Rows returns a copy of the staged rows for rendering.
func (e *Editor) Rows() []Row {
	if len(e.rows) == 0 {
		return nil
	}
	dup := make([]Row, len(e.rows))
	copy(dup, e.rows)
	return dup
}

// Len returns the number of staged rows.
func (e *Editor) Len() int {
	return len(e.rows)
}

// Exercises coerces every staged row's current text into typed exercises,
// in staging order. This is the value a save encodes.
func (e *Editor) Exercises() []workout.Exercise {
	exercises := make([]workout.Exercise, 0, len(e.rows))
	for _, row := range e.rows {
		exercises = append(exercises, workout.Exercise{
			Name:   row.Fields[FieldName],
			Sets:   workout.CoerceInt(row.Fields[FieldSets]),
			Reps:   workout.CoerceInt(row.Fields[FieldReps]),
			Weight: workout.CoerceFloat(row.Fields[FieldWeight]),
			Notes:  row.Fields[FieldNotes],
		})
	}
	return exercises
}

// Replace swaps the staged rows for the store's authoritative post-save
// data, guarding against server-side transformation. The active date keeps
// its value; fresh IDs are assigned.
func (e *Editor) Replace(exercises []workout.Exercise) {
	if !e.open {
		return
	}
	e.rows = nil
	for _, ex := range exercises {
		e.rows = append(e.rows, e.newRow(ex))
	}
}

// Close discards staged edits and clears the active date.
func (e *Editor) Close() {
	e.open = false
	e.date = ""
	e.rows = nil
}

func (e *Editor) newRow(ex workout.Exercise) Row {
	e.nextID++
	row := Row{ID: e.nextID}
	row.Fields[FieldName] = ex.Name
	row.Fields[FieldSets] = formatInt(ex.Sets)
	row.Fields[FieldReps] = formatInt(ex.Reps)
	row.Fields[FieldWeight] = formatFloat(ex.Weight)
	row.Fields[FieldNotes] = ex.Notes
	return row
}
