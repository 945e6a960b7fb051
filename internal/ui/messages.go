package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tbracken/liftlog/internal/api"
	"github.com/tbracken/liftlog/internal/workout"
)

// workoutsLoadedMsg carries a fresh workout listing from the server.
type workoutsLoadedMsg []workout.Workout

// listErrorMsg reports a failed listing fetch.
type listErrorMsg struct {
	err error
}

// workoutFetchedMsg carries a single fetched workout, requested to open the
// editor.
type workoutFetchedMsg workout.Workout

// fetchErrorMsg reports a failed single-workout fetch.
type fetchErrorMsg struct {
	date string
	err  error
}

// createResultMsg reports the outcome of a create request.
type createResultMsg struct {
	created workout.Workout
	err     error
}

// deleteResultMsg reports the outcome of a delete request.
type deleteResultMsg struct {
	date string
	err  error
}

// saveResultMsg reports the outcome of an exercise-data save. It is routed to
// the open editor modal, which stays open on failure.
type saveResultMsg struct {
	updated workout.Workout
	err     error
}

// editorSavedMsg is emitted by the editor modal after a successful save so
// the root model can refresh the listing.
type editorSavedMsg struct {
	date string
}

func loadWorkoutsCmd(ctx context.Context, client *api.Client) tea.Cmd {
	return func() tea.Msg {
		workouts, err := client.List(ctx)
		if err != nil {
			return listErrorMsg{err: err}
		}
		return workoutsLoadedMsg(workouts)
	}
}

func fetchWorkoutCmd(ctx context.Context, client *api.Client, date string) tea.Cmd {
	return func() tea.Msg {
		w, err := client.Get(ctx, date)
		if err != nil {
			return fetchErrorMsg{date: date, err: err}
		}
		return workoutFetchedMsg(w)
	}
}

func createWorkoutCmd(ctx context.Context, client *api.Client, w workout.Workout) tea.Cmd {
	return func() tea.Msg {
		if err := client.Create(ctx, w); err != nil {
			return createResultMsg{created: w, err: err}
		}
		return createResultMsg{created: w}
	}
}

func deleteWorkoutCmd(ctx context.Context, client *api.Client, date string) tea.Cmd {
	return func() tea.Msg {
		return deleteResultMsg{date: date, err: client.Delete(ctx, date)}
	}
}

func saveWorkoutCmd(ctx context.Context, client *api.Client, date, data string) tea.Cmd {
	return func() tea.Msg {
		updated, err := client.UpdateData(ctx, date, data)
		if err != nil {
			return saveResultMsg{err: err}
		}
		return saveResultMsg{updated: updated}
	}
}
