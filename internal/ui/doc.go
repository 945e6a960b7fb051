// Package ui provides the terminal user interface for liftlog.
//
// The UI is built on Bubble Tea's Model/Update/View loop. The root Model owns
// the workout listing and a single optional Modal; the rendered table is a
// pure projection of list state and is rebuilt every frame.
//
// # Views
//
//   - List view: table of all workouts (date and type), one selected row
//   - Editor modal: staged exercise rows for one workout, saved explicitly
//   - Create modal: date and type form for a new workout
//   - Confirm modal: delete confirmation for the selected workout
//   - Help overlay: keyboard reference
//
// # Event Flow
//
// Every server interaction is a tea.Cmd that resolves to a result message.
// Nothing polls in the background: the listing is fetched at startup, on
// manual refresh, and after a successful save. Create and delete mutate the
// listing locally from their results, so one action changes exactly one row.
//
// While a request is in flight its initiating surface is guarded (the list
// for refresh and open, the modal for create, delete and save), so the same
// action cannot be issued twice.
package ui
