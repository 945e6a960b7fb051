// Package state owns the client-side collections the UI projects from.
//
// # Overview
//
// Between network round trips there is no client cache other than these two
// collections:
//
//   - List: the ordered workout records, one entry per store record. The
//     rendered table is regenerated from it on every frame, so stale row
//     references cannot survive a reload.
//   - Editor: the detail-edit state machine for at most one workout at a
//     time. It is Closed until Open succeeds with decoded exercise rows and
//     an active date, and every staging operation is a no-op while Closed.
//
// # Staged Row Identity
//
// Staged rows carry a session-scoped monotonically increasing ID assigned at
// row creation. The wire-format exercise_<n> keys are synthesized only at
// encode time, so adding or removing rows mid-edit never renumbers the
// identity of unrelated entries.
//
// # Ownership
//
// Accessors return copies (Rows, Workouts) so renderings never alias the
// canonical slices. All mutation happens on the Bubble Tea update thread;
// no locking is needed.
package state
