// Package workout defines the workout data model shared across liftlog and
// the codec for the nested exercise blob.
//
// # Data Model
//
// A Workout mirrors a record in the remote store:
//
//   - Date: calendar date, the record's unique key (immutable after creation)
//   - Type: free-text session label ("Push", "Pull", "Legs", ...)
//   - Data: opaque string, contractually a JSON-encoded mapping of
//     key -> Exercise; new workouts start as the encoded empty mapping
//
// The Data field is always a JSON-encoded string at the wire boundary, never
// a nested object. This package owns the only code that looks inside it.
//
// # Exercise Blob Codec
//
// DecodeExercises and EncodeExercises round-trip the blob:
//
//	rows, err := workout.DecodeExercises(w.Data)   // mapping -> ordered rows
//	blob, err := workout.EncodeExercises(rows)     // rows -> mapping
//
// Encode assigns synthetic exercise_<index> keys; decode sorts those keys
// numerically so exercise_10 follows exercise_9 rather than exercise_1.
// decode(encode(x)) preserves every field's semantic value, though key order
// inside the JSON text is not guaranteed.
//
// A blob that is not valid JSON produces *MalformedDataError. The error is
// a signal, not a panic: callers abort the view action that wanted the rows
// and keep their existing state.
//
// # Field Coercion
//
// Exercise numeric fields tolerate sloppy input, both from the store (numbers
// serialized as strings) and from staged edits ("60kg", "12 reps"):
//
//   - CoerceInt("3") = 3, CoerceInt("abc") = 0
//   - CoerceFloat("62.5kg") = 62.5, CoerceFloat("-5") = 0
//
// Unparsable or negative values default to zero; notes default to empty.
//
// # Date Rules
//
// ValidDate enforces the strict YYYY-MM-DD key format. DateOnly strips a
// time-of-day suffix before a stored value is used as a key. DisplayDate
// renders a stored value at its own UTC midnight so the visible date never
// shifts by one in western timezones.
package workout
