// Package api provides the HTTP client for the remote workout store.
//
// # Overview
//
// The store exposes a small REST-like API in which every response is wrapped
// in an outcome envelope:
//
//	{"success": true, "data": ...}
//	{"success": false, "error": "..."}
//
// The client decodes the envelope once, in one place, and hands callers
// either typed data or a typed error.
//
// # Endpoints
//
//   - GET    /allworkouts           list all workouts
//   - GET    /workout/{date}        fetch one workout
//   - POST   /addworkout            create a workout {date, wtype, data}
//   - DELETE /removeworkout/{date}  delete by date key
//   - PATCH  /updateworkout/{date}  replace the exercise blob {data}
//
// Date path segments are percent-encoded and stripped to the date-only key
// before use. The data field always travels as a JSON-encoded string, never
// a nested object.
//
// # Error Handling
//
// Two failure classes come out of every call:
//
//   - *RejectionError: the store answered and said no (success=false or a
//     non-2xx status). Its Message is the server-provided text and is safe
//     to show to the user.
//   - plain wrapped errors: transport failures, cancelled contexts, or
//     malformed envelopes. Callers show a generic failure message for these.
//
// The client never retries and never de-duplicates; the UI layer guards
// against duplicate in-flight requests per action.
//
// # Request Handling
//
// All requests use context for cancellation, set Accept and User-Agent
// headers, carry an X-Request-ID (uuid) for log correlation, and share a
// 10-second timeout via the underlying http.Client. The Client is safe for
// concurrent use.
package api
