// Package app provides the composition root for the liftlog client.
//
// Run wires together configuration, logging, preferences, the API client,
// and the UI:
//
//  1. Load configuration from ~/.config/liftlog/config.toml
//  2. Route logs to the configured log file (the terminal belongs to the UI)
//  3. Load user preferences (theme)
//  4. Initialize the HTTP client for the workout server
//  5. Start the TUI and block until the user exits or the context cancels
//
// There is no background machinery here: every server interaction is
// initiated by the UI in response to user input.
//
// Fatal errors (returned from Run): unreadable configuration, invalid server
// address. Everything after startup is recoverable and surfaces through the
// UI status line and the log file.
package app
