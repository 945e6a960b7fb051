package ui

import (
	"errors"
	"strings"

	"github.com/tbracken/liftlog/internal/api"
)

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// padRight pads a string with spaces to the given width, truncating first
// when it is too long.
func padRight(value string, width int) string {
	value = truncate(value, width)
	if len([]rune(value)) >= width {
		return value
	}
	return value + strings.Repeat(" ", width-len([]rune(value)))
}

// userMessage converts an error into a line fit for the status bar. Server
// rejections carry their own message; everything else points at the log.
func userMessage(err error) string {
	if err == nil {
		return ""
	}
	var rejection *api.RejectionError
	if errors.As(err, &rejection) && strings.TrimSpace(rejection.Message) != "" {
		return "Server error: " + rejection.Message
	}
	return "Request failed, see log for details"
}
