package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/tbracken/liftlog/internal/api"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"shorter_than_limit", "bench", 10, "bench"},
		{"exactly_limit", "bench", 5, "bench"},
		{"truncated", "benchpress", 8, "bench..."},
		{"tiny_limit", "bench", 2, "be"},
		{"zero_limit", "bench", 0, "bench"},
		{"trims_whitespace", "  bench  ", 10, "bench"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.limit); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Fatalf("padRight = %q, want %q", got, "ab   ")
	}
	if got := padRight("abcdefgh", 5); len([]rune(got)) != 5 {
		t.Fatalf("padRight overlong = %q (%d runes), want 5", got, len([]rune(got)))
	}
}

func TestUserMessage(t *testing.T) {
	if got := userMessage(nil); got != "" {
		t.Fatalf("userMessage(nil) = %q, want empty", got)
	}

	rejection := &api.RejectionError{Status: 400, Message: "workout already exists"}
	if got := userMessage(rejection); got != "Server error: workout already exists" {
		t.Fatalf("userMessage(rejection) = %q", got)
	}

	// Wrapped rejections still surface their message.
	wrapped := errors.Join(errors.New("request"), rejection)
	if got := userMessage(wrapped); !strings.Contains(got, "workout already exists") {
		t.Fatalf("userMessage(wrapped) = %q", got)
	}

	transport := errors.New("dial tcp: connection refused")
	if got := userMessage(transport); got != "Request failed, see log for details" {
		t.Fatalf("userMessage(transport) = %q", got)
	}
}
