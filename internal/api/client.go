package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tbracken/liftlog/internal/workout"
)

// Store defines the operations the UI needs from the remote workout store.
// This interface is implemented by *Client and can be used for testing.
type Store interface {
	List(ctx context.Context) ([]workout.Workout, error)
	Get(ctx context.Context, date string) (workout.Workout, error)
	Create(ctx context.Context, w workout.Workout) error
	Delete(ctx context.Context, date string) error
	UpdateData(ctx context.Context, date, data string) (workout.Workout, error)
}

// Ensure Client implements Store at compile time.
var _ Store = (*Client)(nil)

// Client talks to the workout store HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultServerBind = "127.0.0.1:6942"
	defaultUserAgent  = "liftlog/0.1"
	requestTimeout    = 10 * time.Second
)

// envelope is the wrapper every store response uses to signal outcome.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// RejectionError reports a well-formed response in which the store refused
// the operation, either via success=false or a non-2xx status. Message is
// safe to surface to the user as-is.
type RejectionError struct {
	Status  int
	Message string
}

func (e *RejectionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("store rejected request with status %d", e.Status)
	}
	return e.Message
}

// NewClient builds a Client using the provided serverBind host:port value.
func NewClient(serverBind string) (*Client, error) {
	base, err := parseBaseURL(serverBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// List retrieves every workout in the store.
func (c *Client) List(ctx context.Context) ([]workout.Workout, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var workouts []workout.Workout
	if err := c.do(ctx, http.MethodGet, "/allworkouts", nil, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// Get retrieves a single workout by its date key.
func (c *Client) Get(ctx context.Context, date string) (workout.Workout, error) {
	if c == nil {
		return workout.Workout{}, fmt.Errorf("client is nil")
	}
	var w workout.Workout
	if err := c.do(ctx, http.MethodGet, "/workout/"+pathSegment(date), nil, &w); err != nil {
		return workout.Workout{}, err
	}
	return w, nil
}

// Create adds a new workout record. The caller supplies the full record;
// fresh workouts carry the encoded empty exercise mapping as data.
func (c *Client) Create(ctx context.Context, w workout.Workout) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodPost, "/addworkout", w, nil)
}

// Delete removes the workout for the given date. The date must already be
// the date-only key; any time-of-day portion is stripped defensively.
func (c *Client) Delete(ctx context.Context, date string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodDelete, "/removeworkout/"+pathSegment(date), nil, nil)
}

// UpdateData replaces a workout's exercise blob and returns the store's
// authoritative updated record.
func (c *Client) UpdateData(ctx context.Context, date, data string) (workout.Workout, error) {
	if c == nil {
		return workout.Workout{}, fmt.Errorf("client is nil")
	}
	body := struct {
		Data string `json:"data"`
	}{Data: data}
	var updated workout.Workout
	if err := c.do(ctx, http.MethodPatch, "/updateworkout/"+pathSegment(date), body, &updated); err != nil {
		return workout.Workout{}, err
	}
	return updated, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 400 {
			return &RejectionError{Status: resp.StatusCode}
		}
		return fmt.Errorf("decode response: %w", err)
	}
	if !env.Success || resp.StatusCode >= 400 {
		return &RejectionError{Status: resp.StatusCode, Message: env.Error}
	}
	if dest == nil {
		return nil
	}
	if len(env.Data) == 0 {
		return fmt.Errorf("response envelope has no data")
	}
	if err := json.Unmarshal(env.Data, dest); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

// pathSegment percent-encodes a date for use in a request path.
func pathSegment(date string) string {
	return url.PathEscape(workout.DateOnly(date))
}

func parseBaseURL(serverBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(serverBind)
	if trimmed == "" {
		trimmed = defaultServerBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse server_url %q: %w", serverBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
