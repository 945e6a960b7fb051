package workout

import (
	"encoding/json"
	"strings"
	"time"
)

// EmptyData is the blob a freshly created workout carries.
const EmptyData = "{}"

// Workout mirrors a record in the remote store. Data is the opaque
// JSON-encoded exercise blob; it always travels as a string on the wire.
type Workout struct {
	Date string `json:"date"`
	Type string `json:"wtype"`
	Data string `json:"data"`
}

// DisplayDate renders the workout date as a calendar date at its own UTC
// midnight, so a stored "2025-07-12T00:00:00Z" never shifts to the 11th in
// a western timezone.
func (w Workout) DisplayDate() string {
	return DisplayDate(w.Date)
}

// Exercise is one logged movement inside a workout's data blob.
type Exercise struct {
	Name   string  `json:"ex_name"`
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
	Notes  string  `json:"notes"`
}

// UnmarshalJSON tolerates numeric fields arriving as either JSON numbers or
// numeric strings; anything unparsable defaults to zero rather than failing
// the whole decode.
func (e *Exercise) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name   string          `json:"ex_name"`
		Sets   json.RawMessage `json:"sets"`
		Reps   json.RawMessage `json:"reps"`
		Weight json.RawMessage `json:"weight"`
		Notes  string          `json:"notes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	e.Name = raw.Name
	e.Notes = raw.Notes
	e.Sets = CoerceInt(rawScalar(raw.Sets))
	e.Reps = CoerceInt(rawScalar(raw.Reps))
	e.Weight = CoerceFloat(rawScalar(raw.Weight))
	return nil
}

// rawScalar returns the textual content of a JSON scalar, unquoting strings.
func rawScalar(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	if strings.HasPrefix(s, `"`) {
		var unquoted string
		if err := json.Unmarshal(raw, &unquoted); err == nil {
			return unquoted
		}
	}
	return s
}

// CoerceInt converts staged field text to a non-negative integer. A trailing
// unit suffix is ignored ("12 reps" -> 12); non-numeric text and negatives
// become 0.
func CoerceInt(value string) int {
	f := CoerceFloat(value)
	return int(f)
}

// CoerceFloat converts staged field text to a non-negative decimal, keeping
// fractional precision ("12.5kg" -> 12.5). Non-numeric text becomes 0.
func CoerceFloat(value string) float64 {
	trimmed := strings.TrimSpace(value)
	num := numericPrefix(trimmed)
	if num == "" {
		return 0
	}
	f, err := parseDecimal(num)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

func numericPrefix(value string) string {
	end := 0
	seenDot := false
	for end < len(value) {
		c := value[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}
	return strings.TrimSuffix(value[:end], ".")
}

func parseDecimal(value string) (float64, error) {
	var f float64
	if err := json.Unmarshal([]byte(value), &f); err != nil {
		return 0, err
	}
	return f, nil
}

// DisplayDate normalizes a stored date value for display. Timestamps are
// interpreted in UTC before truncating to the calendar date.
func DisplayDate(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.UTC().Format(time.DateOnly)
		}
	}
	return DateOnly(trimmed)
}
