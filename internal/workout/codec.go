package workout

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// MalformedDataError reports a workout data blob that is not valid JSON.
// Callers are expected to abort the view action that needed the blob and
// leave their current state untouched.
type MalformedDataError struct {
	Err error
}

func (e *MalformedDataError) Error() string {
	return fmt.Sprintf("malformed workout data: %v", e.Err)
}

func (e *MalformedDataError) Unwrap() error {
	return e.Err
}

// DecodeExercises parses the opaque data blob into an ordered exercise list.
// The blob is contractually a JSON mapping of key -> exercise; keys of the
// form exercise_<n> sort numerically so row order survives a save/reopen
// round trip. A blob that is not valid JSON yields *MalformedDataError.
func DecodeExercises(raw string) ([]Exercise, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}

	var mapping map[string]Exercise
	if err := json.Unmarshal([]byte(trimmed), &mapping); err != nil {
		return nil, &MalformedDataError{Err: err}
	}
	if len(mapping) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(mapping))
	for key := range mapping {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return lessExerciseKey(keys[i], keys[j]) })

	rows := make([]Exercise, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, mapping[key])
	}
	return rows, nil
}

// EncodeExercises serializes rows into the wire blob, assigning each row a
// synthetic exercise_<index> key. Keys are stable only within one encode
// call; staged-row identity lives in the editor, not here.
func EncodeExercises(rows []Exercise) (string, error) {
	mapping := make(map[string]Exercise, len(rows))
	for i, row := range rows {
		mapping[fmt.Sprintf("exercise_%d", i)] = row
	}
	encoded, err := json.Marshal(mapping)
	if err != nil {
		return "", fmt.Errorf("encode exercises: %w", err)
	}
	return string(encoded), nil
}

// lessExerciseKey orders exercise_<n> keys by n and everything else
// lexically, with numbered keys before stray ones.
func lessExerciseKey(a, b string) bool {
	na, oka := exerciseIndex(a)
	nb, okb := exerciseIndex(b)
	if oka && okb {
		if na != nb {
			return na < nb
		}
		return a < b
	}
	if oka != okb {
		return oka
	}
	return a < b
}

func exerciseIndex(key string) (int, bool) {
	const prefix = "exercise_"
	if !strings.HasPrefix(key, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(key[len(prefix):])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
