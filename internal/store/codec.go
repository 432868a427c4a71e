package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tidwall/gjson"
)

// StorageKey is the key the serialized state is stored under.
const StorageKey = "intel_summit_checkin_state_v1"

// maxCount bounds coerced counters; anything larger is treated as corrupt.
const maxCount = math.MaxInt32

// ErrMalformedState describes saved data that is not a JSON object at all.
var ErrMalformedState = errors.New("malformed saved state")

// persistedState is the on-disk shape. Field names are part of the format
// and must not change.
type persistedState struct {
	TotalAttendees int                 `json:"totalAttendees"`
	TeamCounts     map[Team]int        `json:"teamCounts"`
	AttendeeList   []persistedAttendee `json:"attendeeList"`
}

type persistedAttendee struct {
	Name      string `json:"name"`
	TeamValue Team   `json:"teamValue"`
	TeamLabel string `json:"teamLabel"`
}

// Serialize encodes the state in the persisted JSON format.
//
// teamCounts always carries the three known teams, plus any unknown team
// value that has been checked in. teamLabel is written for readers of the
// raw data and ignored by [Deserialize].
func (s *State) Serialize() ([]byte, error) {
	ps := persistedState{
		TotalAttendees: s.TotalAttendees,
		TeamCounts:     make(map[Team]int, len(s.Counts)),
		AttendeeList:   make([]persistedAttendee, len(s.CheckIns)),
	}
	for _, t := range knownTeams {
		ps.TeamCounts[t] = 0
	}
	for t, n := range s.Counts {
		ps.TeamCounts[t] = n
	}
	for i, a := range s.CheckIns {
		ps.AttendeeList[i] = persistedAttendee{
			Name:      a.Name,
			TeamValue: a.Team,
			TeamLabel: a.Team.Label(),
		}
	}

	data, err := json.Marshal(ps)
	if err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}
	return data, nil
}

//go:embed attendee.schema.json
var attendeeSchemaData []byte

var attendeeSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("attendee.schema.json", bytes.NewReader(attendeeSchemaData)); err != nil {
		return nil, fmt.Errorf("failed to add attendee schema resource: %w", err)
	}
	schema, err := compiler.Compile("attendee.schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile attendee schema: %w", err)
	}
	return schema, nil
})

// Deserialize decodes persisted state. It never fails.
//
// Empty input means nothing was saved and yields the empty state silently.
// Input that is not a JSON object is logged and also yields the empty state.
// Otherwise each field is decoded on its own, so one corrupt field does not
// discard the others:
//
//   - totalAttendees and each teamCounts value become non-negative integers;
//     numbers and numeric strings are accepted and truncated, anything else
//     (missing, negative, non-numeric) becomes 0
//   - teamCounts keys outside the known set are kept only when positive
//   - attendeeList is used only when it is an array; entries that fail the
//     attendee schema are dropped and the rest keep their order
//
// The fields are not reconciled against each other. A state whose counters
// disagree is logged as a warning and returned as decoded.
func Deserialize(raw []byte, logger *slog.Logger) *State {
	if logger == nil {
		logger = slog.Default()
	}
	st := NewState()

	if len(bytes.TrimSpace(raw)) == 0 {
		return st
	}
	if !gjson.ValidBytes(raw) {
		logger.Error("failed to parse saved state", "error", fmt.Errorf("%w: invalid JSON", ErrMalformedState))
		return st
	}

	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		logger.Error("failed to parse saved state",
			"error", fmt.Errorf("%w: top level is %s, want object", ErrMalformedState, doc.Type),
		)
		return st
	}

	st.TotalAttendees = coerceCount(doc.Get("totalAttendees"))

	if counts := doc.Get("teamCounts"); counts.IsObject() {
		counts.ForEach(func(key, value gjson.Result) bool {
			team := Team(key.String())
			n := coerceCount(value)
			if team.Known() || (team != "" && n > 0) {
				st.Counts[team] = n
			}
			return true
		})
	}

	list := doc.Get("attendeeList")
	if !list.IsArray() {
		if list.Exists() {
			logger.Warn("saved attendee list is not a list, resetting", "type", list.Type.String())
		}
		return st
	}

	idx := -1
	list.ForEach(func(_, entry gjson.Result) bool {
		idx++
		if err := validateAttendee(entry); err != nil {
			logger.Warn("dropping invalid saved check-in", "index", idx, "error", err)
			return true
		}
		st.CheckIns = append(st.CheckIns, Attendee{
			Name: entry.Get("name").String(),
			Team: Team(entry.Get("teamValue").String()),
		})
		return true
	})

	if !st.Consistent() {
		logger.Warn("saved state counters disagree",
			"total_attendees", st.TotalAttendees,
			"check_ins", len(st.CheckIns),
		)
	}

	return st
}

// validateAttendee checks one attendeeList entry against the embedded schema.
func validateAttendee(entry gjson.Result) error {
	schema, err := attendeeSchema()
	if err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal([]byte(entry.Raw), &v); err != nil {
		return fmt.Errorf("failed to decode entry: %w", err)
	}
	return schema.Validate(v)
}

// coerceCount turns a JSON value into a non-negative integer, or 0.
func coerceCount(r gjson.Result) int {
	var f float64
	switch r.Type {
	case gjson.Number:
		f = r.Num
	case gjson.String:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}

	if math.IsNaN(f) || f < 0 || f > maxCount {
		return 0
	}
	return int(f)
}
