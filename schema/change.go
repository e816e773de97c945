package schema

import (
	"encoding/json"
	"errors"
	"fmt"
)

const ChangeChannel = "foodwatch_changes"

var ErrUnknownTable = errors.New("unknown table")

// ChangeEvent is a row-level change notification. An empty Table asks every
// listener to resynchronize, which happens after a feed reconnects.
type ChangeEvent struct {
	Table string `json:"table"`
	Op    string `json:"op"`
}

func (e ChangeEvent) IsResync() bool {
	return e.Table == ""
}

// Affects reports whether a listener of the given tables should re-fetch.
func (e ChangeEvent) Affects(tables []string) bool {
	if e.IsResync() {
		return true
	}
	for _, t := range tables {
		if t == e.Table {
			return true
		}
	}
	return false
}

func ParseChangeEvent(payload string) (ChangeEvent, error) {
	var e ChangeEvent
	if err := json.Unmarshal([]byte(payload), &e); err != nil {
		return e, fmt.Errorf("malformed change payload %q: %w", payload, err)
	}

	switch e.Table {
	case EstablishmentTable, CaseTable, AlertTable:
	default:
		return e, fmt.Errorf("%w %q in change payload", ErrUnknownTable, e.Table)
	}
	return e, nil
}

func (e ChangeEvent) Payload() string {
	b, _ := json.Marshal(e)
	return string(b)
}
