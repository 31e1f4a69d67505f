package bookmark

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ogurasousui/codex-hr-dashboard/internal/core/employee"
)

const stateVersion = 1

// Snapshot は永続化されるブックマーク状態です。
type Snapshot struct {
	Entries []Entry
	Events  []Event
}

type persistedState struct {
	Version   int     `json:"version"`
	Bookmarks []Entry `json:"bookmarks"`
	Events    []Event `json:"events"`
}

// Encode は Snapshot を JSON に変換します。
func Encode(s Snapshot) ([]byte, error) {
	state := persistedState{
		Version:   stateVersion,
		Bookmarks: s.Entries,
		Events:    s.Events,
	}
	if state.Bookmarks == nil {
		state.Bookmarks = []Entry{}
	}
	if state.Events == nil {
		state.Events = []Event{}
	}
	b, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("bookmark: encode state: %w", err)
	}
	return b, nil
}

// Decode は JSON から Snapshot を復元します。
// 社員の配列だけを保存していた旧形式も受け付けます。同じ ID の重複は先勝ちで除外します。
func Decode(payload []byte) (Snapshot, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 {
		return Snapshot{}, ErrMalformedPayload
	}

	var entries []Entry
	var events []Event

	if trimmed[0] == '[' {
		var legacy []*employee.Employee
		if err := json.Unmarshal(trimmed, &legacy); err != nil {
			return Snapshot{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		for _, emp := range legacy {
			entries = append(entries, Entry{Employee: emp})
		}
	} else {
		var state persistedState
		if err := json.Unmarshal(trimmed, &state); err != nil {
			return Snapshot{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		if state.Version > stateVersion {
			return Snapshot{}, fmt.Errorf("%w: unsupported version %d", ErrMalformedPayload, state.Version)
		}
		entries = state.Bookmarks
		events = state.Events
	}

	seen := make(map[int64]bool, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Employee == nil || e.Employee.ID <= 0 || seen[e.Employee.ID] {
			continue
		}
		seen[e.Employee.ID] = true
		out = append(out, e)
	}

	return Snapshot{Entries: out, Events: events}, nil
}
