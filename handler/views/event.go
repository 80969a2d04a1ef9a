package views

import (
	"encoding/json"

	"fraxlend/core"
)

// Event event view
type Event struct {
	Sequence  uint64          `json:"sequence"`
	TraceID   string          `json:"trace_id"`
	Type      core.EventType  `json:"type"`
	Timestamp int64           `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

// EventViews render events in order
func EventViews(events []*core.Event) []Event {
	views := make([]Event, 0, len(events))
	for _, e := range events {
		views = append(views, Event{
			Sequence:  e.Sequence,
			TraceID:   e.TraceID,
			Type:      e.Type,
			Timestamp: e.Timestamp,
			Data:      json.RawMessage(e.Data),
		})
	}

	return views
}
