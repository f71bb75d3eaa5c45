package stream_events

import "time"

// ChangeEvent данные события SSE
type ChangeEvent struct {
	Collection string    `json:"collection"`
	At         time.Time `json:"at"`
}
