package models

import "time"

// CounterView represents a counter view for template rendering
type CounterView struct {
	ID    string
	Count int64
	Label string
	// HeadingHTML is trusted markup rendered at startup.
	HeadingHTML string
	// Heartbeat keeps a displayed view alive. Zero disables it.
	Heartbeat time.Duration
}
