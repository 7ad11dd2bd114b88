package counter

import (
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// LabelPrefix is the fixed text in front of the value on the button.
const LabelPrefix = "count is"

// Counter is the in-memory value behind a single view.
// Increments are serialized so each click is applied exactly once.
type Counter struct {
	mu    sync.Mutex
	value int64
}

// Increment adds one and returns the new value.
func (c *Counter) Increment() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value++
	return c.value
}

// Value returns the current value.
func (c *Counter) Value() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Label formats a button label for n.
func Label(n int64) string {
	return LabelPrefix + " " + strconv.FormatInt(n, 10)
}

// View is one live counter view instance
type View struct {
	ID        string
	CreatedAt time.Time

	counter  Counter
	lastSeen atomic.Int64 // unix nanos
}

func (v *View) touch(now time.Time) {
	v.lastSeen.Store(now.UnixNano())
}

func (v *View) idleSince() time.Time {
	return time.Unix(0, v.lastSeen.Load())
}

func (v *View) state(count int64) State {
	return State{ID: v.ID, Count: count, Label: Label(count)}
}

// State is a point-in-time snapshot of a view
type State struct {
	ID    string `json:"id"`
	Count int64  `json:"count"`
	Label string `json:"label"`
}
