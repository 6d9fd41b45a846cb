package timing

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Run summarises the executions recorded for one example.
type Run struct {
	Name  string
	Count int
	Total time.Duration
	Last  time.Duration
}

// Tracker records per-example run durations within a session.
type Tracker struct {
	mu      sync.Mutex
	runs    map[string]*Run
	active  string
	started time.Time
	clock   Clock
}

// NewTracker constructs a tracker with a real clock.
func NewTracker() *Tracker {
	return &Tracker{
		runs:  map[string]*Run{},
		clock: RealClock(),
	}
}

// WithClock swaps the underlying clock (primarily for tests).
func (t *Tracker) WithClock(clock Clock) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if clock == nil {
		t.clock = RealClock()
		return
	}
	t.clock = clock
}

// Start begins timing name, closing any run still open.
func (t *Tracker) Start(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.clock.Now()
	if t.active != "" {
		t.finish(now)
	}
	if name == "" {
		return
	}
	t.active = name
	t.started = now
}

// Stop closes the open run, if any.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active == "" {
		return
	}
	t.finish(t.clock.Now())
}

// Run reports the accumulated stats for name.
func (t *Tracker) Run(name string) (Run, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	run, ok := t.runs[name]
	if !ok {
		return Run{Name: name}, false
	}
	return *run, true
}

// Runs lists every recorded example sorted by name.
func (t *Tracker) Runs() []Run {
	t.mu.Lock()
	defer t.mu.Unlock()
	result := make([]Run, 0, len(t.runs))
	for _, run := range t.runs {
		result = append(result, *run)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

func (t *Tracker) finish(now time.Time) {
	elapsed := now.Sub(t.started)
	run, ok := t.runs[t.active]
	if !ok {
		run = &Run{Name: t.active}
		t.runs[t.active] = run
	}
	run.Count++
	run.Total += elapsed
	run.Last = elapsed
	t.active = ""
}

// FormatDuration renders a duration at the coarsest readable granularity.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d/time.Millisecond)
	}
	seconds := int(d / time.Second)
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	minutes := seconds / 60
	remSeconds := seconds % 60
	if minutes < 60 {
		if remSeconds == 0 {
			return fmt.Sprintf("%dm", minutes)
		}
		return fmt.Sprintf("%dm%ds", minutes, remSeconds)
	}
	hours := minutes / 60
	remMinutes := minutes % 60
	if remMinutes == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, remMinutes)
}
