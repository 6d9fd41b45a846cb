package singleton

import (
	"fmt"
	"io"
	"sync"
)

// Reference is the object handed out as a process-wide instance.
type Reference struct {
	// id keeps the struct non-zero-sized so distinct allocations get distinct addresses.
	id int
}

var (
	once     sync.Once
	instance *Reference
	created  int
	createMu sync.Mutex
)

// New allocates a fresh reference, bypassing the shared instance.
func New() *Reference {
	createMu.Lock()
	defer createMu.Unlock()
	created++
	return &Reference{id: created}
}

// Instance returns the shared reference, creating it on first use.
func Instance() *Reference {
	once.Do(func() {
		instance = New()
	})
	return instance
}

// Demo compares two Instance calls with two direct allocations.
func Demo(w io.Writer) error {
	first, second := Instance(), Instance()
	if _, err := fmt.Fprintln(w, first == second); err != nil {
		return err
	}
	a, b := New(), New()
	_, err := fmt.Fprintln(w, a == b)
	return err
}
