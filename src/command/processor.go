package command

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"designpatterns/src/timing"
)

// Command is a unit of work queued on a Processor.
type Command interface {
	Execute()
}

// Processor queues commands and runs them one after another.
type Processor struct {
	queue []Command
}

// NewProcessor builds an empty processor.
func NewProcessor() *Processor {
	return &Processor{}
}

// Add queues cmd and returns p for chaining.
func (p *Processor) Add(cmd Command) *Processor {
	if cmd != nil {
		p.queue = append(p.queue, cmd)
	}
	return p
}

// Process executes every queued command in order, then clears the queue.
func (p *Processor) Process() *Processor {
	for _, cmd := range p.queue {
		cmd.Execute()
	}
	p.queue = nil
	return p
}

// Pending reports how many commands are waiting.
func (p *Processor) Pending() int {
	return len(p.queue)
}

// OrderStep is one stage of the order lifecycle.
type OrderStep struct {
	OrderID int
	Before  string
	After   string
	Pause   time.Duration

	out   io.Writer
	clock timing.Clock
}

// Execute prints the stage banner, waits, and reports completion.
func (s *OrderStep) Execute() {
	if s.Before != "" {
		fmt.Fprintln(s.out, s.Before)
	}
	if s.Pause > 0 {
		s.clock.Sleep(s.Pause)
	}
	fmt.Fprintln(s.out, s.After)
}

// OrderSteps returns the register, approve, prepare, ship and close commands
// for orderID, writing to out and pausing through clock.
func OrderSteps(orderID int, out io.Writer, clock timing.Clock) []Command {
	step := func(before, after string, pause time.Duration) Command {
		return &OrderStep{OrderID: orderID, Before: before, After: after, Pause: pause, out: out, clock: clock}
	}
	return []Command{
		step(fmt.Sprintf("Registering order %d...", orderID), fmt.Sprintf("Registering order %d finished!\n", orderID), 1500*time.Millisecond),
		step("Waiting for approval...", fmt.Sprintf("Order %d approved!\n", orderID), 1700*time.Millisecond),
		step("Waiting for preparation...", fmt.Sprintf("Order %d preparation process finished!\n", orderID), 3*time.Second),
		step("Starting shipping process...", fmt.Sprintf("Order %d shipped to destination.\n", orderID), 5*time.Second),
		step("", fmt.Sprintf("Order %d closed!", orderID), 0),
	}
}

// Demo runs one random order through every stage.
func Demo(w io.Writer, clock timing.Clock, rng *rand.Rand) error {
	orderID := 1000 + rng.IntN(8999)
	processor := NewProcessor()
	for _, cmd := range OrderSteps(orderID, w, clock) {
		processor.Add(cmd)
	}
	processor.Process()
	return nil
}
