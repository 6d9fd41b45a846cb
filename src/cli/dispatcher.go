package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"designpatterns/src/events"
	"designpatterns/src/output"
	"designpatterns/src/timing"
)

const helpText = `commands:
  list              show every example
  run <name>|all    run one example, or all of them in order
  stats             show how long each example took this session
  help              show this text
  exit              leave`

// Dispatcher interprets interactive commands.
type Dispatcher struct {
	runner  *Runner
	console *Console
	bus     *events.Dispatcher

	// ConfirmAll asks before "run all"; set when example pauses are real.
	ConfirmAll bool
}

// NewDispatcher constructs a dispatcher. Each completed command is published on
// the command category of bus.
func NewDispatcher(runner *Runner, console *Console, bus *events.Dispatcher) *Dispatcher {
	return &Dispatcher{
		runner:  runner,
		console: console,
		bus:     bus,
	}
}

// Run processes interactive commands until exit or end of input.
func (d *Dispatcher) Run() {
	for {
		line, err := d.console.Prompt()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				d.console.Printf("read failed: %v", err)
			}
			return
		}
		exit, err := d.execute(line)
		if err != nil {
			d.console.Printf("error: %v", err)
			continue
		}
		if exit {
			return
		}
	}
}

// Execute runs a single command.
func (d *Dispatcher) Execute(raw string) error {
	_, err := d.execute(raw)
	return err
}

func (d *Dispatcher) execute(raw string) (bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, nil
	}
	tokens, err := tokenize(raw)
	if err != nil {
		return false, err
	}
	if len(tokens) == 0 {
		return false, nil
	}
	cmd := strings.ToLower(tokens[0])
	args := tokens[1:]

	switch cmd {
	case "list", "ls":
		if len(args) != 0 {
			return false, errors.New("usage: list")
		}
		if err := output.Write(d.console.Writer(), output.FormatTable, d.runner.Registry().List()); err != nil {
			return false, err
		}
	case "run":
		if len(args) != 1 {
			return false, errors.New("usage: run <name>|all")
		}
		if strings.EqualFold(args[0], "all") {
			if d.ConfirmAll {
				ok, err := d.console.Confirm(fmt.Sprintf("run all %d examples?", len(d.runner.Registry().Names())))
				if err != nil {
					return false, err
				}
				if !ok {
					return false, nil
				}
			}
			if err := d.runner.RunAll(d.console.Writer()); err != nil {
				return false, err
			}
		} else if err := d.runner.Run(args[0], d.console.Writer()); err != nil {
			return false, err
		}
	case "stats":
		d.printStats()
	case "help", "?":
		d.console.Println(helpText)
	case "exit", "quit":
		d.publish(raw)
		return true, nil
	default:
		return false, d.unknownCommand(cmd)
	}

	d.publish(raw)
	return false, nil
}

func (d *Dispatcher) publish(raw string) {
	if d.bus == nil {
		return
	}
	d.bus.Publish(events.CategoryCommand, raw)
}

func (d *Dispatcher) unknownCommand(cmd string) error {
	if _, err := d.runner.Registry().Lookup(cmd); err == nil {
		return fmt.Errorf("unknown command: %s (try: run %s)", cmd, cmd)
	}
	return fmt.Errorf("unknown command: %s (type help for a list)", cmd)
}

func (d *Dispatcher) printStats() {
	runs := d.runner.Tracker().Runs()
	if len(runs) == 0 {
		d.console.Println("no examples run yet")
		return
	}
	for _, run := range runs {
		d.console.Printf("%-22s runs=%d last=%s total=%s",
			run.Name, run.Count, timing.FormatDuration(run.Last), timing.FormatDuration(run.Total))
	}
}

// tokenize splits a command line on blanks. Single or double quotes group
// words, and an empty quoted pair yields an empty argument.
func tokenize(line string) ([]string, error) {
	var (
		tokens  []string
		current strings.Builder
		quote   rune
		pending bool
	)
	flush := func() {
		if pending {
			tokens = append(tokens, current.String())
			current.Reset()
			pending = false
		}
	}
	for _, r := range line {
		switch {
		case quote != 0 && r == quote:
			quote = 0
		case quote != 0:
			current.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			pending = true
		case unicode.IsSpace(r):
			flush()
		default:
			current.WriteRune(r)
			pending = true
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("missing closing %c", quote)
	}
	flush()
	return tokens, nil
}
