package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const defaultPrompt = "> "

// Console is the line-oriented terminal the interactive prompt runs on.
type Console struct {
	reader *bufio.Reader
	writer io.Writer
	prompt string
}

// NewConsole reads commands from in and writes everything else to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		writer: out,
		prompt: defaultPrompt,
	}
}

// SetPrompt replaces the text shown before each command.
func (c *Console) SetPrompt(prompt string) {
	c.prompt = prompt
}

// Writer exposes the output stream so examples can print directly.
func (c *Console) Writer() io.Writer {
	return c.writer
}

// Prompt shows the prompt and reads the next command line.
func (c *Console) Prompt() (string, error) {
	fmt.Fprint(c.writer, c.prompt)
	return c.ReadLine()
}

// ReadLine returns the next line with surrounding whitespace removed. A final
// line without a newline is still returned; io.EOF follows on the next call.
func (c *Console) ReadLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Println writes text followed by a newline.
func (c *Console) Println(text string) {
	fmt.Fprintln(c.writer, text)
}

// Printf writes formatted text followed by a newline.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.writer, format+"\n", args...)
}

// Confirm asks a yes/no question until it gets an answer.
func (c *Console) Confirm(question string) (bool, error) {
	for {
		fmt.Fprintf(c.writer, "%s (y/n): ", question)
		answer, err := c.ReadLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		c.Println("please answer y or n")
	}
}
