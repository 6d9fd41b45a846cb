package strategy

import (
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Formatter rewrites a message before printing.
type Formatter interface {
	Format(string) string
}

// CaseFormatter applies a language-aware case mapping.
type CaseFormatter struct {
	caser cases.Caser
}

// Format maps s through the caser.
func (f CaseFormatter) Format(s string) string {
	return f.caser.String(s)
}

// Upper formats messages in upper case.
func Upper() Formatter {
	return CaseFormatter{caser: cases.Upper(language.English)}
}

// Lower formats messages in lower case.
func Lower() Formatter {
	return CaseFormatter{caser: cases.Lower(language.English)}
}

// Title capitalises each word.
func Title() Formatter {
	return CaseFormatter{caser: cases.Title(language.English)}
}

// Printer writes messages formatted by its strategy.
type Printer struct {
	out       io.Writer
	formatter Formatter
}

// NewPrinter binds a formatting strategy to a writer.
func NewPrinter(out io.Writer, formatter Formatter) *Printer {
	return &Printer{out: out, formatter: formatter}
}

// Print formats message and writes it as one line.
func (p *Printer) Print(message string) error {
	_, err := fmt.Fprintln(p.out, p.formatter.Format(message))
	return err
}

// Demo prints the same message through upper and lower case printers.
func Demo(w io.Writer) error {
	const message = "THIS text is TO BE printed"
	if err := NewPrinter(w, Upper()).Print(message); err != nil {
		return err
	}
	return NewPrinter(w, Lower()).Print(message)
}
