package composite

import (
	"fmt"
	"io"
)

// NewMemory builds the memory group holding RAM and ROM.
func NewMemory() *Composite {
	return NewComposite("Memory").
		Add(MustLeaf("Random Access Memory", 300)).
		Add(MustLeaf("Read Only Memory", 200))
}

// NewComputer assembles memory, processor, hard drive and GPU under name.
func NewComputer(name string) *Composite {
	return NewComposite(name).
		Add(NewMemory()).
		Add(MustLeaf("Processor", 1500)).
		Add(MustLeaf("Hard Drive", 500)).
		Add(MustLeaf("GPU", 1250))
}

// Demo prices a sample computer and draws its parts.
func Demo(w io.Writer) error {
	computer := NewComputer("Bachi's Macbook Pro")
	if _, err := fmt.Fprintf(w, "Price of %s is $%s\n", computer.Name(), FormatPrice(computer.Price())); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, Render(computer))
	return err
}
