package adapter

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DisplayRow is the shape the display understands.
type DisplayRow struct {
	Index int
	Data  string
}

// Display renders rows; it stands in for a third-party widget whose input
// format we do not control.
type Display struct {
	out io.Writer
}

// NewDisplay binds a display to a writer.
func NewDisplay(out io.Writer) *Display {
	return &Display{out: out}
}

// Show prints each row in order.
func (d *Display) Show(rows []DisplayRow) error {
	for _, row := range rows {
		if _, err := fmt.Fprintf(d.out, "Data Displayed: %d - %s\n", row.Index, row.Data); err != nil {
			return err
		}
	}
	return nil
}

// Record is what the application database yields.
type Record struct {
	ID     int
	Amount float32
}

// Database serves a fixed in-memory table.
type Database struct{}

// Retrieve returns every record.
func (Database) Retrieve() []Record {
	return []Record{
		{ID: 0, Amount: 5},
		{ID: 1, Amount: 4.2},
		{ID: 2, Amount: 5.2},
		{ID: 3, Amount: 3},
		{ID: 4, Amount: 1.4},
		{ID: 5, Amount: 0.2},
		{ID: 6, Amount: 9.4},
		{ID: 7, Amount: 1.3},
	}
}

// DisplayAdapter feeds a list of T into a display.
type DisplayAdapter[T any] interface {
	SubmitList(items []T) error
}

// DatabaseDisplayAdapter converts database records to display rows.
type DatabaseDisplayAdapter struct {
	display *Display
}

// NewDatabaseDisplayAdapter adapts records for display.
func NewDatabaseDisplayAdapter(display *Display) *DatabaseDisplayAdapter {
	return &DatabaseDisplayAdapter{display: display}
}

var _ DisplayAdapter[Record] = (*DatabaseDisplayAdapter)(nil)

// SubmitList converts records and shows them.
func (a *DatabaseDisplayAdapter) SubmitList(records []Record) error {
	return a.display.Show(Convert(records))
}

// Convert maps records to display rows.
func Convert(records []Record) []DisplayRow {
	rows := make([]DisplayRow, len(records))
	for i, r := range records {
		rows[i] = DisplayRow{Index: r.ID, Data: formatAmount(r.Amount)}
	}
	return rows
}

func formatAmount(amount float32) string {
	text := strconv.FormatFloat(float64(amount), 'f', -1, 32)
	if !strings.Contains(text, ".") {
		text += ".0"
	}
	return text
}

// Demo pushes the database contents through the adapter.
func Demo(w io.Writer) error {
	adapter := NewDatabaseDisplayAdapter(NewDisplay(w))
	return adapter.SubmitList(Database{}.Retrieve())
}
