package builder

import (
	"fmt"
	"io"
)

// AlertDialog is immutable once built; use Builder to make one.
type AlertDialog struct {
	title           string
	message         string
	positiveLabel   string
	negativeLabel   string
	onPositiveClick func()
	onNegativeClick func()
}

// Builder collects dialog settings before Build.
type Builder struct {
	title           string
	message         string
	positiveLabel   string
	negativeLabel   string
	onPositiveClick func()
	onNegativeClick func()
}

// NewBuilder starts an empty dialog.
func NewBuilder() *Builder {
	return &Builder{}
}

// Title sets the dialog title.
func (b *Builder) Title(title string) *Builder {
	b.title = title
	return b
}

// Message sets the dialog body.
func (b *Builder) Message(message string) *Builder {
	b.message = message
	return b
}

// PositiveButton sets the confirm button and its click handler.
func (b *Builder) PositiveButton(label string, onClick func()) *Builder {
	b.positiveLabel = label
	b.onPositiveClick = onClick
	return b
}

// NegativeButton sets the cancel button and its click handler.
func (b *Builder) NegativeButton(label string, onClick func()) *Builder {
	b.negativeLabel = label
	b.onNegativeClick = onClick
	return b
}

// Build snapshots the current settings into a dialog.
func (b *Builder) Build() *AlertDialog {
	return &AlertDialog{
		title:           b.title,
		message:         b.message,
		positiveLabel:   b.positiveLabel,
		negativeLabel:   b.negativeLabel,
		onPositiveClick: b.onPositiveClick,
		onNegativeClick: b.onNegativeClick,
	}
}

// Show writes the dialog fields.
func (d *AlertDialog) Show(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Title:          %s \nMessage:        %s \nPositiveButton: %s \nNegativeButton: %s \n\n",
		d.title, d.message, d.positiveLabel, d.negativeLabel)
	return err
}

// ClickPositive fires the confirm handler, if any.
func (d *AlertDialog) ClickPositive() {
	if d.onPositiveClick != nil {
		d.onPositiveClick()
	}
}

// ClickNegative fires the cancel handler, if any.
func (d *AlertDialog) ClickNegative() {
	if d.onNegativeClick != nil {
		d.onNegativeClick()
	}
}

// Demo builds a dialog, shows it and clicks both buttons.
func Demo(w io.Writer) error {
	dialog := NewBuilder().
		Title("Dialog Title").
		Message("Dialog Message").
		PositiveButton("Continue", func() {
			fmt.Fprintln(w, "Positive Button Clicked")
		}).
		NegativeButton("Cancel", func() {
			fmt.Fprintln(w, "Negative Button Clicked")
		}).
		Build()

	if err := dialog.Show(w); err != nil {
		return err
	}
	dialog.ClickPositive()
	dialog.ClickNegative()
	return nil
}
