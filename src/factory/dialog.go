package factory

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnknownKind is returned when no factory exists for a dialog kind.
var ErrUnknownKind = errors.New("unknown dialog kind")

// Kind selects the dialog variant to build.
type Kind int

const (
	// KindAlert builds alert dialogs.
	KindAlert Kind = iota + 1
	// KindPrompt builds prompt dialogs.
	KindPrompt
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindAlert:
		return "alert"
	case KindPrompt:
		return "prompt"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// DialogView is the behaviour shared by every dialog.
type DialogView interface {
	Kind() Kind
	SetContent(title, content string)
	Show()
}

type baseDialog struct {
	out io.Writer
}

func (d baseDialog) Show() {
	fmt.Fprintln(d.out, "Dialog is shown")
}

func (d baseDialog) writeContent(title, content string) {
	fmt.Fprintf(d.out, "Title:   %s \nContent: %s \n\n", title, content)
}

// AlertDialogView informs the user.
type AlertDialogView struct {
	baseDialog
}

// Kind reports KindAlert.
func (*AlertDialogView) Kind() Kind { return KindAlert }

// SetContent prints the alert contents.
func (d *AlertDialogView) SetContent(title, content string) {
	d.writeContent(title, content)
}

// ShowAlert displays the alert.
func (d *AlertDialogView) ShowAlert() { d.Show() }

// PromptDialogView asks the user for input.
type PromptDialogView struct {
	baseDialog
}

// Kind reports KindPrompt.
func (*PromptDialogView) Kind() Kind { return KindPrompt }

// SetContent prints the prompt contents.
func (d *PromptDialogView) SetContent(title, content string) {
	d.writeContent(title, content)
}

// ShowPrompt displays the prompt.
func (d *PromptDialogView) ShowPrompt() { d.Show() }

// Factory makes dialogs of one kind.
type Factory interface {
	MakeDialog() DialogView
}

type alertFactory struct{ out io.Writer }

func (f alertFactory) MakeDialog() DialogView {
	return &AlertDialogView{baseDialog{out: f.out}}
}

type promptFactory struct{ out io.Writer }

func (f promptFactory) MakeDialog() DialogView {
	return &PromptDialogView{baseDialog{out: f.out}}
}

// NewFactory returns the factory for kind; dialogs it makes write to out.
func NewFactory(kind Kind, out io.Writer) (Factory, error) {
	switch kind {
	case KindAlert:
		return alertFactory{out: out}, nil
	case KindPrompt:
		return promptFactory{out: out}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

// Demo makes one alert and one prompt through their factories.
func Demo(w io.Writer) error {
	alerts, err := NewFactory(KindAlert, w)
	if err != nil {
		return err
	}
	prompts, err := NewFactory(KindPrompt, w)
	if err != nil {
		return err
	}
	made := alerts.MakeDialog()
	alert, ok := made.(*AlertDialogView)
	if !ok {
		return fmt.Errorf("alert factory made %T", made)
	}
	made = prompts.MakeDialog()
	prompt, ok := made.(*PromptDialogView)
	if !ok {
		return fmt.Errorf("prompt factory made %T", made)
	}

	alert.ShowAlert()
	alert.SetContent("Alert Dialog", "Alert Dialog Content")

	prompt.ShowPrompt()
	prompt.SetContent("Prompt Dialog", "Prompt Dialog Content")
	return nil
}
