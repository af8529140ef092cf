package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"iris/internal/adapters/tui/styles"
)

// InputFormKeyMap defines focus keys for input forms
type InputFormKeyMap struct {
	Next key.Binding
	Prev key.Binding
}

var DefaultInputFormKeys = InputFormKeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "previous field"),
	),
}

// InputField is a labelled text input with an optional hint below it
type InputField struct {
	Label string
	Hint  string
	Input textinput.Model
}

// NewInputField creates a field. charLimit <= 0 leaves the input unbounded.
func NewInputField(label, placeholder, hint string, charLimit int) InputField {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = ""
	if charLimit > 0 {
		input.CharLimit = charLimit
		input.Width = charLimit
	}
	return InputField{Label: label, Hint: hint, Input: input}
}

// InputForm manages several text inputs with a single focused field
type InputForm struct {
	Fields  []InputField
	focused int
	blurred bool
	Keys    InputFormKeyMap
}

// NewInputForm creates a form and focuses its first field
func NewInputForm(fields ...InputField) *InputForm {
	f := &InputForm{Fields: fields, Keys: DefaultInputFormKeys}
	f.Focus()
	return f
}

func (f *InputForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update moves focus or forwards the message to the focused input.
// Returns (handled, cmd) where handled is true if a focus key was processed.
func (f *InputForm) Update(msg tea.Msg) (bool, tea.Cmd) {
	if f.blurred || len(f.Fields) == 0 {
		return false, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, f.Keys.Next):
			f.move(1)
			return true, nil
		case key.Matches(msg, f.Keys.Prev):
			f.move(-1)
			return true, nil
		}
	}

	var cmd tea.Cmd
	f.Fields[f.focused].Input, cmd = f.Fields[f.focused].Input.Update(msg)
	return false, cmd
}

func (f *InputForm) move(delta int) {
	n := len(f.Fields)
	if n <= 1 {
		return
	}
	f.Fields[f.focused].Input.Blur()
	f.focused = (f.focused + delta + n) % n
	f.Fields[f.focused].Input.Focus()
}

// Focused returns the index of the focused field
func (f *InputForm) Focused() int {
	return f.focused
}

// Focus re-enables input on the last focused field
func (f *InputForm) Focus() {
	f.blurred = false
	if len(f.Fields) > 0 {
		f.Fields[f.focused].Input.Focus()
	}
}

// Blur stops all fields from receiving input
func (f *InputForm) Blur() {
	f.blurred = true
	for i := range f.Fields {
		f.Fields[i].Input.Blur()
	}
}

// Value returns the trimmed value of a field
func (f *InputForm) Value(index int) string {
	if index < 0 || index >= len(f.Fields) {
		return ""
	}
	return strings.TrimSpace(f.Fields[index].Input.Value())
}

func (f *InputForm) SetValue(index int, value string) {
	if index < 0 || index >= len(f.Fields) {
		return
	}
	f.Fields[index].Input.SetValue(value)
}

// Reset clears every field and focuses the first one
func (f *InputForm) Reset() {
	for i := range f.Fields {
		f.Fields[i].Input.SetValue("")
		f.Fields[i].Input.Blur()
	}
	f.focused = 0
	f.Focus()
}

// View renders every field, highlighting the focused one
func (f *InputForm) View() string {
	var b strings.Builder
	for i, field := range f.Fields {
		b.WriteString(styles.InputLabel.Render(field.Label))
		b.WriteString("\n")
		if i == f.focused && !f.blurred {
			b.WriteString(styles.InputFocused.Render(field.Input.View()))
		} else {
			b.WriteString(styles.InputField.Render(field.Input.View()))
		}
		b.WriteString("\n")
		if field.Hint != "" {
			b.WriteString(styles.MutedText.Render(field.Hint))
			b.WriteString("\n")
		}
	}
	return b.String()
}
