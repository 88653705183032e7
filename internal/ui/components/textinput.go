package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput wraps bubbles/textinput with an optional digits-only filter.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
}

// NewTextInput creates a focused input holding value.
func NewTextInput(placeholder, value string, numericOnly bool, limit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(value)
	if limit > 0 {
		ti.CharLimit = limit
	}
	ti.Focus()
	return TextInput{Model: ti, NumericOnly: numericOnly}
}

// Update handles messages. With NumericOnly, single printable keys other
// than digits are dropped.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.NumericOnly {
		if kmsg, ok := msg.(tea.KeyPressMsg); ok {
			if key := kmsg.String(); len(key) == 1 && (key[0] < '0' || key[0] > '9') {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// Focus gives the input keyboard focus.
func (t *TextInput) Focus() tea.Cmd { return t.Model.Focus() }

// Blur removes keyboard focus.
func (t *TextInput) Blur() { t.Model.Blur() }

// View renders the text input.
func (t TextInput) View() string { return t.Model.View() }

// Value returns the current input value.
func (t TextInput) Value() string { return t.Model.Value() }

// NumericValue returns the input value as an integer.
func (t TextInput) NumericValue() (int, error) { return strconv.Atoi(t.Model.Value()) }
