package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathtower/internal/equation"
	"github.com/abhisek/mathtower/internal/ui/theme"
)

// InputKind restricts which printable keys a TextInput accepts.
type InputKind int

const (
	AnyText InputKind = iota
	Numeric           // digits only
	Tiles             // digits and operator glyphs
)

// TextInput wraps bubbles/textinput with a key filter and a result mark.
type TextInput struct {
	Model     textinput.Model
	Kind      InputKind
	submitted bool
	valid     bool
}

// NewTextInput creates a focused text input. A positive limit caps the
// number of characters.
func NewTextInput(placeholder string, kind InputKind, limit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if limit > 0 {
		ti.CharLimit = limit
	}
	return TextInput{Model: ti, Kind: kind}
}

// Init returns the focus command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update filters printable keys by Kind and forwards the rest.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if (len(key) == 1 && !t.accepts(key[0])) || (key == "space" && t.Kind != AnyText) {
			return t, nil
		}
		// Typing again clears the previous result mark.
		t.submitted = false
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) accepts(c byte) bool {
	digit := c >= '0' && c <= '9'
	switch t.Kind {
	case Numeric:
		return digit
	case Tiles:
		return digit || equation.IsOperator(c) || c == '*'
	default:
		return true
	}
}

// View renders the input with a ✓/✗ mark after Submit.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + theme.Correct.Render("✓")
		} else {
			view += " " + theme.Incorrect.Render("✗")
		}
	}
	return view
}

// Value returns the trimmed input. For Tiles, '*' is normalized to the
// canonical multiplication glyph.
func (t TextInput) Value() string {
	v := strings.TrimSpace(t.Model.Value())
	if t.Kind == Tiles {
		v = strings.ReplaceAll(v, "*", string(equation.GlyphMul))
	}
	return v
}

// NumericValue parses the input as an integer.
func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(t.Value())
}

// Submit marks the input with a result.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}

// Reset clears the value and the result mark.
func (t *TextInput) Reset() {
	t.Model.SetValue("")
	t.submitted = false
}
