package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestChecklist(t *testing.T) {
	c := NewChecklist([]string{"Biology", "Chemistry", "Physics"})
	c = c.Toggle().Down().Down().Toggle().Down()
	if c.Selected != 2 {
		t.Errorf("Selected = %d, want 2", c.Selected)
	}
	got := c.Values()
	if len(got) != 2 || got[0] != "Biology" || got[1] != "Physics" {
		t.Errorf("Values = %v, want [Biology Physics]", got)
	}
	if !strings.Contains(ansi.Strip(c.View()), "[x] Physics") {
		t.Error("expected checked Physics in view")
	}
}

func TestOptionList(t *testing.T) {
	o := OptionList{Options: [4]string{"a", "b", "c", "d"}, Chosen: -1}
	o = o.Up()
	if o.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", o.Cursor)
	}
	o = o.Down().Down().Down().Down()
	if o.Cursor != 3 {
		t.Errorf("Cursor = %d, want 3", o.Cursor)
	}
	o.Chosen = 1
	view := ansi.Strip(o.View(40))
	if !strings.Contains(view, "● B)") {
		t.Errorf("expected chosen marker on B:\n%s", view)
	}
}

func TestNavMap(t *testing.T) {
	cells := make([]NavCell, 12)
	cells[3].Current = true
	out := ansi.Strip(NavMap(cells, 5))
	if lines := strings.Count(out, "\n") + 1; lines != 3 {
		t.Errorf("rows = %d, want 3", lines)
	}
	if !strings.Contains(out, "[ 4]") {
		t.Errorf("expected current cell bracketed:\n%s", out)
	}
	if strings.Contains(out, "[ 3]") || strings.Contains(out, "[ 5]") {
		t.Errorf("only the current cell is bracketed:\n%s", out)
	}
}

func TestProgressBar(t *testing.T) {
	out := ansi.Strip(NewProgressBar("Physics", 0.5, true, 40).View())
	if !strings.Contains(out, "Physics") || !strings.Contains(out, "50%") {
		t.Errorf("unexpected bar: %q", out)
	}
}

func TestTextInput_NumericOnly(t *testing.T) {
	in := NewTextInput("grade", "1", true, 2)
	in, _ = in.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if in.Value() != "1" {
		t.Errorf("Value = %q, want letters dropped", in.Value())
	}
}
