package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "0:00"},
		{-3, "0:00"},
		{59, "0:59"},
		{61, "1:01"},
		{1800, "30:00"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.secs); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Exam", RenderClock(90), 100)
	if !strings.Contains(h, "mocktest") || !strings.Contains(h, "Exam") || !strings.Contains(h, "1:30") {
		t.Errorf("header missing parts:\n%s", h)
	}
	if lipgloss.Height(h) < 3 {
		t.Errorf("header height = %d, want a bordered bar", lipgloss.Height(h))
	}
}

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) {
		t.Error("expected narrow terminal to be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("expected minimum size to fit")
	}
}
