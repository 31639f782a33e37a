package footer

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestRender(t *testing.T) {
	t.Parallel()

	out := New("q quit", "● connected", 60).Render()
	if w := lipgloss.Width(out); w != 60 {
		t.Errorf("width = %d, want 60", w)
	}
	if !strings.Contains(out, "q quit") || !strings.Contains(out, "● connected") {
		t.Errorf("Render() = %q", out)
	}
}

func TestRenderNarrow(t *testing.T) {
	t.Parallel()

	out := New("q quit", "● connected", 5).Render()
	if !strings.Contains(out, "q quit") || !strings.Contains(out, "● connected") {
		t.Errorf("narrow footer dropped content: %q", out)
	}
}
