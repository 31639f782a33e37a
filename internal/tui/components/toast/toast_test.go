package toast

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestRender(t *testing.T) {
	t.Parallel()

	if got := (Toast{}).Render(); got != "" {
		t.Errorf("empty toast rendered %q", got)
	}

	out := Toast{Kind: Danger, Text: "face 3 failed"}.Render()
	if !strings.Contains(out, "face 3 failed") {
		t.Errorf("Render() = %q", out)
	}
	if h := lipgloss.Height(out); h != 3 {
		t.Errorf("height = %d, want 3 with border", h)
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	for k, want := range map[Kind]string{Info: "info", Success: "success", Danger: "danger"} {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}
