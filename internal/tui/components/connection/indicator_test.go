package connection

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/garrettladley/lumi/internal/session"
	"github.com/garrettladley/lumi/internal/tui/components/braille"
)

func TestIndicatorRender(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seen := session.Connection{}.Succeed("Lumi", 90*time.Minute, now.Add(-3*time.Minute))

	tests := []struct {
		name string
		conn session.Connection
		want []string
		deny []string
	}{
		{
			name: "connecting",
			conn: session.Connection{},
			want: []string{"connecting"},
		},
		{
			name: "connected",
			conn: seen,
			want: []string{"Lumi", "up "},
			deny: []string{"disconnected"},
		},
		{
			name: "connected without a name",
			conn: session.Connection{}.Succeed("", 0, now),
			want: []string{"connected"},
			deny: []string{"up "},
		},
		{
			name: "lost after being seen",
			conn: seen.Fail(errors.New("timeout")),
			want: []string{"disconnected", "seen 3 minutes ago"},
		},
		{
			name: "never seen",
			conn: session.Connection{}.Fail(errors.New("refused")),
			want: []string{"disconnected"},
			deny: []string{"seen"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := braille.Strip(Indicator{Conn: tt.conn, Now: now}.Render())
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("Render() = %q, want it to contain %q", got, w)
				}
			}
			for _, d := range tt.deny {
				if strings.Contains(got, d) {
					t.Errorf("Render() = %q, must not contain %q", got, d)
				}
			}
		})
	}
}

func TestUptime(t *testing.T) {
	t.Parallel()

	if got := Uptime(0); got != "0s" {
		t.Errorf("Uptime(0) = %q", got)
	}
	got := Uptime(26*time.Hour + 5*time.Minute + 7*time.Second)
	if !strings.Contains(got, "1") || !strings.Contains(got, "2") || strings.Contains(got, "7") {
		t.Errorf("Uptime(26h5m7s) = %q, want the two largest units only", got)
	}
}
