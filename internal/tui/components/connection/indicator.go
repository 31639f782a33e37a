// Package connection renders the device connection indicator.
package connection

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"

	"github.com/garrettladley/lumi/internal/session"
	"github.com/garrettladley/lumi/internal/tui/theme"
)

const (
	statusDot = "●"
	separator = " · "
)

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

type Indicator struct {
	Conn session.Connection
	// Now is the reference for relative times; zero means time.Now.
	Now time.Time
}

func (i Indicator) Render() string {
	now := i.Now
	if now.IsZero() {
		now = time.Now()
	}

	switch i.Conn.State {
	case session.Connected:
		parts := []string{statusDot + " " + deviceName(i.Conn.Device)}
		if i.Conn.Uptime > 0 {
			parts = append(parts, "up "+Uptime(i.Conn.Uptime))
		}
		return lipgloss.NewStyle().
			Foreground(theme.ColorSuccess).
			Render(strings.Join(parts, separator))

	case session.Disconnected:
		parts := []string{statusDot + " disconnected"}
		if !i.Conn.LastSeen.IsZero() {
			parts = append(parts, "seen "+humanize.RelTime(i.Conn.LastSeen, now, "ago", "from now"))
		}
		return lipgloss.NewStyle().
			Foreground(theme.ColorDanger).
			Render(strings.Join(parts, separator))

	default:
		return lipgloss.NewStyle().
			Foreground(theme.ColorBgLight).
			Render(statusDot + " connecting...")
	}
}

// Uptime formats d to its two most significant units.
func Uptime(d time.Duration) string {
	if d < time.Second {
		return "0s"
	}
	return durafmt.Parse(d.Truncate(time.Second)).LimitFirstN(2).Format(shortUnits)
}

func deviceName(name string) string {
	if name == "" {
		return "connected"
	}
	return name
}
