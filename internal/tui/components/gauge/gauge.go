// Package gauge renders a circular braille gauge split into equal slots, the
// first Lit of them drawn in the gauge colour.
package gauge

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
	drawille "github.com/exrook/drawille-go"

	"github.com/garrettladley/lumi/internal/tui/components/braille"
	"github.com/garrettladley/lumi/internal/tui/theme"
)

const (
	// gauge dimensions in braille dots; large enough to leave a hollow
	// center for the value text.
	gaugeDotsWidth  = 32 // 16 chars wide
	gaugeDotsHeight = 32 // 8 chars tall
)

type Gauge struct {
	Lit       int
	Total     int
	Label     string
	Color     color.Color // lit slots
	BgColor   color.Color // unlit slots
	TextColor color.Color
}

type Option func(*Gauge)

func WithBgColor(c color.Color) Option {
	return func(g *Gauge) {
		g.BgColor = c
	}
}

func WithTextColor(c color.Color) Option {
	return func(g *Gauge) {
		g.TextColor = c
	}
}

func New(lit, total int, label string, c color.Color, opts ...Option) Gauge {
	g := Gauge{
		Lit:       lit,
		Total:     total,
		Label:     label,
		Color:     c,
		BgColor:   theme.ColorBgLight,
		TextColor: theme.ColorWhite,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

func (g Gauge) Render() string {
	canvas := drawille.NewCanvas()

	var (
		centerX = float64(gaugeDotsWidth) / 2
		centerY = float64(gaugeDotsHeight) / 2
		radius  = float64(gaugeDotsWidth)/2 - 1
		lit     = max(0, min(g.Lit, g.Total))
	)

	for i := range g.Total {
		drawSlot(&canvas, centerX, centerY, radius, i, g.Total)
	}
	slots := braille.Frame(&canvas, gaugeDotsWidth, gaugeDotsHeight)

	canvas.Clear()
	for i := range lit {
		drawSlot(&canvas, centerX, centerY, radius, i, g.Total)
	}
	filled := braille.Frame(&canvas, gaugeDotsWidth, gaugeDotsHeight)

	arc := braille.Compose(
		braille.Layer{Frame: slots, Color: g.BgColor},
		braille.Layer{Frame: filled, Color: g.Color},
	)

	valueStr := "--"
	if g.Total > 0 {
		valueStr = fmt.Sprintf("%d/%d", lit, g.Total)
	}

	valueStyle := lipgloss.NewStyle().
		Foreground(g.TextColor).
		Bold(true)

	var (
		arcHeight = lipgloss.Height(arc)
		arcWidth  = lipgloss.Width(arc)
	)

	centeredValue := lipgloss.Place(
		arcWidth,
		arcHeight,
		lipgloss.Center,
		lipgloss.Center,
		valueStyle.Render(valueStr),
	)

	labelStyle := lipgloss.NewStyle().
		Foreground(g.TextColor).
		Bold(true).
		Width(arcWidth).
		Align(lipgloss.Center)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		braille.Overlay(arc, centeredValue),
		labelStyle.Render(g.Label),
	)
}
