package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorAccent  = lipgloss.Color("#FFDE00") // default session colour, highlights
	ColorSuccess = lipgloss.Color("#16EC06") // connected, successful writes
	ColorDanger  = lipgloss.Color("#FF0026") // disconnected, failed writes
	ColorInfo    = lipgloss.Color("#67AEE6") // neutral notices
)

var (
	ColorBgDark  = lipgloss.Color("#101014") // page background, matches the ring background
	ColorBgLight = lipgloss.Color("#283339") // unlit gauge slots, modal borders
)
