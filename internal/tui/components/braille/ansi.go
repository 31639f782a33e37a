package braille

import (
	"strings"
	"unicode"
)

const ansiEscape rune = '\x1b'

// Overlay places the visible span of each foreground line over the background
// line, keeping the background's styling on either side.
func Overlay(background, foreground string) string {
	var (
		bgLines  = strings.Split(background, "\n")
		fgLines  = strings.Split(foreground, "\n")
		maxLines = max(len(bgLines), len(fgLines))
		result   = make([]string, maxLines)
	)

	for i := range maxLines {
		var bgLine, fgLine string
		if i < len(bgLines) {
			bgLine = bgLines[i]
		}
		if i < len(fgLines) {
			fgLine = fgLines[i]
		}

		fgStart, fgEnd := -1, -1
		for idx, r := range []rune(Strip(fgLine)) {
			if r != ' ' {
				if fgStart == -1 {
					fgStart = idx
				}
				fgEnd = idx + 1
			}
		}

		if fgStart == -1 {
			result[i] = bgLine
			continue
		}

		bgWidth := len([]rune(Strip(bgLine)))

		var lineBuilder strings.Builder
		lineBuilder.WriteString(Segment(bgLine, 0, min(fgStart, bgWidth)))
		for j := bgWidth; j < fgStart; j++ {
			lineBuilder.WriteRune(' ')
		}
		lineBuilder.WriteString(Segment(fgLine, fgStart, fgEnd))
		if fgEnd < bgWidth {
			lineBuilder.WriteString(Segment(bgLine, fgEnd, bgWidth))
		}

		result[i] = lineBuilder.String()
	}

	return strings.Join(result, "\n")
}

// Segment returns the visible characters [start, end) of a styled string,
// each preceded by the escape sequences that came directly before it.
func Segment(styled string, start, end int) string {
	var (
		result         strings.Builder
		visibleIdx     = 0
		inEscape       = false
		pendingEscapes strings.Builder
	)

	for _, r := range styled {
		if r == ansiEscape {
			inEscape = true
			pendingEscapes.WriteRune(r)
			continue
		}

		if inEscape {
			pendingEscapes.WriteRune(r)
			if unicode.IsLetter(r) {
				inEscape = false
			}
			continue
		}

		if visibleIdx >= start && visibleIdx < end {
			if pendingEscapes.Len() > 0 {
				result.WriteString(pendingEscapes.String())
			}
			result.WriteRune(r)
		}
		pendingEscapes.Reset()
		visibleIdx++
	}

	return result.String()
}

// Strip removes ANSI escape sequences.
func Strip(s string) string {
	var (
		result   strings.Builder
		inEscape = false
	)

	for _, r := range s {
		if r == ansiEscape {
			inEscape = true
			continue
		}
		if inEscape {
			if unicode.IsLetter(r) {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
