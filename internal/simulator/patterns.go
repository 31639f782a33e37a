package simulator

// builtinPatterns are the patterns shipped in the device firmware, indexed by
// id.
var builtinPatterns = []string{
	"Sequential",
	"On/Off",
	"Odd/Even",
	"Random",
	"Wave",
	"Rainbow",
	"Strobe",
	"Chase",
	"Pulse",
	"Twinkle",
	"FireFlicker",
	"Comet",
	"Individual Random",
}

const customPatternName = "Custom Pattern"

// customPatternID marks an uploaded pattern in the device state.
const customPatternID = -1

type patternEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func patternList() []patternEntry {
	out := make([]patternEntry, len(builtinPatterns))
	for i, name := range builtinPatterns {
		out[i] = patternEntry{ID: i, Name: name}
	}
	return out
}

func patternName(id int) (string, bool) {
	if id < 0 || id >= len(builtinPatterns) {
		return "", false
	}
	return builtinPatterns[id], true
}
