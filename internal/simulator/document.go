package simulator

import (
	"fmt"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/lumi/internal/validator"
)

// patternDocument is an uploaded JSON pattern. Only its structure is
// checked; step contents are not interpreted.
type patternDocument map[string]any

var _ validator.Validator = patternDocument(nil)

func parsePatternDocument(raw []byte) (patternDocument, error) {
	var doc patternDocument
	if err := go_json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("document is not an object")
	}
	return doc, nil
}

// Validate applies the firmware's checks in the firmware's order and
// reports the first failure.
func (d patternDocument) Validate() string {
	if _, ok := d["type"]; !ok {
		return "Missing required field: type"
	}
	if _, ok := d["parameters"]; !ok {
		return "Missing required field: parameters"
	}

	steps, ok := d["steps"].([]any)
	if !ok {
		return "Missing or invalid field: steps (must be an array)"
	}
	if len(steps) == 0 {
		return "Steps array is empty"
	}

	for i, s := range steps {
		step, _ := s.(map[string]any)
		_, hasFaces := step["faces"]
		_, hasSelection := step["faceSelection"]
		if !hasFaces && !hasSelection {
			return fmt.Sprintf("Step %d is missing faceSelection or faces", i)
		}
		if _, ok := step["duration"]; !ok {
			return fmt.Sprintf("Step %d is missing duration", i)
		}
	}
	return ""
}

// Name is the document's "name", or the generic custom pattern name.
func (d patternDocument) Name() string {
	if name, ok := d["name"].(string); ok && name != "" {
		return name
	}
	return customPatternName
}
