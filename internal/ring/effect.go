package ring

import (
	"fmt"

	"github.com/garrettladley/lumi/internal/color"
)

type EffectKind uint8

const (
	// EffectSetFace writes one face. An off face is written black.
	EffectSetFace EffectKind = iota
	// EffectSetAll writes the same colour to every face.
	EffectSetAll
	// EffectReset blanks every face through the device's reset endpoint.
	EffectReset
)

func (k EffectKind) String() string {
	switch k {
	case EffectSetFace:
		return "set_face"
	case EffectSetAll:
		return "set_all"
	case EffectReset:
		return "reset"
	default:
		return fmt.Sprintf("effect(%d)", uint8(k))
	}
}

// Effect is a device write produced by a state change. It carries values
// only, so dispatching it later never observes newer state.
type Effect struct {
	Kind    EffectKind
	Segment int
	On      bool
	Color   color.RGB
}

// DeviceColor is the colour actually sent for the effect.
func (e Effect) DeviceColor() color.RGB {
	if !e.On || e.Kind == EffectReset {
		return color.Black
	}
	return e.Color
}

func (e Effect) String() string {
	switch e.Kind {
	case EffectSetFace:
		return fmt.Sprintf("%s[%d]=%s", e.Kind, e.Segment, e.DeviceColor())
	case EffectSetAll:
		return fmt.Sprintf("%s=%s", e.Kind, e.DeviceColor())
	default:
		return e.Kind.String()
	}
}

func setFace(i int, seg Segment) Effect {
	return Effect{Kind: EffectSetFace, Segment: i, On: seg.On, Color: seg.Color}
}

func setAll(on bool, c color.RGB) Effect {
	if !on {
		return Effect{Kind: EffectReset}
	}
	return Effect{Kind: EffectSetAll, On: true, Color: c}
}
