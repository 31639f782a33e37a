package tui

import (
	"time"

	"github.com/garrettladley/lumi/internal/client/lumi"
	"github.com/garrettladley/lumi/internal/ring"
)

// EffectResultMsg reports the outcome of one device write.
type EffectResultMsg struct {
	Effect ring.Effect
	Err    error
}

type StatusMsg struct {
	Status *lumi.Status
	Err    error
	At     time.Time
}

type PollTickMsg struct{}

// ToastExpiredMsg dismisses the toast with the given sequence number.
type ToastExpiredMsg struct {
	Seq int
}
