package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/lumi/internal/client/lumi"
	"github.com/garrettladley/lumi/internal/ring"
	"github.com/garrettladley/lumi/internal/xslog"
)

// effectCmd performs one device write. Writes are fire-and-forget; the result
// only feeds the status toast.
func effectCmd(ctx context.Context, faces lumi.FaceService, eff ring.Effect) tea.Cmd {
	return func() tea.Msg {
		var err error
		switch eff.Kind {
		case ring.EffectSetFace:
			_, err = faces.Set(ctx, eff.Segment, eff.DeviceColor())
		case ring.EffectSetAll:
			err = faces.SetAll(ctx, eff.DeviceColor())
		case ring.EffectReset:
			err = faces.Reset(ctx)
		}
		return EffectResultMsg{Effect: eff, Err: err}
	}
}

func statusCmd(ctx context.Context, svc lumi.StatusService) tea.Cmd {
	return func() tea.Msg {
		status, err := svc.Get(ctx)
		return StatusMsg{Status: status, Err: err, At: time.Now()}
	}
}

func pollTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return PollTickMsg{}
	})
}

func toastExpiryCmd(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ToastExpiredMsg{Seq: seq}
	})
}

// dispatch turns controller effects into concurrent device writes.
func (m *Model) dispatch(effects []ring.Effect) tea.Cmd {
	if len(effects) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(effects))
	for i, eff := range effects {
		attrs := []any{xslog.Effect(eff.Kind.String())}
		if eff.Kind == ring.EffectSetFace {
			attrs = append(attrs, xslog.FaceGroup(eff.Segment, eff.On, eff.DeviceColor().Hex()))
		}
		m.deps.Logger.DebugContext(m.deps.Ctx, "dispatching effect", attrs...)
		cmds[i] = effectCmd(m.deps.Ctx, m.deps.Faces, eff)
	}
	return tea.Batch(cmds...)
}
