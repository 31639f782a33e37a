package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/lumi/internal/client/lumi"
	"github.com/garrettladley/lumi/internal/ring"
	"github.com/garrettladley/lumi/internal/session"
	"github.com/garrettladley/lumi/internal/tui/components/braille"
	"github.com/garrettladley/lumi/internal/tui/components/connection"
	"github.com/garrettladley/lumi/internal/tui/components/footer"
	"github.com/garrettladley/lumi/internal/tui/components/gauge"
	ringcomp "github.com/garrettladley/lumi/internal/tui/components/ring"
	"github.com/garrettladley/lumi/internal/tui/components/toast"
	"github.com/garrettladley/lumi/internal/tui/page/colors"
	"github.com/garrettladley/lumi/internal/tui/page/patterns"
	"github.com/garrettladley/lumi/internal/tui/page/splash"
	"github.com/garrettladley/lumi/internal/tui/theme"
	"github.com/garrettladley/lumi/internal/xslog"
)

var _ tea.Model = (*Model)(nil)

type page uint

const (
	splashPage page = iota
	controlPage
)

type modal uint

const (
	noModal modal = iota
	patternsModal
	colorsModal
)

type state struct {
	patterns patterns.State
	colors   colors.State
}

type Model struct {
	ready          bool
	page           page
	modal          modal
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	state          state
	deps           Deps

	controller *ring.Controller
	layout     layout
	conn       session.Connection
	toast      toast.Toast
	toastSeq   int
}

func New(deps Deps) Model {
	if deps.Ctx == nil {
		deps.Ctx = context.Background()
	}
	if deps.Logger == nil {
		deps.Logger = xslog.Discard()
	}
	if deps.Timing == (Timing{}) {
		deps.Timing = DefaultTiming()
	}
	return Model{
		page:       splashPage,
		theme:      theme.New(),
		deps:       deps,
		controller: ring.NewController(0, deps.Color),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(splash.Duration, func(time.Time) tea.Msg {
			return splash.TickMsg{}
		}),
		statusCmd(m.deps.Ctx, m.deps.Status),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true
		m.relayout()

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)

	case tea.MouseClickMsg:
		return m, m.handleMouseDown(msg.Mouse())

	case tea.MouseMotionMsg:
		return m, m.handleMouseMove(msg.Mouse())

	case tea.MouseReleaseMsg:
		m.controller.PointerUp()

	case tea.BlurMsg:
		m.controller.PointerCancel()

	case splash.TickMsg:
		m.page = controlPage

	case StatusMsg:
		return m, m.handleStatus(msg)

	case PollTickMsg:
		return m, statusCmd(m.deps.Ctx, m.deps.Status)

	case EffectResultMsg:
		return m, m.handleEffectResult(msg)

	case ToastExpiredMsg:
		if msg.Seq == m.toast.Seq {
			m.toast = toast.Toast{}
		}

	case patterns.ListMsg:
		if msg.Err != nil {
			m.deps.Logger.WarnContext(m.deps.Ctx, "failed to list patterns", xslog.Error(msg.Err))
			m.state.patterns = m.state.patterns.Failed(msg.Err)
		} else {
			m.state.patterns = m.state.patterns.Loaded(msg.Patterns)
		}

	case patterns.RunMsg:
		if msg.Err != nil {
			m.deps.Logger.WarnContext(m.deps.Ctx, "failed to run pattern",
				xslog.PatternID(msg.Pattern.ID),
				xslog.Error(msg.Err),
			)
			return m, m.showToast(toast.Danger, "pattern failed: "+describe(msg.Err))
		}
		return m, m.showToast(toast.Success, "running "+msg.Pattern.Name)

	case patterns.StopMsg:
		if msg.Err != nil {
			return m, m.showToast(toast.Danger, "stop failed: "+describe(msg.Err))
		}
		return m, m.showToast(toast.Success, "pattern stopped")
	}

	return m, nil
}

func (m *Model) handleStatus(msg StatusMsg) tea.Cmd {
	var cmds []tea.Cmd
	if msg.Err != nil {
		wasConnected := m.conn.State == session.Connected
		m.conn = m.conn.Fail(msg.Err)
		m.deps.Logger.DebugContext(m.deps.Ctx, "status probe failed",
			xslog.Count(m.conn.Failures),
			xslog.Error(msg.Err),
		)
		if wasConnected {
			cmds = append(cmds, m.showToast(toast.Danger, "device unreachable"))
		}
	} else {
		m.conn = m.conn.Succeed(msg.Status.Device, msg.Status.Uptime(), msg.At)
	}
	cmds = append(cmds, pollTickCmd(m.conn.NextPoll(m.deps.Timing.PollInterval, m.deps.Timing.RetryInterval)))
	return tea.Batch(cmds...)
}

func (m *Model) handleEffectResult(msg EffectResultMsg) tea.Cmd {
	if msg.Err != nil {
		m.deps.Logger.WarnContext(m.deps.Ctx, "device write failed",
			xslog.Effect(msg.Effect.String()),
			xslog.Error(msg.Err),
		)
		return m.showToast(toast.Danger, describe(msg.Err))
	}
	switch msg.Effect.Kind {
	case ring.EffectSetAll:
		return m.showToast(toast.Success, "all faces on")
	case ring.EffectReset:
		return m.showToast(toast.Success, "all faces off")
	}
	return nil
}

// showToast replaces the current toast and schedules its dismissal.
func (m *Model) showToast(kind toast.Kind, text string) tea.Cmd {
	m.toastSeq++
	m.toast = toast.Toast{Seq: m.toastSeq, Kind: kind, Text: text}
	return toastExpiryCmd(m.deps.Timing.ToastDuration, m.toastSeq)
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	view.ReportFocus = true

	if m.page == splashPage {
		view.BackgroundColor = theme.ColorBlack
	} else {
		view.BackgroundColor = m.theme.Background()
	}

	if !m.ready {
		return view
	}

	var content string
	switch m.page {
	case splashPage:
		content = splash.View(m.theme, m.viewportWidth, m.viewportHeight)
	case controlPage:
		content = m.controlView()
	}

	view.SetContent(content)
	return view
}

func (m *Model) controlView() string {
	var (
		l     = m.layout
		snap  = m.controller.View()
		scene = ring.Render(snap, m.theme.Ring())
	)

	ringBlock := lipgloss.NewStyle().
		Width(l.regionCols).
		Height(l.regionRows).
		PaddingLeft(l.originX).
		PaddingTop(l.originY).
		Render(ringcomp.New(l.cols, l.rows, m.theme.Foreground()).Render(scene))

	side := lipgloss.JoinVertical(
		lipgloss.Center,
		gauge.New(snap.Segments.LitCount(), lumi.Faces, "LIT", snap.Color).Render(),
		"",
		m.theme.TextDim().Render("colour "+snap.Color.Hex()),
		"",
		m.toast.Render(),
	)
	side = lipgloss.NewStyle().
		Width(sidePanelWidth).
		PaddingTop(1).
		Render(side)

	body := lipgloss.JoinHorizontal(lipgloss.Top, ringBlock, side)

	switch m.modal {
	case patternsModal:
		body = m.overlayModal(body, patterns.View(m.theme, m.state.patterns))
	case colorsModal:
		body = m.overlayModal(body, colors.View(m.theme, m.state.colors))
	}

	status := connection.Indicator{Conn: m.conn}.Render()
	bar := footer.New(footer.Hints, status, m.viewportWidth).Render()

	body = lipgloss.NewStyle().
		Height(max(m.viewportHeight-footerHeight, 0)).
		MaxHeight(max(m.viewportHeight-footerHeight, 0)).
		Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, body, bar)
}

func (m *Model) overlayModal(base, box string) string {
	return braille.Overlay(base, lipgloss.Place(
		m.viewportWidth,
		max(m.viewportHeight-footerHeight, 0),
		lipgloss.Center,
		lipgloss.Center,
		box,
	))
}

// describe shortens device errors for a toast.
func describe(err error) string {
	if apiErr, ok := lumi.AsAPIError(err); ok {
		if apiErr.RateLimited() {
			return "device busy, slow down"
		}
		return apiErr.Message
	}
	return err.Error()
}
