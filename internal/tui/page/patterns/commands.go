package patterns

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/lumi/internal/client/lumi"
)

type ListMsg struct {
	Patterns []lumi.Pattern
	Err      error
}

type RunMsg struct {
	Pattern lumi.Pattern
	Err     error
}

type StopMsg struct {
	Err error
}

func ListCmd(ctx context.Context, svc lumi.PatternService) tea.Cmd {
	return func() tea.Msg {
		patterns, err := svc.List(ctx)
		return ListMsg{Patterns: patterns, Err: err}
	}
}

func RunCmd(ctx context.Context, svc lumi.PatternService, p lumi.Pattern) tea.Cmd {
	return func() tea.Msg {
		_, err := svc.Run(ctx, p.ID)
		return RunMsg{Pattern: p, Err: err}
	}
}

func StopCmd(ctx context.Context, svc lumi.PatternService) tea.Cmd {
	return func() tea.Msg {
		return StopMsg{Err: svc.Stop(ctx)}
	}
}
