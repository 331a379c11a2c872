package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the full-screen interface and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	m := New(ctx, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	m.bridge.attach(p.Send)

	_, err := p.Run()
	return err
}
