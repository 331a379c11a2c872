package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
)

func copyOSC52(text string) error {
	termenv.Copy(text)
	return nil
}

func copyCmd(copyText func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: copyText(text)}
	}
}
