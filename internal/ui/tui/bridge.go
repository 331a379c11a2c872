package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"promptmail/internal/events"
)

// StatusMsg carries a worker status event into the update loop.
type StatusMsg struct {
	Event events.StatusEvent
}

// bridge hands worker events to the running program. It is shared by every
// copy of the model.
type bridge struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

func (b *bridge) attach(send func(tea.Msg)) {
	b.mu.Lock()
	b.send = send
	b.mu.Unlock()
}

func (b *bridge) sink(evt events.StatusEvent) {
	b.mu.RLock()
	send := b.send
	b.mu.RUnlock()
	if send != nil {
		send(StatusMsg{Event: evt})
	}
}
