package logger

import (
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
)

// WailsAdapter forwards the Wails runtime log calls (runtime.LogInfo etc.)
// into zerolog.
type WailsAdapter struct {
	log *Logger
}

var _ wailslogger.Logger = (*WailsAdapter)(nil)

func NewWailsAdapter(l *Logger) *WailsAdapter {
	return &WailsAdapter{log: l.WithComponent("wails")}
}

func (w *WailsAdapter) Print(message string)   { w.log.Info().Msg(message) }
func (w *WailsAdapter) Trace(message string)   { w.log.Trace().Msg(message) }
func (w *WailsAdapter) Debug(message string)   { w.log.Debug().Msg(message) }
func (w *WailsAdapter) Info(message string)    { w.log.Info().Msg(message) }
func (w *WailsAdapter) Warning(message string) { w.log.Warn().Msg(message) }
func (w *WailsAdapter) Error(message string)   { w.log.Error().Msg(message) }

// Fatal logs at error level. Wails calls os.Exit itself after Fatal.
func (w *WailsAdapter) Fatal(message string) { w.log.Error().Msg(message) }
