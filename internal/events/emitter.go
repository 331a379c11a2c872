package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

var Emit = func(ctx context.Context, name string, evt StatusEvent) {}

// EnableRuntimeEmitter routes events through the Wails event bus, which
// delivers them on the frontend's thread.
func EnableRuntimeEmitter() {
	Emit = func(ctx context.Context, name string, evt StatusEvent) {
		runtime.EventsEmit(ctx, name, evt)
		if evt.Terminal() {
			runtime.EventsEmit(ctx, ExchangeDone, evt)
		}
		logRuntimeEvent(ctx, name, evt)
	}
}

func SetCustomEmitter(f func(ctx context.Context, name string, evt StatusEvent)) {
	if f == nil {
		Emit = func(context.Context, string, StatusEvent) {}
		return
	}
	Emit = f
}

// RuntimeSink adapts Emit to a Sink bound to ctx.
func RuntimeSink(ctx context.Context) Sink {
	return func(evt StatusEvent) {
		Emit(ctx, ExchangeStatus, evt)
	}
}
