package main

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"promptmail/internal/events"
	"promptmail/internal/logger"
	"promptmail/internal/models"
	"promptmail/internal/services"
)

// App is bound to the desktop frontend. Every exported method is callable
// from JavaScript as window.go.main.App.<Method>.
type App struct {
	ctx      context.Context
	services *services.Services
	log      *logger.Logger
	forward  events.Sink

	mu           sync.Mutex
	lastResponse string
}

// NewApp creates a new App application struct
func NewApp(svc *services.Services, log *logger.Logger) *App {
	return &App{
		services: svc,
		log:      log.WithComponent("desktop"),
	}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	events.EnableRuntimeEmitter()
	a.forward = events.RuntimeSink(ctx)
}

// shutdown is called when the app is closing. An exchange still in flight is
// allowed to finish so the mail is not lost.
func (a *App) shutdown(ctx context.Context) {
	if a.services.Submitter.Busy() {
		runtime.LogInfo(ctx, "waiting for the in-flight exchange to finish")
	}
	a.services.Submitter.Wait()
}

// GetSettings returns the current settings record
func (a *App) GetSettings() models.Settings {
	return a.services.Settings.Get()
}

// SaveSettings validates and stores the record and returns the status line
// to show. An incomplete record is rejected; a failed write only logs.
func (a *App) SaveSettings(s models.Settings) (string, error) {
	if _, err := a.services.Settings.Save(s); err != nil {
		return "", err
	}
	return services.StatusSettingsSaved, nil
}

// IsConfigured reports whether every settings field is present
func (a *App) IsConfigured() bool {
	return a.services.Settings.IsConfigured()
}

// CanSend reports whether the send button should be enabled
func (a *App) CanSend() bool {
	return a.services.Submitter.CanSend()
}

// InitialStatus is the status line shown before anything has been sent
func (a *App) InitialStatus() string {
	if a.IsConfigured() {
		return services.StatusReady
	}
	return services.StatusNeedsSettings
}

// Submit starts one exchange in the background. Progress arrives on the
// events:exchange:status event; rejections are reported there as well.
func (a *App) Submit(prompt string) error {
	if strings.TrimSpace(prompt) != "" && a.services.Submitter.CanSend() {
		a.setLastResponse("")
	}
	err := a.services.Submitter.Submit(a.ctx, prompt, a.sink)
	if err != nil {
		a.log.Debug().Err(err).Msg("submission rejected")
	}
	return err
}

// CopyResponse puts the last shown response on the clipboard. It returns an
// empty status when nothing has been shown yet.
func (a *App) CopyResponse() (string, error) {
	text := a.getLastResponse()
	if text == "" {
		return "", nil
	}
	if err := runtime.ClipboardSetText(a.ctx, text); err != nil {
		runtime.LogError(a.ctx, fmt.Sprintf("failed to copy response: %v", err))
		return "", err
	}
	return services.StatusCopied, nil
}

// RecentDeliveries returns the most recent recorded deliveries
func (a *App) RecentDeliveries(limit int) ([]models.Delivery, error) {
	return a.services.History.Recent(a.ctx, limit)
}

func (a *App) sink(evt events.StatusEvent) {
	if evt.Stage == events.StageReceived {
		a.setLastResponse(evt.Response)
	}
	a.forward(evt)
}

func (a *App) setLastResponse(text string) {
	a.mu.Lock()
	a.lastResponse = text
	a.mu.Unlock()
}

func (a *App) getLastResponse() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastResponse
}
