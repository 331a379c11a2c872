package main

import (
	"embed"
	"os"

	"github.com/wailsapp/wails/v2"
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"

	"promptmail/internal/logger"
)

//go:embed all:frontend/dist
var frontendAssets embed.FS

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// runDesktop opens the Wails window and blocks until it is closed.
func runDesktop(env *runtimeEnv) error {
	app := NewApp(env.services, env.log)

	return wails.Run(&options.App{
		Title:     "Gemini Client",
		Width:     760,
		Height:    820,
		MinWidth:  480,
		MinHeight: 600,
		AssetServer: &assetserver.Options{
			Assets: frontendAssets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "promptmail",
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		Logger:           logger.NewWailsAdapter(env.log),
		LogLevel:         wailsLogLevel(env.cfg.Log.Level),
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		Bind: []interface{}{
			app,
		},
	})
}

func wailsLogLevel(level string) wailslogger.LogLevel {
	switch level {
	case "trace":
		return wailslogger.TRACE
	case "debug":
		return wailslogger.DEBUG
	case "warn", "warning":
		return wailslogger.WARNING
	case "error", "fatal", "panic":
		return wailslogger.ERROR
	default:
		return wailslogger.INFO
	}
}
