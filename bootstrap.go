package main

import (
	"fmt"

	"github.com/spf13/viper"
	"gorm.io/gorm"

	"promptmail/internal/config"
	"promptmail/internal/database"
	"promptmail/internal/email"
	"promptmail/internal/llm/client"
	"promptmail/internal/logger"
	"promptmail/internal/repositories"
	"promptmail/internal/services"
)

// runtimeEnv is everything a front end needs, wired from the configuration.
type runtimeEnv struct {
	cfg      *config.Config
	log      *logger.Logger
	db       *gorm.DB
	services *services.Services
}

type bootstrapOptions struct {
	// consoleLogs is false for front ends that own the whole terminal.
	consoleLogs bool
}

func bootstrap(v *viper.Viper, opts bootstrapOptions) (*runtimeEnv, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg.Log)
	if !opts.consoleLogs {
		log = logger.NewFileOnly(cfg.Log)
	}
	env := &runtimeEnv{cfg: cfg, log: log}

	var deliveries repositories.DeliveryRepository
	if cfg.Database.Enabled {
		db, err := database.Init(database.Config{Path: cfg.Database.Path, Logger: log})
		if err != nil {
			log.Warn().Err(err).Str("path", cfg.Database.Path).Msg("delivery history unavailable")
		} else {
			env.db = db
			deliveries = repositories.NewDeliveryRepository(db)
		}
	}

	generator := client.NewGeminiClient(client.Config{
		BaseURL: cfg.Gemini.BaseURL,
		Model:   cfg.Gemini.Model,
		Timeout: cfg.Gemini.Timeout,
	}, log)

	sender, err := email.NewSMTPSender(email.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		StartTLS: cfg.SMTP.StartTLS,
	}, log)
	if err != nil {
		_ = env.Close()
		return nil, fmt.Errorf("mail sender: %w", err)
	}

	settingsRepo := repositories.NewSettingsRepository(cfg.Settings.Path)
	env.services = services.NewServices(settingsRepo, generator, sender, deliveries, log)

	log.Debug().
		Str("settings", cfg.Settings.Path).
		Bool("history", deliveries != nil).
		Str("model", cfg.Gemini.Model).
		Msg("bootstrap complete")
	return env, nil
}

func (e *runtimeEnv) Close() error {
	err := database.Close(e.db)
	e.db = nil
	if cerr := e.log.Close(); err == nil {
		err = cerr
	}
	return err
}
