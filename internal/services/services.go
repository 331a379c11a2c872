package services

import (
	"promptmail/internal/email"
	"promptmail/internal/llm/client"
	"promptmail/internal/logger"
	"promptmail/internal/repositories"
)

// Services aggregates the core shared by every front end.
type Services struct {
	Settings  SettingsService
	Exchange  ExchangeService
	History   HistoryService
	Submitter *Submitter
}

// NewServices constructs the container. deliveries may be nil when the
// history store could not be opened.
func NewServices(settingsRepo repositories.SettingsRepository, generator client.Generator, sender email.Sender, deliveries repositories.DeliveryRepository, log *logger.Logger) *Services {
	settings := NewSettingsService(settingsRepo, log)
	exchange := NewExchangeService(generator, sender, deliveries, log)

	return &Services{
		Settings:  settings,
		Exchange:  exchange,
		History:   NewHistoryService(deliveries),
		Submitter: NewSubmitter(exchange, settings, log),
	}
}
