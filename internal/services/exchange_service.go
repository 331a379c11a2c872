package services

import (
	"context"
	"time"

	"promptmail/internal/email"
	"promptmail/internal/events"
	"promptmail/internal/llm/client"
	"promptmail/internal/logger"
	"promptmail/internal/models"
	"promptmail/internal/repositories"
)

// ExchangeService runs one prompt through generation and mail delivery.
type ExchangeService interface {
	// Run is strictly sequential: requesting, generate, received, mail, then
	// done or failed at the first error. Every stage is reported to sink.
	Run(ctx context.Context, settings models.Settings, prompt string, sink events.Sink) (models.Exchange, error)
}

type exchangeService struct {
	generator  client.Generator
	sender     email.Sender
	deliveries repositories.DeliveryRepository
	log        *logger.Logger
	now        func() time.Time
}

// NewExchangeService wires the pipeline. deliveries may be nil when no
// history store is open.
func NewExchangeService(generator client.Generator, sender email.Sender, deliveries repositories.DeliveryRepository, log *logger.Logger) ExchangeService {
	if log == nil {
		log = logger.Nop()
	}
	return &exchangeService{
		generator:  generator,
		sender:     sender,
		deliveries: deliveries,
		log:        log.WithComponent("exchange"),
		now:        time.Now,
	}
}

func (s *exchangeService) Run(ctx context.Context, settings models.Settings, prompt string, sink events.Sink) (models.Exchange, error) {
	if sink == nil {
		sink = func(events.StatusEvent) {}
	}
	started := s.now()
	exchange := models.Exchange{Prompt: prompt}

	sink(events.NewProgress(events.StageRequesting, StatusRequesting))
	s.log.Info().Int("prompt_chars", len([]rune(prompt))).Msg("requesting generation")

	response, err := s.generator.Generate(ctx, settings.APIKey, prompt)
	if err != nil {
		return exchange, s.fail(ctx, settings, started, sink, err)
	}
	exchange.Response = response

	sink(events.NewReceived(StatusSendingMail, response))
	s.log.Info().Int("response_chars", len([]rune(response))).Msg("response received")

	msg := email.NewExchangeMessage(settings.MailSender, settings.MailRecipient, prompt, response)
	creds := email.Credentials{Username: settings.MailSender, Password: settings.MailCredential}
	if err := s.sender.Send(ctx, creds, msg); err != nil {
		return exchange, s.fail(ctx, settings, started, sink, err)
	}

	done := DoneText(settings.MailRecipient)
	sink(events.NewDone(done))
	s.record(ctx, settings.MailRecipient, models.CategoryOK, done, started)
	return exchange, nil
}

func (s *exchangeService) fail(ctx context.Context, settings models.Settings, started time.Time, sink events.Sink, err error) error {
	category, text := DescribeError(err)
	sink(events.NewFailure(events.StageFailed, category, text))
	s.log.Error().Err(err).Str("category", string(category)).Msg("exchange failed")
	s.record(ctx, settings.MailRecipient, category, text, started)
	return err
}

// record stores the outcome. History is optional; a failing write is only
// logged.
func (s *exchangeService) record(ctx context.Context, recipient string, category models.Category, status string, started time.Time) {
	if s.deliveries == nil {
		return
	}
	d := &models.Delivery{
		Recipient:  recipient,
		Category:   category,
		Status:     status,
		DurationMs: s.now().Sub(started).Milliseconds(),
	}
	if err := s.deliveries.Create(context.WithoutCancel(ctx), d); err != nil {
		s.log.Warn().Err(err).Msg("could not record delivery")
	}
}
