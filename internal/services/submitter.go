package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"promptmail/internal/events"
	"promptmail/internal/logger"
	"promptmail/internal/models"
)

var (
	ErrEmptyPrompt = errors.New("empty prompt")
	ErrBusy        = errors.New("a request is already in flight")
)

// Submitter guards the send control shared by the interactive front ends:
// at most one exchange runs at a time and the busy flag is cleared on every
// terminal path.
type Submitter struct {
	exchange ExchangeService
	settings SettingsService
	log      *logger.Logger

	mu   sync.Mutex
	busy bool
	wg   sync.WaitGroup
}

func NewSubmitter(exchange ExchangeService, settings SettingsService, log *logger.Logger) *Submitter {
	if log == nil {
		log = logger.Nop()
	}
	return &Submitter{
		exchange: exchange,
		settings: settings,
		log:      log.WithComponent("submitter"),
	}
}

// Submit validates prompt and starts one background exchange. Rejections are
// reported to sink and returned without any network call. sink is invoked
// from the worker goroutine; it must hand events to the UI's own loop.
func (s *Submitter) Submit(ctx context.Context, prompt string, sink events.Sink) error {
	if sink == nil {
		sink = func(events.StatusEvent) {}
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return s.reject(sink, ErrEmptyPrompt)
	}

	settings := s.settings.Get()
	if missing := MissingFields(settings); len(missing) > 0 {
		return s.reject(sink, &IncompleteSettingsError{Missing: missing})
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return s.reject(sink, ErrBusy)
	}
	s.busy = true
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		defer s.setBusy(false)
		defer func() {
			if r := recover(); r != nil {
				s.log.Error().Interface("panic", r).Msg("exchange worker panicked")
				err := fmt.Errorf("internal error: %v", r)
				sink(events.NewFailure(events.StageFailed, models.CategoryUnknown, StatusText(models.CategoryUnknown, err)))
			}
		}()
		_, _ = s.exchange.Run(ctx, settings, prompt, sink)
	}()
	return nil
}

func (s *Submitter) reject(sink events.Sink, err error) error {
	category, text := DescribeError(err)
	sink(events.NewFailure(events.StageRejected, category, text))
	return err
}

func (s *Submitter) setBusy(v bool) {
	s.mu.Lock()
	s.busy = v
	s.mu.Unlock()
}

// Busy reports whether an exchange is in flight.
func (s *Submitter) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// CanSend reports whether the send control should be enabled.
func (s *Submitter) CanSend() bool {
	return !s.Busy() && s.settings.IsConfigured()
}

// Wait blocks until the in-flight exchange, if any, has finished.
func (s *Submitter) Wait() {
	s.wg.Wait()
}
