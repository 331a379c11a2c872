// Package cli is the line-mode front end: one prompt per line, answers and
// progress printed as plain text.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"promptmail/internal/events"
	"promptmail/internal/logger"
	"promptmail/internal/models"
	"promptmail/internal/services"
)

type Options struct {
	Settings services.SettingsService
	Exchange services.ExchangeService
	In       io.Reader
	Out      io.Writer
	// ReadSecret reads the mail credential without echo. Nil reads it as a
	// plain line.
	ReadSecret func() (string, error)
	Logger     *logger.Logger
}

type setupField struct {
	label  string
	secret bool
	set    func(*models.Settings, string)
}

var setupFields = []setupField{
	{"Gemini API key: ", false, func(s *models.Settings, v string) { s.APIKey = v }},
	{"Gmail sender: ", false, func(s *models.Settings, v string) { s.MailSender = v }},
	{"Gmail app password: ", true, func(s *models.Settings, v string) { s.MailCredential = v }},
	{"Recipient email: ", false, func(s *models.Settings, v string) { s.MailRecipient = v }},
}

// Run prompts for settings when they are incomplete, then reads prompts until
// the input ends or ctx is cancelled. Errors from individual exchanges are
// printed and the loop continues.
func Run(ctx context.Context, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithComponent("cli")

	c := &console{in: bufio.NewReader(opts.In), out: opts.Out, readSecret: opts.ReadSecret}

	settings := opts.Settings.Get()
	if !services.IsComplete(settings) {
		var err error
		settings, err = setup(ctx, c, opts.Settings)
		if err != nil {
			return quietExit(c, err)
		}
	}

	fmt.Fprintf(c.out, "\nReady, recipient: %s\n", settings.MailRecipient)
	fmt.Fprint(c.out, "Quit: Ctrl+C\n\n")

	sink := printer(c.out)
	for {
		prompt, err := c.ask(ctx, "Prompt > ", false)
		if err != nil {
			return quietExit(c, err)
		}
		if prompt == "" {
			continue
		}
		if _, err := opts.Exchange.Run(ctx, settings, prompt, sink); err != nil {
			if ctx.Err() != nil {
				return quietExit(c, ctx.Err())
			}
			log.Debug().Err(err).Msg("exchange failed")
		}
		fmt.Fprintln(c.out)
	}
}

func setup(ctx context.Context, c *console, svc services.SettingsService) (models.Settings, error) {
	fmt.Fprintln(c.out, "\n=== Setup ===")
	current := svc.Get()
	for {
		for _, f := range setupFields {
			v, err := c.ask(ctx, f.label, f.secret)
			if err != nil {
				return models.Settings{}, err
			}
			f.set(&current, v)
		}

		saved, err := svc.Save(current)
		if err == nil {
			return saved, nil
		}
		fmt.Fprintf(c.out, "%s\n\n", err)
	}
}

func printer(out io.Writer) events.Sink {
	return func(evt events.StatusEvent) {
		switch evt.Stage {
		case events.StageReceived:
			fmt.Fprintf(out, "\n[Response]\n%s\n\n", evt.Response)
			fmt.Fprintln(out, evt.Message)
		default:
			fmt.Fprintln(out, evt.Message)
		}
	}
}

// quietExit turns interrupt and end of input into a clean exit.
func quietExit(c *console, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		fmt.Fprintln(c.out, "\nBye")
		return nil
	}
	return err
}
