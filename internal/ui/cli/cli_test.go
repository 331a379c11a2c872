package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptmail/internal/email"
	"promptmail/internal/models"
	"promptmail/internal/services"
	"promptmail/internal/tests/mocks"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func complete() models.Settings {
	return models.Settings{APIKey: "key", MailSender: "me@gmail.com", MailCredential: "pw", MailRecipient: "you@example.com"}
}

func TestRun_FirstRunSetupThenPrompt(t *testing.T) {
	repo := &mocks.SettingsRepositoryMock{}
	gen := &mocks.GeneratorMock{
		GenerateFunc: func(ctx context.Context, apiKey, prompt string) (string, error) {
			assert.Equal(t, "key", apiKey)
			return "pong", nil
		},
	}
	sender := &mocks.SenderMock{}
	svc := services.NewServices(repo, gen, sender, nil, nil)
	out := &syncBuffer{}

	in := strings.NewReader("key\nme@gmail.com\npw\nyou@example.com\n\nping\n")
	err := Run(context.Background(), Options{Settings: svc.Settings, Exchange: svc.Exchange, In: in, Out: out})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.SaveCount())
	assert.Equal(t, 1, gen.Calls())
	assert.Equal(t, 1, sender.Calls())

	text := out.String()
	assert.Contains(t, text, "Ready, recipient: you@example.com")
	assert.Contains(t, text, "[Response]\npong")
	assert.Contains(t, text, "Done, mail sent to you@example.com")
	assert.Contains(t, text, "Bye")
}

func TestRun_SetupRepeatsUntilComplete(t *testing.T) {
	repo := &mocks.SettingsRepositoryMock{}
	svc := services.NewServices(repo, &mocks.GeneratorMock{}, &mocks.SenderMock{}, nil, nil)
	out := &syncBuffer{}

	in := strings.NewReader("key\n\npw\nyou@example.com\nkey\nme@gmail.com\npw\nyou@example.com\n")
	require.NoError(t, Run(context.Background(), Options{Settings: svc.Settings, Exchange: svc.Exchange, In: in, Out: out}))

	assert.Contains(t, out.String(), "gmail_sender")
	assert.Equal(t, 1, repo.SaveCount())
}

func TestRun_UsesSecretReaderForCredential(t *testing.T) {
	repo := &mocks.SettingsRepositoryMock{}
	svc := services.NewServices(repo, &mocks.GeneratorMock{}, &mocks.SenderMock{}, nil, nil)
	calls := 0

	in := strings.NewReader("key\nme@gmail.com\nyou@example.com\n")
	err := Run(context.Background(), Options{
		Settings: svc.Settings,
		Exchange: svc.Exchange,
		In:       in,
		Out:      io.Discard,
		ReadSecret: func() (string, error) {
			calls++
			return "hidden", nil
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	require.Equal(t, 1, repo.SaveCount())
	assert.Equal(t, "hidden", repo.Saved[0].MailCredential)
}

func TestRun_ErrorsArePrintedAndLoopContinues(t *testing.T) {
	repo := &mocks.SettingsRepositoryMock{LoadFunc: complete}
	gen := &mocks.GeneratorMock{}
	sender := &mocks.SenderMock{
		SendFunc: func(context.Context, email.Credentials, email.Message) error {
			return &email.DeliveryError{Op: "dial", Err: errors.New("connection refused")}
		},
	}
	svc := services.NewServices(repo, gen, sender, nil, nil)
	out := &syncBuffer{}

	in := strings.NewReader("one\ntwo\n")
	require.NoError(t, Run(context.Background(), Options{Settings: svc.Settings, Exchange: svc.Exchange, In: in, Out: out}))

	assert.Equal(t, 2, gen.Calls())
	assert.Equal(t, 2, strings.Count(out.String(), "Mail delivery failed: connection refused"))
}

func TestRun_InterruptExits(t *testing.T) {
	repo := &mocks.SettingsRepositoryMock{LoadFunc: complete}
	svc := services.NewServices(repo, &mocks.GeneratorMock{}, &mocks.SenderMock{}, nil, nil)
	out := &syncBuffer{}

	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, Options{Settings: svc.Settings, Exchange: svc.Exchange, In: pr, Out: out})
	}()

	require.Eventually(t, func() bool { return strings.Contains(out.String(), "Prompt > ") }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after interrupt")
	}
	assert.Contains(t, out.String(), "Bye")
}
