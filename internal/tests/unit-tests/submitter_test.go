package unit_tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptmail/internal/events"
	"promptmail/internal/models"
	"promptmail/internal/services"
	"promptmail/internal/tests/mocks"
)

func newSubmitter(settings models.Settings, gen *mocks.GeneratorMock, sender *mocks.SenderMock) *services.Submitter {
	repo := &mocks.SettingsRepositoryMock{LoadFunc: func() models.Settings { return settings }}
	svc := services.NewServices(repo, gen, sender, nil, nil)
	return svc.Submitter
}

func TestSubmitter_EmptyPromptIsRejectedWithoutNetwork(t *testing.T) {
	gen := &mocks.GeneratorMock{}
	sender := &mocks.SenderMock{}
	sub := newSubmitter(completeSettings(), gen, sender)
	rec := &mocks.EventRecorder{}

	err := sub.Submit(context.Background(), "   \n\t", rec.Sink)
	assert.ErrorIs(t, err, services.ErrEmptyPrompt)

	sub.Wait()
	assert.Equal(t, 0, gen.Calls())
	assert.Equal(t, 0, sender.Calls())
	assert.True(t, sub.CanSend())

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, events.StageRejected, last.Stage)
	assert.Equal(t, "Please enter a prompt", last.Message)
}

func TestSubmitter_IncompleteSettingsAreRejected(t *testing.T) {
	gen := &mocks.GeneratorMock{}
	s := completeSettings()
	s.APIKey = ""
	sub := newSubmitter(s, gen, &mocks.SenderMock{})
	rec := &mocks.EventRecorder{}

	err := sub.Submit(context.Background(), "hello", rec.Sink)
	assert.ErrorIs(t, err, services.ErrIncompleteSettings)
	assert.Equal(t, 0, gen.Calls())
	assert.False(t, sub.CanSend())

	last, _ := rec.Last()
	assert.Equal(t, models.CategorySettingsIncomplete, last.Category)
}

func TestSubmitter_SingleFlight(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	gen := &mocks.GeneratorMock{
		GenerateFunc: func(ctx context.Context, apiKey, prompt string) (string, error) {
			close(started)
			<-release
			return "answer to " + prompt, nil
		},
	}
	sender := &mocks.SenderMock{}
	sub := newSubmitter(completeSettings(), gen, sender)
	rec := &mocks.EventRecorder{}

	require.NoError(t, sub.Submit(context.Background(), "  first  ", rec.Sink))
	<-started
	assert.True(t, sub.Busy())
	assert.False(t, sub.CanSend())

	err := sub.Submit(context.Background(), "second", rec.Sink)
	assert.ErrorIs(t, err, services.ErrBusy)

	close(release)
	sub.Wait()

	assert.False(t, sub.Busy())
	assert.True(t, sub.CanSend())
	assert.Equal(t, 1, gen.Calls())
	require.Equal(t, 1, sender.Calls())
	assert.Contains(t, sender.Sent[0].TextBody, "answer to first")

	last, _ := rec.Last()
	assert.Equal(t, events.StageDone, last.Stage)
}

func TestSubmitter_ClearsBusyAfterFailure(t *testing.T) {
	gen := &mocks.GeneratorMock{
		GenerateFunc: func(context.Context, string, string) (string, error) {
			return "", context.DeadlineExceeded
		},
	}
	sub := newSubmitter(completeSettings(), gen, &mocks.SenderMock{})
	rec := &mocks.EventRecorder{}

	require.NoError(t, sub.Submit(context.Background(), "hi", rec.Sink))
	sub.Wait()

	assert.False(t, sub.Busy())
	last, _ := rec.Last()
	assert.Equal(t, events.StageFailed, last.Stage)
	assert.Equal(t, models.CategoryTimeout, last.Category)
}

func TestSubmitter_RecoversWorkerPanic(t *testing.T) {
	gen := &mocks.GeneratorMock{
		GenerateFunc: func(context.Context, string, string) (string, error) { panic("unexpected") },
	}
	sub := newSubmitter(completeSettings(), gen, &mocks.SenderMock{})
	rec := &mocks.EventRecorder{}

	require.NoError(t, sub.Submit(context.Background(), "hi", rec.Sink))

	assert.Eventually(t, func() bool { return !sub.Busy() }, time.Second, 10*time.Millisecond)
	last, _ := rec.Last()
	assert.Equal(t, models.CategoryUnknown, last.Category)
}
