package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"promptmail/internal/models"
)

func TestStatusEvent_Terminal(t *testing.T) {
	assert.False(t, NewProgress(StageRequesting, "x").Terminal())
	assert.False(t, NewReceived("x", "r").Terminal())
	assert.True(t, NewDone("x").Terminal())
	assert.True(t, NewFailure(StageFailed, models.CategoryNetwork, "x").Terminal())
	assert.True(t, NewFailure(StageRejected, models.CategoryEmptyPrompt, "x").Terminal())
}

func TestConstructors_SetTypeAndCategory(t *testing.T) {
	done := NewDone("ok")
	assert.Equal(t, EventSuccess, done.Type)
	assert.Equal(t, models.CategoryOK, done.Category)
	assert.NotEmpty(t, done.ID)

	received := NewReceived("got it", "text")
	assert.Equal(t, StageReceived, received.Stage)
	assert.Equal(t, "text", received.Response)

	failed := NewFailure(StageFailed, models.CategoryTimeout, "slow")
	assert.Equal(t, EventError, failed.Type)
	assert.Equal(t, models.CategoryTimeout, failed.Category)
}

func TestRuntimeSink_UsesCustomEmitter(t *testing.T) {
	var names []string
	SetCustomEmitter(func(ctx context.Context, name string, evt StatusEvent) {
		names = append(names, name)
	})
	t.Cleanup(func() { SetCustomEmitter(nil) })

	sink := RuntimeSink(context.Background())
	sink(NewProgress(StageRequesting, "x"))

	assert.Equal(t, []string{ExchangeStatus}, names)
}
