package unit_tests

import (
	"context"
	"errors"
	"fmt"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"

	"promptmail/internal/email"
	"promptmail/internal/llm/client"
	"promptmail/internal/models"
	"promptmail/internal/services"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want models.Category
	}{
		{"nil", nil, models.CategoryOK},
		{"empty prompt", services.ErrEmptyPrompt, models.CategoryEmptyPrompt},
		{"incomplete", &services.IncompleteSettingsError{Missing: []string{"gmail_sender"}}, models.CategorySettingsIncomplete},
		{"busy", services.ErrBusy, models.CategoryBusy},
		{"timeout", fmt.Errorf("%w: %w", client.ErrTimeout, context.DeadlineExceeded), models.CategoryTimeout},
		{"network", fmt.Errorf("%w: connection refused", client.ErrNetwork), models.CategoryNetwork},
		{"http 400", &client.StatusError{StatusCode: 400}, models.CategoryBadRequest},
		{"http 403", &client.StatusError{StatusCode: 403}, models.CategoryForbidden},
		{"http 500", &client.StatusError{StatusCode: 500}, models.CategoryHTTP},
		{"no response", &client.NoResponseError{Message: "blocked"}, models.CategoryNoResponse},
		{"mail auth", &email.AuthError{Err: &textproto.Error{Code: 535, Msg: "bad credentials"}}, models.CategoryMailAuth},
		{"mail transport", &email.DeliveryError{Op: "dial", Err: errors.New("connection reset")}, models.CategoryMailTransport},
		{"unknown", errors.New("boom"), models.CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.Classify(tt.err))
		})
	}
}

func TestStatusText_DistinctPerCategory(t *testing.T) {
	errs := []error{
		services.ErrEmptyPrompt,
		fmt.Errorf("%w: refused", client.ErrNetwork),
		fmt.Errorf("%w: deadline", client.ErrTimeout),
		&client.StatusError{StatusCode: 400},
		&client.StatusError{StatusCode: 403},
		&client.StatusError{StatusCode: 502},
		&email.AuthError{Err: errors.New("535")},
		&email.DeliveryError{Op: "send", Err: errors.New("452 mailbox full")},
		errors.New("something odd"),
	}

	seen := map[string]bool{}
	for _, err := range errs {
		_, text := services.DescribeError(err)
		assert.NotEmpty(t, text)
		assert.False(t, seen[text], "duplicate status text %q", text)
		seen[text] = true
	}
}

func TestStatusText_Details(t *testing.T) {
	_, text := services.DescribeError(&client.StatusError{StatusCode: 502, Message: "bad gateway"})
	assert.Equal(t, "API HTTP error 502", text)

	_, text = services.DescribeError(&email.DeliveryError{Op: "send", Err: errors.New("452 mailbox full")})
	assert.Equal(t, "Mail delivery failed: 452 mailbox full", text)

	_, text = services.DescribeError(&client.NoResponseError{Message: "SAFETY"})
	assert.Equal(t, "Gemini returned no response: SAFETY", text)

	_, text = services.DescribeError(errors.New("something odd"))
	assert.Equal(t, "Error: something odd", text)

	assert.Equal(t, "Done, mail sent to you@example.com", services.DoneText("you@example.com"))
}
