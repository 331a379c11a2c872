package services

import (
	"context"
	"errors"
	"fmt"

	"promptmail/internal/email"
	"promptmail/internal/llm/client"
	"promptmail/internal/models"
)

// Status lines shown by every front end.
const (
	StatusNeedsSettings = "Complete the settings first"
	StatusReady         = "Ready, enter a prompt"
	StatusSettingsSaved = "Settings saved, enter a prompt"
	StatusRequesting    = "Waiting for Gemini response..."
	StatusSendingMail   = "Response received, sending mail..."
	StatusCopied        = "Response copied to clipboard"
)

// Classify maps err to exactly one outcome category.
func Classify(err error) models.Category {
	var statusErr *client.StatusError
	var authErr *email.AuthError
	var deliveryErr *email.DeliveryError

	switch {
	case err == nil:
		return models.CategoryOK
	case errors.Is(err, ErrEmptyPrompt):
		return models.CategoryEmptyPrompt
	case errors.Is(err, ErrIncompleteSettings):
		return models.CategorySettingsIncomplete
	case errors.Is(err, ErrBusy):
		return models.CategoryBusy
	case errors.Is(err, client.ErrTimeout):
		return models.CategoryTimeout
	case errors.Is(err, client.ErrNetwork):
		return models.CategoryNetwork
	case errors.As(err, &statusErr):
		switch {
		case statusErr.IsBadRequest():
			return models.CategoryBadRequest
		case statusErr.IsForbidden():
			return models.CategoryForbidden
		default:
			return models.CategoryHTTP
		}
	case errors.Is(err, client.ErrNoResponse):
		return models.CategoryNoResponse
	case errors.As(err, &authErr):
		return models.CategoryMailAuth
	case errors.As(err, &deliveryErr):
		return models.CategoryMailTransport
	case errors.Is(err, context.DeadlineExceeded):
		return models.CategoryTimeout
	default:
		return models.CategoryUnknown
	}
}

// StatusText renders the user-facing line for category. err supplies the
// detail for categories that show it.
func StatusText(category models.Category, err error) string {
	switch category {
	case models.CategoryOK:
		return "Done"
	case models.CategoryEmptyPrompt:
		return "Please enter a prompt"
	case models.CategorySettingsIncomplete:
		return StatusNeedsSettings
	case models.CategoryBusy:
		return "A request is already in progress"
	case models.CategoryNetwork:
		return "Network error, check your internet connection"
	case models.CategoryTimeout:
		return "Timed out waiting for a response, please try again"
	case models.CategoryBadRequest:
		return "API error 400, check the API key or request"
	case models.CategoryForbidden:
		return "API error 403, API key not permitted or quota exceeded"
	case models.CategoryHTTP:
		var statusErr *client.StatusError
		if errors.As(err, &statusErr) {
			return fmt.Sprintf("API HTTP error %d", statusErr.StatusCode)
		}
		return "API HTTP error"
	case models.CategoryNoResponse:
		var noResp *client.NoResponseError
		if errors.As(err, &noResp) && noResp.Message != "" {
			return "Gemini returned no response: " + noResp.Message
		}
		return "Gemini returned no response"
	case models.CategoryMailAuth:
		return "Mail authentication failed, check the Gmail app password"
	case models.CategoryMailTransport:
		var deliveryErr *email.DeliveryError
		if errors.As(err, &deliveryErr) && deliveryErr.Err != nil {
			return "Mail delivery failed: " + deliveryErr.Err.Error()
		}
		return "Mail delivery failed"
	}
	if err == nil {
		return "Error"
	}
	return "Error: " + err.Error()
}

// DescribeError is StatusText(Classify(err), err).
func DescribeError(err error) (models.Category, string) {
	category := Classify(err)
	return category, StatusText(category, err)
}

// DoneText is the success line naming the recipient.
func DoneText(recipient string) string {
	return "Done, mail sent to " + recipient
}
