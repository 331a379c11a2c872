package email

import "context"

// Sender is the interface that all email providers must implement.
type Sender interface {
	// Send delivers one message to exactly one recipient.
	Send(ctx context.Context, creds Credentials, msg Message) error
}

// Credentials authenticate the submission. Username doubles as the From
// address.
type Credentials struct {
	Username string
	Password string
}

// Message represents an email message to be sent.
type Message struct {
	From     string // sender address
	To       string // recipient email address
	Subject  string // email subject
	HTMLBody string // HTML email body
	TextBody string // plain-text fallback body
}
