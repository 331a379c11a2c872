package models

import "strings"

// Settings is the flat record persisted to config.json. All four fields are
// required before a prompt may be sent.
type Settings struct {
	APIKey         string `json:"gemini_api_key" validate:"required"`
	MailSender     string `json:"gmail_sender" validate:"required"`
	MailCredential string `json:"gmail_password" validate:"required"`
	MailRecipient  string `json:"gmail_receiver" validate:"required"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (s Settings) Trimmed() Settings {
	return Settings{
		APIKey:         strings.TrimSpace(s.APIKey),
		MailSender:     strings.TrimSpace(s.MailSender),
		MailCredential: strings.TrimSpace(s.MailCredential),
		MailRecipient:  strings.TrimSpace(s.MailRecipient),
	}
}
