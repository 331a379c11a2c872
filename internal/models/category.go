package models

// Category classifies the outcome of one submission.
type Category string

const (
	CategoryOK                 Category = "ok"
	CategoryEmptyPrompt        Category = "empty_prompt"
	CategorySettingsIncomplete Category = "settings_incomplete"
	CategoryBusy               Category = "busy"
	CategoryNetwork            Category = "network"
	CategoryTimeout            Category = "timeout"
	CategoryBadRequest         Category = "http_400"
	CategoryForbidden          Category = "http_403"
	CategoryHTTP               Category = "http_other"
	CategoryNoResponse         Category = "no_response"
	CategoryMailAuth           Category = "mail_auth"
	CategoryMailTransport      Category = "mail_transport"
	CategoryUnknown            Category = "unknown"
)
