package models

// Exchange is one prompt/response pair. It lives for a single request cycle
// and is never persisted.
type Exchange struct {
	Prompt   string `json:"prompt"`
	Response string `json:"response"`
}
