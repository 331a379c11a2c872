package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"promptmail/internal/logger"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-flash-latest"
	DefaultTimeout = 120 * time.Second

	temperature     = 0.7
	maxOutputTokens = 8192
)

// Generator produces a response text for a prompt.
type Generator interface {
	Generate(ctx context.Context, apiKey, prompt string) (string, error)
}

type GeminiClient struct {
	httpClient *http.Client
	baseURL    string
	model      string
	log        *logger.Logger
}

type Config struct {
	BaseURL string
	Model   string
	Timeout time.Duration
	// HTTPClient overrides the default client. Its Timeout is replaced by
	// Timeout when Timeout is non-zero.
	HTTPClient *http.Client
}

func NewGeminiClient(cfg Config, log *logger.Logger) *GeminiClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	httpClient := &http.Client{}
	if cfg.HTTPClient != nil {
		copied := *cfg.HTTPClient
		httpClient = &copied
	}
	httpClient.Timeout = cfg.Timeout
	if log == nil {
		log = logger.Nop()
	}

	return &GeminiClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		log:        log.WithComponent("gemini"),
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Generate sends prompt as a single content part and returns the trimmed
// concatenation of the first candidate's text parts. The call is stateless
// and never retried.
func (c *GeminiClient) Generate(ctx context.Context, apiKey, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     temperature,
			MaxOutputTokens: maxOutputTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("gemini: marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(apiKey), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemini: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// the request URL carries the key; never surface it
		err = redactKey(err)
		if isTimeout(err) {
			return "", fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return "", fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(started)).
		Str("model", c.model).
		Msg("generateContent")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", readStatusError(resp)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("gemini: decoding response: %w", err)
	}

	if len(decoded.Candidates) == 0 {
		msg := "no response"
		if decoded.Error != nil && decoded.Error.Message != "" {
			msg = decoded.Error.Message
		}
		return "", &NoResponseError{Message: msg}
	}

	var sb strings.Builder
	for _, p := range decoded.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String()), nil
}

func (c *GeminiClient) endpoint(apiKey string) string {
	q := url.Values{}
	q.Set("key", apiKey)
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent?%s", c.baseURL, url.PathEscape(c.model), q.Encode())
}

// readStatusError builds a StatusError, picking error.message out of the
// body when it parses.
func readStatusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var wire struct {
		Error apiError `json:"error"`
	}
	statusErr := &StatusError{StatusCode: resp.StatusCode}
	if json.Unmarshal(raw, &wire) == nil {
		statusErr.Message = wire.Error.Message
	}
	return statusErr
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// redactKey strips the query string from a *url.Error so the API key does
// not end up in status lines or logs.
func redactKey(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if u, parseErr := url.Parse(urlErr.URL); parseErr == nil {
			u.RawQuery = ""
			urlErr.URL = u.String()
		}
	}
	return err
}
