package email

import (
	"fmt"
	"html"
	"strings"
)

const (
	subjectPrefix   = "[Gemini] "
	subjectMaxRunes = 40
)

// Subject returns the subject line for an exchange: the prefix plus the
// first 40 characters of the prompt, with "..." when the prompt was cut.
func Subject(prompt string) string {
	runes := []rune(prompt)
	if len(runes) <= subjectMaxRunes {
		return subjectPrefix + prompt
	}
	return subjectPrefix + string(runes[:subjectMaxRunes]) + "..."
}

// ExchangeText returns the plain-text body for an exchange.
func ExchangeText(prompt, response string) string {
	return fmt.Sprintf("[Prompt]\n%s\n\n[Gemini response]\n%s", prompt, response)
}

// ExchangeHTML returns the HTML body for an exchange. Text is escaped and
// newlines become <br>.
func ExchangeHTML(prompt, response string) string {
	return fmt.Sprintf(`<html><body>
<h3 style="color:#1a73e8">Gemini response</h3>
<p><b>Prompt:</b><br>%s</p>
<hr>
<p><b>Response:</b><br>%s</p>
</body></html>`, htmlLines(prompt), htmlLines(response))
}

// NewExchangeMessage composes the message sent for one exchange.
func NewExchangeMessage(from, to, prompt, response string) Message {
	return Message{
		From:     from,
		To:       to,
		Subject:  Subject(prompt),
		TextBody: ExchangeText(prompt, response),
		HTMLBody: ExchangeHTML(prompt, response),
	}
}

func htmlLines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(html.EscapeString(s), "\n", "<br>")
}
