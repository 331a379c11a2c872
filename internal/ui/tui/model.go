package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"promptmail/internal/events"
	"promptmail/internal/logger"
	"promptmail/internal/models"
	"promptmail/internal/services"
)

type mode int

const (
	modeSettings mode = iota
	modePrompt
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusError
)

const (
	fieldAPIKey = iota
	fieldSender
	fieldCredential
	fieldRecipient
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldAPIKey:     "Gemini API key",
	fieldSender:     "Gmail sender",
	fieldCredential: "Gmail app password",
	fieldRecipient:  "Recipient",
}

const responsePlaceholder = "(the response will appear here)"

type copiedMsg struct{ err error }

// Options configures a Model.
type Options struct {
	Settings  services.SettingsService
	Submitter *services.Submitter
	// Copy puts text on the clipboard. Defaults to an OSC52 escape.
	Copy   func(string) error
	Logger *logger.Logger
}

type Model struct {
	ctx       context.Context
	settings  services.SettingsService
	submitter *services.Submitter
	copyText  func(string) error
	bridge    *bridge
	log       *logger.Logger

	mode    mode
	inputs  []textinput.Model
	focus   int
	formErr string

	prompt   textarea.Model
	response viewport.Model
	spinner  spinner.Model

	busy         bool
	lastResponse string
	status       string
	kind         statusKind

	width, height int
}

func New(ctx context.Context, opts Options) Model {
	if opts.Copy == nil {
		opts.Copy = copyOSC52
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = fieldLabels[i]
		in.CharLimit = 256
		in.Width = 48
		inputs[i] = in
	}
	inputs[fieldAPIKey].EchoMode = textinput.EchoPassword
	inputs[fieldCredential].EchoMode = textinput.EchoPassword
	inputs[fieldCredential].EchoCharacter = '•'
	inputs[fieldAPIKey].EchoCharacter = '•'

	ta := textarea.New()
	ta.Placeholder = "Ask Gemini something..."
	ta.ShowLineNumbers = false
	ta.SetHeight(4)
	ta.KeyMap.InsertNewline.SetKeys("alt+enter", "ctrl+j")

	vp := viewport.New(80, 10)
	vp.SetContent(responsePlaceholder)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	m := Model{
		ctx:       ctx,
		settings:  opts.Settings,
		submitter: opts.Submitter,
		copyText:  opts.Copy,
		bridge:    &bridge{},
		log:       opts.Logger.WithComponent("tui"),
		inputs:    inputs,
		prompt:    ta,
		response:  vp,
		spinner:   s,
	}

	if m.settings.IsConfigured() {
		m.mode = modePrompt
		m.prompt.Focus()
		m.setStatus(services.StatusReady, statusOK)
	} else {
		m.openSettings()
		m.setStatus(services.StatusNeedsSettings, statusInfo)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, textarea.Blink, m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StatusMsg:
		m.applyEvent(msg.Event)
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.setStatus("Copy failed: "+msg.err.Error(), statusError)
		} else {
			m.setStatus(services.StatusCopied, statusOK)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode == modeSettings {
			return m.updateSettings(msg)
		}
		return m.updatePrompt(msg)
	}

	return m.updateFocused(msg)
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.settings.IsConfigured() {
			m.closeSettings()
		}
		return m, nil
	case "tab", "down":
		return m, m.focusField((m.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return m, m.focusField((m.focus + fieldCount - 1) % fieldCount)
	case "enter":
		if m.focus < fieldCount-1 {
			return m, m.focusField(m.focus + 1)
		}
		m.saveSettings()
		return m, nil
	}
	return m.updateFocused(msg)
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		if m.busy {
			return m, nil
		}
		m.openSettings()
		return m, textinput.Blink
	case "ctrl+y":
		if m.lastResponse == "" {
			return m, nil
		}
		return m, copyCmd(m.copyText, m.lastResponse)
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.response, cmd = m.response.Update(msg)
		return m, cmd
	case "enter":
		return m.submit()
	}
	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.mode == modeSettings {
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// submit hands the prompt to the submitter from a command so worker events
// can reach the program without blocking the update loop.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	if !m.settings.IsConfigured() {
		m.openSettings()
		m.setStatus(services.StatusNeedsSettings, statusError)
		return m, nil
	}

	prompt := m.prompt.Value()
	if strings.TrimSpace(prompt) != "" {
		m.busy = true
		m.prompt.Reset()
		m.setResponse("")
		m.setStatus(services.StatusRequesting, statusInfo)
	}

	ctx, sub, sink := m.ctx, m.submitter, m.bridge.sink
	log := m.log
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		if err := sub.Submit(ctx, prompt, sink); err != nil {
			log.Debug().Err(err).Msg("submission rejected")
		}
		return nil
	})
}

func (m *Model) applyEvent(evt events.StatusEvent) {
	switch evt.Type {
	case events.EventSuccess:
		m.setStatus(evt.Message, statusOK)
	case events.EventError:
		m.setStatus(evt.Message, statusError)
	default:
		m.setStatus(evt.Message, statusInfo)
	}

	switch {
	case evt.Stage == events.StageRequesting:
		m.busy = true
	case evt.Stage == events.StageReceived:
		m.setResponse(evt.Response)
	case evt.Stage == events.StageRejected && evt.Category == models.CategoryBusy:
		// the in-flight exchange still owns the control
	case evt.Terminal():
		m.busy = false
	}
}

func (m *Model) saveSettings() {
	in := models.Settings{
		APIKey:         m.inputs[fieldAPIKey].Value(),
		MailSender:     m.inputs[fieldSender].Value(),
		MailCredential: m.inputs[fieldCredential].Value(),
		MailRecipient:  m.inputs[fieldRecipient].Value(),
	}
	if _, err := m.settings.Save(in); err != nil {
		m.formErr = "All fields are required"
		m.setStatus(services.StatusNeedsSettings, statusError)
		return
	}
	m.closeSettings()
	m.setStatus(services.StatusSettingsSaved, statusOK)
}

func (m *Model) openSettings() {
	current := m.settings.Get()
	m.inputs[fieldAPIKey].SetValue(current.APIKey)
	m.inputs[fieldSender].SetValue(current.MailSender)
	m.inputs[fieldCredential].SetValue(current.MailCredential)
	m.inputs[fieldRecipient].SetValue(current.MailRecipient)
	m.formErr = ""
	m.mode = modeSettings
	m.prompt.Blur()
	m.focusField(0)
}

func (m *Model) closeSettings() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.formErr = ""
	m.mode = modePrompt
	m.prompt.Focus()
}

func (m *Model) focusField(i int) tea.Cmd {
	m.focus = i
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == i {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return cmd
}

func (m *Model) setStatus(text string, kind statusKind) {
	m.status = text
	m.kind = kind
}

func (m *Model) setResponse(text string) {
	m.lastResponse = text
	if text == "" {
		m.response.SetContent(responsePlaceholder)
	} else {
		m.response.SetContent(lipgloss.NewStyle().Width(m.response.Width).Render(text))
	}
	m.response.GotoTop()
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	inner := max(width-4, 20)
	m.prompt.SetWidth(inner)
	m.response.Width = inner
	// title, status, labels, prompt, hints and borders
	m.response.Height = max(height-16, 3)
	m.setResponse(m.lastResponse)
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Gemini client") + "\n\n")
	sb.WriteString(m.statusView() + "\n\n")

	if m.mode == modeSettings {
		sb.WriteString(m.settingsView())
		return sb.String()
	}

	sb.WriteString(labelStyle.Render("Prompt") + "\n")
	sb.WriteString(m.prompt.View() + "\n\n")
	sb.WriteString(labelStyle.Render("Gemini response") + "\n")
	sb.WriteString(responseStyle.Render(m.response.View()) + "\n")

	send := "enter send"
	if m.busy {
		send = "sending..."
	}
	sb.WriteString(hintStyle.Render(send + " • alt+enter newline • ctrl+y copy • ctrl+s settings • ctrl+c quit"))
	return sb.String()
}

func (m Model) statusView() string {
	switch m.kind {
	case statusOK:
		return okStyle.Render(m.status)
	case statusError:
		return errorStyle.Render(m.status)
	}
	if m.busy {
		return m.spinner.View() + infoStyle.Render(m.status)
	}
	return infoStyle.Render(m.status)
}

func (m Model) settingsView() string {
	var sb strings.Builder
	sb.WriteString(labelStyle.Render("Settings") + "\n\n")
	for i, in := range m.inputs {
		sb.WriteString(labelStyle.Render(fieldLabels[i]) + "\n")
		sb.WriteString(in.View() + "\n\n")
	}
	if m.formErr != "" {
		sb.WriteString(errorStyle.Render(m.formErr) + "\n\n")
	}
	sb.WriteString(hintStyle.Render("Gemini API key: aistudio.google.com/app/apikey") + "\n")
	sb.WriteString(hintStyle.Render("Gmail app password: myaccount.google.com/apppasswords") + "\n\n")
	sb.WriteString(hintStyle.Render("tab next field • enter save • esc cancel • ctrl+c quit"))
	return sb.String()
}
