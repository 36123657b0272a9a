package tui

import (
	"fmt"
	"strings"

	"slack-delay-sender/src/application/usecases/scheduler"
	"slack-delay-sender/src/domain/schedule"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// field is a focusable row of the form.
type field int

const (
	fieldUnit field = iota
	fieldDelay
	fieldMessage
	fieldWebhook
	fieldSend
	fieldCount
)

// eventMsg carries a scheduler Event into the Bubble Tea loop.
type eventMsg scheduler.Event

// closedMsg means the scheduler closed its event stream.
type closedMsg struct{}

func waitForEvent(ch <-chan scheduler.Event) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return closedMsg{}
		}
		return eventMsg(e)
	}
}

// SaveFunc persists the webhook URL and unit as the client defaults.
type SaveFunc func(webhookURL string, unit schedule.Unit) error

// Model is the Bubble Tea model for the send form.
type Model struct {
	sched  *scheduler.Scheduler
	events <-chan scheduler.Event
	snap   scheduler.Snapshot

	unitIndex int
	delay     textinput.Model
	message   textinput.Model
	webhook   textinput.Model
	focus     field
	styles    Styles

	save SaveFunc
	note string

	title    string
	quitting bool
}

// NewModel creates the form bound to s. webhookURL pre-fills the webhook field.
func NewModel(s *scheduler.Scheduler, title, webhookURL string) Model {
	delay := newInput("0", 12)
	message := newInput("What should be sent?", 60)
	webhook := newInput("https://hooks.slack.com/services/...", 60)

	if webhookURL != "" {
		webhook.SetValue(webhookURL)
		s.SetWebhookURL(webhookURL)
	}

	m := Model{
		sched:   s,
		events:  s.Subscribe(64),
		delay:   delay,
		message: message,
		webhook: webhook,
		focus:   fieldDelay,
		styles:  DefaultStyles(),
		title:   title,
	}
	for i, u := range schedule.Units {
		if u == s.Snapshot().Unit {
			m.unitIndex = i
		}
	}
	m.delay.Focus()
	m.snap = s.Snapshot()
	return m
}

// WithSave enables ctrl+s.
func (m Model) WithSave(save SaveFunc) Model {
	m.save = save
	return m
}

func newInput(placeholder string, width int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 0
	ti.Width = width
	return ti
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForEvent(m.events))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case eventMsg:
		m.snap = m.sched.Snapshot()
		switch msg.Type {
		case scheduler.EventFired, scheduler.EventStopped:
			// The delay is consumed at zero; a new one has to be typed.
			m.delay.SetValue("")
		case scheduler.EventCompleted:
			// A successful send clears message and url in the scheduler; mirror that.
			m.delay.SetValue("")
			m.message.SetValue(m.snap.Message)
			m.webhook.SetValue(m.snap.WebhookURL)
		}
		return m, waitForEvent(m.events)

	case closedMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.note = ""

	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		if m.save == nil {
			return m, nil
		}
		if err := m.save(m.webhook.Value(), m.snap.Unit); err != nil {
			m.note = "Defaults not saved: " + err.Error()
		} else {
			m.note = "Defaults saved"
		}
		return m, nil
	case "tab", "down":
		return m, m.setFocus(m.focus + 1)
	case "shift+tab", "up":
		return m, m.setFocus(m.focus - 1)
	case "esc":
		m.sched.Cancel()
		m.snap = m.sched.Snapshot()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldUnit:
		switch msg.String() {
		case "left", "h":
			m.cycleUnit(-1)
		case "right", "l", " ":
			m.cycleUnit(1)
		}

	case fieldDelay:
		if m.snap.SendLocked {
			return m, nil
		}
		before := m.delay.Value()
		m.delay, cmd = m.delay.Update(msg)
		if m.delay.Value() != before {
			_ = m.sched.SetDelay(m.delay.Value())
		}

	case fieldMessage:
		before := m.message.Value()
		m.message, cmd = m.message.Update(msg)
		if m.message.Value() != before {
			m.sched.SetMessage(m.message.Value())
		}

	case fieldWebhook:
		before := m.webhook.Value()
		m.webhook, cmd = m.webhook.Update(msg)
		if m.webhook.Value() != before {
			m.sched.SetWebhookURL(m.webhook.Value())
		}

	case fieldSend:
		if msg.String() == "enter" || msg.String() == " " {
			// A closed gate is shown by the disabled button, not as a status.
			_ = m.sched.Start()
		}
	}

	m.snap = m.sched.Snapshot()
	return m, cmd
}

func (m *Model) cycleUnit(step int) {
	n := len(schedule.Units)
	m.unitIndex = ((m.unitIndex+step)%n + n) % n
	m.sched.SetUnit(schedule.Units[m.unitIndex])
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.focus = (f%fieldCount + fieldCount) % fieldCount

	m.delay.Blur()
	m.message.Blur()
	m.webhook.Blur()

	switch m.focus {
	case fieldDelay:
		return m.delay.Focus()
	case fieldMessage:
		return m.message.Focus()
	case fieldWebhook:
		return m.webhook.Focus()
	}
	return nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n\n")

	b.WriteString(m.row(fieldUnit, "Unit", m.styles.Unit.Render(fmt.Sprintf("< %s >", m.snap.Unit))))
	b.WriteString(m.row(fieldDelay, "Delay", m.delay.View()))
	b.WriteString(m.row(fieldMessage, "Message", m.message.View()))
	b.WriteString(m.row(fieldWebhook, "Webhook", m.webhook.View()))
	b.WriteString("\n")

	b.WriteString(m.buttonStyle().Render(m.snap.Label))
	b.WriteString("\n")

	if m.snap.Status.Text != "" {
		style := m.styles.StatusOK
		if m.snap.Status.IsError {
			style = m.styles.StatusError
		}
		b.WriteString(style.Render(m.snap.Status.Text))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.note))
	b.WriteString("\n\n")

	help := "tab: next field • ←/→: unit • enter: send • esc: cancel • ctrl+c: quit"
	if m.save != nil {
		help += " • ctrl+s: save defaults"
	}
	b.WriteString(m.styles.Help.Render(help))
	b.WriteString("\n")
	return b.String()
}

func (m Model) row(f field, label, value string) string {
	style := m.styles.Label
	if m.focus == f {
		style = m.styles.LabelFocused
	}
	return style.Render(label) + " " + value + "\n"
}

func (m Model) buttonStyle() lipgloss.Style {
	switch {
	case m.snap.SendLocked:
		return m.styles.ButtonCounting
	case !m.snap.CanSend:
		return m.styles.ButtonDisabled
	case m.focus == fieldSend:
		return m.styles.ButtonFocused
	default:
		return m.styles.Button
	}
}
