package scheduler

import (
	"errors"

	"slack-delay-sender/src/domain/schedule"
)

// Phase is where the send workflow currently is.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseCounting Phase = "counting"
	// PhaseFired means the countdown hit zero and a dispatch is in flight.
	PhaseFired Phase = "fired"
)

const (
	StatusSent             = "Message sent to Slack!"
	StatusTransportFailure = "Error sending slack message check your configuration"
)

var (
	// ErrSendUnavailable is returned by Start while the send gate is closed.
	ErrSendUnavailable = errors.New("send unavailable: message, webhook url and a positive delay are required")
	// ErrCountdownRunning is returned when the delay is edited outside Idle.
	ErrCountdownRunning = errors.New("countdown in progress")
	// ErrNotDispatching is returned by Complete when no dispatch is in flight.
	ErrNotDispatching = errors.New("no dispatch in flight")
)

// Status is the one-line message shown to the user.
type Status struct {
	Text    string
	IsError bool
}

// TransportFailure is the result used when the relay could not be reached.
func TransportFailure() schedule.DispatchResult {
	return schedule.DispatchResult{Success: false, ErrorMessage: StatusTransportFailure}
}

// Snapshot is a read-only copy of the machine plus its derived gate state.
type Snapshot struct {
	Phase      Phase
	Unit       schedule.Unit
	DelayValue int
	Remaining  int
	Message    string
	WebhookURL string
	Status     Status
	Label      string
	CanSend    bool
	SendLocked bool
}

// Machine is the send workflow reducer. Each exported method is one event.
// It is not safe for concurrent use; Scheduler serializes access.
type Machine struct {
	unit       schedule.Unit
	delayValue int
	remaining  int
	startedAt  int
	message    string
	webhookURL string
	phase      Phase
	status     Status
}

// NewMachine starts Idle with seconds selected.
func NewMachine() *Machine {
	return &Machine{
		unit:  schedule.UnitSeconds,
		phase: PhaseIdle,
	}
}

// SetUnit changes the unit. While Idle a staged delay is reconverted; during
// a countdown only the label formatting changes. Once a countdown has reached
// zero nothing is staged until SetDelay is called again.
func (m *Machine) SetUnit(unit schedule.Unit) {
	m.unit = unit
	if m.phase == PhaseIdle {
		m.remaining = schedule.ToSeconds(m.delayValue, unit)
	}
}

// SetDelay stages a new delay from the raw field value.
func (m *Machine) SetDelay(raw string) error {
	if m.phase != PhaseIdle {
		return ErrCountdownRunning
	}
	m.delayValue = schedule.ParseDelay(raw)
	m.remaining = schedule.ToSeconds(m.delayValue, m.unit)
	return nil
}

// SetMessage is accepted in every phase. The value at zero is what gets sent.
func (m *Machine) SetMessage(message string) {
	m.message = message
}

// SetWebhookURL is accepted in every phase. The value at zero is what gets sent.
func (m *Machine) SetWebhookURL(url string) {
	m.webhookURL = url
}

// SendLocked reports whether a countdown or dispatch holds the send control.
func (m *Machine) SendLocked() bool {
	return m.phase != PhaseIdle
}

// CanSend is the send gate.
func (m *Machine) CanSend() bool {
	return m.phase == PhaseIdle && m.remaining > 0 && m.message != "" && m.webhookURL != ""
}

// Start moves Idle to Counting.
func (m *Machine) Start() error {
	if !m.CanSend() {
		return ErrSendUnavailable
	}
	m.startedAt = m.remaining
	m.phase = PhaseCounting
	return nil
}

// Tick consumes one elapsed second. It returns the request to dispatch exactly
// once, on the tick that reaches zero with both message and url present. A
// zero reached with either one empty stops the countdown without a dispatch.
// Ticks outside Counting are ignored.
func (m *Machine) Tick() (*schedule.Request, bool) {
	if m.phase != PhaseCounting {
		return nil, false
	}
	if m.remaining > 0 {
		m.remaining--
	}
	if m.remaining > 0 {
		return nil, false
	}
	m.delayValue = 0

	if m.message == "" || m.webhookURL == "" {
		m.phase = PhaseIdle
		return nil, false
	}

	m.phase = PhaseFired
	return &schedule.Request{
		DelaySeconds: m.startedAt,
		Unit:         m.unit,
		Message:      m.message,
		WebhookURL:   m.webhookURL,
	}, true
}

// Cancel abandons a running countdown. The remaining seconds are kept.
func (m *Machine) Cancel() bool {
	if m.phase != PhaseCounting {
		return false
	}
	m.phase = PhaseIdle
	return true
}

// Complete applies the dispatch outcome and returns to Idle. The remaining
// seconds stay at zero until the user enters a delay again.
func (m *Machine) Complete(result schedule.DispatchResult) error {
	if m.phase != PhaseFired {
		return ErrNotDispatching
	}
	m.phase = PhaseIdle

	if result.Success {
		m.status = Status{Text: StatusSent}
		m.message = ""
		m.webhookURL = ""
		return nil
	}

	text := result.ErrorMessage
	if text == "" {
		text = StatusTransportFailure
	}
	m.status = Status{Text: text, IsError: true}
	return nil
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Snapshot copies the state.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Phase:      m.phase,
		Unit:       m.unit,
		DelayValue: m.delayValue,
		Remaining:  m.remaining,
		Message:    m.message,
		WebhookURL: m.webhookURL,
		Status:     m.status,
		Label:      schedule.ButtonLabel(m.remaining, m.unit),
		CanSend:    m.CanSend(),
		SendLocked: m.SendLocked(),
	}
}
