package schedule

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Unit is the time unit a delay was entered in.
type Unit string

const (
	UnitNone    Unit = ""
	UnitSeconds Unit = "seconds"
	UnitMinutes Unit = "minutes"
	UnitHours   Unit = "hours"
)

// Units lists the selectable units in display order.
var Units = []Unit{UnitSeconds, UnitMinutes, UnitHours}

// ErrUnknownUnit is returned by ParseUnit for anything but seconds, minutes or hours.
var ErrUnknownUnit = errors.New("unknown delay unit")

// DefaultLabel is the send control text when no delay is staged.
const DefaultLabel = "Send"

// ParseUnit maps a user or config string to a Unit.
func ParseUnit(value string) (Unit, error) {
	switch Unit(strings.ToLower(strings.TrimSpace(value))) {
	case UnitSeconds:
		return UnitSeconds, nil
	case UnitMinutes:
		return UnitMinutes, nil
	case UnitHours:
		return UnitHours, nil
	}
	return UnitNone, fmt.Errorf("%w: %q", ErrUnknownUnit, value)
}

// ParseDelay reads the raw delay field. Anything that is not a non-negative
// integer counts as 0.
func ParseDelay(raw string) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 0 {
		return 0
	}
	return value
}

// ToSeconds converts value in unit to seconds. Negative results clamp to 0.
func ToSeconds(value int, unit Unit) int {
	var secs int
	switch unit {
	case UnitMinutes:
		secs = value * 60
	case UnitHours:
		secs = value * 3600
	default:
		secs = value
	}
	if secs < 0 {
		return 0
	}
	return secs
}

// FormatRemaining renders a remaining-seconds count for unit: a plain number
// for seconds, MM:SS for minutes and HH:MM:SS for hours.
func FormatRemaining(secs int, unit Unit) string {
	if secs < 0 {
		secs = 0
	}
	switch unit {
	case UnitMinutes:
		return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
	case UnitHours:
		return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
	default:
		return strconv.Itoa(secs)
	}
}

// ButtonLabel is the text of the send control for the given remaining seconds.
func ButtonLabel(secs int, unit Unit) string {
	if secs <= 0 || unit == UnitNone {
		return DefaultLabel
	}
	return fmt.Sprintf("Send in %s %s", FormatRemaining(secs, unit), unit)
}

// Request is built from the current inputs at the moment a countdown completes.
type Request struct {
	DelaySeconds int
	Unit         Unit
	Message      string
	WebhookURL   string
}

// Payload is the JSON body the relay endpoint accepts.
type Payload struct {
	Text    string `json:"text"`
	Webhook string `json:"webhook"`
}

// Payload prefixes the message with the sender label.
func (r Request) Payload(senderLabel string) Payload {
	return Payload{
		Text:    "From " + senderLabel + ": " + r.Message,
		Webhook: r.WebhookURL,
	}
}

// DispatchResult is the outcome of one relay call. A new dispatch replaces the
// previous result; nothing is kept.
type DispatchResult struct {
	Success      bool
	ErrorMessage string
}

// IDispatcher delivers a payload through the relay. A non-nil error means the
// relay could not be reached or answered something unreadable.
type IDispatcher interface {
	Dispatch(ctx context.Context, payload Payload) (DispatchResult, error)
}
