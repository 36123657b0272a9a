package schedule

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSeconds(t *testing.T) {
	for _, value := range []int{0, 1, 5, 59, 60, 3600, 86400} {
		assert.Equal(t, value, ToSeconds(value, UnitSeconds))
		assert.Equal(t, value*60, ToSeconds(value, UnitMinutes))
		assert.Equal(t, value*3600, ToSeconds(value, UnitHours))
	}
}

func TestToSeconds_ClampsNegative(t *testing.T) {
	assert.Equal(t, 0, ToSeconds(-3, UnitSeconds))
	assert.Equal(t, 0, ToSeconds(-3, UnitHours))
}

func TestParseDelay(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"3", 3},
		{" 42 ", 42},
		{"", 0},
		{"abc", 0},
		{"-7", 0},
		{"1.5", 0},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDelay(tt.raw))
		})
	}
}

func TestParseUnit(t *testing.T) {
	unit, err := ParseUnit(" Minutes ")
	assert.NoError(t, err)
	assert.Equal(t, UnitMinutes, unit)

	_, err = ParseUnit("days")
	assert.True(t, errors.Is(err, ErrUnknownUnit))
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		name string
		secs int
		unit Unit
		want string
	}{
		{"seconds plain", 3, UnitSeconds, "3"},
		{"minutes padded", 5, UnitMinutes, "00:05"},
		{"minutes full", 125, UnitMinutes, "02:05"},
		{"minutes overflow hour", 3600, UnitMinutes, "60:00"},
		{"hours one", 3600, UnitHours, "01:00:00"},
		{"hours ticked", 3599, UnitHours, "00:59:59"},
		{"hours mixed", 3723, UnitHours, "01:02:03"},
		{"negative", -1, UnitHours, "00:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatRemaining(tt.secs, tt.unit)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, FormatRemaining(tt.secs, tt.unit))
		})
	}
}

func TestButtonLabel(t *testing.T) {
	assert.Equal(t, "Send in 3 seconds", ButtonLabel(3, UnitSeconds))
	assert.Equal(t, "Send in 00:05 minutes", ButtonLabel(5, UnitMinutes))
	assert.Equal(t, "Send in 01:00:00 hours", ButtonLabel(3600, UnitHours))
	assert.Equal(t, DefaultLabel, ButtonLabel(0, UnitHours))
	assert.Equal(t, DefaultLabel, ButtonLabel(10, UnitNone))
}

func TestRequest_Payload(t *testing.T) {
	r := Request{Message: "hi", WebhookURL: "https://hooks.example/abc"}
	assert.Equal(t, Payload{Text: "From Bot: hi", Webhook: "https://hooks.example/abc"}, r.Payload("Bot"))
}
