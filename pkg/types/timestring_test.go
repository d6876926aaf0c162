package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTimeStringFromString(t *testing.T) {
	valid := []string{"00:00", "09:30", "18:00", "23:59"}
	for _, s := range valid {
		ts, err := NewTimeStringFromString(s)
		assert.NoError(t, err, s)
		assert.Equal(t, s, ts.String())
	}

	invalid := []string{"", "24:00", "12:60", "9:30pm", "18.00", "noon"}
	for _, s := range invalid {
		_, err := NewTimeStringFromString(s)
		assert.ErrorIs(t, err, ErrInvalidTimeString, s)
	}
}

func TestNewTimeString_TruncatesToMinute(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 10, 3, 18, 45, 59, 0, time.UTC))
	assert.Equal(t, "18:45", ts.String())
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("18:00").IsZero())
}
