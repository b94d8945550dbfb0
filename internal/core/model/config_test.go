package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationPositiveForAllModes(t *testing.T) {
	config := DefaultConfiguration()
	for _, mode := range Modes {
		assert.Greater(t, config.Duration(mode), time.Duration(0), "mode %s", mode)
	}
}

func TestDurationConvertsMinutes(t *testing.T) {
	config := Configuration{WorkMinutes: 25, BreakMinutes: 5, LongBreakMinutes: 15, CyclesToLong: 4}

	assert.Equal(t, 25*60000*time.Millisecond, config.Duration(ModeWork))
	assert.Equal(t, 5*time.Minute, config.Duration(ModeBreak))
	assert.Equal(t, 15*time.Minute, config.Duration(ModeLongBreak))
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input Configuration
		want  Configuration
	}{
		{
			name:  "zero value gets defaults",
			input: Configuration{},
			want: Configuration{
				WorkMinutes:      DefaultWorkMinutes,
				BreakMinutes:     DefaultBreakMinutes,
				LongBreakMinutes: DefaultLongBreakMinutes,
				CyclesToLong:     DefaultCyclesToLong,
			},
		},
		{
			name:  "negative values replaced",
			input: Configuration{WorkMinutes: -1, BreakMinutes: 3, LongBreakMinutes: -5, CyclesToLong: -2, AutoStart: true},
			want: Configuration{
				WorkMinutes:      DefaultWorkMinutes,
				BreakMinutes:     3,
				LongBreakMinutes: DefaultLongBreakMinutes,
				CyclesToLong:     DefaultCyclesToLong,
				AutoStart:        true,
			},
		},
		{
			name:  "valid values kept even outside slider bounds",
			input: Configuration{WorkMinutes: 200, BreakMinutes: 1, LongBreakMinutes: 1, CyclesToLong: 12, VibrateOnEnd: true},
			want:  Configuration{WorkMinutes: 200, BreakMinutes: 1, LongBreakMinutes: 1, CyclesToLong: 12, VibrateOnEnd: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.Sanitize())
		})
	}
}

func TestParseMode(t *testing.T) {
	mode, ok := ParseMode("Long break")
	assert.True(t, ok)
	assert.Equal(t, ModeLongBreak, mode)

	mode, ok = ParseMode("break")
	assert.True(t, ok)
	assert.Equal(t, ModeBreak, mode)

	_, ok = ParseMode("nap")
	assert.False(t, ok)
}

func TestRangeClamp(t *testing.T) {
	assert.Equal(t, 10, Bounds.Work.Clamp(3))
	assert.Equal(t, 120, Bounds.Work.Clamp(500))
	assert.Equal(t, 4, Bounds.Cycles.Clamp(4))
}
