package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestYesterday(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)

	tests := []struct {
		name     string
		now      time.Time
		loc      *time.Location
		expected time.Time
	}{
		{
			name:     "Meio do dia em UTC",
			now:      time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC),
			loc:      time.UTC,
			expected: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Virada de mês",
			now:      time.Date(2024, 3, 1, 0, 5, 0, 0, time.UTC),
			loc:      time.UTC,
			expected: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Madrugada UTC ainda é o dia anterior em São Paulo",
			now:      time.Date(2024, 3, 10, 1, 0, 0, 0, time.UTC),
			loc:      saoPaulo,
			expected: time.Date(2024, 3, 8, 0, 0, 0, 0, saoPaulo),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.expected.Equal(Yesterday(tt.now, tt.loc)))
		})
	}
}

func TestTrailingWindow(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	from, to := TrailingWindow(day, 7)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, day, to)

	from, _ = TrailingWindow(day, 0)
	assert.Equal(t, day, from)
}

func TestGenerateRunID(t *testing.T) {
	id := GenerateRunID()
	assert.Len(t, id, 10)
	assert.NotEqual(t, id, GenerateRunID())
}
