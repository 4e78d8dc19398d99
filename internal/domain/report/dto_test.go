package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	start, end, err := ParseDateRange("2025-03-01", "2025-03-31")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), end)
}

func TestParseDateRange_SameDay(t *testing.T) {
	start, end, err := ParseDateRange("2025-03-10", "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, start, end)
}

func TestParseDateRange_Invalid(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
	}{
		{"empty start", "", "2025-03-31"},
		{"empty end", "2025-03-01", ""},
		{"malformed start", "03/01/2025", "2025-03-31"},
		{"malformed end", "2025-03-01", "2025-3-31"},
		{"end before start", "2025-03-31", "2025-03-01"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := ParseDateRange(c.start, c.end)
			assert.Error(t, err)
		})
	}
}
