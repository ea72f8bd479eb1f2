package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrentWeek(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"first day of month", time.Date(2026, 2, 1, 12, 0, 0, 0, KST), "26-02-w1"},
		{"day seven is still week one", time.Date(2026, 2, 7, 12, 0, 0, 0, KST), "26-02-w1"},
		{"day eight starts week two", time.Date(2026, 2, 8, 12, 0, 0, 0, KST), "26-02-w2"},
		{"fifth week", time.Date(2026, 1, 29, 12, 0, 0, 0, KST), "26-01-w5"},
		// 15:30 UTC Dec 31 is 00:30 KST Jan 1: the KST calendar decides
		{"utc date rolls over in KST", time.Date(2025, 12, 31, 15, 30, 0, 0, time.UTC), "26-01-w1"},
		{"utc date not yet rolled", time.Date(2025, 12, 31, 14, 30, 0, 0, time.UTC), "25-12-w5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrentWeek(tt.now))
		})
	}
}

func TestIsValidWeek(t *testing.T) {
	valid := []string{"26-02-w1", "25-12-w5", "26-01-w10"}
	for _, week := range valid {
		assert.True(t, IsValidWeek(week), week)
	}

	invalid := []string{"", "26-2-w1", "2026-02-w1", "26-02-1", "26-02-wx", "26-02-w1/extra"}
	for _, week := range invalid {
		assert.False(t, IsValidWeek(week), week)
	}
}

func TestKSTDate(t *testing.T) {
	// 23:00 UTC Feb 2 is 08:00 KST Feb 3
	assert.Equal(t, "2026-02-03", KSTDate(time.Date(2026, 2, 2, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-02-02", KSTDate(time.Date(2026, 2, 2, 3, 0, 0, 0, time.UTC)))
}
