package dateutil

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	genesis := time.Date(2009, 1, 3, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		to   time.Time
		want int
	}{
		{time.Date(2009, 1, 3, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(2009, 1, 4, 0, 0, 0, 0, time.UTC), 1},
		{time.Date(2010, 1, 3, 0, 0, 0, 0, time.UTC), 365},
		{time.Date(2009, 1, 2, 0, 0, 0, 0, time.UTC), -1},
	}
	for _, tt := range tests {
		if got := DaysBetween(genesis, tt.to); got != tt.want {
			t.Errorf("DaysBetween(genesis, %v) = %d, want %d", tt.to, got, tt.want)
		}
	}
}
