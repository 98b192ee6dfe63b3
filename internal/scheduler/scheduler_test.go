package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPreviousPeriod(t *testing.T) {
	cases := []struct {
		now       time.Time
		wantYear  int
		wantMonth int
	}{
		{time.Date(2025, time.March, 31, 12, 0, 0, 0, time.UTC), 2025, 2},
		{time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), 2024, 12},
		{time.Date(2025, time.July, 15, 8, 30, 0, 0, time.UTC), 2025, 6},
		{time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), 2024, 2},
	}
	for _, c := range cases {
		year, month := previousPeriod(c.now)
		assert.Equal(t, c.wantYear, year, "рік для %s", c.now)
		assert.Equal(t, c.wantMonth, month, "місяць для %s", c.now)
	}
}
