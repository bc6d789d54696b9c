package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var streakNow = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return streakNow.AddDate(0, 0, -n)
}

func TestCurrentStreakStopsAtGap(t *testing.T) {
	dates := []time.Time{daysAgo(0), daysAgo(1), daysAgo(2), daysAgo(4)}
	assert.Equal(t, 3, CurrentStreak(dates, AnchorToday, streakNow))
}

func TestCurrentStreakEmpty(t *testing.T) {
	assert.Equal(t, 0, CurrentStreak(nil, AnchorToday, streakNow))
	assert.Equal(t, 0, CurrentStreak(nil, AnchorYesterday, streakNow))
}

func TestCurrentStreakTodayRequiredInTodayMode(t *testing.T) {
	dates := []time.Time{daysAgo(1), daysAgo(2), daysAgo(3)}
	assert.Equal(t, 0, CurrentStreak(dates, AnchorToday, streakNow))
}

func TestCurrentStreakYesterdayModeSurvivesMissingToday(t *testing.T) {
	dates := []time.Time{daysAgo(1), daysAgo(2), daysAgo(3)}
	assert.Equal(t, 3, CurrentStreak(dates, AnchorYesterday, streakNow))
}

func TestCurrentStreakYesterdayModeCountsTodayWhenPresent(t *testing.T) {
	dates := []time.Time{daysAgo(0), daysAgo(1)}
	assert.Equal(t, 2, CurrentStreak(dates, AnchorYesterday, streakNow))
}

func TestCurrentStreakUnorderedInput(t *testing.T) {
	dates := []time.Time{daysAgo(2), daysAgo(0), daysAgo(1)}
	assert.Equal(t, 3, CurrentStreak(dates, AnchorToday, streakNow))
}

func TestCurrentStreakDuplicatesDoNotDoubleCount(t *testing.T) {
	dates := []time.Time{
		daysAgo(0),
		daysAgo(0).Add(2 * time.Hour),
		daysAgo(1),
		daysAgo(1).Add(-3 * time.Hour),
	}
	assert.Equal(t, 2, CurrentStreak(dates, AnchorToday, streakNow))
}

func TestCurrentStreakTimeOfDayStripped(t *testing.T) {
	dates := []time.Time{
		time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC),
		time.Date(2025, 6, 14, 0, 0, 1, 0, time.UTC),
	}
	assert.Equal(t, 2, CurrentStreak(dates, AnchorToday, streakNow))
}

func TestCurrentStreakCapped(t *testing.T) {
	dates := make([]time.Time, 0, 500)
	for i := 0; i < 500; i++ {
		dates = append(dates, daysAgo(i))
	}
	assert.Equal(t, maxStreakDays, CurrentStreak(dates, AnchorToday, streakNow))
}
