package insight

import "time"

// StreakAnchor names which day a streak must reach to count. Two call sites
// need different semantics, so the mode is always passed explicitly — it is
// never inferred from whether "today" happens to appear in the input.
type StreakAnchor string

const (
	// AnchorToday requires a record for today; without one the streak is 0.
	// Used at check-in time.
	AnchorToday StreakAnchor = "expect-today"
	// AnchorYesterday starts counting at yesterday so an in-progress streak is
	// not zeroed before today's check-in lands. A record for today still
	// counts at the front of the run. Used by dashboard projections.
	AnchorYesterday StreakAnchor = "expect-yesterday"
)

// Guard against corrupted data producing unbounded walks. Hitting the cap is a
// hard stop, not an error.
const maxStreakDays = 365

// CurrentStreak counts consecutive days with a record, walking backward from
// the anchor day. Input dates may arrive in any order and with duplicates;
// time-of-day is stripped before comparison.
func CurrentStreak(dates []time.Time, anchor StreakAnchor, now time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	days := make(map[int64]struct{}, len(dates))
	for _, d := range dates {
		days[dayKey(d)] = struct{}{}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := today
	if anchor == AnchorYesterday {
		if _, ok := days[dayKey(today)]; !ok {
			start = today.AddDate(0, 0, -1)
		}
	} else {
		if _, ok := days[dayKey(today)]; !ok {
			return 0
		}
	}

	streak := 0
	for d := start; streak < maxStreakDays; d = d.AddDate(0, 0, -1) {
		if _, ok := days[dayKey(d)]; !ok {
			break
		}
		streak++
	}
	return streak
}

func dayKey(t time.Time) int64 {
	y, m, d := t.Date()
	return int64(y)*10000 + int64(m)*100 + int64(d)
}
