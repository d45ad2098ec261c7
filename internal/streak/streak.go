// Package streak tracks consecutive-day habit streaks.
//
// A streak advances when a habit is logged the day after its last log,
// restarts at 1 after any gap, and ignores repeat logs on the same day.
// Breaks are detected lazily: a stale counter stays stored and is only shown
// as zero until the next log overwrites it.
package streak

// Streak is the stored state of one habit.
// Current is 0 whenever LastLogDate is unset.
type Streak struct {
	Current     int  `json:"current_streak"`
	LastLogDate Date `json:"last_log_date"`
}

// State is the observable condition of a streak on a given day.
type State string

const (
	// StateUnset means the habit was never logged.
	StateUnset State = "unset"
	// StateActiveToday means the habit was logged today.
	StateActiveToday State = "active_today"
	// StateActiveYesterday means today's log is still pending but the streak holds.
	StateActiveYesterday State = "active_yesterday"
	// StateStale means a day was missed; the streak shows as 0.
	StateStale State = "stale"
)

// Log records the habit for today and returns the next state.
func Log(s Streak, today Date) Streak {
	switch {
	case !s.LastLogDate.IsZero() && s.LastLogDate == today:
		return s
	case !s.LastLogDate.IsZero() && s.LastLogDate == today.AddDays(-1):
		return Streak{Current: s.Current + 1, LastLogDate: today}
	default:
		return Streak{Current: 1, LastLogDate: today}
	}
}

// StateOf classifies s as seen on today.
func StateOf(s Streak, today Date) State {
	switch {
	case s.LastLogDate.IsZero():
		return StateUnset
	case s.LastLogDate == today:
		return StateActiveToday
	case s.LastLogDate == today.AddDays(-1):
		return StateActiveYesterday
	default:
		return StateStale
	}
}

// IsBroken reports whether s was logged but neither today nor yesterday.
func IsBroken(s Streak, today Date) bool {
	return StateOf(s, today) == StateStale
}

// Displayed is the streak count to show on today: 0 when broken or unset.
// The stored counter is not modified.
func Displayed(s Streak, today Date) int {
	switch StateOf(s, today) {
	case StateActiveToday, StateActiveYesterday:
		return s.Current
	default:
		return 0
	}
}

// Normalize enforces the invariant that an unset streak counts 0.
func Normalize(s Streak) Streak {
	if s.LastLogDate.IsZero() || s.Current < 0 {
		return Streak{LastLogDate: s.LastLogDate}
	}
	return s
}
