package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rshade/ecotrack/internal/streak"
)

// Streaks renders every habit with its displayed streak on today.
func (r Renderer) Streaks(book streak.Book, today streak.Date) string {
	var b strings.Builder
	b.WriteString(r.header("Habit streaks"))
	for _, h := range streak.Habits() {
		s := book[h.Habit]
		days := streak.Displayed(s, today)
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %-18s ", h.Icon, h.Title))
		b.WriteString(r.value(fmt.Sprintf("%3d", days)))
		b.WriteString(r.style(LabelStyle, " days  "))
		b.WriteString(r.streakState(streak.StateOf(s, today)))
		b.WriteString(r.style(SubtleStyle, "  "+h.Impact))
	}
	points := book.TotalPoints()
	b.WriteString("\n\n")
	b.WriteString(r.line("Total points", r.value(strconv.Itoa(points))))
	b.WriteString("\n")
	b.WriteString(r.line("Level", r.style(HighlightStyle, streak.Level(points))))
	return r.box(b.String())
}

func (r Renderer) streakState(st streak.State) string {
	switch st {
	case streak.StateActiveToday:
		return r.style(OKStyle, "logged today")
	case streak.StateActiveYesterday:
		return r.style(WarningStyle, "log today to keep it")
	case streak.StateStale:
		return r.style(CriticalStyle, "streak broken")
	default:
		return r.style(SubtleStyle, "not started")
	}
}
