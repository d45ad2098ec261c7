package streak

import (
	"fmt"
	"strings"
)

// Habit identifies a tracked daily habit.
type Habit string

const (
	HabitCarFree     Habit = "carFree"
	HabitShortShower Habit = "shortShower"
	HabitPlasticFree Habit = "plasticFree"
	HabitBikeCommute Habit = "bikeCommute"
)

// HabitInfo is the display metadata of a habit.
type HabitInfo struct {
	Habit  Habit
	Title  string
	Icon   string
	Impact string
}

// Habits lists the tracked habits in display order.
func Habits() []HabitInfo {
	return []HabitInfo{
		{Habit: HabitBikeCommute, Title: "Bike Commute", Icon: "🚲", Impact: "1.5kg CO₂/day"},
		{Habit: HabitCarFree, Title: "Car-Free Commute", Icon: "🚌", Impact: "1.5kg CO₂/day"},
		{Habit: HabitShortShower, Title: "5-Minute Shower", Icon: "🚿", Impact: "45L Water/day"},
		{Habit: HabitPlasticFree, Title: "Zero Plastic Use", Icon: "🛍️", Impact: "0.2kg CO₂/day"},
	}
}

// ParseHabit matches a habit id case-insensitively; dashes and underscores are ignored.
func ParseHabit(s string) (Habit, error) {
	norm := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	for _, h := range Habits() {
		if strings.ToLower(string(h.Habit)) == norm {
			return h.Habit, nil
		}
	}
	return "", fmt.Errorf("unknown habit %q", s)
}

// IsTracked reports whether h is one of the habits listed by Habits.
func IsTracked(h Habit) bool {
	for _, info := range Habits() {
		if info.Habit == h {
			return true
		}
	}
	return false
}

// Book holds one streak per habit.
type Book map[Habit]Streak

// NewBook returns a book with every habit unset.
func NewBook() Book {
	b := make(Book, len(Habits()))
	for _, h := range Habits() {
		b[h.Habit] = Streak{}
	}
	return b
}

// Clone returns an independent copy of b.
func (b Book) Clone() Book {
	out := make(Book, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Log returns a new book with habit logged on today. b is not modified.
// Untracked habits are ignored.
func (b Book) Log(habit Habit, today Date) Book {
	out := b.Clone()
	if !IsTracked(habit) {
		return out
	}
	out[habit] = Log(b[habit], today)
	return out
}

// TotalPoints sums the stored counters, stale ones included.
func (b Book) TotalPoints() int {
	total := 0
	for _, s := range b {
		total += s.Current
	}
	return total
}

// Level names the maturity tier for a point total.
func Level(points int) string {
	switch {
	case points > 50:
		return "Planetary Guardian"
	case points > 20:
		return "Eco Warrior"
	case points > 5:
		return "Green Seedling"
	default:
		return "Observer"
	}
}
