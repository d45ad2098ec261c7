package leaderboard

// roster is the bundled reference peer set. It is never modified; Roster
// hands out copies.
//
//nolint:gochecknoglobals // Read-only reference data.
var roster = []Entry{
	{Name: "EcoWarrior_99", Score: 98, Avatar: "🥑"},
	{Name: "GreenLeaf_JH", Score: 94, Avatar: "🌿"},
	{Name: "SolarPioneer", Score: 91, Avatar: "☀️"},
	{Name: "CycleChamp", Score: 87, Avatar: "🚲"},
	{Name: "WaterSaver_01", Score: 82, Avatar: "💧"},
	{Name: "EarthFriend_22", Score: 79, Avatar: "🌳"},
	{Name: "BioQueen", Score: 76, Avatar: "🌸"},
	{Name: "ZeroWaste_Max", Score: 74, Avatar: "♻️"},
	{Name: "WindRider", Score: 71, Avatar: "🪁"},
	{Name: "SunGazer", Score: 68, Avatar: "🌻"},
	{Name: "NatureBoy_XT", Score: 65, Avatar: "🍄"},
	{Name: "GreenSpirit", Score: 62, Avatar: "🧚"},
	{Name: "OceanGuardian", Score: 58, Avatar: "🌊"},
	{Name: "CompostKing", Score: 55, Avatar: "🍂"},
	{Name: "BusRider_Prime", Score: 52, Avatar: "🚌"},
}

// Roster returns a copy of the reference roster.
func Roster() []Entry {
	out := make([]Entry, len(roster))
	copy(out, roster)
	return out
}

// Spot is a neighbourhood adoption hotspot shown next to the ranking.
type Spot struct {
	ID      string
	Type    string
	Action  string
	Impact  int
	Icon    string
	Insight string
}

// CommunitySpots returns the fixed neighbourhood gap-analysis narratives.
func CommunitySpots() []Spot {
	return []Spot{
		{
			ID: "solar-spot", Type: "Solar", Action: "Rooftop Solar", Impact: 88, Icon: "🔆",
			Insight: "60% of homes here use Solar. You haven't estimated your rooftop potential yet!",
		},
		{
			ID: "water-spot", Type: "Water", Action: "Greywater Recycle", Impact: 72, Icon: "💧",
			Insight: "Neighbors save 200L daily using greywater. Check your water logs to find saving gaps.",
		},
		{
			ID: "waste-spot", Type: "Waste", Action: "Zero Waste Home", Impact: 95, Icon: "🗑️",
			Insight: "The 3-bin system is standard here. Your segregation score can be improved in the Sort tab.",
		},
		{
			ID: "transport-spot", Type: "Transport", Action: "Cycle Commute", Impact: 82, Icon: "🚲",
			Insight: "Cycling is up 40% in this sector. Try swapping 1 car trip for a bike ride.",
		},
	}
}
