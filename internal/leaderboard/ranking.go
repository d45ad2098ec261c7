// Package leaderboard ranks the live user against a bundled peer roster.
package leaderboard

import "sort"

// User entry presentation.
const (
	UserName   = "YOU"
	UserAvatar = "👤"
)

// Entry is one row of a ranking. Rank is 1-based and only set in a Ranking.
type Entry struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Avatar string `json:"avatar"`
	IsUser bool   `json:"is_user"`
	Rank   int    `json:"rank"`
}

// Ranking is a descending-by-score sequence with exactly one user entry.
type Ranking []Entry

// Rank merges the user score into peers and orders by score, highest first.
// Ties keep insertion order, and the user is inserted after every peer, so a
// peer with the same score always ranks ahead of the user. Peer entries
// flagged IsUser are treated as peers.
func Rank(peers []Entry, userScore int) Ranking {
	list := make(Ranking, 0, len(peers)+1)
	for _, p := range peers {
		p.IsUser = false
		list = append(list, p)
	}
	list = append(list, Entry{Name: UserName, Score: userScore, Avatar: UserAvatar, IsUser: true})

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Score > list[j].Score
	})
	for i := range list {
		list[i].Rank = i + 1
	}
	return list
}

// UserRank returns the 1-based rank of the user entry, or 0 if absent.
func (r Ranking) UserRank() int {
	for _, e := range r {
		if e.IsUser {
			return e.Rank
		}
	}
	return 0
}

// User returns the user entry.
func (r Ranking) User() (Entry, bool) {
	for _, e := range r {
		if e.IsUser {
			return e, true
		}
	}
	return Entry{}, false
}

// Top returns the first n entries.
func (r Ranking) Top(n int) Ranking {
	if n < 0 {
		n = 0
	}
	if n > len(r) {
		n = len(r)
	}
	return r[:n:n]
}
