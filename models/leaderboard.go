package models

// LeaderboardEntry is a read-only projection of a user's streak, built
// at query time and never persisted.
type LeaderboardEntry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Streak int    `json:"streak"`
}

// Leaderboard is the top slice plus the requesting user's 1-based
// position within the full descending-streak ordering.
type Leaderboard struct {
	Entries    []LeaderboardEntry `json:"entries"`
	Position   int                `json:"position"`
	TotalUsers int                `json:"total_users"`
}
