package service

import (
	"sort"

	"sql-arena/internal/domain"
)

// risingStarThreshold is the score above which the current learner earns
// their first badge on the board.
const risingStarThreshold = 1000

// mockEntries is the fixed cast the current learner competes against. The
// board is presentation-only; nothing here is persisted.
var mockEntries = []domain.LeaderboardEntry{
	{Name: "Alice_DBA", Score: 2500, Badges: []string{"Query God"}},
	{Name: "Bob_Builder", Score: 2100, Badges: []string{"Join Master"}},
	{Name: "Charlie_SQL", Score: 1850, Badges: []string{}},
	{Name: "Data_Diana", Score: 1600, Badges: []string{"Window Wizard"}},
	{Name: "Index_Ian", Score: 1200, Badges: []string{}},
}

// LeaderboardService computes the displayed ranking by merging the mock
// entries with the current profile.
type LeaderboardService struct{}

// NewLeaderboardService creates a new LeaderboardService.
func NewLeaderboardService() *LeaderboardService {
	return &LeaderboardService{}
}

// Compute returns all entries sorted descending by score with 1-based ranks
// assigned. The ranking is recomputed on every call.
func (s *LeaderboardService) Compute(profile domain.UserProfile) []domain.LeaderboardEntry {
	name := profile.Name
	if name == "" {
		name = "You"
	}
	badges := []string{}
	if profile.CurrentScore > risingStarThreshold {
		badges = append(badges, "Rising Star")
	}

	entries := make([]domain.LeaderboardEntry, 0, len(mockEntries)+1)
	entries = append(entries, mockEntries...)
	entries = append(entries, domain.LeaderboardEntry{
		Name:   name,
		Score:  profile.CurrentScore,
		Badges: badges,
	})

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
