package model

import "fmt"

// Rank is a ranked-ladder snapshot at a point in time.
type Rank struct {
	Tier     string // IRON .. CHALLENGER
	Division string // I, II, III, IV; empty for apex tiers
	LP       int
}

// String renders the snapshot like "GOLD II 40 LP".
func (r Rank) String() string {
	if r.Division == "" {
		return fmt.Sprintf("%s %d LP", r.Tier, r.LP)
	}
	return fmt.Sprintf("%s %s %d LP", r.Tier, r.Division, r.LP)
}

// TrackedPlayer identifies a player the bot follows, plus the ranked context
// the caller fetched around the match. Rank pointers are nil when the queue
// has no progression or the fetch was skipped.
type TrackedPlayer struct {
	PUUID    string
	GameName string
	TagLine  string

	RankBefore *Rank
	RankAfter  *Rank

	// Season win/loss counters; meaningful for ranked solo/flex only.
	Wins            int
	Losses          int
	HasSeasonRecord bool
}

// RiotID returns the "Name#Tag" identity string.
func (t TrackedPlayer) RiotID() string {
	if t.TagLine == "" {
		return t.GameName
	}
	return t.GameName + "#" + t.TagLine
}
