package model

import "time"

// QueueType classifies the match queue; only the listed values are supported.
type QueueType string

const (
	QueueRankedSolo  QueueType = "ranked_solo"
	QueueRankedFlex  QueueType = "ranked_flex"
	QueueNormalDraft QueueType = "normal_draft"
	QueueNormalBlind QueueType = "normal_blind"
	QueueARAM        QueueType = "aram"
	QueueClash       QueueType = "clash"
	QueueARAMClash   QueueType = "aram_clash"
	QueueArena       QueueType = "arena"
)

// Ranked reports whether season win/loss counters apply to this queue.
func (q QueueType) Ranked() bool {
	return q == QueueRankedSolo || q == QueueRankedFlex
}

// Clash reports whether this is a clash bracket queue, where rank badges are
// replaced by a mode badge since ladder progression is not tracked.
func (q QueueType) Clash() bool {
	return q == QueueClash || q == QueueARAMClash
}

// Label returns the human-readable queue name used in report headers.
func (q QueueType) Label() string {
	switch q {
	case QueueRankedSolo:
		return "Ranked Solo/Duo"
	case QueueRankedFlex:
		return "Ranked Flex"
	case QueueNormalDraft:
		return "Normal Draft"
	case QueueNormalBlind:
		return "Normal Blind"
	case QueueARAM:
		return "ARAM"
	case QueueClash:
		return "Clash"
	case QueueARAMClash:
		return "ARAM Clash"
	case QueueArena:
		return "Arena"
	}
	return string(q)
}

// Outcome is the Victory/Surrender/Defeat classification for one player.
type Outcome int

const (
	OutcomeVictory Outcome = iota
	OutcomeSurrender
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "Victory"
	case OutcomeSurrender:
		return "Surrender"
	case OutcomeDefeat:
		return "Defeat"
	}
	return "Defeat"
}

// Player is a tracked Champion plus its match-level context. Opponent and
// Teammate are lookups into the match rosters, not owned copies.
type Player struct {
	Champion *Champion

	RankBefore *Rank
	RankAfter  *Rank

	Wins            int
	Losses          int
	HasSeasonRecord bool

	Outcome Outcome

	// Opponent is the lane opponent on traditional matches; nil when no
	// enemy shares the lane. Always nil on arena players.
	Opponent *Champion
	// Teammate is the arena sub-team partner. Always nil on traditional players.
	Teammate *Champion

	// TeamID is 100/200 on traditional matches, the 1-8 sub-team id on arena.
	TeamID int
	// Placement is the 1-8 arena finish; 0 on traditional players.
	Placement int
}

// Variant tags the two match shapes.
type Variant string

const (
	VariantTraditional Variant = "traditional"
	VariantArena       Variant = "arena"
)

// Match is the canonical normalized match, a sum type over the two variants.
// The concrete types are TraditionalMatch and ArenaMatch; consumers branch
// exhaustively on Variant().
type Match interface {
	Variant() Variant
	Queue() QueueType
	GameDuration() time.Duration
	Tracked() []Player
}

// RosterSize is the number of champions on one traditional-match side.
const RosterSize = 5

// TraditionalMatch is a 5v5 match on the traditional or ARAM maps.
// Each tracked Player's team matches exactly one roster by identity.
type TraditionalMatch struct {
	Duration  time.Duration
	QueueType QueueType
	Players   []Player
	Blue      []*Champion // RosterSize entries, payload order
	Red       []*Champion // RosterSize entries, payload order
}

func (m *TraditionalMatch) Variant() Variant            { return VariantTraditional }
func (m *TraditionalMatch) Queue() QueueType            { return m.QueueType }
func (m *TraditionalMatch) GameDuration() time.Duration { return m.Duration }
func (m *TraditionalMatch) Tracked() []Player           { return m.Players }

// ArenaTeamCount is the fixed number of sub-teams in an arena match.
const ArenaTeamCount = 8

// ArenaTeam is a 2-champion sub-team with a shared final placement.
type ArenaTeam struct {
	Subteam   int // 1..8
	Placement int // 1..8, unique across the match
	Champions [2]*Champion
}

// ArenaMatch is an 8x2 arena match. Teams holds exactly ArenaTeamCount
// entries sorted by sub-team id, and their placements form a permutation
// of 1..8.
type ArenaMatch struct {
	Duration time.Duration
	Players  []Player
	Teams    []ArenaTeam
}

func (m *ArenaMatch) Variant() Variant            { return VariantArena }
func (m *ArenaMatch) Queue() QueueType            { return QueueArena }
func (m *ArenaMatch) GameDuration() time.Duration { return m.Duration }
func (m *ArenaMatch) Tracked() []Player           { return m.Players }
