// Package classify holds the pure classification rules applied during match
// normalization and report composition: outcome, rank movement, lane pairing
// and placement styling. Everything here is stateless.
package classify

import (
	"github.com/riftcard/riftcard/internal/domain/model"
)

// tierOrder ranks ladder tiers for comparison (higher index = higher tier).
var tierOrder = map[string]int{
	"IRON":        0,
	"BRONZE":      1,
	"SILVER":      2,
	"GOLD":        3,
	"PLATINUM":    4,
	"EMERALD":     5,
	"DIAMOND":     6,
	"MASTER":      7,
	"GRANDMASTER": 8,
	"CHALLENGER":  9,
}

// divisionOrder ranks divisions within a tier; I is the highest. Apex tiers
// report no division, which sorts above division I.
var divisionOrder = map[string]int{
	"IV":  0,
	"III": 1,
	"II":  2,
	"I":   3,
	"":    4,
}

// Outcome classifies a participant's result. A true win flag always wins,
// even when the surrender flag is also set.
func Outcome(win, surrendered bool) model.Outcome {
	switch {
	case win:
		return model.OutcomeVictory
	case surrendered:
		return model.OutcomeSurrender
	default:
		return model.OutcomeDefeat
	}
}

// ArenaOutcome classifies an arena finish: top half is a victory, the rest a
// defeat. Arena has no surrender classification on the report.
func ArenaOutcome(placement int) model.Outcome {
	if placement >= 1 && placement <= 4 {
		return model.OutcomeVictory
	}
	return model.OutcomeDefeat
}

// RankDelta categorizes the movement between two ranked snapshots.
type RankDelta int

const (
	RankUnchanged RankDelta = iota
	RankPromoted
	RankDemoted
	RankPlaced
)

func (d RankDelta) String() string {
	switch d {
	case RankPromoted:
		return "Promoted"
	case RankDemoted:
		return "Demoted"
	case RankPlaced:
		return "Placed"
	}
	return "Unchanged"
}

// DeltaOf compares an optional pre-match snapshot against the post-match one.
// A missing before-snapshot means the player just placed. Movement is judged
// on (tier, division) only: LP alone never flips the category.
func DeltaOf(before *model.Rank, after model.Rank) RankDelta {
	if before == nil {
		return RankPlaced
	}
	b := tierOrder[before.Tier]*len(divisionOrder) + divisionOrder[before.Division]
	a := tierOrder[after.Tier]*len(divisionOrder) + divisionOrder[after.Division]
	switch {
	case a > b:
		return RankPromoted
	case a < b:
		return RankDemoted
	default:
		return RankUnchanged
	}
}

// LaneOpponent returns the first enemy-roster champion sharing self's lane,
// or nil when no enemy reports the same lane. An unknown lane never matches.
func LaneOpponent(self *model.Champion, enemies []*model.Champion) *model.Champion {
	if self == nil || self.Lane == model.LaneNone {
		return nil
	}
	for _, e := range enemies {
		if e.Lane == self.Lane {
			return e
		}
	}
	return nil
}

// Medal is the styling tier for an arena placement.
type Medal int

const (
	MedalNone Medal = iota
	MedalGold
	MedalSilver
	MedalBronze
)

func (m Medal) String() string {
	switch m {
	case MedalGold:
		return "gold"
	case MedalSilver:
		return "silver"
	case MedalBronze:
		return "bronze"
	}
	return "none"
}

// PlacementMedal maps an arena placement to its medal tier. Styling only.
func PlacementMedal(placement int) Medal {
	switch placement {
	case 1:
		return MedalGold
	case 2:
		return MedalSilver
	case 3:
		return MedalBronze
	}
	return MedalNone
}
