// Package sample builds deterministic synthetic match payloads for the
// sample-render CLI and for end-to-end tests. Fixtures are plain data, never
// randomized, so renders against them are reproducible.
package sample

import (
	"fmt"

	"github.com/riftcard/riftcard/internal/domain/model"
	"github.com/riftcard/riftcard/internal/riot"
)

// Champion names used round-robin across fixtures.
var championNames = []string{
	"Aatrox", "Ahri", "Akali", "Alistar", "Amumu",
	"Annie", "Ashe", "Braum", "Caitlyn", "Darius",
	"Ekko", "Ezreal", "Fiora", "Garen", "Jinx", "Lux",
}

var lanes = []string{"TOP", "JUNGLE", "MIDDLE", "BOTTOM", "UTILITY"}

// TraditionalPayload builds a ranked-solo 5v5 payload with ten participants.
// The first blue participant is "Tracked#EUW" and wins unless lost is set.
func TraditionalPayload(lost bool) *riot.MatchPayload {
	parts := make([]riot.Participant, 0, 2*model.RosterSize)
	for i := 0; i < 2*model.RosterSize; i++ {
		blue := i < model.RosterSize
		p := baseParticipant(i)
		p.TeamID = 100
		if !blue {
			p.TeamID = 200
		}
		p.TeamPosition = lanes[i%model.RosterSize]
		p.Win = blue != lost
		p.Item6 = 3364 // Oracle Lens
		parts = append(parts, p)
	}
	return &riot.MatchPayload{
		Metadata: riot.MatchMetadata{MatchID: "EUW1_4242424242"},
		Info: riot.MatchInfo{
			GameDuration: 1880,
			QueueID:      420,
			Participants: parts,
		},
	}
}

// ArenaPayload builds an arena payload with eight sub-team pairs whose
// placements are the identity permutation. "Tracked#EUW" sits on sub-team 1
// in first place.
func ArenaPayload() *riot.MatchPayload {
	parts := make([]riot.Participant, 0, 2*model.ArenaTeamCount)
	for i := 0; i < 2*model.ArenaTeamCount; i++ {
		subteam := i/2 + 1
		p := baseParticipant(i)
		p.TeamPosition = ""
		p.PlayerSubteamID = subteam
		p.SubteamPlacement = subteam
		p.Win = subteam == 1
		p.PlayerAugment1 = 230 // Jeweled Gauntlet
		p.PlayerAugment2 = 101 // Giant Slayer
		parts = append(parts, p)
	}
	return &riot.MatchPayload{
		Metadata: riot.MatchMetadata{MatchID: "EUW1_2424242424"},
		Info: riot.MatchInfo{
			GameDuration: 1120,
			QueueID:      1700,
			Participants: parts,
		},
	}
}

// Tracked returns the fixture's tracked identity with a promotion-worthy
// rank pair and a season record.
func Tracked() model.TrackedPlayer {
	before := model.Rank{Tier: "SILVER", Division: "IV", LP: 20}
	after := model.Rank{Tier: "SILVER", Division: "III", LP: 0}
	return model.TrackedPlayer{
		PUUID:           puuid(0),
		GameName:        "Tracked",
		TagLine:         "EUW",
		RankBefore:      &before,
		RankAfter:       &after,
		Wins:            57,
		Losses:          49,
		HasSeasonRecord: true,
	}
}

func baseParticipant(i int) riot.Participant {
	name := fmt.Sprintf("Player%d", i)
	tag := "NA1"
	if i == 0 {
		name, tag = "Tracked", "EUW"
	}
	return riot.Participant{
		ParticipantID:  i + 1,
		PUUID:          puuid(i),
		RiotIDGameName: name,
		RiotIDTagline:  tag,
		ChampionName:   championNames[i%len(championNames)],
		ChampLevel:     11 + i%8,
		Kills:          i % 7,
		Deaths:         i % 4,
		Assists:        (i * 3) % 11,
		Item0:          1055,
		Item1:          3078,
		Item2:          3031,
		Summoner1ID:    4,  // Flash
		Summoner2ID:    14, // Ignite
		Perks: riot.Perks{Styles: []riot.PerkStyle{
			{Description: "primaryStyle", Style: 8100, Selections: []riot.PerkSelection{{Perk: 8112}}},
			{Description: "subStyle", Style: 8200},
		}},
		TotalMinionsKilled:          140 + i*9,
		NeutralMinionsKilled:        i * 4,
		VisionScore:                 12 + i,
		TotalDamageDealtToChampions: 9000 + i*1500,
		GoldEarned:                  8000 + i*700,
	}
}

func puuid(i int) string {
	return fmt.Sprintf("puuid-%02d", i)
}
