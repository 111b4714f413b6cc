// Package normalize turns a raw match payload plus tracked identities into
// the canonical match model. Queue classification decides the variant; the
// rest of the pipeline branches on the resulting tag, never on the payload.
package normalize

import (
	"fmt"
	"sort"
	"time"

	"github.com/riftcard/riftcard/internal/domain/classify"
	"github.com/riftcard/riftcard/internal/domain/model"
	"github.com/riftcard/riftcard/internal/domain/staticdata"
	"github.com/riftcard/riftcard/internal/riot"
)

// Normalize builds the canonical match for the payload's queue. Tracked
// players are matched by PUUID first, riot id second; every tracked identity
// must be present in the payload.
func Normalize(payload *riot.MatchPayload, tracked []model.TrackedPlayer) (model.Match, error) {
	queue, ok := staticdata.QueueFromID(payload.Info.QueueID)
	if !ok {
		return nil, fmt.Errorf("%w: queue id %d", ErrUnknownQueueType, payload.Info.QueueID)
	}
	if queue == model.QueueArena {
		return normalizeArena(payload, tracked)
	}
	return normalizeTraditional(payload, queue, tracked)
}

func normalizeTraditional(payload *riot.MatchPayload, queue model.QueueType, tracked []model.TrackedPlayer) (*model.TraditionalMatch, error) {
	parts := payload.Info.Participants
	if len(parts) != 2*model.RosterSize {
		return nil, fmt.Errorf("%w: got %d participants, want %d", ErrMalformedRoster, len(parts), 2*model.RosterSize)
	}

	champions := make([]*model.Champion, len(parts))
	for i := range parts {
		champions[i] = toChampion(&parts[i], true)
	}

	// Payload order decides the sides: first five blue, next five red.
	blue := champions[:model.RosterSize]
	red := champions[model.RosterSize:]

	m := &model.TraditionalMatch{
		Duration:  time.Duration(payload.Info.GameDuration) * time.Second,
		QueueType: queue,
		Blue:      blue,
		Red:       red,
	}

	for _, t := range tracked {
		idx := findParticipant(parts, t)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s", ErrParticipantNotFound, t.RiotID())
		}
		p := &parts[idx]
		// Sides are decided by payload order, so the enemy roster must be
		// too; the raw team id may disagree with the order.
		enemies := red
		if idx >= model.RosterSize {
			enemies = blue
		}
		self := champions[idx]
		m.Players = append(m.Players, model.Player{
			Champion:        self,
			RankBefore:      t.RankBefore,
			RankAfter:       t.RankAfter,
			Wins:            t.Wins,
			Losses:          t.Losses,
			HasSeasonRecord: t.HasSeasonRecord && queue.Ranked(),
			Outcome:         classify.Outcome(p.Win, p.Surrendered()),
			Opponent:        classify.LaneOpponent(self, enemies),
			TeamID:          p.TeamID,
		})
	}
	return m, nil
}

func normalizeArena(payload *riot.MatchPayload, tracked []model.TrackedPlayer) (*model.ArenaMatch, error) {
	parts := payload.Info.Participants
	if len(parts) != 2*model.ArenaTeamCount {
		return nil, fmt.Errorf("%w: got %d participants, want %d", ErrMalformedRoster, len(parts), 2*model.ArenaTeamCount)
	}

	champions := make([]*model.Champion, len(parts))
	for i := range parts {
		champions[i] = toChampion(&parts[i], false)
	}

	// Group by sub-team id; every sub-team must be an exact pair.
	bySubteam := make(map[int][]int)
	for i := range parts {
		id := parts[i].PlayerSubteamID
		bySubteam[id] = append(bySubteam[id], i)
	}
	if len(bySubteam) != model.ArenaTeamCount {
		return nil, fmt.Errorf("%w: %d sub-teams", ErrMalformedRoster, len(bySubteam))
	}

	subteams := make([]int, 0, model.ArenaTeamCount)
	for id, members := range bySubteam {
		if len(members) != 2 {
			return nil, fmt.Errorf("%w: sub-team %d has %d members", ErrMalformedRoster, id, len(members))
		}
		subteams = append(subteams, id)
	}
	sort.Ints(subteams)

	teams := make([]model.ArenaTeam, 0, model.ArenaTeamCount)
	seen := make(map[int]bool, model.ArenaTeamCount)
	for _, id := range subteams {
		members := bySubteam[id]
		placement := parts[members[0]].ArenaPlacement()
		if placement < 1 || placement > model.ArenaTeamCount {
			return nil, fmt.Errorf("%w: sub-team %d", ErrMissingPlacement, id)
		}
		if seen[placement] {
			return nil, fmt.Errorf("%w: placement %d repeats", ErrBadPlacement, placement)
		}
		seen[placement] = true
		teams = append(teams, model.ArenaTeam{
			Subteam:   id,
			Placement: placement,
			Champions: [2]*model.Champion{champions[members[0]], champions[members[1]]},
		})
	}

	m := &model.ArenaMatch{
		Duration: time.Duration(payload.Info.GameDuration) * time.Second,
		Teams:    teams,
	}

	for _, t := range tracked {
		idx := findParticipant(parts, t)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s", ErrParticipantNotFound, t.RiotID())
		}
		p := &parts[idx]
		mateIdx := -1
		for _, j := range bySubteam[p.PlayerSubteamID] {
			if j != idx {
				mateIdx = j
			}
		}
		if mateIdx < 0 {
			return nil, fmt.Errorf("%w: sub-team %d", ErrTeammateNotFound, p.PlayerSubteamID)
		}
		placement := p.ArenaPlacement()
		m.Players = append(m.Players, model.Player{
			Champion:  champions[idx],
			Outcome:   classify.ArenaOutcome(placement),
			Teammate:  champions[mateIdx],
			TeamID:    p.PlayerSubteamID,
			Placement: placement,
		})
	}
	return m, nil
}

// toChampion converts one raw participant. Non-zero items keep their slot
// order; runes resolve against the static table with a generic fallback.
func toChampion(p *riot.Participant, traditional bool) *model.Champion {
	c := &model.Champion{
		PUUID:       p.PUUID,
		DisplayName: p.RiotIDGameName,
		TagLine:     p.RiotIDTagline,
		Name:        p.ChampionName,
		Kills:       p.Kills,
		Deaths:      p.Deaths,
		Assists:     p.Assists,
		Level:       p.ChampLevel,
		Spells:      [2]int{p.Summoner1ID, p.Summoner2ID},
		CreepScore:  p.TotalMinionsKilled + p.NeutralMinionsKilled,
		VisionScore: p.VisionScore,
		DamageDealt: p.TotalDamageDealtToChampions,
		Gold:        p.GoldEarned,
	}

	for _, item := range p.Items() {
		if item != 0 {
			c.Items = append(c.Items, item)
		}
	}

	if traditional {
		c.Trinket = p.Item6
		c.Lane = toLane(p.TeamPosition)
	} else {
		for _, id := range []int{p.PlayerAugment1, p.PlayerAugment2, p.PlayerAugment3, p.PlayerAugment4} {
			if id == 0 {
				continue
			}
			name, ok := staticdata.AugmentName(id)
			if !ok {
				name = fmt.Sprintf("Augment %d", id)
			}
			c.Augments = append(c.Augments, model.Augment{ID: id, Name: name, Resolved: ok})
		}
	}

	for _, id := range []int{p.Keystone(), p.SecondaryStyle()} {
		if id == 0 {
			continue
		}
		name, ok := staticdata.RuneName(id)
		if !ok {
			name = staticdata.RuneFallbackName
		}
		c.Runes = append(c.Runes, model.Rune{ID: id, Name: name})
	}

	return c
}

func toLane(position string) model.Lane {
	switch position {
	case "TOP":
		return model.LaneTop
	case "JUNGLE":
		return model.LaneJungle
	case "MIDDLE":
		return model.LaneMiddle
	case "BOTTOM":
		return model.LaneBottom
	case "UTILITY":
		return model.LaneUtility
	}
	return model.LaneNone
}

// findParticipant matches a tracked identity against the payload, PUUID
// first, case-exact riot id second.
func findParticipant(parts []riot.Participant, t model.TrackedPlayer) int {
	for i := range parts {
		if t.PUUID != "" && parts[i].PUUID == t.PUUID {
			return i
		}
	}
	for i := range parts {
		if t.GameName != "" &&
			parts[i].RiotIDGameName == t.GameName &&
			parts[i].RiotIDTagline == t.TagLine {
			return i
		}
	}
	return -1
}
