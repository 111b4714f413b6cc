package normalize_test

import (
	"errors"
	"testing"

	"github.com/riftcard/riftcard/internal/domain/model"
	"github.com/riftcard/riftcard/internal/domain/normalize"
	"github.com/riftcard/riftcard/internal/sample"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalizeTraditional(t *testing.T) {
	Convey("Given a ranked-solo payload with ten participants", t, func() {
		payload := sample.TraditionalPayload(false)
		tracked := sample.Tracked()

		Convey("When normalizing with one tracked player", func() {
			m, err := normalize.Normalize(payload, []model.TrackedPlayer{tracked})
			So(err, ShouldBeNil)

			tm, ok := m.(*model.TraditionalMatch)
			So(ok, ShouldBeTrue)
			So(m.Variant(), ShouldEqual, model.VariantTraditional)

			Convey("Then both rosters hold five champions", func() {
				So(len(tm.Blue), ShouldEqual, model.RosterSize)
				So(len(tm.Red), ShouldEqual, model.RosterSize)
			})

			Convey("And the tracked champion sits in exactly one roster", func() {
				player := tm.Players[0]
				inBlue, inRed := 0, 0
				for _, c := range tm.Blue {
					if c == player.Champion {
						inBlue++
					}
				}
				for _, c := range tm.Red {
					if c == player.Champion {
						inRed++
					}
				}
				So(inBlue+inRed, ShouldEqual, 1)
				So(player.TeamID, ShouldEqual, 100)
			})

			Convey("And the lane opponent comes from the opposing roster", func() {
				player := tm.Players[0]
				So(player.Opponent, ShouldNotBeNil)
				So(player.Opponent.Lane, ShouldEqual, player.Champion.Lane)
				found := false
				for _, c := range tm.Red {
					if c == player.Opponent {
						found = true
					}
				}
				So(found, ShouldBeTrue)
			})

			Convey("And a won game classifies as a victory", func() {
				So(tm.Players[0].Outcome, ShouldEqual, model.OutcomeVictory)
			})

			Convey("And the season record survives for ranked queues", func() {
				So(tm.Players[0].HasSeasonRecord, ShouldBeTrue)
				So(tm.Players[0].Wins, ShouldEqual, 57)
			})

			Convey("And items keep slot order with zero slots dropped", func() {
				c := tm.Players[0].Champion
				So(c.Items, ShouldResemble, []int{1055, 3078, 3031})
				So(c.Trinket, ShouldEqual, 3364)
			})

			Convey("And runes resolve with keystone first", func() {
				c := tm.Players[0].Champion
				So(len(c.Runes), ShouldEqual, 2)
				So(c.Runes[0].Name, ShouldEqual, "Electrocute")
				So(c.Runes[1].Name, ShouldEqual, "Sorcery")
			})
		})

		Convey("When the tracked player is absent from the payload", func() {
			ghost := model.TrackedPlayer{GameName: "Nobody", TagLine: "XX"}
			_, err := normalize.Normalize(payload, []model.TrackedPlayer{ghost})
			So(errors.Is(err, normalize.ErrParticipantNotFound), ShouldBeTrue)
		})

		Convey("When the queue id is unsupported", func() {
			payload.Info.QueueID = 900
			_, err := normalize.Normalize(payload, nil)
			So(errors.Is(err, normalize.ErrUnknownQueueType), ShouldBeTrue)
		})

		Convey("When an unknown rune id appears", func() {
			payload.Info.Participants[0].Perks.Styles[0].Selections[0].Perk = 424242
			m, err := normalize.Normalize(payload, []model.TrackedPlayer{tracked})
			So(err, ShouldBeNil)
			c := m.(*model.TraditionalMatch).Players[0].Champion
			So(c.Runes[0].Name, ShouldEqual, "Rune")
		})

		Convey("When the raw team id disagrees with payload order", func() {
			// Sides are decided by order (first five blue), so a stray team
			// id must not pair the player against their own roster.
			payload.Info.Participants[0].TeamID = 200
			m, err := normalize.Normalize(payload, []model.TrackedPlayer{tracked})
			So(err, ShouldBeNil)

			tm := m.(*model.TraditionalMatch)
			player := tm.Players[0]
			So(player.Opponent, ShouldNotBeNil)
			So(player.Opponent, ShouldNotEqual, player.Champion)
			found := false
			for _, c := range tm.Red {
				if c == player.Opponent {
					found = true
				}
			}
			So(found, ShouldBeTrue)
		})

		Convey("When zero players are tracked it still normalizes", func() {
			m, err := normalize.Normalize(payload, nil)
			So(err, ShouldBeNil)
			So(len(m.Tracked()), ShouldEqual, 0)
		})
	})

	Convey("Given a surrendered loss", t, func() {
		payload := sample.TraditionalPayload(true)
		payload.Info.Participants[0].GameEndedInSurrender = true
		m, err := normalize.Normalize(payload, []model.TrackedPlayer{sample.Tracked()})
		So(err, ShouldBeNil)
		So(m.Tracked()[0].Outcome, ShouldEqual, model.OutcomeSurrender)
	})
}

func TestNormalizeArena(t *testing.T) {
	Convey("Given an arena payload with eight pairs", t, func() {
		payload := sample.ArenaPayload()
		tracked := sample.Tracked()

		Convey("When normalizing", func() {
			m, err := normalize.Normalize(payload, []model.TrackedPlayer{tracked})
			So(err, ShouldBeNil)

			am, ok := m.(*model.ArenaMatch)
			So(ok, ShouldBeTrue)
			So(m.Variant(), ShouldEqual, model.VariantArena)

			Convey("Then there are exactly eight teams sorted by sub-team", func() {
				So(len(am.Teams), ShouldEqual, model.ArenaTeamCount)
				for i, team := range am.Teams {
					So(team.Subteam, ShouldEqual, i+1)
				}
			})

			Convey("And placements are a permutation of 1..8", func() {
				seen := make(map[int]bool)
				for _, team := range am.Teams {
					So(team.Placement, ShouldBeBetweenOrEqual, 1, model.ArenaTeamCount)
					So(seen[team.Placement], ShouldBeFalse)
					seen[team.Placement] = true
				}
			})

			Convey("And the tracked player pairs with their partner", func() {
				p := am.Players[0]
				So(p.Teammate, ShouldNotBeNil)
				So(p.TeamID, ShouldEqual, 1)
				So(p.Placement, ShouldEqual, 1)
				So(p.Outcome, ShouldEqual, model.OutcomeVictory)
			})

			Convey("And augments resolve against the static table", func() {
				c := am.Players[0].Champion
				So(len(c.Augments), ShouldEqual, 2)
				So(c.Augments[0].Name, ShouldEqual, "Jeweled Gauntlet")
				So(c.Augments[0].Resolved, ShouldBeTrue)
			})

			Convey("And arena champions carry no trinket or lane", func() {
				c := am.Players[0].Champion
				So(c.Trinket, ShouldEqual, 0)
				So(c.Lane, ShouldEqual, model.LaneNone)
			})
		})

		Convey("When a placement is missing it fails instead of randomizing", func() {
			for i := range payload.Info.Participants {
				if payload.Info.Participants[i].PlayerSubteamID == 3 {
					payload.Info.Participants[i].SubteamPlacement = 0
					payload.Info.Participants[i].Placement = 0
				}
			}
			_, err := normalize.Normalize(payload, nil)
			So(errors.Is(err, normalize.ErrMissingPlacement), ShouldBeTrue)
		})

		Convey("When two teams share a placement it fails", func() {
			for i := range payload.Info.Participants {
				if payload.Info.Participants[i].PlayerSubteamID == 5 {
					payload.Info.Participants[i].SubteamPlacement = 2
				}
			}
			_, err := normalize.Normalize(payload, nil)
			So(errors.Is(err, normalize.ErrBadPlacement), ShouldBeTrue)
		})

		Convey("When a sub-team is not a pair it fails", func() {
			payload.Info.Participants[1].PlayerSubteamID = 2
			_, err := normalize.Normalize(payload, nil)
			So(errors.Is(err, normalize.ErrMalformedRoster), ShouldBeTrue)
		})
	})
}
