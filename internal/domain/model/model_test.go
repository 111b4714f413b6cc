package model_test

import (
	"testing"

	"github.com/riftcard/riftcard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestChampion(t *testing.T) {
	Convey("Given a champion performance record", t, func() {
		c := &model.Champion{DisplayName: "Tracked", TagLine: "EUW", Kills: 7, Deaths: 2, Assists: 5}

		Convey("KDA divides by deaths", func() {
			So(c.KDA(), ShouldEqual, 6.0)
		})

		Convey("A deathless game reports kills plus assists", func() {
			c.Deaths = 0
			So(c.KDA(), ShouldEqual, 12.0)
		})

		Convey("RiotID joins name and tag", func() {
			So(c.RiotID(), ShouldEqual, "Tracked#EUW")
			c.TagLine = ""
			So(c.RiotID(), ShouldEqual, "Tracked")
		})
	})
}

func TestQueueType(t *testing.T) {
	Convey("Given the supported queue types", t, func() {
		Convey("Only solo and flex are ranked", func() {
			So(model.QueueRankedSolo.Ranked(), ShouldBeTrue)
			So(model.QueueRankedFlex.Ranked(), ShouldBeTrue)
			So(model.QueueNormalDraft.Ranked(), ShouldBeFalse)
			So(model.QueueArena.Ranked(), ShouldBeFalse)
		})

		Convey("Both clash brackets count as clash", func() {
			So(model.QueueClash.Clash(), ShouldBeTrue)
			So(model.QueueARAMClash.Clash(), ShouldBeTrue)
			So(model.QueueARAM.Clash(), ShouldBeFalse)
		})

		Convey("Labels are human readable", func() {
			So(model.QueueRankedSolo.Label(), ShouldContainSubstring, "Solo")
			So(model.QueueARAM.Label(), ShouldContainSubstring, "ARAM")
		})
	})
}

func TestRank(t *testing.T) {
	Convey("Given ranked snapshots", t, func() {
		Convey("Divisioned tiers include the division", func() {
			r := model.Rank{Tier: "GOLD", Division: "II", LP: 40}
			So(r.String(), ShouldEqual, "GOLD II 40 LP")
		})

		Convey("Apex tiers omit the division", func() {
			r := model.Rank{Tier: "MASTER", LP: 120}
			So(r.String(), ShouldEqual, "MASTER 120 LP")
		})
	})
}

func TestMatchVariants(t *testing.T) {
	Convey("Given the two match shapes", t, func() {
		var m model.Match

		Convey("A traditional match reports its queue", func() {
			m = &model.TraditionalMatch{QueueType: model.QueueRankedSolo}
			So(m.Variant(), ShouldEqual, model.VariantTraditional)
			So(m.Queue(), ShouldEqual, model.QueueRankedSolo)
		})

		Convey("An arena match always reports the arena queue", func() {
			m = &model.ArenaMatch{}
			So(m.Variant(), ShouldEqual, model.VariantArena)
			So(m.Queue(), ShouldEqual, model.QueueArena)
		})
	})
}
