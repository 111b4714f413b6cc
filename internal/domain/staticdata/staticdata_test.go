package staticdata_test

import (
	"testing"

	"github.com/riftcard/riftcard/internal/domain/model"
	"github.com/riftcard/riftcard/internal/domain/staticdata"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQueueFromID(t *testing.T) {
	Convey("Given the queue table", t, func() {
		Convey("Supported queue ids classify", func() {
			q, ok := staticdata.QueueFromID(420)
			So(ok, ShouldBeTrue)
			So(q, ShouldEqual, model.QueueRankedSolo)

			q, ok = staticdata.QueueFromID(1700)
			So(ok, ShouldBeTrue)
			So(q, ShouldEqual, model.QueueArena)
		})

		Convey("Unsupported queue ids do not", func() {
			_, ok := staticdata.QueueFromID(900) // URF
			So(ok, ShouldBeFalse)
			_, ok = staticdata.QueueFromID(0)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestRuneName(t *testing.T) {
	Convey("Given the rune table", t, func() {
		name, ok := staticdata.RuneName(8112)
		So(ok, ShouldBeTrue)
		So(name, ShouldEqual, "Electrocute")

		name, ok = staticdata.RuneName(8200)
		So(ok, ShouldBeTrue)
		So(name, ShouldEqual, "Sorcery")

		_, ok = staticdata.RuneName(424242)
		So(ok, ShouldBeFalse)
	})
}

func TestSpellKey(t *testing.T) {
	Convey("Given the spell table", t, func() {
		key, ok := staticdata.SpellKey(4)
		So(ok, ShouldBeTrue)
		So(key, ShouldEqual, "SummonerFlash")

		key, ok = staticdata.SpellKey(2202)
		So(ok, ShouldBeTrue)
		So(key, ShouldEqual, "SummonerCherryFlash")

		_, ok = staticdata.SpellKey(999)
		So(ok, ShouldBeFalse)
	})
}

func TestAugmentName(t *testing.T) {
	Convey("Given the augment table", t, func() {
		name, ok := staticdata.AugmentName(230)
		So(ok, ShouldBeTrue)
		So(name, ShouldEqual, "Jeweled Gauntlet")

		_, ok = staticdata.AugmentName(999999)
		So(ok, ShouldBeFalse)
	})
}
