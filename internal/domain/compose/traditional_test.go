package compose_test

import (
	"errors"
	"testing"

	"github.com/riftcard/riftcard/internal/domain/compose"
	"github.com/riftcard/riftcard/internal/domain/layout"
	"github.com/riftcard/riftcard/internal/domain/model"
	"github.com/riftcard/riftcard/internal/domain/normalize"
	"github.com/riftcard/riftcard/internal/sample"
	. "github.com/smartystreets/goconvey/convey"
)

func normalizedTraditional(t *testing.T) *model.TraditionalMatch {
	t.Helper()
	m, err := normalize.Normalize(sample.TraditionalPayload(false), []model.TrackedPlayer{sample.Tracked()})
	if err != nil {
		t.Fatalf("normalize fixture: %v", err)
	}
	return m.(*model.TraditionalMatch)
}

// textContents flattens every Text node's content.
func textContents(n layout.Node) []string {
	var out []string
	switch v := n.(type) {
	case *layout.Box:
		for _, c := range v.Children {
			out = append(out, textContents(c)...)
		}
	case *layout.Text:
		out = append(out, v.Content)
	}
	return out
}

func contains(texts []string, want string) bool {
	for _, s := range texts {
		if s == want {
			return true
		}
	}
	return false
}

func TestTraditionalCompose(t *testing.T) {
	Convey("Given a normalized ranked-solo match", t, func() {
		m := normalizedTraditional(t)

		Convey("When composing with the tracked name highlighted", func() {
			tree, err := compose.Traditional(m, []string{"Tracked"})
			So(err, ShouldBeNil)

			texts := textContents(tree)
			assets := layout.CollectAssets(tree)

			Convey("Then the header carries outcome, duration and movement", func() {
				So(contains(texts, "Victory"), ShouldBeTrue)
				So(contains(texts, "Ranked Solo/Duo · 31:20"), ShouldBeTrue)
				So(contains(texts, "Promoted · SILVER III 0 LP"), ShouldBeTrue)
				So(contains(texts, "Season 57W 49L"), ShouldBeTrue)
			})

			Convey("And the rank badge asset is referenced", func() {
				So(assets, ShouldContain, "rank/SILVER")
			})

			Convey("And every roster champion appears", func() {
				for _, c := range append(append([]*model.Champion{}, m.Blue...), m.Red...) {
					So(assets, ShouldContain, "champion/"+c.Name)
				}
			})

			Convey("And lane icons and spells resolve to assets", func() {
				So(assets, ShouldContain, "lane/TOP")
				So(assets, ShouldContain, "spell/SummonerFlash")
				So(assets, ShouldContain, "rune/8112")
				So(assets, ShouldContain, "item/3078")
			})
		})

		Convey("When a spell id cannot resolve the compose fails hard", func() {
			m.Blue[2].Spells = [2]int{4, 999}
			_, err := compose.Traditional(m, nil)
			So(errors.Is(err, compose.ErrUnknownSpell), ShouldBeTrue)
		})

		Convey("When no rank data exists the badge is simply omitted", func() {
			m.Players[0].RankBefore = nil
			m.Players[0].RankAfter = nil
			tree, err := compose.Traditional(m, nil)
			So(err, ShouldBeNil)
			So(layout.CollectAssets(tree), ShouldNotContain, "rank/SILVER")
		})

		Convey("When the queue is clash a mode badge replaces the rank badge", func() {
			m.QueueType = model.QueueClash
			tree, err := compose.Traditional(m, nil)
			So(err, ShouldBeNil)
			assets := layout.CollectAssets(tree)
			So(assets, ShouldContain, "mode/clash")
			So(assets, ShouldNotContain, "rank/SILVER")
		})

		Convey("When zero players are tracked it still composes", func() {
			m.Players = nil
			tree, err := compose.Traditional(m, nil)
			So(err, ShouldBeNil)
			So(tree, ShouldNotBeNil)
		})

		Convey("When a lane is unknown its icon is omitted for that row only", func() {
			m.Blue[1].Lane = model.LaneNone
			tree, err := compose.Traditional(m, nil)
			So(err, ShouldBeNil)
			So(tree, ShouldNotBeNil)
		})

		Convey("Composing twice yields identical trees", func() {
			a, err := compose.Traditional(m, []string{"Tracked"})
			So(err, ShouldBeNil)
			b, err := compose.Traditional(m, []string{"Tracked"})
			So(err, ShouldBeNil)
			So(textContents(b), ShouldResemble, textContents(a))
			So(layout.CollectAssets(b), ShouldResemble, layout.CollectAssets(a))
		})
	})
}
