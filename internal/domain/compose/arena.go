package compose

import (
	"fmt"

	"github.com/riftcard/riftcard/internal/domain/classify"
	"github.com/riftcard/riftcard/internal/domain/layout"
	"github.com/riftcard/riftcard/internal/domain/model"
)

// Arena composes the 8x2 report: the highlighted player's summary card above
// a grid of eight team cards. The normalizer guarantees exactly eight teams;
// this composer does not re-validate that.
func Arena(m *model.ArenaMatch, highlighted []string) (layout.Node, error) {
	names := newNameSet(highlighted)

	root := &layout.Box{
		Dir:        layout.Column,
		Gap:        14,
		Padding:    20,
		Background: colBackground,
	}

	if len(m.Players) > 0 {
		card, err := arenaSummaryCard(m.Players[0], m)
		if err != nil {
			return nil, err
		}
		root.Children = append(root.Children, card)
	}

	grid := &layout.Box{Dir: layout.Column, Gap: 10}
	const cardsPerRow = 2
	for i := 0; i < len(m.Teams); i += cardsPerRow {
		row := &layout.Box{Dir: layout.Row, Gap: 10}
		for j := i; j < i+cardsPerRow && j < len(m.Teams); j++ {
			row.Children = append(row.Children, arenaTeamCard(m.Teams[j], names))
		}
		grid.Children = append(grid.Children, row)
	}
	root.Children = append(root.Children, grid)
	return root, nil
}

// arenaSummaryCard details the tracked player's run: placement, champion,
// KDA, augments, spells and items.
func arenaSummaryCard(p model.Player, m *model.ArenaMatch) (layout.Node, error) {
	c := p.Champion

	title := &layout.Box{
		Dir:     layout.Column,
		Gap:     3,
		Justify: layout.JustifyCenter,
		Children: []layout.Node{
			&layout.Text{
				Content: fmt.Sprintf("%s · Team %d", c.DisplayName, p.TeamID),
				Font:    layout.Font{Size: 22, Bold: true},
				Color:   colTextGold,
			},
			&layout.Text{
				Content: fmt.Sprintf("%s · %s · %s", placementLabel(p.Placement), p.Outcome, formatClock(m.Duration)),
				Font:    layout.Font{Size: 14},
				Color:   outcomeColor(p.Outcome),
			},
		},
	}

	spells, err := spellColumn(c)
	if err != nil {
		return nil, err
	}

	stats := &layout.Box{
		Dir:   layout.Row,
		Gap:   12,
		Align: layout.AlignCenter,
		Children: []layout.Node{
			&layout.Image{Asset: championAsset(c.Name), Width: 52, Height: 52, CornerRadius: 5},
			&layout.Text{Content: fmt.Sprintf("Lv %d", c.Level), Font: layout.Font{Size: 14}, Color: colTextMain},
			&layout.Text{
				Content: fmt.Sprintf("%d/%d/%d · %s KDA", c.Kills, c.Deaths, c.Assists, formatKDA(c)),
				Font:    layout.Font{Size: 15, Bold: true},
				Color:   colTextMain,
			},
			spells,
			arenaItemStrip(c),
		},
	}

	card := &layout.Box{
		Dir:        layout.Column,
		Gap:        10,
		Padding:    14,
		Background: colPanel,
		BorderColor: medalColor(classify.PlacementMedal(p.Placement)),
		BorderWidth: 2,
		CornerRadius: 8,
		Children:   []layout.Node{title, stats, augmentRow(c)},
	}
	return card, nil
}

// augmentRow lines up the run's augments. Every picked augment keeps its
// label here, falling back to the normalizer's generic name for ids missing
// from the static table; only the icon needs a resolved id behind it. Team
// cards are denser and drop unresolved stubs entirely.
func augmentRow(c *model.Champion) layout.Node {
	row := &layout.Box{Dir: layout.Row, Gap: 6, Align: layout.AlignCenter}
	for _, a := range c.Augments {
		if a.Resolved {
			row.Children = append(row.Children,
				&layout.Image{Asset: augmentAsset(a.ID), Width: 22, Height: 22},
			)
		}
		row.Children = append(row.Children,
			&layout.Text{Content: a.Name, Font: layout.Font{Size: 12}, Color: colTextDim},
		)
	}
	return row
}

// arenaItemStrip pads to six slots; arena champions carry no trinket.
func arenaItemStrip(c *model.Champion) layout.Node {
	strip := &layout.Box{Dir: layout.Row, Gap: 2, Align: layout.AlignCenter}
	for slot := 0; slot < model.EquipmentSlots; slot++ {
		if slot < len(c.Items) {
			strip.Children = append(strip.Children, &layout.Image{
				Asset: itemAsset(c.Items[slot]), Width: 24, Height: 24, CornerRadius: 3,
			})
			continue
		}
		strip.Children = append(strip.Children, &layout.Box{
			Width: 24, Height: 24, Background: colBarTrack, CornerRadius: 3,
		})
	}
	return strip
}

// arenaTeamCard summarizes one sub-team: placement badge, aggregate line and
// one row per player. Cards holding a tracked name get the highlight fill;
// podium cards get medal-tinted borders.
func arenaTeamCard(team model.ArenaTeam, names nameSet) layout.Node {
	bg := colPanelLight
	tracked := false
	for _, c := range team.Champions {
		if names.has(c.DisplayName) {
			tracked = true
		}
	}
	if tracked {
		bg = colHighlight
	}

	kills, deaths, assists, gold := 0, 0, 0, 0
	for _, c := range team.Champions {
		kills += c.Kills
		deaths += c.Deaths
		assists += c.Assists
		gold += c.Gold
	}

	head := &layout.Box{
		Dir:   layout.Row,
		Gap:   8,
		Align: layout.AlignCenter,
		Children: []layout.Node{
			placementBadge(team.Placement),
			&layout.Text{
				Content: fmt.Sprintf("%d/%d/%d", kills, deaths, assists),
				Font:    layout.Font{Size: 13, Bold: true},
				Color:   colTextMain,
			},
			&layout.Text{
				Content: fmt.Sprintf("%d g", gold),
				Font:    layout.Font{Size: 12},
				Color:   colTextGold,
			},
		},
	}

	card := &layout.Box{
		Dir:          layout.Column,
		Gap:          6,
		Padding:      10,
		Grow:         1,
		Background:   bg,
		BorderColor:  medalColor(classify.PlacementMedal(team.Placement)),
		BorderWidth:  2,
		CornerRadius: 7,
		Children:     []layout.Node{head},
	}
	for _, c := range team.Champions {
		card.Children = append(card.Children, arenaPlayerRow(c, names.has(c.DisplayName)))
	}
	return card
}

// placementBadge shows the medal icon on the podium, a plain label below it.
func placementBadge(placement int) layout.Node {
	if classify.PlacementMedal(placement) != classify.MedalNone {
		return &layout.Box{
			Dir:   layout.Row,
			Gap:   4,
			Align: layout.AlignCenter,
			Children: []layout.Node{
				&layout.Image{Asset: medalAsset(placement), Width: 20, Height: 20},
				&layout.Text{
					Content: placementLabel(placement),
					Font:    layout.Font{Size: 14, Bold: true},
					Color:   medalColor(classify.PlacementMedal(placement)),
				},
			},
		}
	}
	return &layout.Text{
		Content: placementLabel(placement),
		Font:    layout.Font{Size: 14, Bold: true},
		Color:   colTextDim,
	}
}

// arenaPlayerRow is one line in a team card: name, champion, KDA and the
// resolved augments.
func arenaPlayerRow(c *model.Champion, highlight bool) layout.Node {
	nameColor := colTextMain
	if highlight {
		nameColor = colTextGold
	}
	row := &layout.Box{
		Dir:   layout.Row,
		Gap:   6,
		Align: layout.AlignCenter,
		Children: []layout.Node{
			&layout.Image{Asset: championAsset(c.Name), Width: 26, Height: 26, CornerRadius: 3},
			&layout.Box{
				Dir:   layout.Column,
				Gap:   1,
				Width: 110,
				Children: []layout.Node{
					&layout.Text{Content: c.DisplayName, Font: layout.Font{Size: 12, Bold: highlight}, Color: nameColor},
					&layout.Text{Content: c.Name, Font: layout.Font{Size: 10}, Color: colTextDim},
				},
			},
			&layout.Text{
				Content: fmt.Sprintf("%d/%d/%d (%s)", c.Kills, c.Deaths, c.Assists, formatKDA(c)),
				Font:    layout.Font{Size: 12},
				Color:   colTextMain,
			},
		},
	}
	for _, a := range c.Augments {
		if !a.Resolved {
			continue
		}
		row.Children = append(row.Children, &layout.Image{
			Asset: augmentAsset(a.ID), Width: 18, Height: 18,
		})
	}
	return row
}

// placementLabel renders 1 -> "1st", 2 -> "2nd", ...
func placementLabel(placement int) string {
	switch placement {
	case 1:
		return "1st Place"
	case 2:
		return "2nd Place"
	case 3:
		return "3rd Place"
	}
	return fmt.Sprintf("%dth Place", placement)
}
