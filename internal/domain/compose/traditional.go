package compose

import (
	"fmt"

	"github.com/riftcard/riftcard/internal/domain/classify"
	"github.com/riftcard/riftcard/internal/domain/layout"
	"github.com/riftcard/riftcard/internal/domain/model"
	"github.com/riftcard/riftcard/internal/domain/staticdata"
)

// Traditional composes the 5v5 report: a header row over the blue and red
// team sections.
func Traditional(m *model.TraditionalMatch, highlighted []string) (layout.Node, error) {
	names := newNameSet(highlighted)

	blue, err := teamSection("Blue Team", colBlueTeam, m.Blue, m, names)
	if err != nil {
		return nil, err
	}
	red, err := teamSection("Red Team", colRedTeam, m.Red, m, names)
	if err != nil {
		return nil, err
	}

	return &layout.Box{
		Dir:        layout.Column,
		Gap:        14,
		Padding:    20,
		Background: colBackground,
		Children: []layout.Node{
			traditionalHeader(m),
			blue,
			red,
		},
	}, nil
}

// traditionalHeader builds the top row: outcome, duration, rank movement,
// season record and the rank or mode badge.
func traditionalHeader(m *model.TraditionalMatch) layout.Node {
	left := &layout.Box{
		Dir:     layout.Column,
		Gap:     4,
		Justify: layout.JustifyCenter,
		Children: []layout.Node{
			&layout.Text{
				Content: headerOutcomeLabel(m),
				Font:    layout.Font{Size: 30, Bold: true},
				Color:   headerOutcomeColor(m),
			},
			&layout.Text{
				Content: fmt.Sprintf("%s · %s", m.QueueType.Label(), formatClock(m.Duration)),
				Font:    layout.Font{Size: 15},
				Color:   colTextDim,
			},
		},
	}

	mid := &layout.Box{
		Dir:     layout.Column,
		Gap:     4,
		Grow:    1,
		Justify: layout.JustifyCenter,
		Align:   layout.AlignCenter,
	}
	for _, p := range m.Players {
		if txt := rankMovementLabel(p); txt != "" {
			mid.Children = append(mid.Children, &layout.Text{
				Content: txt,
				Font:    layout.Font{Size: 16, Bold: true},
				Color:   colTextGold,
			})
		}
		if m.QueueType.Ranked() && p.HasSeasonRecord {
			mid.Children = append(mid.Children, &layout.Text{
				Content: fmt.Sprintf("Season %dW %dL", p.Wins, p.Losses),
				Font:    layout.Font{Size: 14},
				Color:   colTextDim,
			})
		}
	}

	return &layout.Box{
		Dir:        layout.Row,
		Gap:        20,
		Padding:    14,
		Align:      layout.AlignCenter,
		Background: colPanel,
		CornerRadius: 8,
		Children:   []layout.Node{left, mid, headerBadges(m)},
	}
}

// headerBadges renders one rank badge per tracked player, a mode badge for
// clash brackets, or nothing when rank data is missing (soft degradation).
func headerBadges(m *model.TraditionalMatch) layout.Node {
	badges := &layout.Box{
		Dir:   layout.Row,
		Gap:   10,
		Align: layout.AlignCenter,
	}

	if m.QueueType.Clash() {
		badges.Children = append(badges.Children, &layout.Image{
			Asset: modeAsset(m.QueueType),
			Width: 64, Height: 64,
		})
		return badges
	}

	// Several tracked players share the header: scale badges down and label
	// each with the owner's name.
	size := 64.0
	if len(m.Players) > 1 {
		size = 40
	}
	for _, p := range m.Players {
		if p.RankAfter == nil {
			continue
		}
		badge := &layout.Box{
			Dir:   layout.Column,
			Gap:   2,
			Align: layout.AlignCenter,
			Children: []layout.Node{
				&layout.Image{
					Asset: rankAsset(p.RankAfter.Tier),
					Width: size, Height: size,
				},
			},
		}
		if len(m.Players) > 1 {
			badge.Children = append(badge.Children, &layout.Text{
				Content: p.Champion.DisplayName,
				Font:    layout.Font{Size: 11},
				Color:   colTextDim,
			})
		}
		badges.Children = append(badges.Children, badge)
	}
	return badges
}

func headerOutcomeLabel(m *model.TraditionalMatch) string {
	if len(m.Players) == 0 {
		return m.QueueType.Label()
	}
	return m.Players[0].Outcome.String()
}

func headerOutcomeColor(m *model.TraditionalMatch) colorNRGBA {
	if len(m.Players) == 0 {
		return colTextMain
	}
	return outcomeColor(m.Players[0].Outcome)
}

// rankMovementLabel describes the ladder movement when both snapshots exist:
// the delta category on promotion/demotion/placement, the signed LP
// difference otherwise.
func rankMovementLabel(p model.Player) string {
	if p.RankAfter == nil || p.RankBefore == nil {
		return ""
	}
	delta := classify.DeltaOf(p.RankBefore, *p.RankAfter)
	switch delta {
	case classify.RankPromoted, classify.RankDemoted, classify.RankPlaced:
		return fmt.Sprintf("%s · %s", delta, p.RankAfter)
	default:
		return fmt.Sprintf("%+d LP · %s", p.RankAfter.LP-p.RankBefore.LP, p.RankAfter)
	}
}

// teamSection builds a titled list of champion rows for one roster.
func teamSection(title string, accent colorNRGBA, roster []*model.Champion, m *model.TraditionalMatch, names nameSet) (layout.Node, error) {
	section := &layout.Box{
		Dir:        layout.Column,
		Gap:        4,
		Padding:    10,
		Background: colPanel,
		CornerRadius: 8,
		Children: []layout.Node{
			&layout.Text{Content: title, Font: layout.Font{Size: 16, Bold: true}, Color: accent},
		},
	}
	maxTeam := maxDamage(roster)
	for _, c := range roster {
		row, err := championRow(c, maxTeam, m, names.has(c.DisplayName))
		if err != nil {
			return nil, err
		}
		section.Children = append(section.Children, row)
	}
	return section, nil
}

// championRow is one scoreboard line: lane, level, names, spells, runes,
// items, KDA, damage bar, gold and creep score.
func championRow(c *model.Champion, maxTeamDamage int, m *model.TraditionalMatch, highlight bool) (layout.Node, error) {
	bg := colPanelLight
	if highlight {
		bg = colHighlight
	}
	row := &layout.Box{
		Dir:        layout.Row,
		Gap:        10,
		Padding:    6,
		Align:      layout.AlignCenter,
		Background: bg,
		CornerRadius: 6,
	}

	if c.Lane != model.LaneNone {
		row.Children = append(row.Children, &layout.Image{
			Asset: laneAsset(c.Lane), Width: 20, Height: 20,
		})
	}

	row.Children = append(row.Children,
		&layout.Image{Asset: championAsset(c.Name), Width: 40, Height: 40, CornerRadius: 4},
		&layout.Text{Content: fmt.Sprintf("%d", c.Level), Font: layout.Font{Size: 14, Bold: true}, Color: colTextMain},
		namePair(c, highlight),
	)

	spells, err := spellColumn(c)
	if err != nil {
		return nil, err
	}
	row.Children = append(row.Children, spells, runeColumn(c), itemStrip(c))

	row.Children = append(row.Children,
		kdaBlock(c),
		damageBar(c, maxTeamDamage),
		incomeBlock(c, m),
	)
	return row, nil
}

// namePair stacks the player name over the champion name; the player name is
// recolored for tracked players.
func namePair(c *model.Champion, highlight bool) layout.Node {
	nameColor := colTextMain
	if highlight {
		nameColor = colTextGold
	}
	return &layout.Box{
		Dir:   layout.Column,
		Gap:   1,
		Width: 130,
		Children: []layout.Node{
			&layout.Text{Content: c.DisplayName, Font: layout.Font{Size: 14, Bold: highlight}, Color: nameColor},
			&layout.Text{Content: c.Name, Font: layout.Font{Size: 12}, Color: colTextDim},
		},
	}
}

// spellColumn renders both summoner spells. Spell ids must resolve; a miss
// is a payload/version mismatch.
func spellColumn(c *model.Champion) (layout.Node, error) {
	col := &layout.Box{Dir: layout.Column, Gap: 2}
	for _, id := range c.Spells {
		key, ok := staticdata.SpellKey(id)
		if !ok {
			return nil, fmt.Errorf("%w: %d on %s", ErrUnknownSpell, id, c.Name)
		}
		col.Children = append(col.Children, &layout.Image{
			Asset: spellAsset(key), Width: 19, Height: 19, CornerRadius: 3,
		})
	}
	return col, nil
}

func runeColumn(c *model.Champion) layout.Node {
	col := &layout.Box{Dir: layout.Column, Gap: 2}
	for _, r := range c.Runes {
		col.Children = append(col.Children, &layout.Image{
			Asset: runeAsset(r.ID), Width: 19, Height: 19,
		})
	}
	return col
}

// itemStrip pads equipment to six slots and appends the vision slot with the
// vision score under the trinket.
func itemStrip(c *model.Champion) layout.Node {
	strip := &layout.Box{Dir: layout.Row, Gap: 2, Align: layout.AlignCenter}
	for slot := 0; slot < model.EquipmentSlots; slot++ {
		if slot < len(c.Items) {
			strip.Children = append(strip.Children, &layout.Image{
				Asset: itemAsset(c.Items[slot]), Width: 26, Height: 26, CornerRadius: 3,
			})
			continue
		}
		strip.Children = append(strip.Children, &layout.Box{
			Width: 26, Height: 26, Background: colBarTrack, CornerRadius: 3,
		})
	}

	vision := &layout.Box{Dir: layout.Column, Gap: 1, Align: layout.AlignCenter}
	if c.Trinket != 0 {
		vision.Children = append(vision.Children, &layout.Image{
			Asset: itemAsset(c.Trinket), Width: 26, Height: 26, CornerRadius: 3,
		})
	} else {
		vision.Children = append(vision.Children, &layout.Box{
			Width: 26, Height: 26, Background: colBarTrack, CornerRadius: 3,
		})
	}
	vision.Children = append(vision.Children, &layout.Text{
		Content: fmt.Sprintf("%d", c.VisionScore),
		Font:    layout.Font{Size: 10},
		Color:   colTextDim,
	})
	strip.Children = append(strip.Children, vision)
	return strip
}

func kdaBlock(c *model.Champion) layout.Node {
	return &layout.Box{
		Dir:   layout.Column,
		Gap:   1,
		Width: 70,
		Align: layout.AlignCenter,
		Children: []layout.Node{
			&layout.Text{
				Content: fmt.Sprintf("%d/%d/%d", c.Kills, c.Deaths, c.Assists),
				Font:    layout.Font{Size: 14, Bold: true},
				Color:   colTextMain,
			},
			&layout.Text{
				Content: formatKDA(c) + " KDA",
				Font:    layout.Font{Size: 11},
				Color:   colTextDim,
			},
		},
	}
}

// damageBar renders damage-to-champions as a filled fraction of the team
// maximum. The bar width tracks the percent directly.
func damageBar(c *model.Champion, maxTeamDamage int) layout.Node {
	const trackWidth = 90.0
	pct := damagePercent(c.DamageDealt, maxTeamDamage)
	fill := trackWidth * float64(pct) / 100
	return &layout.Box{
		Dir:   layout.Column,
		Gap:   2,
		Width: trackWidth,
		Children: []layout.Node{
			&layout.Text{
				Content: fmt.Sprintf("%d (%d%%)", c.DamageDealt, pct),
				Font:    layout.Font{Size: 11},
				Color:   colTextDim,
			},
			&layout.Box{
				Width: trackWidth, Height: 7, Background: colBarTrack, CornerRadius: 3,
				Children: []layout.Node{
					&layout.Box{Width: fill, Height: 7, Background: colBarFill, CornerRadius: 3},
				},
			},
		},
	}
}

// incomeBlock shows gold and creep score as absolute values with per-minute
// rates.
func incomeBlock(c *model.Champion, m *model.TraditionalMatch) layout.Node {
	return &layout.Box{
		Dir:   layout.Column,
		Gap:   1,
		Width: 105,
		Children: []layout.Node{
			&layout.Text{
				Content: fmt.Sprintf("%d g (%.0f/m)", c.Gold, perMinute(c.Gold, m.Duration)),
				Font:    layout.Font{Size: 12},
				Color:   colTextGold,
			},
			&layout.Text{
				Content: fmt.Sprintf("%d cs (%.1f/m)", c.CreepScore, perMinute(c.CreepScore, m.Duration)),
				Font:    layout.Font{Size: 12},
				Color:   colTextDim,
			},
		},
	}
}
