// Package compose turns a canonical match into the declarative layout tree
// the render pipeline consumes. Composition is a pure function of the match
// and the highlighted names; it performs no I/O and validates no assets.
package compose

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/riftcard/riftcard/internal/domain/layout"
	"github.com/riftcard/riftcard/internal/domain/model"
)

// Compose dispatches on the match variant.
func Compose(m model.Match, highlighted []string) (layout.Node, error) {
	switch v := m.(type) {
	case *model.TraditionalMatch:
		return Traditional(v, highlighted)
	case *model.ArenaMatch:
		return Arena(v, highlighted)
	}
	return nil, fmt.Errorf("unhandled match variant %q", m.Variant())
}

// nameSet builds a case-insensitive membership set of highlighted in-game
// names. An empty set composes a report with no highlight, not an error.
type nameSet map[string]bool

func newNameSet(names []string) nameSet {
	s := make(nameSet, len(names))
	for _, n := range names {
		s[strings.ToLower(n)] = true
	}
	return s
}

func (s nameSet) has(name string) bool {
	return s[strings.ToLower(name)]
}

// formatKDA renders kills+assists when deathless, otherwise the 2-decimal
// ratio.
func formatKDA(c *model.Champion) string {
	if c.Deaths == 0 {
		return fmt.Sprintf("%d", c.Kills+c.Assists)
	}
	return fmt.Sprintf("%.2f", c.KDA())
}

// damagePercent maps a damage value onto [0,100] of the team maximum. A zero
// maximum forces 0 rather than dividing.
func damagePercent(value, maxTeamDamage int) int {
	if maxTeamDamage == 0 {
		return 0
	}
	return int(math.Round(float64(value) / float64(maxTeamDamage) * 100))
}

// perMinute rates a counter over the match duration; 0 for a zero duration.
func perMinute(value int, d time.Duration) float64 {
	minutes := d.Minutes()
	if minutes == 0 {
		return 0
	}
	return float64(value) / minutes
}

// formatClock renders a duration as m:ss.
func formatClock(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func maxDamage(roster []*model.Champion) int {
	maxVal := 0
	for _, c := range roster {
		if c.DamageDealt > maxVal {
			maxVal = c.DamageDealt
		}
	}
	return maxVal
}

// Asset id builders. The resolver keys assets as "kind/name".

func championAsset(name string) string     { return "champion/" + name }
func itemAsset(id int) string              { return fmt.Sprintf("item/%d", id) }
func spellAsset(key string) string         { return "spell/" + key }
func runeAsset(id int) string              { return fmt.Sprintf("rune/%d", id) }
func augmentAsset(id int) string           { return fmt.Sprintf("augment/%d", id) }
func rankAsset(tier string) string         { return "rank/" + strings.ToUpper(tier) }
func laneAsset(lane model.Lane) string     { return "lane/" + string(lane) }
func modeAsset(q model.QueueType) string   { return "mode/" + string(q) }
func medalAsset(placement int) string      { return fmt.Sprintf("medal/%d", placement) }
