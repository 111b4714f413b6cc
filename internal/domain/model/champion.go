// Package model contains the canonical match domain models passed between layers.
package model

// Lane is a traditional-map position as reported by the match payload.
type Lane string

// Lanes in top-to-bottom map order. The empty Lane means the payload did not
// report a position (remakes, some ARAM payloads).
const (
	LaneTop     Lane = "TOP"
	LaneJungle  Lane = "JUNGLE"
	LaneMiddle  Lane = "MIDDLE"
	LaneBottom  Lane = "BOTTOM"
	LaneUtility Lane = "UTILITY"
	LaneNone    Lane = ""
)

// Rune is a resolved rune reference. Name falls back to a generic label when
// the id is not in the static rune table; the id is still usable for icons.
type Rune struct {
	ID   int
	Name string
}

// EquipmentSlots is the number of item slots on a champion, trinket excluded.
const EquipmentSlots = 6

// Champion is one participant's in-match performance record. Built once from
// the raw payload snapshot and read-only thereafter.
type Champion struct {
	// Identity for matching tracked players and labeling rows.
	PUUID       string
	DisplayName string // riot id game name
	TagLine     string
	Name        string // champion name, e.g. "Ahri"

	Kills   int
	Deaths  int
	Assists int
	Level   int

	// Items holds non-zero item ids in slot order, at most EquipmentSlots.
	Items []int
	// Trinket is the vision-trinket item id; 0 on arena champions.
	Trinket int

	Spells [2]int
	Runes  []Rune

	CreepScore  int
	VisionScore int
	// DamageDealt is total damage dealt to champions.
	DamageDealt int
	Gold        int

	// Lane is set on traditional champions only; LaneNone when unknown.
	Lane Lane

	// Augments holds resolved and unresolved arena augment ids in pick order.
	Augments []Augment
}

// Augment is an arena augment reference. Resolved is false for ids missing
// from the static augment table; composers filter those out of team rows.
type Augment struct {
	ID       int
	Name     string
	Resolved bool
}

// KDA returns (kills+assists)/deaths, or kills+assists when deaths is zero.
func (c *Champion) KDA() float64 {
	ka := float64(c.Kills + c.Assists)
	if c.Deaths == 0 {
		return ka
	}
	return ka / float64(c.Deaths)
}

// RiotID returns the "Name#Tag" identity string for the participant.
func (c *Champion) RiotID() string {
	if c.TagLine == "" {
		return c.DisplayName
	}
	return c.DisplayName + "#" + c.TagLine
}
