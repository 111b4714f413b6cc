package staticdata

// runeTable maps keystone and rune-style ids to display names. Style ids
// (8000-8400) double as the secondary-tree entries on a rune page.
var runeTable = map[int]string{
	// Styles
	8000: "Precision",
	8100: "Domination",
	8200: "Sorcery",
	8300: "Inspiration",
	8400: "Resolve",

	// Precision keystones
	8005: "Press the Attack",
	8008: "Lethal Tempo",
	8010: "Conqueror",
	8021: "Fleet Footwork",

	// Domination keystones
	8112: "Electrocute",
	8124: "Predator",
	8128: "Dark Harvest",
	9923: "Hail of Blades",

	// Sorcery keystones
	8214: "Summon Aery",
	8229: "Arcane Comet",
	8230: "Phase Rush",

	// Resolve keystones
	8437: "Grasp of the Undying",
	8439: "Aftershock",
	8465: "Guardian",

	// Inspiration keystones
	8351: "Glacial Augment",
	8360: "Unsealed Spellbook",
	8369: "First Strike",
}

// RuneFallbackName labels rune ids missing from the table. Unknown runes are
// a soft degradation, never an error.
const RuneFallbackName = "Rune"

// RuneName resolves a rune or style id to its display name; ok is false for
// ids not in the table.
func RuneName(id int) (string, bool) {
	name, ok := runeTable[id]
	return name, ok
}
