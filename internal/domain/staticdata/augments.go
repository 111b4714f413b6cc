package staticdata

// augmentTable maps arena augment ids to display names. The set rotates
// between acts; ids missing here are carried through as unresolved stubs and
// filtered from team rows at composition time.
var augmentTable = map[int]string{
	1:   "Lightning Strikes",
	4:   "Chauffeur",
	7:   "Slap Around",
	10:  "Thread the Needle",
	14:  "Ice Cold",
	17:  "Goredrink",
	21:  "Dashing",
	27:  "Serve Beyond Death",
	32:  "Frost Wraith",
	40:  "Cannon Fodder",
	47:  "Warmup Routine",
	54:  "It's Killing Time",
	64:  "Tap Dancer",
	75:  "Ultimate Unstoppable",
	86:  "Celestial Body",
	101: "Giant Slayer",
	112: "Feel the Burn",
	133: "Mystic Punch",
	148: "Soul Siphon",
	166: "Guilty Pleasure",
	187: "Castle",
	198: "Spellwake",
	213: "Vulnerability",
	230: "Jeweled Gauntlet",
	251: "Quest: Angel of Retribution",
	277: "Bread And Butter",
	298: "Bread And Cheese",
	311: "Bread And Jam",
}

// AugmentName resolves an augment id; ok is false for ids outside the table.
func AugmentName(id int) (string, bool) {
	name, ok := augmentTable[id]
	return name, ok
}
