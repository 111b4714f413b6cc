package staticdata

// spellTable maps summoner spell ids to their Data Dragon keys, which double
// as the spell asset names. Every id a supported queue can produce must be
// present: an unresolvable spell id on a participant is a payload/version
// mismatch and composers treat it as fatal.
var spellTable = map[int]string{
	1:  "SummonerBoost",      // Cleanse
	3:  "SummonerExhaust",    // Exhaust
	4:  "SummonerFlash",      // Flash
	6:  "SummonerHaste",      // Ghost
	7:  "SummonerHeal",       // Heal
	11: "SummonerSmite",      // Smite
	12: "SummonerTeleport",   // Teleport
	13: "SummonerMana",       // Clarity (ARAM)
	14: "SummonerDot",        // Ignite
	21: "SummonerBarrier",    // Barrier
	32: "SummonerSnowball",   // Mark (ARAM)
	54: "Summoner_UltBookPlaceholder",
	55: "Summoner_UltBookSmitePlaceholder",
	2201: "SummonerCherryHold",  // Arena: Flee
	2202: "SummonerCherryFlash", // Arena: Flash
}

// SpellKey resolves a summoner spell id to its asset key; ok is false for
// unknown ids.
func SpellKey(id int) (string, bool) {
	key, ok := spellTable[id]
	return key, ok
}
