package compose

import "errors"

// Sentinel kinds for composition errors.
var (
	// ErrUnknownSpell flags a summoner spell id missing from the static
	// table. Every valid id must resolve, so this is a payload/version
	// mismatch, not a soft fallback.
	ErrUnknownSpell = errors.New("unresolvable summoner spell id")
)
