// Package staticdata holds the immutable game-data lookup tables (queues,
// runes, summoner spells, arena augments). Tables are plain package-level
// maps loaded once at init and shared by reference; nothing here mutates
// after startup.
package staticdata

import "github.com/riftcard/riftcard/internal/domain/model"

// queueTable maps Riot queue ids to the supported queue types.
var queueTable = map[int]model.QueueType{
	400:  model.QueueNormalDraft,
	430:  model.QueueNormalBlind,
	420:  model.QueueRankedSolo,
	440:  model.QueueRankedFlex,
	450:  model.QueueARAM,
	700:  model.QueueClash,
	720:  model.QueueARAMClash,
	1700: model.QueueArena,
}

// QueueFromID classifies a payload queue id. ok is false for queue ids this
// renderer does not support (co-op, URF, tutorial, ...).
func QueueFromID(id int) (model.QueueType, bool) {
	q, ok := queueTable[id]
	return q, ok
}
