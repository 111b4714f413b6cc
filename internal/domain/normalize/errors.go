package normalize

import "errors"

// Sentinel kinds for normalization errors. All of these indicate a
// payload/version mismatch: fatal, surfaced verbatim, never retried.
var (
	ErrUnknownQueueType    = errors.New("unknown queue type")
	ErrParticipantNotFound = errors.New("tracked participant not found in payload")
	ErrTeammateNotFound    = errors.New("arena teammate not found in sub-team")
	ErrMalformedRoster     = errors.New("malformed roster")
	ErrMissingPlacement    = errors.New("arena placement missing")
	ErrBadPlacement        = errors.New("arena placements not a permutation of 1..8")
)
