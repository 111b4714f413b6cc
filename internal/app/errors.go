package service

import (
	"errors"

	"github.com/riftcard/riftcard/internal/adapters/assets"
	"github.com/riftcard/riftcard/internal/domain/compose"
	"github.com/riftcard/riftcard/internal/domain/normalize"
)

var (
	// ErrNotStarted is returned when a render is requested before Start.
	ErrNotStarted = errors.New("service not started")

	// ErrVariantMismatch is returned when a payload normalizes to a
	// different report shape than the endpoint asked for.
	ErrVariantMismatch = errors.New("match variant does not match endpoint")
)

// Error kinds used for metrics labels and HTTP status mapping.
const (
	KindDataIntegrity = "data_integrity"
	KindAssetMissing  = "asset_missing"
	KindInternal      = "internal"
)

// ErrorKind classifies a render failure. Data defects and asset gaps are the
// caller's problem; everything else is ours.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, normalize.ErrUnknownQueueType),
		errors.Is(err, normalize.ErrParticipantNotFound),
		errors.Is(err, normalize.ErrTeammateNotFound),
		errors.Is(err, normalize.ErrMalformedRoster),
		errors.Is(err, normalize.ErrMissingPlacement),
		errors.Is(err, normalize.ErrBadPlacement),
		errors.Is(err, compose.ErrUnknownSpell),
		errors.Is(err, ErrVariantMismatch):
		return KindDataIntegrity
	case errors.Is(err, assets.ErrAssetMissing),
		errors.Is(err, assets.ErrUnsupportedAsset):
		return KindAssetMissing
	default:
		return KindInternal
	}
}
