package assets

import "errors"

// Sentinel kinds for asset resolution errors.
var (
	// ErrAssetMissing flags a referenced icon the loader cannot produce.
	// Renders abort on it before any drawing starts.
	ErrAssetMissing = errors.New("asset missing")
	// ErrUnsupportedAsset flags an id whose kind no loader route serves.
	ErrUnsupportedAsset = errors.New("unsupported asset kind")
)
