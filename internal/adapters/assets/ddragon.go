package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Default CDN endpoints. Data Dragon serves versioned champion/item/spell
// icons; Community Dragon serves rune, augment, rank and position art that
// Data Dragon never shipped.
const (
	defaultDataDragonBase      = "https://ddragon.leagueoflegends.com"
	defaultCommunityDragonBase = "https://raw.communitydragon.org"
	defaultGameVersion         = "14.17.1"
	defaultFetchTimeout        = 10 * time.Second
)

// DragonLoader fetches icon bytes from the public game-data CDNs.
type DragonLoader struct {
	ddragonBase string
	cdragonBase string
	version     string
	client      *http.Client
}

// LoaderOption applies a configuration option to the DragonLoader.
type LoaderOption func(*DragonLoader)

// WithDataDragonBase overrides the Data Dragon base URL.
func WithDataDragonBase(base string) LoaderOption {
	return func(l *DragonLoader) {
		if base != "" {
			l.ddragonBase = strings.TrimRight(base, "/")
		}
	}
}

// WithCommunityDragonBase overrides the Community Dragon base URL.
func WithCommunityDragonBase(base string) LoaderOption {
	return func(l *DragonLoader) {
		if base != "" {
			l.cdragonBase = strings.TrimRight(base, "/")
		}
	}
}

// WithGameVersion pins the Data Dragon version used for icon paths.
func WithGameVersion(version string) LoaderOption {
	return func(l *DragonLoader) {
		if version != "" {
			l.version = version
		}
	}
}

// WithFetchTimeout bounds each CDN request.
func WithFetchTimeout(timeout time.Duration) LoaderOption {
	return func(l *DragonLoader) {
		if timeout > 0 {
			l.client.Timeout = timeout
		}
	}
}

// NewDragonLoader creates a CDN loader with configuration options.
func NewDragonLoader(opts ...LoaderOption) *DragonLoader {
	l := &DragonLoader{
		ddragonBase: defaultDataDragonBase,
		cdragonBase: defaultCommunityDragonBase,
		version:     defaultGameVersion,
		client:      &http.Client{Timeout: defaultFetchTimeout},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Fetch routes an asset id to its CDN URL and downloads the bytes.
func (l *DragonLoader) Fetch(ctx context.Context, id string) ([]byte, error) {
	url, err := l.route(id)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", id, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", id, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// route maps "kind/name" ids onto CDN paths.
func (l *DragonLoader) route(id string) (string, error) {
	kind, name, ok := strings.Cut(id, "/")
	if !ok || name == "" {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAsset, id)
	}
	switch kind {
	case "champion":
		return fmt.Sprintf("%s/cdn/%s/img/champion/%s.png", l.ddragonBase, l.version, name), nil
	case "item":
		return fmt.Sprintf("%s/cdn/%s/img/item/%s.png", l.ddragonBase, l.version, name), nil
	case "spell":
		return fmt.Sprintf("%s/cdn/%s/img/spell/%s.png", l.ddragonBase, l.version, name), nil
	case "rune":
		return fmt.Sprintf("%s/latest/plugins/rcp-be-lol-game-data/global/default/v1/perk-icons/%s.png", l.cdragonBase, name), nil
	case "augment":
		return fmt.Sprintf("%s/latest/plugins/rcp-be-lol-game-data/global/default/v1/cherry-augments/%s.png", l.cdragonBase, name), nil
	case "rank":
		return fmt.Sprintf("%s/latest/plugins/rcp-fe-lol-static-assets/global/default/images/ranked-emblem/emblem-%s.png", l.cdragonBase, strings.ToLower(name)), nil
	case "lane":
		return fmt.Sprintf("%s/latest/plugins/rcp-fe-lol-static-assets/global/default/svg/position-%s.png", l.cdragonBase, strings.ToLower(name)), nil
	case "medal":
		return fmt.Sprintf("%s/latest/plugins/rcp-fe-lol-postgame/global/default/medal-placement-%s.png", l.cdragonBase, name), nil
	case "mode":
		return fmt.Sprintf("%s/latest/plugins/rcp-fe-lol-static-assets/global/default/images/game-mode/%s.png", l.cdragonBase, name), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedAsset, id)
}
