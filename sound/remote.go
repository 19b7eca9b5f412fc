package sound

import (
	"context"
	"fmt"

	"github.com/milk9111/shopfront/assets"
)

const (
	DefaultAmbientID = "ftp3wymgpbjc6xfy1myr"
	DefaultVolume    = 0.3
)

// RemoteLoader downloads the ambient asset from the media CDN and wraps it
// in an infinite loop.
func RemoteLoader(publicID string, volume float64) Loader {
	return func(ctx context.Context) (Track, error) {
		url := assets.MediaURL(publicID, assets.MediaOptions{ResourceType: "video", Secure: true})
		b, err := assets.Fetch(ctx, url)
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		player, err := assets.LoopingPlayer(b, volume)
		if err != nil {
			return nil, fmt.Errorf("sound: %s: %w", publicID, err)
		}
		return player, nil
	}
}
