//go:build !js

package overlay

import (
	"fmt"
	"sync"

	"github.com/pkg/browser"
	"golang.design/x/clipboard"
)

type desktopPlatform struct {
	clipOnce sync.Once
	clipErr  error
}

func DefaultPlatform() Platform {
	return &desktopPlatform{}
}

func (d *desktopPlatform) OpenURL(url string) error {
	return browser.OpenURL(url)
}

func (d *desktopPlatform) CopyText(text string) error {
	d.clipOnce.Do(func() {
		d.clipErr = clipboard.Init()
	})
	if d.clipErr != nil {
		return fmt.Errorf("overlay: clipboard unavailable: %w", d.clipErr)
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
