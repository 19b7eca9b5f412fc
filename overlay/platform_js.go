//go:build js

package overlay

import (
	"errors"
	"syscall/js"
)

type browserPlatform struct{}

func DefaultPlatform() Platform {
	return browserPlatform{}
}

func (browserPlatform) OpenURL(url string) error {
	win := js.Global().Get("window")
	if win.IsUndefined() {
		return errors.New("overlay: no window")
	}
	win.Call("open", url, "_blank", "noopener,noreferrer")
	return nil
}

func (browserPlatform) CopyText(text string) error {
	nav := js.Global().Get("navigator")
	if nav.IsUndefined() || nav.Get("clipboard").IsUndefined() {
		return errors.New("overlay: clipboard unavailable")
	}
	nav.Get("clipboard").Call("writeText", text)
	return nil
}
