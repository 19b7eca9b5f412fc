package overlay

// Platform opens links and writes to the clipboard. The desktop build uses
// the system browser and clipboard, the wasm build the page's window.
type Platform interface {
	OpenURL(url string) error
	CopyText(text string) error
}
