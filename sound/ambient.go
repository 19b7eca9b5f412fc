// Package sound owns the looping ambient track that plays behind the scene.
package sound

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/milk9111/shopfront/state"
)

var ErrClosed = errors.New("sound: controller closed")

// Track is a playable, releasable audio handle. *audio.Player satisfies it.
type Track interface {
	Play()
	Pause()
	IsPlaying() bool
	Rewind() error
	Close() error
}

// Loader acquires the track. It runs on its own goroutine and should honour
// ctx cancellation.
type Loader func(ctx context.Context) (Track, error)

// Ambient controls a single looping track. Play and Stop are no-ops until the
// track has loaded, and after a failed load.
type Ambient struct {
	mu      sync.Mutex
	track   Track
	err     error
	loaded  bool
	closed  bool
	muted   bool
	cancel  context.CancelFunc
	done    chan struct{}
	pending bool
}

func NewAmbient(muted bool) *Ambient {
	return &Ambient{muted: muted}
}

// Mount starts loading the track in the background. Calling Mount again is
// a no-op.
func (a *Ambient) Mount(ctx context.Context, load Loader) {
	a.mu.Lock()
	if a.closed || a.done != nil || load == nil {
		a.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	done := make(chan struct{})
	a.done = done
	a.mu.Unlock()

	go func() {
		defer close(done)
		track, err := load(ctx)
		a.finishLoad(track, err)
	}()
}

func (a *Ambient) finishLoad(track Track, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		if track != nil {
			_ = track.Close()
		}
		return
	}
	if err != nil {
		a.err = err
		log.Printf("sound: load ambient: %v", err)
		return
	}
	a.track = track
	a.loaded = track != nil
	if a.pending && a.loaded && !a.muted {
		a.track.Play()
	}
	a.pending = false
}

// Play starts the track. Playing an already playing track does not restart
// it. A request made while loading is honoured once the track arrives.
func (a *Ambient) Play() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed || a.muted {
		return
	}
	if !a.loaded {
		if a.err == nil && a.done != nil {
			a.pending = true
		}
		return
	}
	if !a.track.IsPlaying() {
		a.track.Play()
	}
}

// PlayOnSelect calls Play after every section selection on store.
func (a *Ambient) PlayOnSelect(store *state.Store) {
	store.Subscribe(func(c state.Change) {
		if c.Kind == state.ChangeSelect {
			a.Play()
		}
	})
}

// Stop pauses the track and rewinds it.
func (a *Ambient) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.pending = false
	if a.closed || !a.loaded {
		return
	}
	a.track.Pause()
	if err := a.track.Rewind(); err != nil {
		log.Printf("sound: rewind: %v", err)
	}
}

// Playing reports whether the track is currently audible.
func (a *Ambient) Playing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loaded && !a.closed && a.track.IsPlaying()
}

// Loaded reports whether the track is ready.
func (a *Ambient) Loaded() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loaded && !a.closed
}

// Err returns the load error, if any.
func (a *Ambient) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.err
}

// SetMuted toggles muting. Muting pauses a playing track.
func (a *Ambient) SetMuted(muted bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.muted = muted
	if muted && a.loaded && !a.closed {
		a.track.Pause()
	}
}

// Close cancels an in-flight load and releases the track. Only the first
// call has any effect; later calls return ErrClosed.
func (a *Ambient) Close() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return ErrClosed
	}
	a.closed = true
	if a.cancel != nil {
		a.cancel()
	}
	track := a.track
	a.track = nil
	a.loaded = false
	a.mu.Unlock()

	if track == nil {
		return nil
	}
	track.Pause()
	return track.Close()
}

// Wait blocks until a mounted load has finished. Used by tests and shutdown.
func (a *Ambient) Wait() {
	a.mu.Lock()
	done := a.done
	a.mu.Unlock()
	if done != nil {
		<-done
	}
}
