package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const (
	SampleRate = 44100

	// maxAudioBytes caps remote downloads.
	maxAudioBytes = 32 << 20
)

var ErrUnsupportedAudio = errors.New("assets: unsupported audio format")

type AudioFormat int

const (
	FormatUnknown AudioFormat = iota
	FormatMP3
	FormatVorbis
	FormatWAV
)

func (f AudioFormat) String() string {
	switch f {
	case FormatMP3:
		return "mp3"
	case FormatVorbis:
		return "ogg"
	case FormatWAV:
		return "wav"
	default:
		return "unknown"
	}
}

// HTTPClient is used for remote asset downloads.
var HTTPClient = &http.Client{Timeout: 30 * time.Second}

var (
	contextOnce  sync.Once
	audioContext *audio.Context
)

// AudioContext returns the process-wide audio context, creating it on first
// use.
func AudioContext() *audio.Context {
	contextOnce.Do(func() {
		if c := audio.CurrentContext(); c != nil {
			audioContext = c
			return
		}
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// SniffAudio identifies the container from its leading bytes.
func SniffAudio(b []byte) AudioFormat {
	switch {
	case bytes.HasPrefix(b, []byte("OggS")):
		return FormatVorbis
	case bytes.HasPrefix(b, []byte("RIFF")) && len(b) >= 12 && string(b[8:12]) == "WAVE":
		return FormatWAV
	case bytes.HasPrefix(b, []byte("ID3")):
		return FormatMP3
	case len(b) >= 2 && b[0] == 0xff && b[1]&0xe0 == 0xe0:
		// bare MPEG frame sync
		return FormatMP3
	default:
		return FormatUnknown
	}
}

// Fetch downloads a remote asset.
func Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("assets: build request: %w", err)
	}
	req.Header.Set("Accept", "audio/mpeg, audio/ogg, audio/wav;q=0.9, */*;q=0.1")

	resp, err := HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("assets: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("assets: fetch %s: status %s", url, resp.Status)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxAudioBytes))
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", url, err)
	}
	return b, nil
}

// LoopingPlayer decodes b and wraps it in an infinite loop at the given
// volume.
func LoopingPlayer(b []byte, volume float64) (*audio.Player, error) {
	ctx := AudioContext()
	reader := bytes.NewReader(b)

	var stream interface {
		io.ReadSeeker
		Length() int64
	}
	switch format := SniffAudio(b); format {
	case FormatMP3:
		s, err := mp3.DecodeWithSampleRate(ctx.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("assets: decode %s: %w", format, err)
		}
		stream = s
	case FormatVorbis:
		s, err := vorbis.DecodeWithSampleRate(ctx.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("assets: decode %s: %w", format, err)
		}
		stream = s
	case FormatWAV:
		s, err := wav.DecodeWithSampleRate(ctx.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("assets: decode %s: %w", format, err)
		}
		stream = s
	default:
		return nil, ErrUnsupportedAudio
	}

	player, err := ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return nil, fmt.Errorf("assets: new player: %w", err)
	}
	player.SetVolume(volume)
	return player, nil
}
