package assets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMediaURL(t *testing.T) {
	tests := []struct {
		name string
		id   string
		opts MediaOptions
		want string
	}{
		{
			name: "video",
			id:   "ftp3wymgpbjc6xfy1myr",
			opts: MediaOptions{ResourceType: "video", Secure: true},
			want: "https://res.cloudinary.com/ddsq7yryf/video/upload/f_auto:video,q_auto/ftp3wymgpbjc6xfy1myr",
		},
		{
			name: "default image",
			id:   "logo",
			want: "https://res.cloudinary.com/ddsq7yryf/image/upload/f_auto:video,q_auto/logo",
		},
		{
			name: "secure false is ignored",
			id:   "x",
			opts: MediaOptions{ResourceType: "raw"},
			want: "https://res.cloudinary.com/ddsq7yryf/raw/upload/f_auto:video,q_auto/x",
		},
		{
			name: "no escaping",
			id:   "a b/c?d",
			want: "https://res.cloudinary.com/ddsq7yryf/image/upload/f_auto:video,q_auto/a b/c?d",
		},
		{
			name: "empty id",
			want: "https://res.cloudinary.com/ddsq7yryf/image/upload/f_auto:video,q_auto/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MediaURL(tt.id, tt.opts); got != tt.want {
				t.Fatalf("MediaURL(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestMediaURLCloudOverride(t *testing.T) {
	prev := CloudName
	t.Cleanup(func() { CloudName = prev })

	CloudName = "other"
	want := "https://res.cloudinary.com/other/video/upload/f_auto:video,q_auto/id"
	if got := MediaURL("id", MediaOptions{ResourceType: "video"}); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSniffAudio(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want AudioFormat
	}{
		{"ogg", []byte("OggS\x00\x02"), FormatVorbis},
		{"wav", []byte("RIFF\x24\x00\x00\x00WAVEfmt "), FormatWAV},
		{"riff not wave", []byte("RIFF\x24\x00\x00\x00AVI "), FormatUnknown},
		{"id3", []byte("ID3\x04\x00"), FormatMP3},
		{"frame sync", []byte{0xff, 0xfb, 0x90, 0x00}, FormatMP3},
		{"mp4", []byte("\x00\x00\x00\x18ftypmp42"), FormatUnknown},
		{"empty", nil, FormatUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SniffAudio(tt.in); got != tt.want {
				t.Fatalf("SniffAudio = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("OggS"))
	}))
	defer srv.Close()

	b, err := Fetch(context.Background(), srv.URL+"/ok")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if string(b) != "OggS" {
		t.Fatalf("body = %q", b)
	}

	if _, err := Fetch(context.Background(), srv.URL+"/missing"); err == nil {
		t.Fatalf("expected error for 404")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Fetch(ctx, srv.URL+"/ok"); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}
