package config

import (
	"os"
	"path/filepath"
	"testing"
)

func lookupMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    Config
		wantErr bool
	}{
		{name: "defaults", env: map[string]string{}, want: Default()},
		{
			name: "overrides",
			env:  map[string]string{EnvCloudName: "acme", EnvAmbientID: "rain", EnvVolume: "0.5", EnvAddr: ":9000", EnvWebRoot: "dist"},
			want: Config{CloudName: "acme", AmbientID: "rain", Volume: 0.5, Addr: ":9000", WebRoot: "dist"},
		},
		{name: "empty keeps default", env: map[string]string{EnvCloudName: ""}, want: Default()},
		{name: "bad volume", env: map[string]string{EnvVolume: "loud"}, wantErr: true},
		{name: "volume out of range", env: map[string]string{EnvVolume: "1.5"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromEnv(lookupMap(tt.env))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("FromEnv: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte(EnvAmbientID+"=from_file\n"), 0o644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Setenv(EnvAmbientID, "")
	os.Unsetenv(EnvAmbientID)

	cfg, err := Load(path, filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AmbientID != "from_file" {
		t.Fatalf("AmbientID = %q", cfg.AmbientID)
	}
}
