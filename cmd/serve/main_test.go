package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	root := t.TempDir()
	files := map[string]string{
		"index.html":   "<html>shop</html>",
		"wasm_exec.js": "// go",
		wasmFile:       "\x00asm",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(root, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	r := newRouter(root)

	tests := []struct {
		name     string
		path     string
		status   int
		body     string
		header   string
		expected string
	}{
		{name: "index", path: "/", status: http.StatusOK, body: "<html>shop</html>"},
		{name: "loader", path: "/wasm_exec.js", status: http.StatusOK, body: "// go"},
		{name: "wasm", path: "/shopfront.wasm", status: http.StatusOK, header: "Content-Type", expected: "application/wasm"},
		{
			name:     "media",
			path:     "/media/video/ftp3wymgpbjc6xfy1myr",
			status:   http.StatusFound,
			header:   "Location",
			expected: "https://res.cloudinary.com/ddsq7yryf/video/upload/f_auto:video,q_auto/ftp3wymgpbjc6xfy1myr",
		},
		{name: "health", path: "/healthz", status: http.StatusOK, body: "ok"},
		{name: "missing", path: "/nope", status: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if tt.body != "" && rec.Body.String() != tt.body {
				t.Fatalf("body = %q, want %q", rec.Body.String(), tt.body)
			}
			if tt.header != "" && rec.Header().Get(tt.header) != tt.expected {
				t.Fatalf("%s = %q, want %q", tt.header, rec.Header().Get(tt.header), tt.expected)
			}
		})
	}
}
