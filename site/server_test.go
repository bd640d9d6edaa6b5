package site

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewritePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "/", want: "/index.html"},
		{in: "/rex", want: "/rex.html"},
		{in: "/animals/rex", want: "/animals/rex.html"},
		{in: "/rex.html", want: "/rex.html"},
		{in: "/assets/style.css", want: "/assets/style.css"},
	}

	for _, tt := range tests {
		if got := rewritePath(tt.in); got != tt.want {
			t.Errorf("rewritePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestServerHandler(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("home"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rex.html"), []byte("rex page"), 0644))

	server := &Server{Dir: dir, Metrics: NewMetrics()}
	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	get := func(path string) (int, string) {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		buf := make([]byte, 64)
		n, _ := resp.Body.Read(buf)
		return resp.StatusCode, string(buf[:n])
	}

	status, body := get("/")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "home", body)

	// Extensionless requests resolve to their .html file.
	status, body = get("/rex")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "rex page", body)

	status, _ = get("/missing")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = get("/metrics")
	assert.Equal(t, http.StatusOK, status)
}
