package restyutil

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

func TestDump(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Test", "yes")
		w.Write([]byte("<section class='gamebox'></section>"))
	}))
	defer server.Close()

	dir := filepath.Join(t.TempDir(), "dump")
	out, err := NewFilesystemOutput(dir)
	require.NoError(t, err)

	client := resty.New()
	Dump(client, "test", out)

	_, err = client.R().
		SetFormData(map[string]string{"queryString": "zelda"}).
		Post(server.URL + "/search_results")
	require.NoError(t, err)

	contents, err := os.ReadFile(filepath.Join(dir, "test-1.txt"))
	require.NoError(t, err)

	message := string(contents)
	require.True(t, strings.HasPrefix(message, "---- REQUEST ----"))
	require.Contains(t, message, "POST "+server.URL+"/search_results")
	require.Contains(t, message, "queryString=zelda")
	require.Contains(t, message, "---- RESPONSE ----")
	require.Contains(t, message, "X-Test: yes")
	require.Contains(t, message, "<section class='gamebox'></section>")
}

func TestFormatHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Add("B", "2")
	headers.Add("A", "1")
	headers.Add("A", "3")

	require.Equal(t, "A: 1\nA: 3\nB: 2", formatHeaders(headers))
	require.Equal(t, "", formatHeaders(http.Header{}))
}
