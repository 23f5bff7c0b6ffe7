package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/champdiff/internal/transport"
	"github.com/agentstation/champdiff/pkg/constants"
	"github.com/agentstation/champdiff/pkg/differ"
	"github.com/agentstation/champdiff/pkg/logging"
	"github.com/agentstation/champdiff/pkg/roster"
)

const championJSON = `{
  "type": "champion",
  "format": "standAloneComplex",
  "version": "14.1.1",
  "data": {
    "Aatrox": {"id": "Aatrox", "key": "266", "name": "Aatrox", "title": "the Darkin Blade"}
  }
}`

// dataDragon serves one version with a single champion.
func dataDragon(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/versions.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`["14.1.1", "14.0.1"]`))
	})
	mux.HandleFunc("/cdn/14.1.1/data/en_US/champion.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(championJSON))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func testConfig(server *httptest.Server) *Config {
	return &Config{
		VersionsURL: server.URL + "/api/versions.json",
		CDNURL:      server.URL + "/cdn",
		Locale:      constants.DefaultLocale,
		HTTPTimeout: 5 * time.Second,
		LogFormat:   "json",
		LogOutput:   "discard",
	}
}

func newTestApp(t *testing.T, config *Config, opts ...Option) (*App, *bytes.Buffer) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	opts = append([]Option{
		WithConfig(config),
		WithRoster(roster.Fixed{"Aatrox", "Akali"}),
		WithOutput(&out),
	}, opts...)

	app, err := New("1.0.0", "abc123", "2026-10-01", "test", opts...)
	require.NoError(t, err)
	return app, &out
}

func TestApp_New(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	app, err := New("1.0.0", "abc123", "2026-10-01", "test")
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", app.Version())
	assert.Equal(t, "abc123", app.Commit())
	assert.Equal(t, "2026-10-01", app.Date())
	assert.Equal(t, "test", app.BuiltBy())
	assert.NotNil(t, app.Logger())
	assert.NotNil(t, app.Config())
	assert.Equal(t, roster.List().Len(), app.Roster().List().Len())
}

func TestApp_WithConfigRejectsInvalid(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := New("1.0.0", "", "", "", WithConfig(&Config{}))
	assert.Error(t, err)

	_, err = New("1.0.0", "", "", "", WithConfig(nil))
	assert.Error(t, err)
}

func TestApp_Transport_Singleton(t *testing.T) {
	app, _ := newTestApp(t, &Config{VersionsURL: "x", CDNURL: "y", HTTPTimeout: 7 * time.Second})

	const goroutines = 50
	var wg sync.WaitGroup
	results := make([]*transport.Client, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = app.Transport()
		}(i)
	}
	wg.Wait()

	for _, tc := range results {
		assert.Same(t, results[0], tc)
	}
	assert.Equal(t, 7*time.Second, results[0].Timeout())
	require.NoError(t, app.Shutdown(context.Background()))
}

func TestApp_Execute_DefaultsToCompare(t *testing.T) {
	app, out := newTestApp(t, testConfig(dataDragon(t)))

	require.NoError(t, app.Execute(context.Background(), nil))

	want := `Getting official champion data...
Latest version: 14.1.1
Extracting local champion data...

=== Champion Data Comparison Report (Official Version: 14.1.1) ===
Local champions count: 2
Official champions count: 1

Extra champion keys in local (1):
  - Akali

=== Complete Official Champion Key List (1) ===
Aatrox: Aatrox - the Darkin Blade
`
	assert.Equal(t, want, out.String())
}

func TestApp_Execute_CompareJSON(t *testing.T) {
	app, out := newTestApp(t, testConfig(dataDragon(t)))

	require.NoError(t, app.Execute(context.Background(), []string{"compare", "-o", "json"}))

	var report differ.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, "14.1.1", report.Version)
	assert.Equal(t, 2, report.LocalCount)
	assert.Empty(t, report.Missing)
}

func TestApp_Execute_DegradedExitsCleanly(t *testing.T) {
	server := dataDragon(t)
	config := testConfig(server)
	server.Close()

	app, out := newTestApp(t, config)

	require.NoError(t, app.Execute(context.Background(), []string{"compare"}))
	assert.Contains(t, out.String(), "Error fetching official data: ")
	assert.Contains(t, out.String(), "(Official Version: unknown)")
	assert.Contains(t, out.String(), "Extra champion keys in local (2):\n  - Aatrox\n  - Akali\n")
}

func TestApp_Execute_Versions(t *testing.T) {
	app, out := newTestApp(t, testConfig(dataDragon(t)))

	require.NoError(t, app.Execute(context.Background(), []string{"versions", "-o", "text", "--limit", "1"}))
	assert.Equal(t, "14.1.1\n", out.String())
}

func TestApp_Execute_ListLocal(t *testing.T) {
	app, out := newTestApp(t, testConfig(dataDragon(t)))

	require.NoError(t, app.Execute(context.Background(), []string{"list", "local", "--format", "yaml"}))
	assert.Equal(t, "- Aatrox\n- Akali\n", out.String())
}

func TestApp_Execute_ConfigFile(t *testing.T) {
	server := dataDragon(t)
	app, out := newTestApp(t, &Config{VersionsURL: "http://127.0.0.1:1/unused", CDNURL: "http://127.0.0.1:1/unused"})

	path := filepath.Join(t.TempDir(), "champdiff.yaml")
	content := "versions_url: " + server.URL + "/api/versions.json\n" +
		"cdn_url: " + server.URL + "/cdn\n" +
		"format: text\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	require.NoError(t, app.Execute(context.Background(), []string{"list", "official", "--config", path}))
	assert.Equal(t, "Aatrox: Aatrox - the Darkin Blade\n", out.String())
	assert.Equal(t, path, app.Config().ConfigFile)
}

func TestApp_Execute_UnknownCommand(t *testing.T) {
	app, _ := newTestApp(t, testConfig(dataDragon(t)))
	assert.Error(t, app.Execute(context.Background(), []string{"bogus"}))
}

func TestApp_Execute_InstallsDefaultLogger(t *testing.T) {
	logging.CaptureLoggingForTest(t)
	app, _ := newTestApp(t, testConfig(dataDragon(t)))

	require.NoError(t, app.Execute(context.Background(), []string{"list", "local", "--log-level", "error"}))
	assert.Equal(t, "error", logging.Default().GetLevel().String())
	assert.Equal(t, app.Logger().GetLevel(), logging.FromContext(context.Background()).GetLevel())
}

func TestApp_Execute_Version(t *testing.T) {
	app, out := newTestApp(t, testConfig(dataDragon(t)))

	require.NoError(t, app.Execute(context.Background(), []string{"version", "-v", "-o", "text"}))
	assert.Contains(t, out.String(), "champdiff 1.0.0\n")
	assert.Contains(t, out.String(), "commit:   abc123")
}
