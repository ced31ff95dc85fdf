package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mediaListResponse = `{
	"success": true,
	"data": [
		{"id": "m1", "title": "Launch Trailer", "status": "ready", "duration": 95},
		{"id": "m2", "title": "Teaser", "status": "ready", "duration": 30},
		{"id": "m3", "title": "Keynote", "status": "preparing", "duration": 3600}
	],
	"pagination": {"totalRecords": 3}
}`

// fakeAPI records every request and answers like the FastPix API.
type fakeAPI struct {
	*httptest.Server

	mu       sync.Mutex
	requests []string
	bodies   []map[string]any
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	api := &fakeAPI{}
	api.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		line := r.Method + " " + r.URL.Path
		if r.URL.RawQuery != "" {
			line += "?" + r.URL.RawQuery
		}

		var body map[string]any
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			_ = json.Unmarshal(raw, &body)
		}

		api.mu.Lock()
		api.requests = append(api.requests, line)
		api.bodies = append(api.bodies, body)
		api.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodGet && r.URL.Path == "/on-demand" {
			_, _ = w.Write([]byte(mediaListResponse))
			return
		}
		_, _ = w.Write([]byte(`{"success": true, "data": {"id": "created"}}`))
	}))
	t.Cleanup(api.Close)
	return api
}

func (a *fakeAPI) Requests() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.requests...)
}

func (a *fakeAPI) LastBody(t *testing.T) map[string]any {
	t.Helper()
	a.mu.Lock()
	defer a.mu.Unlock()
	require.NotEmpty(t, a.bodies)
	return a.bodies[len(a.bodies)-1]
}

// resetFlags restores every flag in the tree to its default so runs do not
// leak state into each other.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, child := range c.Commands() {
		resetFlags(child)
	}
}

// runCLI executes the command tree against api with credentials from the
// environment, as a user would. env overrides the defaults set here.
func runCLI(t *testing.T, api *fakeAPI, env map[string]string, stdin string, args ...string) (string, error) {
	t.Helper()

	t.Setenv("FASTPIX_API_KEY", "test-key")
	t.Setenv("FASTPIX_BASE_URL", api.URL)
	t.Setenv("FASTPIX_OUTPUT", "json")
	t.Setenv("FASTPIX_LOG_LEVEL", "error")
	t.Setenv("FASTPIX_BULK_CONCURRENCY", "2")
	t.Setenv("FASTPIX_SKIP_VALIDATION", "true")
	for k, v := range env {
		t.Setenv(k, v)
	}

	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		resetFlags(rootCmd)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		stdin        string
		env          map[string]string
		wantRequests []string
		wantOut      []string
		notOut       []string
		wantBody     map[string]any
		wantErr      string
	}{
		{
			name:         "media list with filter",
			args:         []string{"media", "list", "--filter", `status == "ready" and duration > 60`},
			wantRequests: []string{"GET /on-demand"},
			wantOut:      []string{`"id": "m1"`, `"totalRecords": 3`},
			notOut:       []string{`"id": "m2"`, `"id": "m3"`},
		},
		{
			name:         "media list with text helper",
			args:         []string{"media", "list", "-f", `hasText(title, "TEASER")`},
			wantRequests: []string{"GET /on-demand"},
			wantOut:      []string{`"id": "m2"`},
			notOut:       []string{`"id": "m1"`, `"id": "m3"`},
		},
		{
			name:         "media list paging",
			args:         []string{"media", "list", "--limit", "10", "--order-by", "desc"},
			wantRequests: []string{"GET /on-demand?limit=10&orderBy=desc"},
			wantOut:      []string{`"id": "m3"`},
		},
		{
			name:    "media list invalid filter",
			args:    []string{"media", "list", "--filter", `status ==`},
			wantErr: "invalid filter expression",
		},
		{
			name:         "media pull with url and data",
			args:         []string{"media", "pull", "--url", "https://cdn.example.com/v.mp4", "--data", `{"metadata": {"team": "video"}}`},
			wantRequests: []string{"POST /on-demand"},
			wantBody: map[string]any{
				"accessPolicy": "public",
				"metadata":     map[string]any{"team": "video"},
				"inputs":       []any{map[string]any{"type": "video", "url": "https://cdn.example.com/v.mp4"}},
			},
		},
		{
			name:         "media delete dry run",
			args:         []string{"media", "delete", "--dry-run", "m1", "m2"},
			wantRequests: nil,
			wantOut:      []string{"[DRY RUN] would delete media m1", "[DRY RUN] would delete media m2"},
		},
		{
			name:         "streams create from stdin",
			args:         []string{"streams", "create", "--data-file", "-"},
			stdin:        `{"maxResolution": "1080p"}`,
			wantRequests: []string{"POST /live/streams"},
			wantBody:     map[string]any{"maxResolution": "1080p"},
		},
		{
			name:    "streams create rejects non-object body",
			args:    []string{"streams", "create", "--data", `[1, 2]`},
			wantErr: "request body must be a JSON object",
		},
		{
			name:         "simulcast get",
			args:         []string{"streams", "simulcast", "get", "s1", "sc1"},
			wantRequests: []string{"GET /live/streams/s1/simulcast/sc1"},
			wantOut:      []string{`"id": "created"`},
		},
		{
			name:    "simulcast delete dry run",
			args:    []string{"-d", "streams", "simulcast", "delete", "s1", "sc1"},
			wantOut: []string{"[DRY RUN] would delete simulcast sc1 of live stream s1"},
		},
		{
			name:         "playback media delete",
			args:         []string{"playback", "media", "delete", "m1", "p1", "p2"},
			wantRequests: []string{"DELETE /on-demand/m1/playback-ids?playbackId=p1&playbackId=p2"},
		},
		{
			name: "playback media delete dry run",
			args: []string{"playback", "media", "delete", "--dry-run", "m1", "p1", "p2"},
			wantOut: []string{
				"[DRY RUN] would delete playback ID p1 of media m1",
				"[DRY RUN] would delete playback ID p2 of media m1",
			},
		},
		{
			name:    "playback stream delete dry run",
			args:    []string{"playback", "stream", "delete", "--dry-run", "s1", "p9"},
			wantOut: []string{"[DRY RUN] would delete playback ID p9 of live stream s1"},
		},
		{
			name:         "playback stream create without body",
			args:         []string{"playback", "stream", "create", "s1"},
			wantRequests: []string{"POST /live/streams/s1/playback-ids"},
		},
		{
			name:         "keys delete runs every id",
			args:         []string{"keys", "delete", "k1", "k2"},
			wantRequests: []string{"DELETE /iam/signing-keys/k1", "DELETE /iam/signing-keys/k2"},
			wantOut:      []string{"✓ deleted signing key k1", "✓ deleted signing key k2", "2 of 2 succeeded"},
		},
		{
			name:         "keys list as yaml",
			args:         []string{"-o", "yaml", "keys", "list"},
			wantRequests: []string{"GET /iam/signing-keys"},
			wantOut:      []string{"success: true", "id: created"},
		},
		{
			name:    "invalid output format",
			args:    []string{"-o", "xml", "keys", "list"},
			wantErr: "invalid output format",
		},
		{
			name:         "test validates credentials on startup",
			args:         []string{"test"},
			env:          map[string]string{"FASTPIX_SKIP_VALIDATION": "false"},
			wantRequests: []string{"GET /on-demand", "GET /live/streams", "GET /iam/signing-keys"},
			wantOut:      []string{"✓ Connection successful!", "- Live streams:"},
		},
		{
			name:    "version needs no config",
			args:    []string{"version"},
			wantOut: []string{"fastpix dev"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI(t)

			out, err := runCLI(t, api, tt.env, tt.stdin, tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)

			assert.ElementsMatch(t, tt.wantRequests, api.Requests())
			for _, want := range tt.wantOut {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.notOut {
				assert.NotContains(t, out, unwanted)
			}
			if tt.wantBody != nil {
				assert.Equal(t, tt.wantBody, api.LastBody(t))
			}
		})
	}
}
