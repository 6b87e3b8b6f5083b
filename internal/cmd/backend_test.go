package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"

	"github.com/gravitrone/doctor-call/cli/internal/config"
)

// fakeBackend records request bodies per path and answers from routes.
type fakeBackend struct {
	mu     sync.Mutex
	bodies map[string][]map[string]any
	hits   map[string]int
	routes map[string]func(n int) (int, any)
	srv    *httptest.Server
}

func newFakeBackend(t *testing.T, routes map[string]func(n int) (int, any)) *fakeBackend {
	t.Helper()
	b := &fakeBackend{
		bodies: map[string][]map[string]any{},
		hits:   map[string]int{},
		routes: routes,
	}
	b.srv = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	b.mu.Lock()
	b.hits[r.URL.Path]++
	n := b.hits[r.URL.Path]
	if body != nil {
		b.bodies[r.URL.Path] = append(b.bodies[r.URL.Path], body)
	}
	route, ok := b.routes[r.URL.Path]
	b.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	status, resp := route(n)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func (b *fakeBackend) count(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[path]
}

func (b *fakeBackend) lastBody(path string) map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	bodies := b.bodies[path]
	if len(bodies) == 0 {
		return nil
	}
	return bodies[len(bodies)-1]
}

func respondOK(body any) func(int) (int, any) {
	return func(int) (int, any) { return http.StatusOK, body }
}

func healthy(doctors ...string) func(int) (int, any) {
	return respondOK(map[string]any{"status": "ok", "connectedDoctors": len(doctors), "doctors": doctors})
}

func connected(doctors ...string) func(int) (int, any) {
	if doctors == nil {
		doctors = []string{}
	}
	return respondOK(map[string]any{"connectedDoctors": doctors, "count": len(doctors)})
}

// isolateConfig points config lookups at an empty home and the given backend.
func isolateConfig(t *testing.T, backendURL string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	testChdir(t, t.TempDir())
	t.Setenv(config.EnvBackendURL, backendURL)
}

// execute runs sub under a root carrying the global flags.
func execute(t *testing.T, sub *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	root := &cobra.Command{Use: "doctorcall", SilenceUsage: true, SilenceErrors: true}
	BindGlobalFlags(root)
	root.AddCommand(sub)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{sub.Name()}, args...))
	err := root.Execute()
	return out.String(), err
}
