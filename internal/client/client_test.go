package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitracker/internal/model"
	"unitracker/internal/workspace"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// fakeAPI serves GET/POST /workspace from memory and counts requests.
type fakeAPI struct {
	mu       sync.Mutex
	ws       model.Workspace
	readOnly bool
	posts    []model.Workspace
	gets     atomic.Int32
	failPost bool
	block    chan struct{}
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/workspace" {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		f.gets.Add(1)
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.readOnly {
			w.Header().Set(ReadOnlyHeader, "1")
		} else {
			w.Header().Set(ReadOnlyHeader, "0")
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(f.ws)
	case http.MethodPost:
		if f.block != nil {
			<-f.block
		}
		var ws model.Workspace
		if err := json.NewDecoder(r.Body).Decode(&ws); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		f.posts = append(f.posts, ws)
		if f.failPost {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"request_id":"r1","error":{"code":"VALIDATION_FAILED","message":"university name is required"}}`))
			return
		}
		f.ws = ws
		_, _ = w.Write([]byte(`{"ok":true}`))
	}
}

func (f *fakeAPI) postCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.posts)
}

func newTestClient(t *testing.T, api *fakeAPI) *WorkspaceClient {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", WithHTTPClient(srv.Client()))
}

func TestFetch(t *testing.T) {
	api := &fakeAPI{ws: workspace.Default(testNow)}
	c := newTestClient(t, api)

	_, ok := c.Workspace()
	assert.False(t, ok)

	require.True(t, c.Fetch(context.Background()))
	ws, ok := c.Workspace()
	require.True(t, ok)
	assert.Len(t, ws.DocumentTemplates, 9)
	assert.False(t, c.ReadOnly())
	assert.False(t, c.Loading())
	assert.Empty(t, c.Err())
}

func TestFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	c := New(srv.URL, WithHTTPClient(srv.Client()))

	assert.False(t, c.Fetch(context.Background()))
	assert.Contains(t, c.Err(), "failed to load workspace")
	_, ok := c.Workspace()
	assert.False(t, ok)
}

func TestSaveReadOnly(t *testing.T) {
	api := &fakeAPI{ws: workspace.Default(testNow), readOnly: true}
	c := newTestClient(t, api)
	ctx := context.Background()

	require.True(t, c.Fetch(ctx))
	require.True(t, c.ReadOnly())
	before, _ := c.Workspace()

	next := before
	next.Notes = []model.Note{{ID: "n1", Title: "x"}}
	assert.False(t, c.Save(ctx, next))

	assert.Equal(t, "read-only: saving is disabled on this deployment", c.Err())
	assert.Equal(t, 0, api.postCount())
	assert.Equal(t, int32(1), api.gets.Load())
	after, _ := c.Workspace()
	assert.Equal(t, before, after)
}

func TestSaveReplacesCache(t *testing.T) {
	api := &fakeAPI{ws: workspace.Default(testNow)}
	c := newTestClient(t, api)
	ctx := context.Background()
	require.True(t, c.Fetch(ctx))

	ws, _ := c.Workspace()
	ws, _, err := workspace.UpsertUniversity(ws, model.University{Name: "LMU München"}, testNow)
	require.NoError(t, err)

	require.True(t, c.Save(ctx, ws))
	got, _ := c.Workspace()
	assert.Equal(t, ws, got)
	assert.Equal(t, 1, api.postCount())
	assert.False(t, c.Saving())
}

func TestSaveServerError(t *testing.T) {
	api := &fakeAPI{ws: workspace.Default(testNow), failPost: true}
	c := newTestClient(t, api)
	ctx := context.Background()
	require.True(t, c.Fetch(ctx))
	before, _ := c.Workspace()

	next := before
	next.Targets = []model.Target{{ID: "t1", Name: "Apply"}}
	assert.False(t, c.Save(ctx, next))
	assert.Equal(t, "university name is required", c.Err())

	after, _ := c.Workspace()
	assert.Equal(t, before, after)
}

func TestSaveInFlight(t *testing.T) {
	api := &fakeAPI{ws: workspace.Default(testNow), block: make(chan struct{})}
	c := newTestClient(t, api)
	ctx := context.Background()
	require.True(t, c.Fetch(ctx))
	ws, _ := c.Workspace()

	done := make(chan bool)
	go func() { done <- c.Save(ctx, ws) }()

	require.Eventually(t, c.Saving, time.Second, 5*time.Millisecond)
	assert.False(t, c.Save(ctx, ws))
	assert.Equal(t, "a save is already in progress", c.Err())

	close(api.block)
	assert.True(t, <-done)
	assert.Equal(t, 1, api.postCount())
}

func TestMutateCascadeSingleSave(t *testing.T) {
	ws := workspace.Default(testNow)
	ws.Universities = []model.University{{ID: "u1", Name: "TU Berlin"}, {ID: "u2", Name: "RWTH Aachen"}}
	ws.Programs = []model.Program{
		{ID: "p1", UniversityID: "u1"},
		{ID: "p2", UniversityID: "u1"},
		{ID: "p3", UniversityID: "u2"},
	}
	ws.AdmissionWindows = []model.AdmissionWindow{
		{ID: "w1", ProgramID: "p1"},
		{ID: "w2", ProgramID: "p2"},
		{ID: "w3", ProgramID: "p3"},
	}
	api := &fakeAPI{ws: ws}
	c := newTestClient(t, api)
	ctx := context.Background()
	require.True(t, c.Fetch(ctx))

	ok := c.Mutate(ctx, func(ws model.Workspace) (model.Workspace, error) {
		return workspace.DeleteUniversity(ws, "u1")
	})
	require.True(t, ok)

	require.Equal(t, 1, api.postCount())
	saved := api.posts[0]
	require.Len(t, saved.Universities, 1)
	assert.Equal(t, "u2", saved.Universities[0].ID)
	require.Len(t, saved.Programs, 1)
	assert.Equal(t, "p3", saved.Programs[0].ID)
	require.Len(t, saved.AdmissionWindows, 1)
	assert.Equal(t, "w3", saved.AdmissionWindows[0].ID)
}

func TestMutateErrors(t *testing.T) {
	api := &fakeAPI{ws: workspace.Default(testNow)}
	c := newTestClient(t, api)
	ctx := context.Background()

	assert.False(t, c.Mutate(ctx, func(ws model.Workspace) (model.Workspace, error) { return ws, nil }))
	assert.Equal(t, "workspace not loaded", c.Err())

	require.True(t, c.Fetch(ctx))
	assert.False(t, c.Mutate(ctx, func(ws model.Workspace) (model.Workspace, error) {
		return workspace.DeleteUniversity(ws, "missing")
	}))
	assert.Contains(t, c.Err(), "not found")
	assert.Equal(t, 0, api.postCount())
}

func TestMutateFnError(t *testing.T) {
	api := &fakeAPI{ws: workspace.Default(testNow)}
	c := newTestClient(t, api)
	require.True(t, c.Fetch(context.Background()))

	assert.False(t, c.Mutate(context.Background(), func(model.Workspace) (model.Workspace, error) {
		return model.Workspace{}, errors.New("boom")
	}))
	assert.Equal(t, "boom", c.Err())
}
