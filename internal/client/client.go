// Package client is the fetch/save contract every consumer of the workspace goes through.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"unitracker/internal/model"
)

// ReadOnlyHeader is set to "1" by the API when saving is disabled.
const ReadOnlyHeader = "X-Workspace-Readonly"

const (
	errReadOnly     = "read-only: saving is disabled on this deployment"
	errSaveInFlight = "a save is already in progress"
	errNoWorkspace  = "workspace not loaded"
)

// WorkspaceClient caches the workspace document fetched from the API and saves whole documents
// back. Failures are kept as a message readable through Err; methods report success as a bool.
// Safe for concurrent use.
type WorkspaceClient struct {
	base string
	http *http.Client

	mu       sync.Mutex
	ws       *model.Workspace
	readOnly bool
	loading  bool
	saving   bool
	err      string
}

// Option configures a WorkspaceClient.
type Option func(*WorkspaceClient)

// WithHTTPClient replaces the default instrumented HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(w *WorkspaceClient) { w.http = c }
}

// New returns a client for the API rooted at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *WorkspaceClient {
	c := &WorkspaceClient{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Fetch loads the document and the read-only flag.
func (c *WorkspaceClient) Fetch(ctx context.Context) bool {
	c.mu.Lock()
	c.err = ""
	c.loading = true
	c.mu.Unlock()

	ws, readOnly, err := c.get(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.err = err.Error()
		return false
	}
	c.ws = &ws
	c.readOnly = readOnly
	return true
}

func (c *WorkspaceClient) get(ctx context.Context) (model.Workspace, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/workspace", nil)
	if err != nil {
		return model.Workspace{}, false, err
	}
	req.Header.Set("Cache-Control", "no-store")

	res, err := c.http.Do(req)
	if err != nil {
		return model.Workspace{}, false, fmt.Errorf("failed to load workspace: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode/100 != 2 {
		return model.Workspace{}, false, apiError(res, "failed to load workspace")
	}
	var ws model.Workspace
	if err := json.NewDecoder(res.Body).Decode(&ws); err != nil {
		return model.Workspace{}, false, fmt.Errorf("failed to load workspace: %w", err)
	}
	return ws, res.Header.Get(ReadOnlyHeader) == "1", nil
}

// Save posts next as the whole document. On success the cache becomes exactly next.
// It refuses without any HTTP call when read-only or while another save is running.
func (c *WorkspaceClient) Save(ctx context.Context, next model.Workspace) bool {
	c.mu.Lock()
	if c.readOnly {
		c.err = errReadOnly
		c.mu.Unlock()
		return false
	}
	if c.saving {
		c.err = errSaveInFlight
		c.mu.Unlock()
		return false
	}
	c.err = ""
	c.saving = true
	c.mu.Unlock()

	err := c.post(ctx, next)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.saving = false
	if err != nil {
		c.err = err.Error()
		return false
	}
	c.ws = &next
	return true
}

func (c *WorkspaceClient) post(ctx context.Context, next model.Workspace) error {
	body, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to save workspace: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/workspace", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to save workspace: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode/100 != 2 {
		return apiError(res, "failed to save workspace")
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 1<<20))
	return nil
}

// Mutate applies fn to the cached document and saves the result once.
func (c *WorkspaceClient) Mutate(ctx context.Context, fn func(model.Workspace) (model.Workspace, error)) bool {
	c.mu.Lock()
	if c.ws == nil {
		c.err = errNoWorkspace
		c.mu.Unlock()
		return false
	}
	cur := *c.ws
	c.mu.Unlock()

	next, err := fn(cur)
	if err != nil {
		c.mu.Lock()
		c.err = err.Error()
		c.mu.Unlock()
		return false
	}
	return c.Save(ctx, next)
}

// Workspace returns the cached document and whether one has been loaded.
func (c *WorkspaceClient) Workspace() (model.Workspace, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ws == nil {
		return model.Workspace{}, false
	}
	return *c.ws, true
}

func (c *WorkspaceClient) ReadOnly() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readOnly
}

func (c *WorkspaceClient) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *WorkspaceClient) Saving() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saving
}

// Err returns the last failure message, or "" after a successful call.
func (c *WorkspaceClient) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// apiError prefers the message from the API error envelope.
func apiError(res *http.Response, fallback string) error {
	var env errorEnvelope
	b, _ := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if json.Unmarshal(b, &env) == nil && env.Error.Message != "" {
		return errors.New(env.Error.Message)
	}
	return fmt.Errorf("%s: status %d", fallback, res.StatusCode)
}
