package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"unitracker/internal/model"
	"unitracker/internal/repository"
	"unitracker/internal/workspace"
)

var tracer = otel.Tracer("unitracker/internal/service")

// WorkspaceService is the workspace store: whole-document load and save.
type WorkspaceService interface {
	// Load returns the normalized document. A missing document is replaced by the seeded default,
	// which is persisted before returning. Values of the wrong JSON type are skipped and the rest of
	// the document is kept; a document that is not a JSON object at all is replaced by the default.
	// In both cases the stored bytes are first handed to the repository's Backup.
	Load(ctx context.Context) (model.Workspace, error)

	// Save overwrites the stored document with ws. Whole-document replace, last write wins.
	Save(ctx context.Context, ws model.Workspace) error

	// Ping reports whether the backing repository is reachable.
	Ping(ctx context.Context) error
}

type workspaceService struct {
	repo repository.WorkspaceRepository
	log  *zap.Logger
	now  func() time.Time
}

type options struct {
	now func() time.Time
}

// Option customizes a service.
type Option func(*options)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// NewWorkspaceService constructs a WorkspaceService over repo.
func NewWorkspaceService(repo repository.WorkspaceRepository, log *zap.Logger, opts ...Option) WorkspaceService {
	o := buildOptions(opts)
	return &workspaceService{repo: repo, log: log, now: o.now}
}

func (s *workspaceService) Load(ctx context.Context) (model.Workspace, error) {
	ctx, span := tracer.Start(ctx, "WorkspaceService.Load")
	defer span.End()

	now := s.now()
	raw, err := s.repo.Read(ctx)
	switch {
	case errors.Is(err, repository.ErrNotExist):
		span.SetAttributes(attribute.Bool("workspace.seeded", true))
		return s.seed(ctx, now)
	case err != nil:
		span.RecordError(err)
		return model.Workspace{}, fmt.Errorf("read workspace: %w", err)
	}

	ws, err := decodeDocument(raw)
	var typeErr *json.UnmarshalTypeError
	switch {
	case err == nil:
		return workspace.Normalize(ws, now), nil
	case errors.As(err, &typeErr):
		// Unmarshal fills every value it can and skips the mistyped ones.
		s.log.Warn("workspace_values_skipped",
			zap.Error(err),
			zap.String("action", "kept remaining data, stored original as backup"),
		)
		span.SetAttributes(attribute.Bool("workspace.salvaged", true))
		if err := s.backup(ctx, raw); err != nil {
			return model.Workspace{}, err
		}
		return workspace.Normalize(ws, now), nil
	}

	s.log.Warn("workspace_unparsable",
		zap.Error(err),
		zap.Int("bytes", len(raw)),
		zap.String("action", "replacing with default"),
	)
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := s.backup(ctx, raw); err != nil {
			return model.Workspace{}, err
		}
	}
	span.SetAttributes(attribute.Bool("workspace.seeded", true))
	return s.seed(ctx, now)
}

var errNotObject = errors.New("workspace document is not a JSON object")

// decodeDocument decodes raw into a workspace. A *json.UnmarshalTypeError means the document was
// valid JSON and ws holds everything except the mistyped values; any other error means nothing
// usable was decoded.
func decodeDocument(raw []byte) (model.Workspace, error) {
	var ws model.Workspace
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ws, errors.New("workspace document is empty")
	}
	if !json.Valid(trimmed) {
		// Unmarshal would report the *json.SyntaxError with its offset.
		return ws, json.Unmarshal(trimmed, &ws)
	}
	if trimmed[0] != '{' {
		return ws, errNotObject
	}
	err := json.Unmarshal(trimmed, &ws)
	return ws, err
}

// backup keeps the stored bytes before Load replaces or rewrites them.
func (s *workspaceService) backup(ctx context.Context, raw []byte) error {
	if err := s.repo.Backup(ctx, raw); err != nil {
		return fmt.Errorf("backup workspace: %w", err)
	}
	return nil
}

func (s *workspaceService) seed(ctx context.Context, now time.Time) (model.Workspace, error) {
	ws := workspace.Default(now)
	if err := s.write(ctx, ws); err != nil {
		return model.Workspace{}, err
	}
	s.log.Info("workspace_seeded",
		zap.Int("templates", len(ws.DocumentTemplates)),
		zap.Int("fields", len(ws.Admin.UniversityFields)),
	)
	return ws, nil
}

func (s *workspaceService) Save(ctx context.Context, ws model.Workspace) error {
	ctx, span := tracer.Start(ctx, "WorkspaceService.Save")
	defer span.End()

	if err := s.write(ctx, ws); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (s *workspaceService) write(ctx context.Context, ws model.Workspace) error {
	b, err := json.MarshalIndent(ws, "", "  ")
	if err != nil {
		return fmt.Errorf("encode workspace: %w", err)
	}
	if err := s.repo.Write(ctx, b); err != nil {
		return fmt.Errorf("write workspace: %w", err)
	}
	return nil
}

func (s *workspaceService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
