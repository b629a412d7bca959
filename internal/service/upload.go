package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"unitracker/internal/model"
	"unitracker/internal/storage"
	"unitracker/internal/workspace"
)

var (
	ErrIDRequired  = errors.New("id is required")
	ErrNotFound    = errors.New("upload not found")
	ErrFileMissing = errors.New("upload file is missing")
	ErrReaderNil   = errors.New("reader is nil")
)

const defaultMimeType = "application/octet-stream"

// UploadInput describes a file received from a multipart form.
type UploadInput struct {
	OriginalName string
	ContentType  string
	Size         int64
	DisplayName  string
	Notes        string
	TemplateID   string
}

// Nullable is a JSON string that distinguishes an absent key from an explicit null.
type Nullable struct {
	Set   bool
	Null  bool
	Value string
}

// UnmarshalJSON is only invoked when the key is present.
func (n *Nullable) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Null = true
		n.Value = ""
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

// apply returns the new value for a clearable string: absent keeps cur, null or blank clears.
func (n Nullable) apply(cur string) string {
	switch {
	case !n.Set:
		return cur
	case n.Null:
		return ""
	}
	return strings.TrimSpace(n.Value)
}

// UploadPatch is a partial update of an upload's metadata.
type UploadPatch struct {
	DisplayName *string  `json:"displayName,omitempty"`
	Notes       Nullable `json:"notes"`
	TemplateID  Nullable `json:"templateId"`
}

// UploadService coordinates upload store objects with the upload records in the workspace.
type UploadService interface {
	List(ctx context.Context) ([]model.UploadedDoc, error)

	// Upload writes the object, then records its metadata. If the record cannot be saved the
	// object is deleted again.
	Upload(ctx context.Context, r io.Reader, in UploadInput) (model.UploadedDoc, error)

	Update(ctx context.Context, id string, p UploadPatch) (model.UploadedDoc, error)

	// Delete removes the record, then the object. A missing object is not an error.
	Delete(ctx context.Context, id string) error

	// Open returns the record and a reader over its bytes. The returned record's Size is the size
	// of the stored object, which may differ from the metadata. The caller closes the reader.
	Open(ctx context.Context, id string) (model.UploadedDoc, io.ReadCloser, error)
}

type uploadService struct {
	mu    sync.Mutex
	ws    WorkspaceService
	store storage.Storage
	log   *zap.Logger
	now   func() time.Time
}

// NewUploadService constructs an UploadService.
func NewUploadService(ws WorkspaceService, store storage.Storage, log *zap.Logger, opts ...Option) UploadService {
	o := buildOptions(opts)
	return &uploadService{ws: ws, store: store, log: log, now: o.now}
}

func (s *uploadService) List(ctx context.Context) ([]model.UploadedDoc, error) {
	ws, err := s.ws.Load(ctx)
	if err != nil {
		return nil, err
	}
	return ws.Uploads, nil
}

func (s *uploadService) Upload(ctx context.Context, r io.Reader, in UploadInput) (model.UploadedDoc, error) {
	if r == nil {
		return model.UploadedDoc{}, ErrReaderNil
	}
	ctx, span := tracer.Start(ctx, "UploadService.Upload", trace.WithAttributes(
		attribute.String("upload.original_name", in.OriginalName),
		attribute.Int64("upload.size", in.Size),
	))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	ws, err := s.ws.Load(ctx)
	if err != nil {
		return model.UploadedDoc{}, err
	}

	id := workspace.NewID()
	key := storage.StoredName(id, in.OriginalName)
	mimeType := in.ContentType
	if mimeType == "" {
		mimeType = defaultMimeType
	}

	info, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        in.Size,
		ContentType: mimeType,
		Metadata:    map[string]string{"original-filename": in.OriginalName},
	})
	if err != nil {
		span.RecordError(err)
		return model.UploadedDoc{}, fmt.Errorf("upload to storage: %w", err)
	}

	ts := workspace.Timestamp(s.now())
	displayName := strings.TrimSpace(in.DisplayName)
	if displayName == "" {
		displayName = in.OriginalName
	}
	doc := model.UploadedDoc{
		ID:           id,
		TemplateID:   strings.TrimSpace(in.TemplateID),
		DisplayName:  displayName,
		OriginalName: in.OriginalName,
		StoredName:   key,
		MimeType:     mimeType,
		Size:         info.Size,
		CreatedAt:    ts,
		UpdatedAt:    ts,
		Notes:        strings.TrimSpace(in.Notes),
	}

	ws.Uploads = append([]model.UploadedDoc{doc}, ws.Uploads...)
	if err := s.ws.Save(ctx, ws); err != nil {
		span.RecordError(err)
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return model.UploadedDoc{}, fmt.Errorf("save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return model.UploadedDoc{}, fmt.Errorf("save failed: %w", err)
	}

	s.log.Info("upload_stored",
		zap.String("upload_id", id),
		zap.String("stored_name", key),
		zap.Int64("size", doc.Size),
	)
	return doc, nil
}

func (s *uploadService) Update(ctx context.Context, id string, p UploadPatch) (model.UploadedDoc, error) {
	if strings.TrimSpace(id) == "" {
		return model.UploadedDoc{}, ErrIDRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ws, err := s.ws.Load(ctx)
	if err != nil {
		return model.UploadedDoc{}, err
	}
	i := indexOf(ws.Uploads, id)
	if i < 0 {
		return model.UploadedDoc{}, ErrNotFound
	}

	uploads := make([]model.UploadedDoc, len(ws.Uploads))
	copy(uploads, ws.Uploads)
	doc := uploads[i]
	if p.DisplayName != nil {
		if name := strings.TrimSpace(*p.DisplayName); name != "" {
			doc.DisplayName = name
		}
	}
	doc.Notes = p.Notes.apply(doc.Notes)
	doc.TemplateID = p.TemplateID.apply(doc.TemplateID)
	doc.UpdatedAt = workspace.Timestamp(s.now())
	uploads[i] = doc
	ws.Uploads = uploads

	if err := s.ws.Save(ctx, ws); err != nil {
		return model.UploadedDoc{}, err
	}
	return doc, nil
}

func (s *uploadService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrIDRequired
	}
	ctx, span := tracer.Start(ctx, "UploadService.Delete", trace.WithAttributes(attribute.String("upload.id", id)))
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	ws, err := s.ws.Load(ctx)
	if err != nil {
		return err
	}
	i := indexOf(ws.Uploads, id)
	if i < 0 {
		return ErrNotFound
	}
	doc := ws.Uploads[i]

	remaining := make([]model.UploadedDoc, 0, len(ws.Uploads)-1)
	remaining = append(remaining, ws.Uploads[:i]...)
	remaining = append(remaining, ws.Uploads[i+1:]...)
	ws.Uploads = remaining
	if err := s.ws.Save(ctx, ws); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, doc.StoredName); err != nil {
		s.log.Warn("upload_object_delete_failed",
			zap.String("upload_id", id),
			zap.String("stored_name", doc.StoredName),
			zap.Error(err),
		)
	}
	return nil
}

func (s *uploadService) Open(ctx context.Context, id string) (model.UploadedDoc, io.ReadCloser, error) {
	if strings.TrimSpace(id) == "" {
		return model.UploadedDoc{}, nil, ErrIDRequired
	}
	ws, err := s.ws.Load(ctx)
	if err != nil {
		return model.UploadedDoc{}, nil, err
	}
	i := indexOf(ws.Uploads, id)
	if i < 0 {
		return model.UploadedDoc{}, nil, ErrNotFound
	}
	doc := ws.Uploads[i]

	rc, info, err := s.store.Get(ctx, doc.StoredName)
	if errors.Is(err, storage.ErrObjectNotFound) {
		return doc, nil, ErrFileMissing
	}
	if err != nil {
		return doc, nil, fmt.Errorf("open object: %w", err)
	}
	// The stored object is authoritative for the byte count.
	doc.Size = info.Size
	return doc, rc, nil
}

func indexOf(uploads []model.UploadedDoc, id string) int {
	for i, d := range uploads {
		if d.ID == id {
			return i
		}
	}
	return -1
}
