package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"unitracker/internal/http/middleware"
	"unitracker/internal/service"
)

// Deps are the collaborators the routes need.
type Deps struct {
	Workspace service.WorkspaceService
	Uploads   service.UploadService
	ReadOnly  bool
	Log       *zap.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Every mutating route sits behind the read-only guard.
func RegisterRoutes(app *fiber.App, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	guard := ReadOnlyGuard(d.ReadOnly)

	noStore := middleware.NoStore()

	app.Get("/health", HealthCheck(d.Workspace))
	app.Get("/healthz", LivenessProbe())

	app.Get("/workspace", noStore, GetWorkspace(d.Workspace, d.ReadOnly, d.Log))
	app.Post("/workspace", guard, SaveWorkspace(d.Workspace, d.Log))

	app.Get("/uploads", noStore, ListUploads(d.Uploads, d.Log))
	app.Post("/uploads", guard, UploadFile(d.Uploads, d.Log))
	app.Patch("/uploads", guard, PatchUpload(d.Uploads, d.Log))
	app.Delete("/uploads", guard, DeleteUpload(d.Uploads, d.Log))
	app.Get("/uploads/:id", DownloadUpload(d.Uploads, d.Log))

	app.Get("/views/dashboard", noStore, Dashboard(d.Workspace, d.Now, d.Log))
	app.Get("/views/calendar", noStore, Calendar(d.Workspace, d.Now, d.Log))
	app.Get("/views/universities", noStore, Universities(d.Workspace, d.Now, d.Log))
}
