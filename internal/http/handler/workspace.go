package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"unitracker/internal/model"
	"unitracker/internal/service"
	"unitracker/internal/workspace"
)

// ReadOnlyHeader tells clients whether saving is disabled.
const ReadOnlyHeader = "X-Workspace-Readonly"

type okResponse struct {
	OK bool `json:"ok"`
}

// GetWorkspace returns the whole workspace document.
//
// @Summary  Get workspace
// @Tags     workspace
// @Produce  json
// @Success  200 {object} model.Workspace
// @Header   200 {string} X-Workspace-Readonly "1 when saving is disabled"
// @Failure  500 {object} errorPayload
// @Router   /workspace [get]
func GetWorkspace(svc service.WorkspaceService, readOnly bool, log *zap.Logger) fiber.Handler {
	flag := "0"
	if readOnly {
		flag = "1"
	}
	return func(c *fiber.Ctx) error {
		ws, err := svc.Load(c.UserContext())
		if err != nil {
			return serviceError(c, log, err)
		}
		c.Set(ReadOnlyHeader, flag)
		return c.JSON(ws)
	}
}

// SaveWorkspace replaces the stored document with the request body.
//
// @Summary  Save workspace
// @Tags     workspace
// @Accept   json
// @Produce  json
// @Param    workspace body model.Workspace true "Whole workspace document"
// @Success  200 {object} okResponse
// @Failure  400 {object} errorPayload
// @Failure  403 {object} errorPayload
// @Failure  500 {object} errorPayload
// @Router   /workspace [post]
func SaveWorkspace(svc service.WorkspaceService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var ws model.Workspace
		if err := json.Unmarshal(c.Body(), &ws); err != nil {
			return writeError(c, fiber.StatusBadRequest, CodeInvalidBody, "request body is not a workspace document")
		}
		if err := workspace.Validate(ws); err != nil {
			return writeError(c, fiber.StatusBadRequest, CodeValidationFailed, err.Error())
		}
		if err := svc.Save(c.UserContext(), ws); err != nil {
			return serviceError(c, log, err)
		}
		return c.JSON(okResponse{OK: true})
	}
}

// ReadOnlyGuard rejects the request with 403 before any handler runs when enabled.
func ReadOnlyGuard(enabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if enabled {
			return writeError(c, fiber.StatusForbidden, CodeReadOnly, "read-only: saving is disabled on this deployment")
		}
		return c.Next()
	}
}
