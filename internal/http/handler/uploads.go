package handler

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"unitracker/internal/service"
)

// ListUploads returns every upload metadata record.
//
// @Summary  List uploads
// @Tags     uploads
// @Produce  json
// @Success  200 {array}  model.UploadedDoc
// @Failure  500 {object} errorPayload
// @Router   /uploads [get]
func ListUploads(svc service.UploadService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := svc.List(c.UserContext())
		if err != nil {
			return serviceError(c, log, err)
		}
		return c.JSON(docs)
	}
}

// UploadFile stores a file from a multipart form (field name: file).
//
// @Summary  Upload file
// @Tags     uploads
// @Accept   multipart/form-data
// @Produce  json
// @Param    file        formData file   true  "File to store"
// @Param    displayName formData string false "Display name, defaults to the file name"
// @Param    notes       formData string false "Notes"
// @Param    templateId  formData string false "Document template this file satisfies"
// @Success  201 {object} model.UploadedDoc
// @Failure  400 {object} errorPayload
// @Failure  403 {object} errorPayload
// @Failure  500 {object} errorPayload
// @Router   /uploads [post]
func UploadFile(svc service.UploadService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, CodeFileRequired, "missing file (field name must be 'file')")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, CodeFileRequired, "cannot open uploaded file")
		}
		defer f.Close()

		doc, err := svc.Upload(c.UserContext(), f, service.UploadInput{
			OriginalName: fh.Filename,
			ContentType:  fh.Header.Get("Content-Type"),
			Size:         fh.Size,
			DisplayName:  c.FormValue("displayName"),
			Notes:        c.FormValue("notes"),
			TemplateID:   c.FormValue("templateId"),
		})
		if err != nil {
			return serviceError(c, log, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

type patchUploadRequest struct {
	ID string `json:"id"`
	service.UploadPatch
}

// PatchUpload updates display name, notes or template link of an upload.
//
// @Summary  Update upload metadata
// @Tags     uploads
// @Accept   json
// @Produce  json
// @Param    patch body patchUploadRequest true "id plus the fields to change; null clears notes or templateId"
// @Success  200 {object} model.UploadedDoc
// @Failure  400 {object} errorPayload
// @Failure  403 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Router   /uploads [patch]
func PatchUpload(svc service.UploadService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req patchUploadRequest
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return writeError(c, fiber.StatusBadRequest, CodeInvalidBody, "invalid request body")
		}
		doc, err := svc.Update(c.UserContext(), strings.TrimSpace(req.ID), req.UploadPatch)
		if err != nil {
			return serviceError(c, log, err)
		}
		return c.JSON(doc)
	}
}

// DeleteUpload removes an upload record and its file.
//
// @Summary  Delete upload
// @Tags     uploads
// @Produce  json
// @Param    id query string true "Upload id"
// @Success  200 {object} okResponse
// @Failure  400 {object} errorPayload
// @Failure  403 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Router   /uploads [delete]
func DeleteUpload(svc service.UploadService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Query("id")); err != nil {
			return serviceError(c, log, err)
		}
		return c.JSON(okResponse{OK: true})
	}
}

// DownloadUpload streams the stored bytes as an attachment.
//
// @Summary  Download upload
// @Tags     uploads
// @Produce  octet-stream
// @Param    id path string true "Upload id"
// @Success  200 {file} file
// @Failure  404 {object} errorPayload
// @Router   /uploads/{id} [get]
func DownloadUpload(svc service.UploadService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, rc, err := svc.Open(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, log, err)
		}

		mimeType := doc.MimeType
		if mimeType == "" {
			mimeType = fiber.MIMEOctetStream
		}
		c.Set(fiber.HeaderContentType, mimeType)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+encodeFilename(doc.OriginalName)+`"`)
		// fasthttp closes the reader once the body has been written.
		return c.SendStream(rc, int(doc.Size))
	}
}

// encodeFilename percent-encodes name for a quoted Content-Disposition parameter.
func encodeFilename(name string) string {
	return strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
}
