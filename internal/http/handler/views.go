package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"unitracker/internal/period"
	"unitracker/internal/service"
	"unitracker/internal/views"
)

// Dashboard returns status buckets, upcoming targets and checklist progress.
//
// @Summary  Dashboard
// @Tags     views
// @Produce  json
// @Success  200 {object} views.Dashboard
// @Router   /views/dashboard [get]
func Dashboard(svc service.WorkspaceService, now func() time.Time, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ws, err := svc.Load(c.UserContext())
		if err != nil {
			return serviceError(c, log, err)
		}
		return c.JSON(views.BuildDashboard(ws, now()))
	}
}

// Calendar returns the Monday-first month grid with admission and target events.
//
// @Summary  Calendar month
// @Tags     views
// @Produce  json
// @Param    month query string false "Month as YYYY-MM, defaults to the current month"
// @Success  200 {object} views.Month
// @Failure  400 {object} errorPayload
// @Router   /views/calendar [get]
func Calendar(svc service.WorkspaceService, now func() time.Time, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		t := now()
		cursor, err := views.ParseMonth(c.Query("month"), t)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, CodeInvalidQuery, "month must be YYYY-MM")
		}
		ws, err := svc.Load(c.UserContext())
		if err != nil {
			return serviceError(c, log, err)
		}
		return c.JSON(views.MonthGrid(ws, cursor, t))
	}
}

type universitiesResponse struct {
	Fields []fieldColumn         `json:"fields"`
	Rows   []views.UniversityRow `json:"rows"`
}

type fieldColumn struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// Universities returns the filtered university table with its visible custom columns.
//
// @Summary  University table
// @Tags     views
// @Produce  json
// @Param    status query string false "Period status filter"
// @Param    q      query string false "Search in name, city and degree title"
// @Success  200 {object} universitiesResponse
// @Failure  400 {object} errorPayload
// @Router   /views/universities [get]
func Universities(svc service.WorkspaceService, now func() time.Time, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := period.Status(c.Query("status"))
		if status != "" && !status.Valid() {
			return writeError(c, fiber.StatusBadRequest, CodeInvalidQuery, "unknown status")
		}
		ws, err := svc.Load(c.UserContext())
		if err != nil {
			return serviceError(c, log, err)
		}

		res := universitiesResponse{
			Fields: []fieldColumn{},
			Rows:   views.FilterUniversities(ws, views.UniversityFilter{Status: status, Query: c.Query("q")}, now()),
		}
		for _, d := range views.VisibleFields(ws) {
			res.Fields = append(res.Fields, fieldColumn{Key: d.Key, Label: d.Label, Type: string(d.Type)})
		}
		return c.JSON(res)
	}
}
