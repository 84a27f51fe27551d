package controllers

import (
	"github.com/gofiber/fiber/v2"

	"talenthr/internal/services"
)

type ReportHandler struct {
	reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Overview godoc
// @Summary      Dashboard overview
// @Description  Headcount by department and status, open postings, pending leaves
// @Tags         reports
// @Produce      json
// @Success      200 {object} dto.OverviewReport
// @Router       /api/reports/overview [get]
func (h *ReportHandler) Overview(c *fiber.Ctx) error {
	viewer, err := viewerFrom(c)
	if err != nil {
		return err
	}

	report, err := h.reports.Overview(c.Context(), viewer.CompanyID)
	if err != nil {
		return err
	}
	return c.JSON(report)
}
