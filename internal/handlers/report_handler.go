package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/yasinga/yasinga/internal/dto"
	"github.com/yasinga/yasinga/internal/errors"
	"github.com/yasinga/yasinga/internal/export"
	"github.com/yasinga/yasinga/internal/models"
	"github.com/yasinga/yasinga/internal/repositories"
	"github.com/yasinga/yasinga/internal/services"
)

// ReportHandler handles expense report HTTP requests
type ReportHandler struct {
	reportService services.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService services.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GenerateReport builds a report over the requested window
// @Summary Generate report
// @Description Aggregates the window's transactions and renders a downloadable artifact
// @Tags Reports
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param window path string true "Report window" Enums(weekly, monthly)
// @Param request body dto.GenerateReportRequest false "Artifact format, pdf by default"
// @Success 201 {object} dto.ReportResponse "Generated report"
// @Failure 400 {object} errors.ErrorResponse "REPORT_002 - Invalid report window"
// @Router /reports/{window} [post]
func (h *ReportHandler) GenerateReport(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	window := c.Param("window")

	var req dto.GenerateReportRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	if req.Format == "" {
		req.Format = models.ReportFormatPDF
	}

	report, err := h.reportService.GenerateReport(userID, window, req.Format)
	if err != nil {
		switch {
		case stderrors.Is(err, models.ErrInvalidReportWindow):
			return SendError(c, errors.ReportInvalidWindow)
		case stderrors.Is(err, models.ErrInvalidReportFormat):
			return SendError(c, errors.ReportInvalidFormat)
		default:
			return SendError(c, errors.ReportGenerationFail,
				errors.WithDetails("Report generation failed, try again later"))
		}
	}

	return c.JSON(http.StatusCreated, dto.ReportResponse{Report: report})
}

// ListReports returns a page of the user's generated reports
// @Summary List reports
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param offset query int false "Results offset" default(0)
// @Param limit query int false "Results limit (max 200)" default(50)
// @Success 200 {object} dto.ReportListResponse "Report page"
// @Router /reports [get]
func (h *ReportHandler) ListReports(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	offset := getIntParam(c, "offset", 0)
	limit := getIntParam(c, "limit", 50)

	reports, total, err := h.reportService.ListReports(userID, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ReportListResponse{
		Reports: reports,
		Total:   total,
		Offset:  offset,
		Limit:   limit,
	})
}

// DownloadReport streams a report artifact as an attachment
// @Summary Download report artifact
// @Tags Reports
// @Security BearerAuth
// @Produce application/octet-stream
// @Param id path string true "Report ID"
// @Success 200 {file} file "Report artifact"
// @Failure 404 {object} errors.ErrorResponse "REPORT_004 - Artifact no longer on disk"
// @Router /reports/{id}/download [get]
func (h *ReportHandler) DownloadReport(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ReportNotFound)
	}

	report, fullPath, err := h.reportService.GetReportFile(userID, reportID)
	if err != nil {
		return h.mapReportError(c, err)
	}

	name := fmt.Sprintf("%s-report-%s%s",
		report.Window,
		report.PeriodEnd.Format("2006-01-02"),
		filepath.Ext(fullPath))
	return c.Attachment(fullPath, name)
}

// DeleteReport removes a report and its artifact
// @Summary Delete report
// @Tags Reports
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 204 "Report deleted"
// @Failure 404 {object} errors.ErrorResponse "REPORT_001 - Report not found"
// @Router /reports/{id} [delete]
func (h *ReportHandler) DeleteReport(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ReportNotFound)
	}

	if err := h.reportService.DeleteReport(userID, reportID); err != nil {
		return h.mapReportError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ReportHandler) mapReportError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, repositories.ErrReportNotFound),
		stderrors.Is(err, services.ErrReportNotOwned):
		return SendError(c, errors.ReportNotFound)
	case stderrors.Is(err, export.ErrArtifactNotFound):
		return SendError(c, errors.ReportFileMissing)
	default:
		return SendSystemError(c, err)
	}
}
