package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/colegios-api/internal/models"
	"github.com/noah-isme/colegios-api/internal/service"
	"github.com/noah-isme/colegios-api/pkg/response"
)

// ExportHandler serves downloadable reports of the catalog lists.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler constructs an export handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// Export godoc
// @Summary Export resource list
// @Tags Reportes
// @Produce text/csv,application/pdf,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param resource path string true "departamentos, municipios, colegios, sedes or usuarios"
// @Param format query string false "csv (default), pdf or xlsx"
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/reportes/{resource} [get]
func (h *ExportHandler) Export(c *gin.Context) {
	format := models.ReportFormat(c.DefaultQuery("format", string(models.ReportFormatCSV)))
	file, err := h.service.Export(c.Request.Context(), c.Param("resource"), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
