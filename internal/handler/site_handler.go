package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/colegios-api/internal/dto"
	"github.com/noah-isme/colegios-api/internal/service"
	"github.com/noah-isme/colegios-api/pkg/response"
)

// SiteHandler handles site CRUD endpoints.
type SiteHandler struct {
	service *service.SiteService
}

// NewSiteHandler creates a new site handler.
func NewSiteHandler(svc *service.SiteService) *SiteHandler {
	return &SiteHandler{service: svc}
}

// List godoc
// @Summary List sites
// @Tags Sedes
// @Produce json
// @Success 200 {array} models.Site
// @Failure 500 {object} response.ErrorBody
// @Router /api/sedes [get]
func (h *SiteHandler) List(c *gin.Context) {
	sites, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sites)
}

// Get godoc
// @Summary Get site
// @Tags Sedes
// @Produce json
// @Param id path int true "Site ID"
// @Success 200 {object} models.Site
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/sedes/{id} [get]
func (h *SiteHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	site, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, site)
}

// Create godoc
// @Summary Create site
// @Tags Sedes
// @Accept json
// @Produce json
// @Param payload body dto.SiteRequest true "Site payload"
// @Success 201 {object} models.Site
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /api/sedes [post]
func (h *SiteHandler) Create(c *gin.Context) {
	var req dto.SiteRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	site, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, site)
}

// Update godoc
// @Summary Update site
// @Tags Sedes
// @Accept json
// @Produce json
// @Param id path int true "Site ID"
// @Param payload body dto.SiteRequest true "Site payload"
// @Success 200 {object} models.Site
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/sedes/{id} [put]
func (h *SiteHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.SiteRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	site, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, site)
}

// Delete godoc
// @Summary Delete site
// @Tags Sedes
// @Produce json
// @Param id path int true "Site ID"
// @Success 200 {object} response.MessageBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/sedes/{id} [delete]
func (h *SiteHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Sede eliminada exitosamente")
}
