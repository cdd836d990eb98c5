package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/colegios-api/internal/dto"
	"github.com/noah-isme/colegios-api/internal/service"
	"github.com/noah-isme/colegios-api/pkg/response"
)

// MunicipalityHandler handles municipality CRUD endpoints.
type MunicipalityHandler struct {
	service *service.MunicipalityService
}

// NewMunicipalityHandler creates a new municipality handler.
func NewMunicipalityHandler(svc *service.MunicipalityService) *MunicipalityHandler {
	return &MunicipalityHandler{service: svc}
}

// List godoc
// @Summary List municipalities
// @Tags Municipios
// @Produce json
// @Success 200 {array} models.Municipality
// @Failure 500 {object} response.ErrorBody
// @Router /api/municipios [get]
func (h *MunicipalityHandler) List(c *gin.Context) {
	municipalities, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, municipalities)
}

// Get godoc
// @Summary Get municipality
// @Tags Municipios
// @Produce json
// @Param id path int true "Municipality ID"
// @Success 200 {object} models.Municipality
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/municipios/{id} [get]
func (h *MunicipalityHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	municipality, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, municipality)
}

// Create godoc
// @Summary Create municipality
// @Tags Municipios
// @Accept json
// @Produce json
// @Param payload body dto.MunicipalityRequest true "Municipality payload"
// @Success 201 {object} models.Municipality
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /api/municipios [post]
func (h *MunicipalityHandler) Create(c *gin.Context) {
	var req dto.MunicipalityRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	municipality, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, municipality)
}

// Update godoc
// @Summary Update municipality
// @Tags Municipios
// @Accept json
// @Produce json
// @Param id path int true "Municipality ID"
// @Param payload body dto.MunicipalityRequest true "Municipality payload"
// @Success 200 {object} models.Municipality
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/municipios/{id} [put]
func (h *MunicipalityHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.MunicipalityRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	municipality, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, municipality)
}

// Delete godoc
// @Summary Delete municipality
// @Tags Municipios
// @Produce json
// @Param id path int true "Municipality ID"
// @Success 200 {object} response.MessageBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/municipios/{id} [delete]
func (h *MunicipalityHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Municipio eliminado exitosamente")
}
