package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/colegios-api/internal/dto"
	"github.com/noah-isme/colegios-api/internal/service"
	"github.com/noah-isme/colegios-api/pkg/response"
)

// SchoolHandler handles school CRUD endpoints.
type SchoolHandler struct {
	service *service.SchoolService
}

// NewSchoolHandler creates a new school handler.
func NewSchoolHandler(svc *service.SchoolService) *SchoolHandler {
	return &SchoolHandler{service: svc}
}

// List godoc
// @Summary List schools
// @Tags Colegios
// @Produce json
// @Success 200 {array} models.School
// @Failure 500 {object} response.ErrorBody
// @Router /api/colegios [get]
func (h *SchoolHandler) List(c *gin.Context) {
	schools, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, schools)
}

// Get godoc
// @Summary Get school
// @Tags Colegios
// @Produce json
// @Param id path int true "School ID"
// @Success 200 {object} models.School
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/colegios/{id} [get]
func (h *SchoolHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	school, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, school)
}

// Create godoc
// @Summary Create school
// @Tags Colegios
// @Accept json
// @Produce json
// @Param payload body dto.SchoolRequest true "School payload"
// @Success 201 {object} models.School
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /api/colegios [post]
func (h *SchoolHandler) Create(c *gin.Context) {
	var req dto.SchoolRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	school, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, school)
}

// Update godoc
// @Summary Update school
// @Tags Colegios
// @Accept json
// @Produce json
// @Param id path int true "School ID"
// @Param payload body dto.SchoolRequest true "School payload"
// @Success 200 {object} models.School
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/colegios/{id} [put]
func (h *SchoolHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.SchoolRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	school, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, school)
}

// Delete godoc
// @Summary Delete school
// @Tags Colegios
// @Produce json
// @Param id path int true "School ID"
// @Success 200 {object} response.MessageBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/colegios/{id} [delete]
func (h *SchoolHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Colegio eliminado exitosamente")
}
