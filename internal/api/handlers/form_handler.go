package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/opstrack/forms-go/internal/application"
	"github.com/opstrack/forms-go/internal/domain/form"
	"github.com/opstrack/forms-go/pkg/response"
)

type FormHandler struct {
	service *application.FormService
}

func NewFormHandler(service *application.FormService) *FormHandler {
	return &FormHandler{service: service}
}

func (h *FormHandler) CreateForm(c *gin.Context) {
	var input form.CreateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	f, err := h.service.CreateForm(input)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, f)
}

func (h *FormHandler) GetForms(c *gin.Context) {
	forms, err := h.service.ListForms()
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, forms)
}

func (h *FormHandler) GetFormByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	f, err := h.service.GetForm(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FormHandler) UpdateForm(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input form.UpdateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	f, err := h.service.UpdateForm(id, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FormHandler) DeleteForm(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteForm(id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Form deleted"})
}

func (h *FormHandler) AddField(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input form.CreateFieldDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	fld, err := h.service.AddField(id, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fld)
}

func (h *FormHandler) UpdateField(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input form.UpdateFieldDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	fld, err := h.service.UpdateField(id, input)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fld)
}

func (h *FormHandler) DeactivateField(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	fld, err := h.service.DeactivateField(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, fld)
}

func (h *FormHandler) GetValidationSchema(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	schema, err := h.service.ValidationSchema(id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, schema)
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}
