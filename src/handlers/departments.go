package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khabaroff/thesis-management/src/models"
	"github.com/khabaroff/thesis-management/src/services"
)

// DepartmentHandler serves /api/departments
type DepartmentHandler struct {
	responder
	departments *services.DepartmentService
}

// NewDepartmentHandler creates a new department handler
func NewDepartmentHandler(departments *services.DepartmentService, development bool) *DepartmentHandler {
	return &DepartmentHandler{responder: responder{development: development}, departments: departments}
}

// HandleList returns every department
func (h *DepartmentHandler) HandleList(c *gin.Context) {
	out, err := h.departments.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// HandleGet returns one department by id
func (h *DepartmentHandler) HandleGet(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	d, err := h.departments.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// HandleCreate creates a department and answers 201
func (h *DepartmentHandler) HandleCreate(c *gin.Context) {
	var in models.DepartmentInput
	if !h.bindJSON(c, &in) {
		return
	}
	d, err := h.departments.Create(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// HandleUpdate renames a department
func (h *DepartmentHandler) HandleUpdate(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	var in models.DepartmentInput
	if !h.bindJSON(c, &in) {
		return
	}
	d, err := h.departments.Update(c.Request.Context(), id, in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// HandleDelete removes a department
func (h *DepartmentHandler) HandleDelete(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	if err := h.departments.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Department deleted successfully"})
}
