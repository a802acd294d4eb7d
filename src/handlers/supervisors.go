package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khabaroff/thesis-management/src/models"
	"github.com/khabaroff/thesis-management/src/services"
)

// SupervisorHandler serves /api/supervisors
type SupervisorHandler struct {
	responder
	supervisors *services.SupervisorService
}

// NewSupervisorHandler creates a new supervisor handler
func NewSupervisorHandler(supervisors *services.SupervisorService, development bool) *SupervisorHandler {
	return &SupervisorHandler{responder: responder{development: development}, supervisors: supervisors}
}

// HandleList returns every supervisor with its department name
func (h *SupervisorHandler) HandleList(c *gin.Context) {
	out, err := h.supervisors.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// HandleGet returns one supervisor by id
func (h *SupervisorHandler) HandleGet(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	s, err := h.supervisors.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// HandleTheses lists the supervisor's theses
func (h *SupervisorHandler) HandleTheses(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	out, err := h.supervisors.Theses(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// HandleCreate creates a supervisor and answers 201
func (h *SupervisorHandler) HandleCreate(c *gin.Context) {
	var in models.SupervisorInput
	if !h.bindJSON(c, &in) {
		return
	}
	s, err := h.supervisors.Create(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

// HandleUpdate replaces a supervisor's fields
func (h *SupervisorHandler) HandleUpdate(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	var in models.SupervisorInput
	if !h.bindJSON(c, &in) {
		return
	}
	s, err := h.supervisors.Update(c.Request.Context(), id, in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// HandleDelete removes a supervisor that has no theses
func (h *SupervisorHandler) HandleDelete(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	if err := h.supervisors.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Supervisor deleted successfully"})
}
