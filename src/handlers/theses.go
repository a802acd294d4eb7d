package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khabaroff/thesis-management/src/models"
	"github.com/khabaroff/thesis-management/src/services"
)

// ThesisHandler serves /api/theses
type ThesisHandler struct {
	responder
	theses *services.ThesisService
}

// NewThesisHandler creates a new thesis handler
func NewThesisHandler(theses *services.ThesisService, development bool) *ThesisHandler {
	return &ThesisHandler{responder: responder{development: development}, theses: theses}
}

func (h *ThesisHandler) respondList(c *gin.Context, out []models.Thesis, err error) {
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// HandleList returns every thesis, newest submission first
func (h *ThesisHandler) HandleList(c *gin.Context) {
	out, err := h.theses.List(c.Request.Context())
	h.respondList(c, out, err)
}

// HandleGet returns one thesis by id
func (h *ThesisHandler) HandleGet(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	t, err := h.theses.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// HandleByYear lists theses submitted in :year
func (h *ThesisHandler) HandleByYear(c *gin.Context) {
	out, err := h.theses.ByYear(c.Request.Context(), c.Param("year"))
	h.respondList(c, out, err)
}

// HandleByDateRange lists theses submitted between :startDate and :endDate inclusive
func (h *ThesisHandler) HandleByDateRange(c *gin.Context) {
	out, err := h.theses.ByDateRange(c.Request.Context(), c.Param("startDate"), c.Param("endDate"))
	h.respondList(c, out, err)
}

// HandleBySupervisor lists the theses of one supervisor
func (h *ThesisHandler) HandleBySupervisor(c *gin.Context) {
	id, ok := h.paramID(c, "supervisorId")
	if !ok {
		return
	}
	out, err := h.theses.BySupervisor(c.Request.Context(), id)
	h.respondList(c, out, err)
}

// HandleByStudent lists the theses of one student
func (h *ThesisHandler) HandleByStudent(c *gin.Context) {
	id, ok := h.paramID(c, "studentId")
	if !ok {
		return
	}
	out, err := h.theses.ByStudent(c.Request.Context(), id)
	h.respondList(c, out, err)
}

// HandleSearch matches :query against titles, student and supervisor names
func (h *ThesisHandler) HandleSearch(c *gin.Context) {
	out, err := h.theses.Search(c.Request.Context(), c.Param("query"))
	h.respondList(c, out, err)
}

// HandleCreate creates a thesis and answers 201
func (h *ThesisHandler) HandleCreate(c *gin.Context) {
	var in models.ThesisInput
	if !h.bindJSON(c, &in) {
		return
	}
	t, err := h.theses.Create(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// HandleUpdate replaces a thesis; a zero student or supervisor id keeps the stored one
func (h *ThesisHandler) HandleUpdate(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	var in models.ThesisInput
	if !h.bindJSON(c, &in) {
		return
	}
	t, err := h.theses.Update(c.Request.Context(), id, in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// HandleDelete removes a thesis
func (h *ThesisHandler) HandleDelete(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	if err := h.theses.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Thesis deleted successfully"})
}
