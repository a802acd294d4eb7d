package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khabaroff/thesis-management/src/models"
	"github.com/khabaroff/thesis-management/src/services"
)

// StudentHandler serves /api/students
type StudentHandler struct {
	responder
	students *services.StudentService
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(students *services.StudentService, development bool) *StudentHandler {
	return &StudentHandler{responder: responder{development: development}, students: students}
}

// HandleList returns every student with its department name
func (h *StudentHandler) HandleList(c *gin.Context) {
	out, err := h.students.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// HandleGet returns one student by id
func (h *StudentHandler) HandleGet(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	s, err := h.students.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// HandleThesis returns the student's thesis
func (h *StudentHandler) HandleThesis(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	t, err := h.students.Thesis(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// HandleCreate creates a student and answers 201
func (h *StudentHandler) HandleCreate(c *gin.Context) {
	var in models.StudentInput
	if !h.bindJSON(c, &in) {
		return
	}
	s, err := h.students.Create(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

// HandleUpdate replaces a student's fields
func (h *StudentHandler) HandleUpdate(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	var in models.StudentInput
	if !h.bindJSON(c, &in) {
		return
	}
	s, err := h.students.Update(c.Request.Context(), id, in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// HandleDelete removes a student together with their theses
func (h *StudentHandler) HandleDelete(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	if err := h.students.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student deleted successfully"})
}
