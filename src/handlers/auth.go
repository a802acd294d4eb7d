package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khabaroff/thesis-management/src/middleware"
	"github.com/khabaroff/thesis-management/src/models"
	"github.com/khabaroff/thesis-management/src/services"
)

// AuthHandler serves /api/auth: login, profile, registration and admin management
type AuthHandler struct {
	responder
	admins *services.AdminService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(admins *services.AdminService, development bool) *AuthHandler {
	return &AuthHandler{responder: responder{development: development}, admins: admins}
}

// HandleLogin exchanges username and password for a bearer token
func (h *AuthHandler) HandleLogin(c *gin.Context) {
	var req models.LoginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.admins.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleProfile returns the admin named by the verified token
func (h *AuthHandler) HandleProfile(c *gin.Context) {
	claims, ok := middleware.AdminFromContext(c.Request.Context())
	if !ok {
		h.respondError(c, services.ErrNoToken)
		return
	}

	profile, err := h.admins.Profile(c.Request.Context(), claims.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// HandleRegister creates a new admin
func (h *AuthHandler) HandleRegister(c *gin.Context) {
	var in models.AdminInput
	if !h.bindJSON(c, &in) {
		return
	}

	admin, err := h.admins.Register(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, admin)
}

// HandleListAdmins lists admins without password hashes
func (h *AuthHandler) HandleListAdmins(c *gin.Context) {
	out, err := h.admins.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// HandleUpdateAdmin changes an admin's username, email and optionally password
func (h *AuthHandler) HandleUpdateAdmin(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	var in models.AdminInput
	if !h.bindJSON(c, &in) {
		return
	}

	admin, err := h.admins.Update(c.Request.Context(), id, in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, admin)
}

// HandleDeleteAdmin removes an admin
func (h *AuthHandler) HandleDeleteAdmin(c *gin.Context) {
	id, ok := h.paramID(c, "id")
	if !ok {
		return
	}
	if err := h.admins.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin deleted successfully"})
}
