package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SuperadminLoginRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Passwd string `json:"passwd" binding:"required"`
}

// SuperadminLogin checks the supplied credentials against the configured
// admin email and password. There is no persisted admin entity.
func (h *Handler) SuperadminLogin(c *gin.Context) {
	var req SuperadminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(h.cfg.AdminEmail)) == 1
	passwdOK := subtle.ConstantTimeCompare([]byte(req.Passwd), []byte(h.cfg.AdminPasswd)) == 1
	if !emailOK || !passwdOK {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid superadmin credentials"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Status:  "success",
		Message: "Superadmin authenticated",
		Role:    h.cfg.AdminRole,
	})
}
