package handlers

import (
	"net/http"

	"medbid-backend/internal/config"
	"medbid-backend/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler carries the dependencies shared by all route handlers.
type Handler struct {
	store  *store.Store
	cfg    *config.Config
	logger *zap.Logger
}

// New builds a Handler over the given store and configuration.
func New(st *store.Store, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{store: st, cfg: cfg, logger: logger}
}

// Root reports the application name and a running status.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"app": h.cfg.AppName, "msg": "running"})
}

// internalError logs the failure and answers with a generic message so
// storage details never reach the caller.
func (h *Handler) internalError(c *gin.Context, op string, err error) {
	h.logger.Error("handler failure", zap.String("op", op), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}

// --- Shared response shapes ---

// PatientOut is the public projection of a patient; the password hash
// never appears in any response body.
type PatientOut struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Emailid string `json:"emailid"`
	Role    string `json:"role"`
}

// LoginResponse is the shape returned by signup and both logins.
type LoginResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Role    string      `json:"role,omitempty"`
	Patient *PatientOut `json:"patient,omitempty"`
}
