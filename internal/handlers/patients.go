package handlers

import (
	"errors"
	"net/http"

	"medbid-backend/internal/models"
	"medbid-backend/internal/store"
	"medbid-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// --- Structs for Request Binding ---

type PatientSignupRequest struct {
	Name    string `json:"name" binding:"required"`
	Emailid string `json:"emailid" binding:"required,email"`
	Passwd  string `json:"passwd" binding:"required"`
	Role    string `json:"role"` // Optional, defaults to "patient"
}

type PatientLoginRequest struct {
	Emailid string `json:"emailid" binding:"required,email"`
	Passwd  string `json:"passwd" binding:"required"`
}

// --- Handler Functions ---

// PatientSignup registers a new patient. The email must be unused; the
// password is stored as a bcrypt hash.
func (h *Handler) PatientSignup(c *gin.Context) {
	var req PatientSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.store.FindPatientByEmail(c.Request.Context(), req.Emailid)
	if err != nil {
		h.internalError(c, "patient signup", err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
		return
	}

	hash, err := utils.HashPassword(req.Passwd)
	if err != nil {
		h.internalError(c, "patient signup", err)
		return
	}

	patient := models.Patient{
		Name:    req.Name,
		Emailid: req.Emailid,
		Passwd:  hash,
		Role:    req.Role,
	}
	if err := h.store.CreatePatient(c.Request.Context(), &patient); err != nil {
		// Two concurrent signups can both pass the existence check; the
		// unique index decides the race.
		if errors.Is(err, store.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"message": "Email already registered"})
			return
		}
		h.internalError(c, "patient signup", err)
		return
	}

	c.JSON(http.StatusCreated, LoginResponse{
		Status:  "success",
		Message: "Signup successful",
		Role:    patient.Role,
		Patient: &PatientOut{ID: patient.ID, Name: patient.Name, Emailid: patient.Emailid, Role: patient.Role},
	})
}

// PatientLogin verifies a patient's credentials. Unknown email and wrong
// password answer with the same message.
func (h *Handler) PatientLogin(c *gin.Context) {
	var req PatientLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient, err := h.store.FindPatientByEmail(c.Request.Context(), req.Emailid)
	if err != nil {
		h.internalError(c, "patient login", err)
		return
	}
	if patient == nil || !utils.CheckPassword(req.Passwd, patient.Passwd) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Status:  "success",
		Message: "Login successful",
		Role:    patient.Role,
		Patient: &PatientOut{ID: patient.ID, Name: patient.Name, Emailid: patient.Emailid, Role: patient.Role},
	})
}

// GetPatientByEmail returns a patient's public projection.
func (h *Handler) GetPatientByEmail(c *gin.Context) {
	email := c.Param("email")

	patient, err := h.store.FindPatientByEmail(c.Request.Context(), email)
	if err != nil {
		h.internalError(c, "patient lookup", err)
		return
	}
	if patient == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Patient not found"})
		return
	}

	c.JSON(http.StatusOK, PatientOut{ID: patient.ID, Name: patient.Name, Emailid: patient.Emailid, Role: patient.Role})
}
