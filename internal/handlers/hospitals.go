package handlers

import (
	"net/http"
	"strconv"

	"medbid-backend/internal/models"

	"github.com/gin-gonic/gin"
)

type HospitalCreateRequest struct {
	Name    string  `json:"name" binding:"required"`
	Address *string `json:"address"`
	Quote   *string `json:"quote"`
}

// ListHospitals returns all hospitals.
func (h *Handler) ListHospitals(c *gin.Context) {
	hospitals, err := h.store.ListHospitals(c.Request.Context())
	if err != nil {
		h.internalError(c, "hospital list", err)
		return
	}
	c.JSON(http.StatusOK, hospitals)
}

// GetHospital returns one hospital by id.
func (h *Handler) GetHospital(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid hospital ID format"})
		return
	}

	hospital, err := h.store.FindHospitalByID(c.Request.Context(), uint(id))
	if err != nil {
		h.internalError(c, "hospital lookup", err)
		return
	}
	if hospital == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Hospital not found"})
		return
	}

	c.JSON(http.StatusOK, hospital)
}

// CreateHospital registers a new hospital.
func (h *Handler) CreateHospital(c *gin.Context) {
	var req HospitalCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hospital := models.Hospital{
		Name:    req.Name,
		Address: req.Address,
		Quote:   req.Quote,
	}
	if err := h.store.CreateHospital(c.Request.Context(), &hospital); err != nil {
		h.internalError(c, "hospital create", err)
		return
	}

	c.JSON(http.StatusCreated, hospital)
}
