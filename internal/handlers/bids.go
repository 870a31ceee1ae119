package handlers

import (
	"net/http"
	"strconv"

	"medbid-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// --- Structs for Request Binding ---

type BidCreateRequest struct {
	PatientID         uint    `json:"patient_id" binding:"required"`
	MedicalConditions string  `json:"medical_conditions" binding:"required"`
	SurgeryNeeded     string  `json:"surgery_needed" binding:"required"`
	SurgeryArea       string  `json:"surgery_area" binding:"required"`
	SurgeryDate       string  `json:"surgery_date" binding:"required"`
	HospitalID        uint    `json:"hospital_id" binding:"required"`
	Insurance         *string `json:"insurance"`
	InsuranceBalance  *string `json:"insurance_balance"`
	Budget            *string `json:"budget"`
}

// --- Handler Functions ---

// CreateBid opens a new bid for a patient. Both referenced rows must
// exist; new bids always start pending.
func (h *Handler) CreateBid(c *gin.Context) {
	var req BidCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ok, err := h.store.PatientExists(c.Request.Context(), req.PatientID)
	if err != nil {
		h.internalError(c, "bid create", err)
		return
	}
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Unknown patient_id"})
		return
	}

	ok, err = h.store.HospitalExists(c.Request.Context(), req.HospitalID)
	if err != nil {
		h.internalError(c, "bid create", err)
		return
	}
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Unknown hospital_id"})
		return
	}

	bid := models.Bid{
		PatientID:         req.PatientID,
		MedicalConditions: req.MedicalConditions,
		SurgeryNeeded:     req.SurgeryNeeded,
		SurgeryArea:       req.SurgeryArea,
		SurgeryDate:       req.SurgeryDate,
		HospitalID:        req.HospitalID,
		Insurance:         req.Insurance,
		InsuranceBalance:  req.InsuranceBalance,
		Budget:            req.Budget,
	}
	if err := h.store.CreateBid(c.Request.Context(), &bid); err != nil {
		h.internalError(c, "bid create", err)
		return
	}

	c.JSON(http.StatusCreated, bid)
}

// ListBids returns every bid, newest first, for administrative review.
func (h *Handler) ListBids(c *gin.Context) {
	bids, err := h.store.ListAllBids(c.Request.Context())
	if err != nil {
		h.internalError(c, "bid list", err)
		return
	}
	c.JSON(http.StatusOK, bids)
}

// ListBidsByEmail returns a patient's bids; an unknown email yields an
// empty list, not an error.
func (h *Handler) ListBidsByEmail(c *gin.Context) {
	bids, err := h.store.ListBidsByPatientEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.internalError(c, "bid list by email", err)
		return
	}
	c.JSON(http.StatusOK, bids)
}

// ApproveBid transitions a pending bid to approved.
func (h *Handler) ApproveBid(c *gin.Context) {
	h.decideBid(c, models.BidStatusApproved)
}

// RejectBid transitions a pending bid to rejected.
func (h *Handler) RejectBid(c *gin.Context) {
	h.decideBid(c, models.BidStatusRejected)
}

// decideBid applies an approve/reject decision. Only pending bids may
// transition; a second decision answers 409.
func (h *Handler) decideBid(c *gin.Context, status string) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid bid ID format"})
		return
	}

	bid, err := h.store.FindBidByID(c.Request.Context(), uint(id))
	if err != nil {
		h.internalError(c, "bid decide", err)
		return
	}
	if bid == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Bid not found"})
		return
	}
	if bid.Status != models.BidStatusPending {
		c.JSON(http.StatusConflict, gin.H{"message": "Bid already " + bid.Status})
		return
	}

	updated, err := h.store.SetBidStatus(c.Request.Context(), uint(id), status)
	if err != nil {
		h.internalError(c, "bid decide", err)
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Bid not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}
