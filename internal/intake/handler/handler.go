package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"detailing_site_backend/internal/intake/service"
	"detailing_site_backend/internal/intake/transport"
	"detailing_site_backend/platform/httpkit"
	"detailing_site_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request body"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for intake submissions.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new intake handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// SubmitInquiry accepts a quote inquiry.
// POST /api/v1/inquiry
func (h *Handler) SubmitInquiry(c *gin.Context) {
	var req transport.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed)
		return
	}

	if err := h.svc.SubmitInquiry(c.Request.Context(), req); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.SubmissionResponse{Success: true})
}

// SubmitBooking accepts a booking request.
// POST /api/v1/booking
func (h *Handler) SubmitBooking(c *gin.Context) {
	var req transport.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed)
		return
	}

	if err := h.svc.SubmitBooking(c.Request.Context(), req); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.SubmissionResponse{Success: true})
}
