package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appledger "github.com/siteledger/backend/internal/application/ledger"
	"github.com/siteledger/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// PaymentHandler serves the payment endpoints
type PaymentHandler struct {
	BaseHandler
	service *appledger.PaymentService
}

// NewPaymentHandler creates a payment handler
func NewPaymentHandler(service *appledger.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{BaseHandler: NewBaseHandler(logger), service: service}
}

// List handles GET /payments
func (h *PaymentHandler) List(c *gin.Context) {
	spec, ok := h.Query(c)
	if !ok {
		return
	}
	page, err := h.service.List(c.Request.Context(), spec)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	respondList(&h.BaseHandler, c, page, spec)
}

// ListForProject handles GET /payments/project/:projectId
func (h *PaymentHandler) ListForProject(c *gin.Context) {
	projectID, ok := h.PathID(c, "projectId")
	if !ok {
		return
	}
	spec, ok := h.Query(c)
	if !ok {
		return
	}
	page, err := h.service.ListForProject(c.Request.Context(), projectID, spec)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	respondList(&h.BaseHandler, c, page, spec)
}

// ListForCompany handles GET /payments/company/:companyId
func (h *PaymentHandler) ListForCompany(c *gin.Context) {
	companyID, ok := h.PathID(c, "companyId")
	if !ok {
		return
	}
	spec, ok := h.Query(c)
	if !ok {
		return
	}
	page, err := h.service.ListForCompany(c.Request.Context(), companyID, spec)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	respondList(&h.BaseHandler, c, page, spec)
}

// Get handles GET /payments/:id
func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	payment, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, payment)
}

// Create handles POST /payments
func (h *PaymentHandler) Create(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	var req dto.CreatePaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		h.Error(c, dto.ErrCodeBadRequest, "projectId must be a valid UUID")
		return
	}

	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}

	payment, err := h.service.Create(c.Request.Context(), actor, appledger.CreatePaymentInput{
		ProjectID:    projectID,
		Code:         req.Code,
		Date:         date,
		Amount:       req.Amount,
		ReceivedFrom: req.ReceivedFrom,
		Description:  req.Description,
		Reference:    req.Reference,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, payment)
}

// Update handles PUT /payments/:id
func (h *PaymentHandler) Update(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdatePaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	payment, err := h.service.Update(c.Request.Context(), actor, id, appledger.UpdatePaymentInput{
		Date:         req.Date,
		Amount:       req.Amount,
		ReceivedFrom: req.ReceivedFrom,
		Description:  req.Description,
		Reference:    req.Reference,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, payment)
}

// Delete handles DELETE /payments/:id
func (h *PaymentHandler) Delete(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{})
}
