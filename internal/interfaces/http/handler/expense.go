package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appledger "github.com/siteledger/backend/internal/application/ledger"
	"github.com/siteledger/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// ExpenseHandler serves the expense endpoints
type ExpenseHandler struct {
	BaseHandler
	service *appledger.ExpenseService
}

// NewExpenseHandler creates an expense handler
func NewExpenseHandler(service *appledger.ExpenseService, logger *zap.Logger) *ExpenseHandler {
	return &ExpenseHandler{BaseHandler: NewBaseHandler(logger), service: service}
}

// List handles GET /expenses
func (h *ExpenseHandler) List(c *gin.Context) {
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

// ListForProject handles GET /expenses/project/:projectId
func (h *ExpenseHandler) ListForProject(c *gin.Context) {
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

// ListForCompany handles GET /expenses/company/:companyId
func (h *ExpenseHandler) ListForCompany(c *gin.Context) {
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

// Get handles GET /expenses/:id
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	expense, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, expense)
}

// Create handles POST /expenses
func (h *ExpenseHandler) Create(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	var req dto.CreateExpenseRequest
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

	expense, err := h.service.Create(c.Request.Context(), actor, appledger.CreateExpenseInput{
		ProjectID:   projectID,
		Code:        req.Code,
		Date:        date,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Reference:   req.Reference,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, expense)
}

// Update handles PUT /expenses/:id
func (h *ExpenseHandler) Update(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateExpenseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	expense, err := h.service.Update(c.Request.Context(), actor, id, appledger.UpdateExpenseInput{
		Date:        req.Date,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Reference:   req.Reference,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, expense)
}

// Delete handles DELETE /expenses/:id
func (h *ExpenseHandler) Delete(c *gin.Context) {
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
