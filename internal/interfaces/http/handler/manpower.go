package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appledger "github.com/siteledger/backend/internal/application/ledger"
	"github.com/siteledger/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// ManpowerHandler serves the manpower endpoints
type ManpowerHandler struct {
	BaseHandler
	service *appledger.ManpowerService
}

// NewManpowerHandler creates a manpower handler
func NewManpowerHandler(service *appledger.ManpowerService, logger *zap.Logger) *ManpowerHandler {
	return &ManpowerHandler{BaseHandler: NewBaseHandler(logger), service: service}
}

// List handles GET /manpower
func (h *ManpowerHandler) List(c *gin.Context) {
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

// ListForProject handles GET /manpower/project/:projectId
func (h *ManpowerHandler) ListForProject(c *gin.Context) {
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

// ListForCompany handles GET /manpower/company/:companyId
func (h *ManpowerHandler) ListForCompany(c *gin.Context) {
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

// Get handles GET /manpower/:id
func (h *ManpowerHandler) Get(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	record, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, record)
}

// Create handles POST /manpower
func (h *ManpowerHandler) Create(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	var req dto.CreateManpowerRequest
	if !h.BindJSON(c, &req) {
		return
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		h.Error(c, dto.ErrCodeBadRequest, "projectId must be a valid UUID")
		return
	}

	record, err := h.service.Create(c.Request.Context(), actor, appledger.CreateManpowerInput{
		ProjectID:   projectID,
		Name:        req.Name,
		Role:        req.Role,
		HoursWorked: req.HoursWorked,
		WageRate:    req.WageRate,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, record)
}

// Update handles PUT /manpower/:id. totalPayable is recomputed from the
// merged hours and wage rate, never taken from the request.
func (h *ManpowerHandler) Update(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateManpowerRequest
	if !h.BindJSON(c, &req) {
		return
	}

	record, err := h.service.Update(c.Request.Context(), actor, id, appledger.UpdateManpowerInput{
		Name:        req.Name,
		Role:        req.Role,
		HoursWorked: req.HoursWorked,
		WageRate:    req.WageRate,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, record)
}

// Delete handles DELETE /manpower/:id
func (h *ManpowerHandler) Delete(c *gin.Context) {
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
