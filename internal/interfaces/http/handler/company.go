package handler

import (
	"github.com/gin-gonic/gin"
	appledger "github.com/siteledger/backend/internal/application/ledger"
	"github.com/siteledger/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// CompanyHandler serves the company endpoints
type CompanyHandler struct {
	BaseHandler
	service *appledger.CompanyService
}

// NewCompanyHandler creates a company handler
func NewCompanyHandler(service *appledger.CompanyService, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{BaseHandler: NewBaseHandler(logger), service: service}
}

// List handles GET /companies
func (h *CompanyHandler) List(c *gin.Context) {
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

// Get handles GET /companies/:id
func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	company, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, company)
}

// Create handles POST /companies
func (h *CompanyHandler) Create(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	var req dto.CreateCompanyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	company, err := h.service.Create(c.Request.Context(), actor, appledger.CreateCompanyInput{
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		Address:            req.Address,
		Contact:            req.Contact,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, company)
}

// Update handles PUT /companies/:id
func (h *CompanyHandler) Update(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCompanyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	company, err := h.service.Update(c.Request.Context(), actor, id, appledger.UpdateCompanyInput{
		Name:    req.Name,
		Address: req.Address,
		Contact: req.Contact,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, company)
}

// Delete handles DELETE /companies/:id. The response reports how many
// dependent records the cascade removed.
func (h *CompanyHandler) Delete(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}

	result, err := h.service.Delete(c.Request.Context(), actor, id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"deleted": result})
}
