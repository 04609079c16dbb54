package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appledger "github.com/siteledger/backend/internal/application/ledger"
	"github.com/siteledger/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// ProjectHandler serves the project endpoints
type ProjectHandler struct {
	BaseHandler
	service *appledger.ProjectService
}

// NewProjectHandler creates a project handler
func NewProjectHandler(service *appledger.ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{BaseHandler: NewBaseHandler(logger), service: service}
}

// List handles GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
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

// ListForCompany handles GET /projects/company/:companyId
func (h *ProjectHandler) ListForCompany(c *gin.Context) {
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

// Get handles GET /projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	project, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, project)
}

// Create handles POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	var req dto.CreateProjectRequest
	if !h.BindJSON(c, &req) {
		return
	}
	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		h.Error(c, dto.ErrCodeBadRequest, "companyId must be a valid UUID")
		return
	}

	project, err := h.service.Create(c.Request.Context(), actor, appledger.CreateProjectInput{
		CompanyID:   companyID,
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, project)
}

// Update handles PUT /projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	actor, ok := h.Actor(c)
	if !ok {
		return
	}
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateProjectRequest
	if !h.BindJSON(c, &req) {
		return
	}

	project, err := h.service.Update(c.Request.Context(), actor, id, appledger.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, project)
}

// Delete handles DELETE /projects/:id. The response reports how many
// dependent records the cascade removed.
func (h *ProjectHandler) Delete(c *gin.Context) {
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
