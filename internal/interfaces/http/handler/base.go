package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	appledger "github.com/siteledger/backend/internal/application/ledger"
	"github.com/siteledger/backend/internal/domain/shared"
	"github.com/siteledger/backend/internal/interfaces/http/dto"
	"github.com/siteledger/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// BaseHandler provides the shared response and request plumbing for the
// resource handlers.
type BaseHandler struct {
	logger *zap.Logger
}

// NewBaseHandler creates a base handler
func NewBaseHandler(logger *zap.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// Success writes a 200 response with the standard envelope
func (h *BaseHandler) Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created writes a 201 response with the standard envelope
func (h *BaseHandler) Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// Error writes an error response with the status mapped from the code
func (h *BaseHandler) Error(c *gin.Context, code, message string) {
	c.JSON(dto.GetHTTPStatus(code), dto.NewErrorResponse(code, message))
}

// HandleDomainError translates a service error into the wire envelope
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	code, message := dto.FromDomainError(err)
	if code == dto.ErrCodeInternal {
		h.logger.Error("unhandled service error",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}
	h.Error(c, code, message)
}

// BindJSON binds the request body, writing a validation response on failure
func (h *BaseHandler) BindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			details := make([]dto.FieldError, 0, len(verrs))
			for _, fe := range verrs {
				details = append(details, dto.FieldError{
					Field:   fe.Field(),
					Message: validationMessage(fe),
				})
			}
			c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse("request validation failed", details))
			return false
		}
		h.Error(c, dto.ErrCodeInvalidJSON, "request body is not valid JSON")
		return false
	}
	return true
}

// PathID parses a UUID path parameter. A malformed key answers not found,
// the same signal as a missing record, so key-format detail never leaks.
func (h *BaseHandler) PathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.Error(c, dto.ErrCodeNotFound, "resource not found")
		return uuid.Nil, false
	}
	return id, true
}

// Actor resolves the authenticated caller set by the identity middleware
func (h *BaseHandler) Actor(c *gin.Context) (appledger.Actor, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		h.Error(c, dto.ErrCodeUnauthorized, "missing caller identity")
		return appledger.Actor{}, false
	}
	return appledger.Actor{ID: identity.UserID, Role: identity.Role}, true
}

// Query parses the listing query string, writing a 400 response when a
// bracketed filter key is malformed.
func (h *BaseHandler) Query(c *gin.Context) (shared.QuerySpec, bool) {
	spec, err := shared.ParseQuerySpec(c.Request.URL.Query())
	if err != nil {
		h.HandleDomainError(c, err)
		return shared.QuerySpec{}, false
	}
	return spec, true
}

// respondList writes one page of records in the listing envelope, applying
// the requested projection to the serialized form.
func respondList[T any](h *BaseHandler, c *gin.Context, page shared.Page[T], spec shared.QuerySpec) {
	var data interface{} = page.Items
	if spec.HasProjection() {
		trimmed, err := dto.TrimFields(page.Items, spec.Select)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		data = trimmed
	}
	c.JSON(http.StatusOK, dto.NewListResponse(page, data))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "is too long"
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}
