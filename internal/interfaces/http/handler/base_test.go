package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/siteledger/backend/internal/domain/shared"
	"github.com/siteledger/backend/internal/infrastructure/auth"
	"github.com/siteledger/backend/internal/interfaces/http/dto"
	"github.com/siteledger/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestPathIDAnswersNotFoundForMalformedKey(t *testing.T) {
	h := NewBaseHandler(zap.NewNop())
	c, w := testContext(t)
	c.Params = gin.Params{{Key: "id", Value: "garbage"}}

	_, ok := h.PathID(c, "id")
	assert.False(t, ok)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_NOT_FOUND")
}

func TestPathIDParsesUUID(t *testing.T) {
	h := NewBaseHandler(zap.NewNop())
	c, _ := testContext(t)
	want := uuid.New()
	c.Params = gin.Params{{Key: "id", Value: want.String()}}

	got, ok := h.PathID(c, "id")
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestActorRequiresIdentity(t *testing.T) {
	h := NewBaseHandler(zap.NewNop())
	c, w := testContext(t)

	_, ok := h.Actor(c)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestActorResolvesIdentity(t *testing.T) {
	h := NewBaseHandler(zap.NewNop())
	c, _ := testContext(t)
	userID := uuid.New()
	c.Set(middleware.IdentityKey, &auth.Identity{UserID: userID, Name: "site admin", Role: shared.RoleAdmin})

	actor, ok := h.Actor(c)
	require.True(t, ok)
	assert.Equal(t, userID, actor.ID)
	assert.Equal(t, shared.RoleAdmin, actor.Role)
}

func TestBindJSONReportsFieldErrors(t *testing.T) {
	h := NewBaseHandler(zap.NewNop())
	c, w := testContext(t)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"registrationNumber":"REG-1"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req dto.CreateCompanyRequest
	ok := h.BindJSON(c, &req)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_VALIDATION")
	assert.Contains(t, w.Body.String(), "Name")
}

func TestBindJSONRejectsMalformedBody(t *testing.T) {
	h := NewBaseHandler(zap.NewNop())
	c, w := testContext(t)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{not json")))
	c.Request.Header.Set("Content-Type", "application/json")

	var req dto.CreateCompanyRequest
	ok := h.BindJSON(c, &req)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_INVALID_JSON")
}

func TestHandleDomainErrorMapsAuthorizationToForbidden(t *testing.T) {
	h := NewBaseHandler(zap.NewNop())
	c, w := testContext(t)

	h.HandleDomainError(c, shared.ErrUnauthorized)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_FORBIDDEN")
}
