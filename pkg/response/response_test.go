package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"mobile-wallet-core/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestOK(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	OK(c, map[string]string{"status": "healthy"})

	assert.Equal(t, http.StatusOK, w.Code)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Nil(t, env.Meta)

	data, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "healthy", data["status"])
}

func TestOKList(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	cursor := "next-page-token"
	OKList(c, []string{"a", "b"}, &cursor, 20)

	assert.Equal(t, http.StatusOK, w.Code)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NotNil(t, env.Meta)
	require.NotNil(t, env.Meta.NextCursor)
	assert.Equal(t, "next-page-token", *env.Meta.NextCursor)
	require.NotNil(t, env.Meta.Limit)
	assert.Equal(t, 20, *env.Meta.Limit)
}

func TestOKList_LastPageOmitsCursor(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	OKList(c, []string{"a"}, nil, 20)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	meta, ok := body["meta"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, meta, "nextCursor")
}

func TestCreated(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Created(c, "/v1/transactions/txn-1", map[string]string{"id": "txn-1"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/v1/transactions/txn-1", w.Header().Get("Location"))
}

func TestCreated_EmptyLocationOmitsHeader(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Created(c, "", map[string]string{"id": "abc"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
}

func TestNoContent(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	NoContent(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestError_AppError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(CtxRequestID, "req-789")

	Error(c, apperror.ErrInsufficientFunds())

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/problem+json")

	var problem Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	assert.Equal(t, "about:blank", problem.Type)
	assert.Equal(t, http.StatusText(http.StatusUnprocessableEntity), problem.Title)
	assert.Equal(t, http.StatusUnprocessableEntity, problem.Status)
	assert.Equal(t, "INSUFFICIENT_FUNDS", problem.Code)
	assert.Equal(t, "Insufficient balance in wallet", problem.Detail)
	assert.Equal(t, "req-789", problem.TraceID)
}

func TestError_WrappedAppError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	wrapped := fmt.Errorf("outer: %w", apperror.ErrWalletBlocked())
	Error(c, wrapped)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var problem Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	assert.Equal(t, "WALLET_BLOCKED", problem.Code)
}

func TestError_UnknownError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, fmt.Errorf("something unexpected"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var problem Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	assert.Equal(t, "INTERNAL", problem.Code)
	assert.Equal(t, "Internal server error", problem.Detail)
}

func TestGetRequestID_GeneratesWhenMissing(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	id := GetRequestID(c)
	assert.NotEmpty(t, id, "should generate a UUID when request_id is missing")
}
