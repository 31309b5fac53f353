package utils

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldops/internal/shared/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func recordError(t *testing.T, err error) (*httptest.ResponseRecorder, APIResponse) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	ErrorResponseWithError(c, err)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestErrorResponseWithError_AppError(t *testing.T) {
	w, resp := recordError(t, errors.NewNotFoundError("job not found"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "job not found", resp.Error.Message)
}

func TestErrorResponseWithError_BindingError(t *testing.T) {
	type payload struct {
		Status string `json:"status" binding:"required" validate:"required"`
	}

	err := validateForTest(payload{})
	require.Error(t, err)

	w, resp := recordError(t, err)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Contains(t, resp.Error.Details, "status is required")
}

func TestErrorResponseWithError_UnknownError(t *testing.T) {
	w, resp := recordError(t, stderrors.New("driver: bad connection"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotNil(t, resp.Error)
	// Internal detail must not leak to the client.
	assert.NotContains(t, resp.Error.Message, "driver")
}

// validateForTest produces the same validator.ValidationErrors gin binding
// would surface for a missing required field.
func validateForTest(s interface{}) error {
	return validate.Struct(s)
}
