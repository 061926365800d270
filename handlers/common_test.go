package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"campus/consts"
	"campus/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	return c, w
}

func TestHandleServiceErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", fmt.Errorf("%w: credits out of range", consts.ErrValidation), http.StatusBadRequest},
		{"conflict", fmt.Errorf("%w: course code taken", consts.ErrConflict), http.StatusBadRequest},
		{"not found", fmt.Errorf("%w: course 9 does not exist", consts.ErrNotFound), http.StatusNotFound},
		{"authentication", fmt.Errorf("%w: invalid username or password", consts.ErrAuthenticationFailed), http.StatusUnauthorized},
		{"permission", fmt.Errorf("%w: lecturers only", consts.ErrPermissionDenied), http.StatusForbidden},
		{"unexpected", fmt.Errorf("dial tcp: connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(t)

			handled := HandleServiceError(c, tt.err)
			assert.True(t, handled)
			assert.Equal(t, tt.wantStatus, w.Code)

			var body dto.APIResponse[any]
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestHandleServiceErrorSanitizesInternalDetail(t *testing.T) {
	c, w := newTestContext(t)

	HandleServiceError(c, fmt.Errorf("dsn user:password@tcp(db:3306) unreachable"))

	var body dto.APIResponse[any]
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, consts.ErrInternal.Error(), body.Message)
	assert.NotContains(t, body.Message, "password")
}

func TestHandleServiceErrorNil(t *testing.T) {
	c, w := newTestContext(t)

	assert.False(t, HandleServiceError(c, nil))
	assert.Empty(t, w.Body.String())
}

func TestParseIDParam(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		wantID int
		wantOK bool
	}{
		{"valid", "12", 12, true},
		{"zero", "0", 0, false},
		{"negative", "-5", 0, false},
		{"not a number", "abc", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(t)
			c.Params = gin.Params{{Key: consts.URLPathID, Value: tt.value}}

			id, ok := parseIDParam(c, consts.URLPathID)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
			if !tt.wantOK {
				assert.Equal(t, http.StatusBadRequest, w.Code)
			}
		})
	}
}
