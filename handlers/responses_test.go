package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"campus/consts"
	"campus/dto"
	"campus/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Deletions answer 200 with a full envelope. A 204 would make net/http strip
// the body, so this drives a real server and reads what a client receives.
func TestDeleteEndpointsAnswerEnvelopeOverTheWire(t *testing.T) {
	engine := gin.New()
	engine.DELETE(fmt.Sprintf("/api/v1/departments/:%s", consts.URLPathID), DeleteDepartment)
	engine.DELETE(fmt.Sprintf("/api/v1/topics/:%s", consts.URLPathID), DeleteTopic)

	server := httptest.NewServer(engine)
	defer server.Close()

	dept, err := service.CreateDepartment(&dto.CreateDepartmentReq{Code: "WIRE", Name: "Wire Faculty"})
	require.NoError(t, err)
	topic, err := service.CreateTopic(&dto.CreateTopicReq{Name: "Wire Topic"})
	require.NoError(t, err)

	tests := []struct {
		name        string
		path        string
		wantMessage string
	}{
		{"department", fmt.Sprintf("/api/v1/departments/%d", dept.ID), "Department deleted"},
		{"topic", fmt.Sprintf("/api/v1/topics/%d", topic.ID), "Topic deleted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodDelete, server.URL+tt.path, nil)
			require.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.NotEmpty(t, raw)

			var body dto.APIResponse[any]
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.True(t, body.Success)
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.NotEmpty(t, body.Timestamp)
			assert.Nil(t, body.Data)
		})
	}
}

// Out-of-range page values normalize to defaults, but a value that does not
// parse as an int is malformed input and fails at the binding layer.
func TestListPaginationParamBinding(t *testing.T) {
	engine := gin.New()
	engine.GET("/api/v1/departments", ListDepartments)

	tests := []struct {
		name       string
		query      string
		wantStatus int
	}{
		{"missing params", "", http.StatusOK},
		{"zero page normalizes", "?pageNumber=0&pageSize=0", http.StatusOK},
		{"oversized page size clamps", "?pageSize=5000", http.StatusOK},
		{"non-numeric page number", "?pageNumber=abc", http.StatusBadRequest},
		{"non-numeric page size", "?pageSize=ten", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/departments"+tt.query, nil)
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			var body dto.APIResponse[json.RawMessage]
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus == http.StatusOK, body.Success)
		})
	}
}
