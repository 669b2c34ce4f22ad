package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `json:"name" validate:"required"`
	Count int    `json:"count" validate:"gt=0"`
}

func TestParseAndValidate(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name       string
		body       string
		wantOK     bool
		wantStatus int
		wantCode   string
	}{
		{name: "Valid", body: `{"name":"x","count":2}`, wantOK: true, wantStatus: http.StatusOK},
		{name: "Empty body", body: ``, wantStatus: http.StatusBadRequest, wantCode: "BAD_REQUEST"},
		{name: "Malformed JSON", body: `{"name":`, wantStatus: http.StatusBadRequest, wantCode: "BAD_REQUEST"},
		{name: "Validation failure", body: `{"count":0}`, wantStatus: http.StatusBadRequest, wantCode: "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var dest sampleRequest
			ok := utils.ParseAndValidate(req, rr, &dest, validate)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantStatus, rr.Code)

			if !tt.wantOK {
				var resp response.APIResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.False(t, resp.Success)
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.wantCode, resp.Error.Code)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		id := uuid.New()
		req := httptest.NewRequest(http.MethodGet, "/item/"+id.String(), nil)
		req.SetPathValue("itemId", id.String())
		rr := httptest.NewRecorder()

		got, ok := utils.ParseID(rr, req, "itemId")

		assert.True(t, ok)
		assert.Equal(t, id, got)
	})

	t.Run("Invalid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/item/abc", nil)
		req.SetPathValue("itemId", "abc")
		rr := httptest.NewRecorder()

		_, ok := utils.ParseID(rr, req, "itemId")

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid itemId format")
	})
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query        string
		wantPage     int
		wantPageSize int
	}{
		{query: "", wantPage: 1, wantPageSize: 10},
		{query: "?page=3&pageSize=25", wantPage: 3, wantPageSize: 25},
		{query: "?page=-1&pageSize=0", wantPage: 1, wantPageSize: 10},
		{query: "?page=abc&pageSize=1000", wantPage: 1, wantPageSize: 100},
	}

	for _, tt := range tests {
		t.Run("query"+tt.query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/item"+tt.query, nil)

			page, pageSize := utils.ParsePagination(req)

			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, pageSize)
		})
	}
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "Great product", utils.SanitizeText(`<script>alert(1)</script>Great <b>product</b>`))
	assert.Equal(t, "Tom & Jerry", utils.SanitizeText("  Tom & Jerry "))
	assert.Nil(t, utils.SanitizePtr(nil))

	in := "<i>hi</i>"
	assert.Equal(t, "hi", *utils.SanitizePtr(&in))
}
