package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/api/handlers"
	"github.com/stretchr/testify/assert"
)

func TestNameOrSubresource(t *testing.T) {
	var seen map[string]string

	record := func(keys ...string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			seen = map[string]string{}
			for _, k := range keys {
				seen[k] = r.PathValue(k)
			}
			w.WriteHeader(http.StatusOK)
		}
	}

	h := handlers.NameOrSubresource(record("name"), "vendorId", map[string]http.HandlerFunc{
		"store": record("vendorId"),
	})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /vendor/{first}/{second}", h)

	tests := []struct {
		path       string
		wantStatus int
		want       map[string]string
	}{
		{path: "/vendor/name/Acme", wantStatus: http.StatusOK, want: map[string]string{"name": "Acme"}},
		{path: "/vendor/name/store", wantStatus: http.StatusOK, want: map[string]string{"name": "store"}},
		{path: "/vendor/3f1c/store", wantStatus: http.StatusOK, want: map[string]string{"vendorId": "3f1c"}},
		{path: "/vendor/3f1c/other", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			seen = nil
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.want, seen)
		})
	}
}
