package handlers

import (
	"net/http"

	appErrors "github.com/aaravmahajanofficial/vendor-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/utils/response"
)

// NameOrSubresource serves GET /<resource>/{first}/{second}. The mux cannot hold
// both /<resource>/name/{name} and /<resource>/{id}/<sub> since neither is more
// specific, so the two shapes are told apart here.
func NameOrSubresource(byName http.HandlerFunc, idParam string, subs map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		first, second := r.PathValue("first"), r.PathValue("second")

		if first == "name" {
			r.SetPathValue("name", second)
			byName(w, r)
			return
		}

		if h, ok := subs[second]; ok {
			r.SetPathValue(idParam, first)
			h(w, r)
			return
		}

		response.Error(w, appErrors.NotFoundError("Route not found"))
	}
}
