package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/api/handlers"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/api/middleware"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	h := &apiHandlers{
		User:         handlers.NewUserHandler(new(mocks.UserService)),
		Vendor:       handlers.NewVendorHandler(new(mocks.VendorService)),
		Item:         handlers.NewItemHandler(new(mocks.ItemService)),
		Review:       handlers.NewReviewHandler(new(mocks.ReviewService)),
		Cart:         handlers.NewCartHandler(new(mocks.CartService)),
		Order:        handlers.NewOrderHandler(new(mocks.OrderService)),
		Address:      handlers.NewAddressHandler(new(mocks.AddressService)),
		Payment:      handlers.NewPaymentHandler(new(mocks.PaymentService)),
		Notification: handlers.NewNotificationHandler(new(mocks.NotificationService)),
	}

	mux := http.NewServeMux()
	require.NotPanics(t, func() {
		registerRoutes(mux, h, middleware.NewAuthMiddleware([]byte("test-secret-key-123456789012345")), map[string]http.Handler{
			"GET /health": http.NotFoundHandler(),
		})
	})

	return mux
}

func TestRegisterRoutes_Patterns(t *testing.T) {
	mux := newTestMux(t)

	tests := []struct {
		method  string
		path    string
		pattern string
	}{
		{http.MethodGet, "/user/me", "GET /user/me"},
		{http.MethodGet, "/user/3f1c", "GET /user/{userId}"},
		{http.MethodPut, "/user/password", "PUT /user/password"},
		{http.MethodGet, "/vendor/name/Acme", "GET /vendor/{first}/{second}"},
		{http.MethodGet, "/vendor/3f1c/store", "GET /vendor/{first}/{second}"},
		{http.MethodGet, "/item/3f1c/reviews", "GET /item/{first}/{second}"},
		{http.MethodPost, "/item/3f1c/review", "POST /item/{itemId}/review"},
		{http.MethodPut, "/item/3f1c/update-rating", "PUT /item/{itemId}/update-rating"},
		{http.MethodPost, "/cart/checkout", "POST /cart/checkout"},
		{http.MethodDelete, "/order/3f1c", "DELETE /order/{orderId}"},
		{http.MethodGet, "/health", "GET /health"},
		{http.MethodGet, "/swagger/index.html", "GET /swagger/"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			_, pattern := mux.Handler(httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.pattern, pattern)
		})
	}
}

func TestRegisterRoutes_ProtectedRoutesRequireToken(t *testing.T) {
	mux := newTestMux(t)

	for _, target := range []string{"/cart", "/order", "/address", "/payment", "/notification", "/user/me"} {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code, target)
	}
}
