package main

import (
	"net/http"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/api/handlers"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type apiHandlers struct {
	User         *handlers.UserHandler
	Vendor       *handlers.VendorHandler
	Item         *handlers.ItemHandler
	Review       *handlers.ReviewHandler
	Cart         *handlers.CartHandler
	Order        *handlers.OrderHandler
	Address      *handlers.AddressHandler
	Payment      *handlers.PaymentHandler
	Notification *handlers.NotificationHandler
}

func registerRoutes(mux *http.ServeMux, h *apiHandlers, auth *middleware.AuthMiddleware, ops map[string]http.Handler) {

	// Users
	mux.HandleFunc("POST /user", h.User.Register())
	mux.HandleFunc("POST /user/login", h.User.Login())
	mux.HandleFunc("GET /user", h.User.ListUsers())
	mux.HandleFunc("GET /user/me", auth.Authenticate(h.User.Profile()))
	mux.HandleFunc("GET /user/{userId}", h.User.GetUser())
	mux.HandleFunc("PUT /user", auth.Authenticate(h.User.UpdateUser()))
	mux.HandleFunc("PUT /user/password", auth.Authenticate(h.User.ChangePassword()))
	mux.HandleFunc("DELETE /user", auth.Authenticate(h.User.DeleteUser()))

	// Vendors
	mux.HandleFunc("POST /vendor", auth.Authenticate(h.Vendor.CreateVendor()))
	mux.HandleFunc("GET /vendor", h.Vendor.ListVendors())
	mux.HandleFunc("GET /vendor/{vendorId}", h.Vendor.GetVendor())
	mux.HandleFunc("GET /vendor/{first}/{second}", handlers.NameOrSubresource(h.Vendor.GetVendorByName(), "vendorId",
		map[string]http.HandlerFunc{"store": h.Vendor.GetStorefront()}))
	mux.HandleFunc("PUT /vendor/{vendorId}", auth.Authenticate(h.Vendor.UpdateVendor()))
	mux.HandleFunc("DELETE /vendor", auth.Authenticate(h.Vendor.DeleteVendor()))

	// Items
	mux.HandleFunc("GET /item", h.Item.ListItems())
	mux.HandleFunc("POST /item", auth.Authenticate(h.Item.CreateItem()))
	mux.HandleFunc("GET /item/{itemId}", h.Item.GetItem())
	mux.HandleFunc("GET /item/{first}/{second}", handlers.NameOrSubresource(h.Item.GetItemByName(), "itemId",
		map[string]http.HandlerFunc{"reviews": h.Review.ListReviews()}))
	mux.HandleFunc("PUT /item/{itemId}", auth.Authenticate(h.Item.UpdateItem()))
	mux.HandleFunc("DELETE /item/{itemId}", auth.Authenticate(h.Item.DeleteItem()))

	// Reviews
	mux.HandleFunc("POST /item/{itemId}/review", auth.Authenticate(h.Review.CreateReview()))
	mux.HandleFunc("PUT /item/{itemId}/review", auth.Authenticate(h.Review.UpdateReview()))
	mux.HandleFunc("DELETE /item/{itemId}/review", auth.Authenticate(h.Review.DeleteReview()))
	mux.HandleFunc("PUT /item/{itemId}/update-rating", h.Review.RefreshRating())

	// Cart and checkout
	mux.HandleFunc("GET /cart", auth.Authenticate(h.Cart.GetCart()))
	mux.HandleFunc("PUT /cart/add", auth.Authenticate(h.Cart.AddItem()))
	mux.HandleFunc("PUT /cart/remove", auth.Authenticate(h.Cart.RemoveItem()))
	mux.HandleFunc("POST /cart/checkout", auth.Authenticate(h.Order.Checkout()))

	// Orders
	mux.HandleFunc("GET /order", auth.Authenticate(h.Order.ListOrders()))
	mux.HandleFunc("GET /order/{orderId}", auth.Authenticate(h.Order.GetOrder()))
	mux.HandleFunc("DELETE /order/{orderId}", auth.Authenticate(h.Order.CancelOrder()))

	// Addresses
	mux.HandleFunc("GET /address", auth.Authenticate(h.Address.ListAddresses()))
	mux.HandleFunc("POST /address", auth.Authenticate(h.Address.CreateAddress()))
	mux.HandleFunc("GET /address/{addressId}", auth.Authenticate(h.Address.GetAddress()))
	mux.HandleFunc("PUT /address/{addressId}", auth.Authenticate(h.Address.UpdateAddress()))
	mux.HandleFunc("DELETE /address/{addressId}", auth.Authenticate(h.Address.DeleteAddress()))

	// Payments
	mux.HandleFunc("GET /payment", auth.Authenticate(h.Payment.ListPayments()))
	mux.HandleFunc("POST /payment", auth.Authenticate(h.Payment.CreatePayment()))
	mux.HandleFunc("GET /payment/{paymentId}", auth.Authenticate(h.Payment.GetPayment()))
	mux.HandleFunc("PUT /payment/{paymentId}", auth.Authenticate(h.Payment.UpdatePayment()))
	mux.HandleFunc("DELETE /payment/{paymentId}", auth.Authenticate(h.Payment.DeletePayment()))

	// Notifications
	mux.HandleFunc("GET /notification", auth.Authenticate(h.Notification.ListNotifications()))

	// Operational
	for pattern, handler := range ops {
		mux.Handle(pattern, handler)
	}
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
}
