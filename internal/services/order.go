package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/vendor-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/metrics"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	repository "github.com/aaravmahajanofficial/vendor-marketplace/internal/repositories"
	"github.com/google/uuid"
)

const (
	cartNotClearedWarning = "order placed but cart could not be cleared"
	emailNotSentWarning   = "order placed but confirmation email could not be sent"

	lockReleaseTimeout = 2 * time.Second
)

type OrderService interface {
	Checkout(ctx context.Context, userID uuid.UUID, req *models.CheckoutRequest) (*models.CheckoutResult, error)
	ListOrders(ctx context.Context, userID uuid.UUID, page, pageSize int) (*models.PaginatedResponse, error)
	GetOrder(ctx context.Context, userID, id uuid.UUID) (*models.Order, error)
	CancelOrder(ctx context.Context, userID, id uuid.UUID) error
}

type orderService struct {
	orderRepo     repository.OrderRepository
	cartRepo      repository.CartRepository
	itemRepo      repository.ItemRepository
	addressRepo   repository.AddressRepository
	paymentRepo   repository.PaymentRepository
	userRepo      repository.UserRepository
	locks         repository.LockRepository
	notifications NotificationService
}

type OrderDeps struct {
	Orders        repository.OrderRepository
	Carts         repository.CartRepository
	Items         repository.ItemRepository
	Addresses     repository.AddressRepository
	Payments      repository.PaymentRepository
	Users         repository.UserRepository
	Locks         repository.LockRepository
	Notifications NotificationService
}

func NewOrderService(deps OrderDeps) OrderService {
	return &orderService{
		orderRepo:     deps.Orders,
		cartRepo:      deps.Carts,
		itemRepo:      deps.Items,
		addressRepo:   deps.Addresses,
		paymentRepo:   deps.Payments,
		userRepo:      deps.Users,
		locks:         deps.Locks,
		notifications: deps.Notifications,
	}
}

// Checkout turns the user's cart into one order. Only one checkout per user
// runs at a time. Items that no longer exist are left out of the order.
func (s *orderService) Checkout(ctx context.Context, userID uuid.UUID, req *models.CheckoutRequest) (*models.CheckoutResult, error) {

	logger := middleware.LoggerFromContext(ctx)

	token, acquired, err := s.locks.AcquireCheckoutLock(ctx, userID)
	if err != nil {
		metrics.RecordCheckout(metrics.CheckoutFailed)
		return nil, appErrors.StoreUnavailableError("Checkout lock unavailable").WithError(err)
	}
	if !acquired {
		metrics.RecordCheckout(metrics.CheckoutLocked)
		return nil, appErrors.ConflictError("Checkout already in progress")
	}

	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lockReleaseTimeout)
		defer cancel()

		if err := s.locks.ReleaseCheckoutLock(releaseCtx, userID, token); err != nil {
			logger.Warn("Failed to release checkout lock", "error", err.Error())
		}
	}()

	cart, err := s.cartRepo.GetCart(ctx, userID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		metrics.RecordCheckout(metrics.CheckoutFailed)
		return nil, appErrors.FromStore(err, "Failed to fetch cart")
	}
	if cart == nil || cart.IsEmpty() {
		metrics.RecordCheckout(metrics.CheckoutEmptyCart)
		return nil, appErrors.EmptyCartError("Cart is empty")
	}

	if err := s.checkOwnership(ctx, userID, req); err != nil {
		metrics.RecordCheckout(metrics.CheckoutFailed)
		return nil, err
	}

	order, err := s.buildOrder(ctx, userID, cart, req)
	if err != nil {
		if appErr, ok := appErrors.IsAppError(err); ok && appErr.Code == appErrors.ErrCodeEmptyCart {
			metrics.RecordCheckout(metrics.CheckoutEmptyCart)
		} else {
			metrics.RecordCheckout(metrics.CheckoutFailed)
		}
		return nil, err
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		metrics.RecordCheckout(metrics.CheckoutFailed)
		return nil, appErrors.FromStore(err, "Failed to place order")
	}

	logger.Info("Order placed", "orderId", order.ID.String(), "totalCost", order.TotalCost, "lines", len(order.Items))

	result := &models.CheckoutResult{Order: order}

	cart.Items = []models.CartItem{}
	if err := s.cartRepo.UpdateCartItems(ctx, cart); err != nil {
		logger.Warn("Failed to clear cart after checkout", "orderId", order.ID.String(), "error", err.Error())
		result.Warnings = append(result.Warnings, cartNotClearedWarning)
	}

	if err := s.sendConfirmation(ctx, userID, order); err != nil {
		logger.Warn("Order confirmation not sent", "orderId", order.ID.String(), "error", err.Error())
		result.Warnings = append(result.Warnings, emailNotSentWarning)
	}

	if len(result.Warnings) > 0 {
		metrics.RecordCheckout(metrics.CheckoutPartial)
	} else {
		metrics.RecordCheckout(metrics.CheckoutPlaced)
	}

	return result, nil
}

func (s *orderService) checkOwnership(ctx context.Context, userID uuid.UUID, req *models.CheckoutRequest) error {

	address, err := s.addressRepo.GetAddressByID(ctx, req.AddressID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return appErrors.FromStore(err, "Failed to fetch address")
	}
	if address == nil || address.UserID != userID {
		return appErrors.NotFoundError("Address not found")
	}

	payment, err := s.paymentRepo.GetPaymentByID(ctx, req.PaymentID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return appErrors.FromStore(err, "Failed to fetch payment")
	}
	if payment == nil || payment.UserID != userID {
		return appErrors.NotFoundError("Payment not found")
	}

	return nil
}

// buildOrder resolves every distinct cart item in one lookup and snapshots
// the ones that still exist, one line per item.
func (s *orderService) buildOrder(ctx context.Context, userID uuid.UUID, cart *models.Cart, req *models.CheckoutRequest) (*models.Order, error) {

	quantities := make(map[uuid.UUID]int)
	var distinct []uuid.UUID

	for _, id := range cart.ExpandedItemIDs() {
		if _, seen := quantities[id]; !seen {
			distinct = append(distinct, id)
		}
		quantities[id]++
	}

	items, err := s.itemRepo.GetItemsByIDs(ctx, distinct)
	if err != nil {
		return nil, appErrors.FromStore(err, "Failed to resolve cart items")
	}

	resolved := make(map[uuid.UUID]*models.Item, len(items))
	for _, item := range items {
		resolved[item.ID] = item
	}

	order := &models.Order{
		UserID:    userID,
		AddressID: &req.AddressID,
		PaymentID: &req.PaymentID,
	}

	for _, id := range distinct {
		item, ok := resolved[id]
		if !ok {
			middleware.LoggerFromContext(ctx).Info("Skipping unavailable cart item", "itemId", id.String())
			continue
		}

		qty := quantities[id]
		line := models.OrderItem{
			ItemID:    item.ID,
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  qty,
			LineTotal: item.Price * int64(qty),
		}

		order.Items = append(order.Items, line)
		order.TotalCost += line.LineTotal
	}

	if len(order.Items) == 0 {
		return nil, appErrors.EmptyCartError("None of the items in the cart are available")
	}

	return order, nil
}

func (s *orderService) sendConfirmation(ctx context.Context, userID uuid.UUID, order *models.Order) error {

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	return s.notifications.SendOrderConfirmation(ctx, user, order)
}

func (s *orderService) ListOrders(ctx context.Context, userID uuid.UUID, page, pageSize int) (*models.PaginatedResponse, error) {

	orders, total, err := s.orderRepo.ListOrdersByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, appErrors.FromStore(err, "Failed to list orders")
	}

	return &models.PaginatedResponse{Data: orders, Total: total, Page: page, PageSize: pageSize}, nil
}

func (s *orderService) GetOrder(ctx context.Context, userID, id uuid.UUID) (*models.Order, error) {

	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}
		return nil, appErrors.FromStore(err, "Failed to fetch order")
	}

	if order.UserID != userID {
		return nil, appErrors.ForbiddenError("You can only view your own orders")
	}

	return order, nil
}

func (s *orderService) CancelOrder(ctx context.Context, userID, id uuid.UUID) error {

	if err := s.orderRepo.DeleteOrder(ctx, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Order not found").WithError(err)
		}
		return appErrors.FromStore(err, "Failed to cancel order")
	}

	return nil
}
