package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	appErrors "github.com/aaravmahajanofficial/vendor-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	repository "github.com/aaravmahajanofficial/vendor-marketplace/internal/repositories"
	"github.com/aaravmahajanofficial/vendor-marketplace/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/vendor-marketplace/internal/services"
	serviceMocks "github.com/aaravmahajanofficial/vendor-marketplace/internal/services/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	orders        *mocks.OrderRepository
	carts         *mocks.CartRepository
	items         *mocks.ItemRepository
	addresses     *mocks.AddressRepository
	payments      *mocks.PaymentRepository
	users         *mocks.UserRepository
	locks         *mocks.LockRepository
	notifications *serviceMocks.NotificationService
	svc           service.OrderService

	userID  uuid.UUID
	request *models.CheckoutRequest
}

func newCheckoutFixture() *checkoutFixture {
	f := &checkoutFixture{
		orders:        new(mocks.OrderRepository),
		carts:         new(mocks.CartRepository),
		items:         new(mocks.ItemRepository),
		addresses:     new(mocks.AddressRepository),
		payments:      new(mocks.PaymentRepository),
		users:         new(mocks.UserRepository),
		locks:         new(mocks.LockRepository),
		notifications: new(serviceMocks.NotificationService),
		userID:        uuid.New(),
		request:       &models.CheckoutRequest{AddressID: uuid.New(), PaymentID: uuid.New()},
	}

	f.svc = service.NewOrderService(service.OrderDeps{
		Orders:        f.orders,
		Carts:         f.carts,
		Items:         f.items,
		Addresses:     f.addresses,
		Payments:      f.payments,
		Users:         f.users,
		Locks:         f.locks,
		Notifications: f.notifications,
	})

	return f
}

func (f *checkoutFixture) expectLock() {
	f.locks.On("AcquireCheckoutLock", mock.Anything, f.userID).Return("owner-token", true, nil).Once()
	f.locks.On("ReleaseCheckoutLock", mock.Anything, f.userID, "owner-token").Return(nil).Once()
}

func (f *checkoutFixture) expectOwnership() {
	f.addresses.On("GetAddressByID", mock.Anything, f.request.AddressID).
		Return(&models.Address{ID: f.request.AddressID, UserID: f.userID}, nil).Once()
	f.payments.On("GetPaymentByID", mock.Anything, f.request.PaymentID).
		Return(&models.Payment{ID: f.request.PaymentID, UserID: f.userID}, nil).Once()
}

func TestOrderService_Checkout(t *testing.T) {
	ctx := context.Background()

	itemA := &models.Item{ID: uuid.New(), Name: "Lamp", Price: 500}
	itemB := &models.Item{ID: uuid.New(), Name: "Rug", Price: 250}
	deleted := uuid.New()

	t.Run("Success - Totals only resolvable items and empties the cart", func(t *testing.T) {
		f := newCheckoutFixture()
		f.expectLock()

		cart := cartWith(f.userID, 4,
			models.CartItem{ItemID: itemA.ID, Quantity: 2},
			models.CartItem{ItemID: deleted, Quantity: 1},
			models.CartItem{ItemID: itemB.ID, Quantity: 1},
		)
		f.carts.On("GetCart", mock.Anything, f.userID).Return(cart, nil).Once()
		f.expectOwnership()
		f.items.On("GetItemsByIDs", mock.Anything, []uuid.UUID{itemA.ID, deleted, itemB.ID}).
			Return([]*models.Item{itemB, itemA}, nil).Once()

		f.orders.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o *models.Order) bool {
			return o.UserID == f.userID && o.TotalCost == 1250 && len(o.Items) == 2 &&
				o.Items[0].ItemID == itemA.ID && o.Items[0].Quantity == 2 && o.Items[0].LineTotal == 1000 &&
				o.Items[1].ItemID == itemB.ID && o.Items[1].Quantity == 1 && o.Items[1].LineTotal == 250
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Order).ID = uuid.New()
		}).Return(nil).Once()

		f.carts.On("UpdateCartItems", mock.Anything, mock.MatchedBy(func(c *models.Cart) bool {
			return c.Version == 4 && c.Items != nil && len(c.Items) == 0
		})).Return(nil).Once()

		user := &models.User{ID: f.userID, Email: "buyer@example.com"}
		f.users.On("GetUserByID", mock.Anything, f.userID).Return(user, nil).Once()
		f.notifications.On("SendOrderConfirmation", mock.Anything, user, mock.AnythingOfType("*models.Order")).Return(nil).Once()

		result, err := f.svc.Checkout(ctx, f.userID, f.request)

		require.NoError(t, err)
		assert.Empty(t, result.Warnings)
		assert.Equal(t, int64(1250), result.Order.TotalCost)
		assert.Equal(t, f.request.AddressID, *result.Order.AddressID)
		assert.True(t, cart.IsEmpty())

		f.orders.AssertNumberOfCalls(t, "CreateOrder", 1)
		f.carts.AssertExpectations(t)
		f.locks.AssertExpectations(t)
		f.notifications.AssertExpectations(t)
	})

	t.Run("Failure - No cart row", func(t *testing.T) {
		f := newCheckoutFixture()
		f.expectLock()
		f.carts.On("GetCart", mock.Anything, f.userID).Return(nil, sql.ErrNoRows).Once()

		_, err := f.svc.Checkout(ctx, f.userID, f.request)

		appErr := requireCode(t, err, appErrors.ErrCodeEmptyCart)
		assert.Equal(t, 400, appErr.StatusCode)
		f.orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
		f.locks.AssertExpectations(t)
	})

	t.Run("Failure - Empty cart", func(t *testing.T) {
		f := newCheckoutFixture()
		f.expectLock()
		f.carts.On("GetCart", mock.Anything, f.userID).Return(cartWith(f.userID, 1), nil).Once()

		_, err := f.svc.Checkout(ctx, f.userID, f.request)

		requireCode(t, err, appErrors.ErrCodeEmptyCart)
		f.addresses.AssertNotCalled(t, "GetAddressByID", mock.Anything, mock.Anything)
		f.orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Nothing in the cart resolves", func(t *testing.T) {
		f := newCheckoutFixture()
		f.expectLock()
		f.carts.On("GetCart", mock.Anything, f.userID).
			Return(cartWith(f.userID, 1, models.CartItem{ItemID: deleted, Quantity: 2}), nil).Once()
		f.expectOwnership()
		f.items.On("GetItemsByIDs", mock.Anything, []uuid.UUID{deleted}).Return([]*models.Item{}, nil).Once()

		_, err := f.svc.Checkout(ctx, f.userID, f.request)

		requireCode(t, err, appErrors.ErrCodeEmptyCart)
		f.orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
		f.carts.AssertNotCalled(t, "UpdateCartItems", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Checkout already running", func(t *testing.T) {
		f := newCheckoutFixture()
		f.locks.On("AcquireCheckoutLock", mock.Anything, f.userID).Return("", false, nil).Once()

		_, err := f.svc.Checkout(ctx, f.userID, f.request)

		requireCode(t, err, appErrors.ErrCodeConflict)
		f.carts.AssertNotCalled(t, "GetCart", mock.Anything, mock.Anything)
		f.locks.AssertNotCalled(t, "ReleaseCheckoutLock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Lock store down", func(t *testing.T) {
		f := newCheckoutFixture()
		f.locks.On("AcquireCheckoutLock", mock.Anything, f.userID).Return("", false, errors.New("connection refused")).Once()

		_, err := f.svc.Checkout(ctx, f.userID, f.request)

		requireCode(t, err, appErrors.ErrCodeStoreUnavailable)
	})

	t.Run("Failure - Address belongs to someone else", func(t *testing.T) {
		f := newCheckoutFixture()
		f.expectLock()
		f.carts.On("GetCart", mock.Anything, f.userID).
			Return(cartWith(f.userID, 1, models.CartItem{ItemID: itemA.ID, Quantity: 1}), nil).Once()
		f.addresses.On("GetAddressByID", mock.Anything, f.request.AddressID).
			Return(&models.Address{ID: f.request.AddressID, UserID: uuid.New()}, nil).Once()

		_, err := f.svc.Checkout(ctx, f.userID, f.request)

		appErr := requireCode(t, err, appErrors.ErrCodeNotFound)
		assert.Equal(t, "Address not found", appErr.Message)
		f.items.AssertNotCalled(t, "GetItemsByIDs", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Unknown payment", func(t *testing.T) {
		f := newCheckoutFixture()
		f.expectLock()
		f.carts.On("GetCart", mock.Anything, f.userID).
			Return(cartWith(f.userID, 1, models.CartItem{ItemID: itemA.ID, Quantity: 1}), nil).Once()
		f.addresses.On("GetAddressByID", mock.Anything, f.request.AddressID).
			Return(&models.Address{ID: f.request.AddressID, UserID: f.userID}, nil).Once()
		f.payments.On("GetPaymentByID", mock.Anything, f.request.PaymentID).Return(nil, sql.ErrNoRows).Once()

		_, err := f.svc.Checkout(ctx, f.userID, f.request)

		appErr := requireCode(t, err, appErrors.ErrCodeNotFound)
		assert.Equal(t, "Payment not found", appErr.Message)
	})

	t.Run("Failure - Order insert fails and the cart is untouched", func(t *testing.T) {
		f := newCheckoutFixture()
		f.expectLock()
		cart := cartWith(f.userID, 1, models.CartItem{ItemID: itemA.ID, Quantity: 1})
		f.carts.On("GetCart", mock.Anything, f.userID).Return(cart, nil).Once()
		f.expectOwnership()
		f.items.On("GetItemsByIDs", mock.Anything, []uuid.UUID{itemA.ID}).Return([]*models.Item{itemA}, nil).Once()
		f.orders.On("CreateOrder", mock.Anything, mock.Anything).Return(errors.New("tx aborted")).Once()

		_, err := f.svc.Checkout(ctx, f.userID, f.request)

		appErr := requireCode(t, err, appErrors.ErrCodeDatabaseError)
		assert.Equal(t, 500, appErr.StatusCode)
		assert.Len(t, cart.Items, 1)
		f.carts.AssertNotCalled(t, "UpdateCartItems", mock.Anything, mock.Anything)
		f.locks.AssertExpectations(t)
	})

	t.Run("Success - Secondary failures become warnings", func(t *testing.T) {
		f := newCheckoutFixture()
		f.expectLock()
		f.carts.On("GetCart", mock.Anything, f.userID).
			Return(cartWith(f.userID, 1, models.CartItem{ItemID: itemA.ID, Quantity: 1}), nil).Once()
		f.expectOwnership()
		f.items.On("GetItemsByIDs", mock.Anything, []uuid.UUID{itemA.ID}).Return([]*models.Item{itemA}, nil).Once()
		f.orders.On("CreateOrder", mock.Anything, mock.Anything).Return(nil).Once()
		f.carts.On("UpdateCartItems", mock.Anything, mock.Anything).Return(repository.ErrVersionConflict).Once()
		user := &models.User{ID: f.userID, Email: "buyer@example.com"}
		f.users.On("GetUserByID", mock.Anything, f.userID).Return(user, nil).Once()
		f.notifications.On("SendOrderConfirmation", mock.Anything, user, mock.Anything).
			Return(appErrors.ThirdPartyError("Failed to send email")).Once()

		result, err := f.svc.Checkout(ctx, f.userID, f.request)

		require.NoError(t, err)
		require.NotNil(t, result.Order)
		assert.Equal(t, int64(500), result.Order.TotalCost)
		assert.Equal(t, []string{
			"order placed but cart could not be cleared",
			"order placed but confirmation email could not be sent",
		}, result.Warnings)
	})
}

func TestOrderService_GetOrder(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		f := newCheckoutFixture()
		f.orders.On("GetOrderByID", ctx, orderID).Return(&models.Order{ID: orderID, UserID: userID}, nil).Once()

		order, err := f.svc.GetOrder(ctx, userID, orderID)

		require.NoError(t, err)
		assert.Equal(t, orderID, order.ID)
	})

	t.Run("Failure - Another user's order", func(t *testing.T) {
		f := newCheckoutFixture()
		f.orders.On("GetOrderByID", ctx, orderID).Return(&models.Order{ID: orderID, UserID: uuid.New()}, nil).Once()

		_, err := f.svc.GetOrder(ctx, userID, orderID)

		requireCode(t, err, appErrors.ErrCodeForbidden)
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		f := newCheckoutFixture()
		f.orders.On("GetOrderByID", ctx, orderID).Return(nil, sql.ErrNoRows).Once()

		_, err := f.svc.GetOrder(ctx, userID, orderID)

		requireCode(t, err, appErrors.ErrCodeNotFound)
	})
}

func TestOrderService_ListAndCancel(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("List - Wraps page", func(t *testing.T) {
		f := newCheckoutFixture()
		orders := []*models.Order{{ID: uuid.New(), UserID: userID}}
		f.orders.On("ListOrdersByUser", ctx, userID, 2, 5).Return(orders, 6, nil).Once()

		page, err := f.svc.ListOrders(ctx, userID, 2, 5)

		require.NoError(t, err)
		assert.Equal(t, 6, page.Total)
		assert.Equal(t, orders, page.Data)
	})

	t.Run("Cancel - No matching order", func(t *testing.T) {
		f := newCheckoutFixture()
		orderID := uuid.New()
		f.orders.On("DeleteOrder", ctx, orderID, userID).Return(sql.ErrNoRows).Once()

		err := f.svc.CancelOrder(ctx, userID, orderID)

		requireCode(t, err, appErrors.ErrCodeNotFound)
	})

	t.Run("Cancel - Success", func(t *testing.T) {
		f := newCheckoutFixture()
		orderID := uuid.New()
		f.orders.On("DeleteOrder", ctx, orderID, userID).Return(nil).Once()

		require.NoError(t, f.svc.CancelOrder(ctx, userID, orderID))
	})
}
