package app

import (
	"context"
	"net/http/httptest"
	"testing"

	"storefront/internal/api"
	"storefront/internal/db"
	apperrors "storefront/internal/errors"
	"storefront/internal/mockapi"
	"storefront/internal/model"
	"storefront/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockBoundary struct {
	mock.Mock
}

func (m *mockBoundary) Login(ctx context.Context, username, password string) (model.AuthResult, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(model.AuthResult), args.Error(1)
}

func (m *mockBoundary) Register(ctx context.Context, reg model.Registration) error {
	return m.Called(ctx, reg).Error(0)
}

func (m *mockBoundary) PlaceOrder(ctx context.Context, token string, sub model.OrderSubmission) (model.Order, error) {
	args := m.Called(ctx, token, sub)
	return args.Get(0).(model.Order), args.Error(1)
}

var hammer = model.Product{ID: 1, Name: "Hammer", Price: 9.99}

func loggedInAs(t *testing.T, role model.Role) (*Controller, *mockBoundary) {
	t.Helper()
	b := new(mockBoundary)
	c := New(db.NewMemoryStore(), "test", b, nil)
	c.Start()
	n := c.LoginSucceeded(model.AuthResult{Token: "tok", ID: 9, Username: "pat", Role: role})
	require.Equal(t, LevelSuccess, n.Level, n.Text)
	return c, b
}

func TestStart_Anonymous(t *testing.T) {
	c := New(db.NewMemoryStore(), "test", new(mockBoundary), nil)
	assert.Equal(t, router.Home, c.Start())
	assert.False(t, c.Session().Authenticated())
}

func TestStart_RestoresPersistedSession(t *testing.T) {
	kv := db.NewMemoryStore()
	first := New(kv, "test", new(mockBoundary), nil)
	first.LoginSucceeded(model.AuthResult{Token: "tok", ID: 2, Username: "sup", Role: model.RoleSupplier})

	second := New(kv, "test", new(mockBoundary), nil)
	assert.Equal(t, router.SupplierDashboard, second.Start())
	assert.Equal(t, "tok", second.Session().Token())
}

func TestAddToCart_Anonymous(t *testing.T) {
	c := New(db.NewMemoryStore(), "test", new(mockBoundary), nil)
	c.Start()

	n := c.AddToCart(model.Product{ID: 5, Name: "Saw", Price: 20})
	assert.Equal(t, "Please log in to add items to your cart.", n.Text)
	assert.Equal(t, LevelError, n.Level)
	assert.Zero(t, c.Cart().Len())
	assert.Equal(t, router.Login, c.Requested())
}

func TestAddToCart_Customer(t *testing.T) {
	c, _ := loggedInAs(t, model.RoleCustomer)

	assert.Equal(t, "Hammer added to cart!", c.AddToCart(hammer).Text)
	c.AddToCart(hammer)
	require.Equal(t, 1, c.Cart().Len())
	assert.Equal(t, 2, c.Cart().Lines()[0].Quantity)
	assert.InDelta(t, 19.98, c.Cart().Total(), 1e-9)
}

func TestCartAdjustments(t *testing.T) {
	c, _ := loggedInAs(t, model.RoleCustomer)
	c.AddToCart(hammer)

	c.Increment(1)
	c.Increment(1)
	l, _ := c.Cart().Line(1)
	assert.Equal(t, 3, l.Quantity)

	c.Decrement(1)
	c.Decrement(1)
	c.Decrement(1)
	l, _ = c.Cart().Line(1)
	assert.Equal(t, 1, l.Quantity)

	c.Increment(99)
	c.Remove(1)
	assert.Zero(t, c.Cart().Len())
}

func TestViewIsPure(t *testing.T) {
	c, _ := loggedInAs(t, model.RoleCustomer)
	c.Navigate(router.SupplierDashboard)

	assert.Equal(t, router.Home, c.View())
	assert.Equal(t, router.Home, c.View())
	assert.Equal(t, router.SupplierDashboard, c.Requested())

	assert.True(t, c.Settle())
	assert.Equal(t, router.Home, c.Requested())
	assert.False(t, c.Settle())
}

func TestAdminAlwaysSeesDashboard(t *testing.T) {
	c, _ := loggedInAs(t, model.RoleAdmin)
	for _, v := range router.All {
		c.Navigate(v)
		if router.IsPublic(v) {
			assert.Equal(t, v, c.View())
			continue
		}
		assert.Equal(t, router.AdminDashboard, c.View(), "requested %s", v)
	}
}

func TestLoginFailed(t *testing.T) {
	c := New(db.NewMemoryStore(), "test", new(mockBoundary), nil)

	n := c.LoginFailed(apperrors.NewBoundaryError("login", 401, "Invalid username or password"))
	assert.Equal(t, "Error: Invalid username or password", n.Text)

	n = c.LoginFailed(&apperrors.MalformedResponseError{Op: "login"})
	assert.Equal(t, "Error: Login failed!", n.Text)
	assert.False(t, c.Session().Authenticated())
}

func TestRegister(t *testing.T) {
	c := New(db.NewMemoryStore(), "test", new(mockBoundary), nil)
	c.Navigate(router.Register)

	n := c.RegisterSucceeded()
	assert.Equal(t, "Registration successful! Please log in.", n.Text)
	assert.Equal(t, router.Login, c.Requested())

	n = c.RegisterFailed(apperrors.NewBoundaryError("register", 500, ""))
	assert.Equal(t, "Error: Registration failed!", n.Text)
}

func TestLogout_RoundTrip(t *testing.T) {
	kv := db.NewMemoryStore()
	c := New(kv, "test", new(mockBoundary), nil)
	c.LoginSucceeded(model.AuthResult{Token: "tok", Username: "pat", Role: model.RoleCustomer})
	c.AddToCart(hammer)
	c.Navigate(router.Cart)

	c.Logout()
	assert.Equal(t, router.Home, c.Requested())
	assert.Zero(t, c.Cart().Len())

	restarted := New(kv, "test", new(mockBoundary), nil)
	restarted.Start()
	assert.False(t, restarted.Session().Authenticated())
	assert.Empty(t, restarted.Session().Token())
}

func TestCheckout_EmptyCart(t *testing.T) {
	c, b := loggedInAs(t, model.RoleCustomer)

	_, n, ok := c.CheckoutStarted("1 Elm St")
	assert.False(t, ok)
	assert.Equal(t, "Your cart is empty!", n.Text)
	b.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckout_Success(t *testing.T) {
	c, b := loggedInAs(t, model.RoleCustomer)
	c.AddToCart(hammer)
	c.AddToCart(hammer)
	c.Navigate(router.Cart)

	sub, _, ok := c.CheckoutStarted("1 Elm St")
	require.True(t, ok)
	assert.Equal(t, []model.OrderLine{{ProductID: 1, Quantity: 2}}, sub.Items)

	b.On("PlaceOrder", mock.Anything, "tok", sub).Return(model.Order{ID: 17}, nil).Once()
	n := c.CheckoutFinished(c.SubmitOrder(sub)(context.Background()))
	assert.Equal(t, "Order #17 placed successfully!", n.Text)
	assert.Zero(t, c.Cart().Len())
	assert.Equal(t, router.Orders, c.Requested())
	b.AssertExpectations(t)
}

func TestCheckout_Failure(t *testing.T) {
	c, b := loggedInAs(t, model.RoleCustomer)
	c.AddToCart(hammer)
	c.Navigate(router.Cart)

	sub, _, ok := c.CheckoutStarted("1 Elm St")
	require.True(t, ok)
	_, n, ok := c.CheckoutStarted("1 Elm St")
	assert.False(t, ok, "second checkout while one is pending")
	assert.Equal(t, LevelInfo, n.Level)

	b.On("PlaceOrder", mock.Anything, "tok", sub).
		Return(model.Order{}, apperrors.NewBoundaryError("place order", 400, "Out of stock")).Once()
	n = c.CheckoutFinished(c.SubmitOrder(sub)(context.Background()))
	assert.Equal(t, "Failed to place order: Out of stock", n.Text)
	assert.Equal(t, 1, c.Cart().Len())
	assert.Equal(t, router.Cart, c.Requested())
}

func TestCheckout_OutcomeAfterLogoutIsIgnored(t *testing.T) {
	c, b := loggedInAs(t, model.RoleCustomer)
	c.AddToCart(hammer)

	sub, _, ok := c.CheckoutStarted("1 Elm St")
	require.True(t, ok)
	b.On("PlaceOrder", mock.Anything, "tok", sub).Return(model.Order{ID: 77}, nil).Once()
	pending := c.SubmitOrder(sub)

	c.Logout()
	assert.False(t, c.Checkout().InFlight())

	n := c.LoginSucceeded(model.AuthResult{Token: "tok2", ID: 10, Username: "sam", Role: model.RoleCustomer})
	require.Equal(t, LevelSuccess, n.Level, n.Text)
	saw := model.Product{ID: 5, Name: "Saw", Price: 20}
	c.AddToCart(saw)
	c.Navigate(router.Cart)

	next, n, ok := c.CheckoutStarted("2 Oak Ave")
	require.True(t, ok, n.Text)
	assert.Equal(t, "Placing order...", n.Text)

	n = c.CheckoutFinished(pending(context.Background()))
	assert.True(t, n.Empty())
	assert.Equal(t, 1, c.Cart().Len())
	assert.Equal(t, router.Cart, c.Requested())
	assert.True(t, c.Checkout().InFlight(), "sam's order is still pending")

	b.On("PlaceOrder", mock.Anything, "tok2", next).Return(model.Order{ID: 78}, nil).Once()
	n = c.CheckoutFinished(c.SubmitOrder(next)(context.Background()))
	assert.Equal(t, "Order #78 placed successfully!", n.Text)
	assert.Zero(t, c.Cart().Len())
	b.AssertExpectations(t)
}

func TestEndToEnd_AgainstMockAPI(t *testing.T) {
	backend := mockapi.New(mockapi.Options{Secret: "test", BcryptCost: bcrypt.MinCost})
	server := httptest.NewServer(backend.Handler())
	t.Cleanup(server.Close)
	client := api.NewClient(server.URL, 0, nil)
	ctx := context.Background()

	c := New(db.NewMemoryStore(), "e2e", client, nil)
	c.Start()

	catalog, err := client.LoadCatalog(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, catalog.Products)
	first := catalog.Products[0]

	res, err := c.Authenticate(ctx, "customer", "customer123")
	require.NoError(t, err)
	c.LoginSucceeded(res)
	assert.Equal(t, router.Home, c.View())

	c.AddToCart(first)
	c.AddToCart(first)
	stock := backend.Stock(first.ID)

	sub, _, ok := c.CheckoutStarted("1 Elm St")
	require.True(t, ok)
	n := c.CheckoutFinished(c.SubmitOrder(sub)(ctx))

	assert.Equal(t, LevelSuccess, n.Level, n.Text)
	assert.Equal(t, router.Orders, c.View())
	assert.Equal(t, stock-2, backend.Stock(first.ID))

	orders, err := client.ListOrders(ctx, c.Session().Token())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "1 Elm St", orders[0].ShippingAddress)
}
