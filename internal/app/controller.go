// Package app wires the session, cart, checkout and router together and
// holds the view the user asked for.
//
// A Controller is driven from a single event loop. Boundary calls happen
// elsewhere; their outcomes are handed back through the *Succeeded, *Failed
// and *Finished methods.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"storefront/internal/cart"
	"storefront/internal/checkout"
	"storefront/internal/db"
	apperrors "storefront/internal/errors"
	"storefront/internal/metrics"
	"storefront/internal/model"
	"storefront/internal/router"
	"storefront/internal/session"
)

// Boundary is the remote surface the controller needs.
type Boundary interface {
	session.Authenticator
	checkout.Placer
}

type Controller struct {
	session   *session.Store
	cart      *cart.Engine
	checkout  *checkout.Orchestrator
	metrics   *metrics.Metrics
	requested router.View
}

// New builds a controller whose session persists to kv under namespace.
func New(kv db.Store, namespace string, b Boundary, m *metrics.Metrics) *Controller {
	sess := session.New(kv, namespace, b, m)
	c := cart.New(sess)
	co := checkout.New(c, b, m)
	sess.OnLogout(c)
	sess.OnLogout(session.ClearFunc(co.Reset))
	return &Controller{
		session:   sess,
		cart:      c,
		checkout:  co,
		metrics:   m,
		requested: router.Home,
	}
}

func (c *Controller) Session() *session.Store { return c.session }

func (c *Controller) Cart() *cart.Engine { return c.cart }

func (c *Controller) Checkout() *checkout.Orchestrator { return c.checkout }

// Start restores any persisted session. A restored user lands on the view
// for their role.
func (c *Controller) Start() router.View {
	if landing, ok := c.session.Restore(); ok {
		c.requested = landing
	}
	return c.View()
}

// Navigate records the view the user asked for. Access rules are applied
// by View.
func (c *Controller) Navigate(v router.View) {
	c.requested = v
}

// Requested is the view last asked for, before resolution.
func (c *Controller) Requested() router.View { return c.requested }

// View is the view to render. It never changes state.
func (c *Controller) View() router.View {
	return router.Resolve(c.requested, c.session)
}

// Settle replaces the request with its resolution when they differ, so a
// redirect sticks. Call it after handling an event, never while rendering.
func (c *Controller) Settle() bool {
	resolved := c.View()
	if resolved == c.requested {
		return false
	}
	slog.Debug("redirected", "from", c.requested, "to", resolved)
	c.requested = resolved
	return true
}

// AddToCart adds p, or sends an anonymous user to the login view.
func (c *Controller) AddToCart(p model.Product) Notice {
	if err := c.cart.AddItem(p); err != nil {
		if errors.Is(err, apperrors.ErrUnauthenticated) {
			c.requested = router.Login
			return failure("Please log in to add items to your cart.")
		}
		slog.Error("add to cart failed", "product_id", p.ID, "error", err)
		return failure(err.Error())
	}
	c.metrics.CartOp("add")
	return success(fmt.Sprintf("%s added to cart!", p.Name))
}

// Increment raises the quantity of a cart line by one.
func (c *Controller) Increment(productID int64) {
	if l, ok := c.cart.Line(productID); ok {
		c.cart.UpdateQuantity(productID, l.Quantity+1)
		c.metrics.CartOp("update")
	}
}

// Decrement lowers the quantity of a cart line by one, never below one.
func (c *Controller) Decrement(productID int64) {
	if l, ok := c.cart.Line(productID); ok && l.Quantity > 1 {
		c.cart.UpdateQuantity(productID, l.Quantity-1)
		c.metrics.CartOp("update")
	}
}

func (c *Controller) Remove(productID int64) {
	if _, ok := c.cart.Line(productID); ok {
		c.cart.RemoveItem(productID)
		c.metrics.CartOp("remove")
	}
}

// Authenticate performs the login call. It does not touch the session and
// may run off the event path.
func (c *Controller) Authenticate(ctx context.Context, username, password string) (model.AuthResult, error) {
	return c.session.Authenticate(ctx, username, password)
}

// LoginSucceeded adopts a successful login and moves to the role's landing
// view.
func (c *Controller) LoginSucceeded(res model.AuthResult) Notice {
	landing, err := c.session.Establish(res)
	if err != nil {
		slog.Error("failed to establish session", "error", err)
		return failure("Error: Login failed!")
	}
	c.requested = landing
	return success(fmt.Sprintf("Welcome, %s!", res.Username))
}

func (c *Controller) LoginFailed(err error) Notice {
	slog.Warn("login failed", "error", err)
	return failure("Error: " + apperrors.UserMessage(err, "Login failed!"))
}

// Register performs the registration call. It may run off the event path.
func (c *Controller) Register(ctx context.Context, username, email, password string, role model.Role) error {
	_, err := c.session.Register(ctx, username, email, password, role)
	return err
}

func (c *Controller) RegisterSucceeded() Notice {
	c.requested = router.Login
	return success("Registration successful! Please log in.")
}

func (c *Controller) RegisterFailed(err error) Notice {
	slog.Warn("registration failed", "error", err)
	return failure("Error: " + apperrors.UserMessage(err, "Registration failed!"))
}

// Logout ends the session, empties the cart and returns home.
func (c *Controller) Logout() Notice {
	c.requested = c.session.Logout()
	return info("Logged out.")
}

// CheckoutStarted validates the cart and address and returns the submission
// to send. ok is false when nothing should be sent.
func (c *Controller) CheckoutStarted(shippingAddress string) (model.OrderSubmission, Notice, bool) {
	sub, err := c.checkout.Begin(shippingAddress)
	switch {
	case err == nil:
		return sub, info("Placing order..."), true
	case errors.Is(err, apperrors.ErrEmptyCart):
		return sub, failure("Your cart is empty!"), false
	case errors.Is(err, apperrors.ErrMissingShippingAddress):
		return sub, failure("Please enter a shipping address."), false
	case errors.Is(err, apperrors.ErrCheckoutInFlight):
		return sub, info("Your order is already being placed."), false
	default:
		slog.Error("checkout failed to start", "error", err)
		return sub, failure(err.Error()), false
	}
}

// OrderOutcome is the result of an order call, tagged with the session it
// was placed in.
type OrderOutcome struct {
	Order model.Order
	Err   error
	epoch uint64
}

// SubmitOrder returns the order call for a started checkout. The token and
// session epoch are read now, so the returned function may run off the event
// path.
func (c *Controller) SubmitOrder(sub model.OrderSubmission) func(context.Context) OrderOutcome {
	token, epoch := c.session.Token(), c.checkout.Epoch()
	return func(ctx context.Context) OrderOutcome {
		order, err := c.checkout.Submit(ctx, token, sub)
		return OrderOutcome{Order: order, Err: err, epoch: epoch}
	}
}

// CheckoutFinished applies the order outcome. On success the cart is empty
// and the orders view is requested; on failure the cart is kept. An outcome
// from a session that has since logged out changes nothing and yields an
// empty notice.
func (c *Controller) CheckoutFinished(out OrderOutcome) Notice {
	res, err := c.checkout.CompleteFor(out.epoch, out.Order, out.Err)
	if errors.Is(err, apperrors.ErrCheckoutSuperseded) {
		return Notice{}
	}
	if err != nil {
		var ce *checkout.Error
		if errors.As(err, &ce) {
			return failure("Failed to place order: " + ce.Message)
		}
		return failure("Failed to place order: " + checkout.FailedMessage)
	}
	c.requested = res.Next
	return success(fmt.Sprintf("Order #%d placed successfully!", res.OrderID))
}
