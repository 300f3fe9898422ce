// Package checkout turns the cart into an order.
//
// Placing an order is split so the boundary call can run off the event path:
// Begin validates and builds the submission, Submit performs the call, and
// Complete applies the outcome. Only one submission may be pending at a time.
package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"storefront/internal/cart"
	apperrors "storefront/internal/errors"
	"storefront/internal/metrics"
	"storefront/internal/model"
	"storefront/internal/router"
)

// FailedMessage is shown when the boundary gives no reason.
const FailedMessage = "Order failed"

// Placer is the order boundary.
type Placer interface {
	PlaceOrder(ctx context.Context, token string, sub model.OrderSubmission) (model.Order, error)
}

// Result describes a placed order and where the user goes next.
type Result struct {
	OrderID int64
	Next    router.View
}

// Error carries the message to show for a failed order.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("place order: %s", e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Orchestrator is not safe for concurrent use.
type Orchestrator struct {
	cart     *cart.Engine
	placer   Placer
	metrics  *metrics.Metrics
	inFlight bool
	epoch    uint64
}

func New(c *cart.Engine, p Placer, m *metrics.Metrics) *Orchestrator {
	return &Orchestrator{cart: c, placer: p, metrics: m}
}

// InFlight reports whether a submission is awaiting Complete.
func (o *Orchestrator) InFlight() bool { return o.inFlight }

// Epoch identifies the session submissions are currently made for.
func (o *Orchestrator) Epoch() uint64 { return o.epoch }

// Reset forgets any pending submission and starts a new epoch. Outcomes of
// submissions begun before the reset are refused by CompleteFor.
func (o *Orchestrator) Reset() {
	o.inFlight = false
	o.epoch++
}

// Begin builds the order submission from the cart and marks it pending.
func (o *Orchestrator) Begin(shippingAddress string) (model.OrderSubmission, error) {
	if o.inFlight {
		return model.OrderSubmission{}, apperrors.ErrCheckoutInFlight
	}
	if o.cart.Len() == 0 {
		return model.OrderSubmission{}, apperrors.ErrEmptyCart
	}
	addr := strings.TrimSpace(shippingAddress)
	if addr == "" {
		return model.OrderSubmission{}, apperrors.ErrMissingShippingAddress
	}

	o.inFlight = true
	return model.OrderSubmission{ShippingAddress: addr, Items: o.cart.Items()}, nil
}

// Submit sends sub to the order boundary. It does not touch the cart.
func (o *Orchestrator) Submit(ctx context.Context, token string, sub model.OrderSubmission) (model.Order, error) {
	return o.placer.PlaceOrder(ctx, token, sub)
}

// Complete applies the outcome of Submit in the current epoch.
func (o *Orchestrator) Complete(order model.Order, err error) (Result, error) {
	return o.CompleteFor(o.epoch, order, err)
}

// CompleteFor applies the outcome of a submission begun in epoch. The cart is
// cleared only when the order was accepted. An outcome from an older epoch
// changes nothing and returns ErrCheckoutSuperseded.
func (o *Orchestrator) CompleteFor(epoch uint64, order model.Order, err error) (Result, error) {
	if epoch != o.epoch {
		slog.Info("ignoring order outcome from ended session", "order_id", order.ID, "error", err)
		return Result{}, apperrors.ErrCheckoutSuperseded
	}
	o.inFlight = false

	if err != nil {
		o.metrics.Checkout("failed")
		msg := apperrors.UserMessage(err, FailedMessage)
		slog.Error("order failed", "error", err)
		return Result{}, &Error{Message: msg, Err: err}
	}

	o.cart.Clear()
	o.metrics.Checkout("placed")
	slog.Info("order placed", "order_id", order.ID)
	return Result{OrderID: order.ID, Next: router.Orders}, nil
}

// PlaceOrder runs Begin, Submit and Complete in sequence.
func (o *Orchestrator) PlaceOrder(ctx context.Context, token, shippingAddress string) (Result, error) {
	sub, err := o.Begin(shippingAddress)
	if err != nil {
		return Result{}, err
	}
	order, err := o.Submit(ctx, token, sub)
	return o.Complete(order, err)
}
