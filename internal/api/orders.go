package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	apperrors "storefront/internal/errors"
	"storefront/internal/model"

	"github.com/google/uuid"
)

// PlaceOrder submits an order. Each call carries a fresh Idempotency-Key.
func (c *Client) PlaceOrder(ctx context.Context, token string, sub model.OrderSubmission) (model.Order, error) {
	var order model.Order
	err := c.do(ctx, request{
		op:      "place order",
		method:  http.MethodPost,
		path:    "/api/orders",
		token:   token,
		body:    sub,
		headers: map[string]string{"Idempotency-Key": uuid.NewString()},
	}, &order)
	if err != nil {
		return model.Order{}, err
	}
	if order.ID == 0 {
		return model.Order{}, &apperrors.MalformedResponseError{Op: "place order", Err: errors.New("missing order id")}
	}
	return order, nil
}

// ListOrders returns the caller's orders: a customer's purchases or the
// orders a supplier has to fulfil.
func (c *Client) ListOrders(ctx context.Context, token string) ([]model.Order, error) {
	var orders []model.Order
	err := c.do(ctx, request{op: "list orders", method: http.MethodGet, path: "/api/orders", token: token}, &orders)
	return orders, err
}

// ShipOrder marks an order as shipped.
func (c *Client) ShipOrder(ctx context.Context, token string, orderID int64, s model.Shipment) (model.Order, error) {
	var order model.Order
	err := c.do(ctx, request{
		op:     "ship order",
		method: http.MethodPost,
		path:   fmt.Sprintf("/api/orders/%d/ship", orderID),
		token:  token,
		body:   s,
	}, &order)
	return order, err
}

// ListAllOrders returns every order; admin only.
func (c *Client) ListAllOrders(ctx context.Context, token string) ([]model.Order, error) {
	var orders []model.Order
	err := c.do(ctx, request{op: "list all orders", method: http.MethodGet, path: "/api/admin/orders", token: token}, &orders)
	return orders, err
}
