package model

import "time"

// OrderLine is one (product, quantity) pair of a submission.
type OrderLine struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// OrderSubmission is the body sent to the order boundary.
type OrderSubmission struct {
	ShippingAddress string      `json:"shippingAddress"`
	Items           []OrderLine `json:"items"`
}

type OrderItem struct {
	ID              int64   `json:"id"`
	Product         Product `json:"product"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"priceAtPurchase"`
}

// Subtotal is the line amount at purchase price.
func (i OrderItem) Subtotal() float64 {
	return i.PriceAtPurchase * float64(i.Quantity)
}

type Order struct {
	ID              int64       `json:"id"`
	OrderDate       time.Time   `json:"orderDate"`
	TotalPrice      float64     `json:"totalPrice"`
	Status          string      `json:"status"`
	ShippingAddress string      `json:"shippingAddress,omitempty"`
	TrackingNumber  string      `json:"trackingNumber,omitempty"`
	ShippingCompany string      `json:"shippingCompany,omitempty"`
	Customer        string      `json:"customer,omitempty"`
	OrderItems      []OrderItem `json:"orderItems"`
}

// Shipment is the body of the supplier ship action.
type Shipment struct {
	TrackingNumber  string `json:"trackingNumber"`
	ShippingCompany string `json:"shippingCompany"`
}

const (
	OrderStatusPending = "PENDING"
	OrderStatusShipped = "SHIPPED"
)
