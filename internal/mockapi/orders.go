package mockapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"storefront/internal/model"

	"github.com/gin-gonic/gin"
)

func (s *Server) placeOrder(c *gin.Context) {
	var input model.OrderSubmission
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid order payload"})
		return
	}
	if strings.TrimSpace(input.ShippingAddress) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Shipping address is required"})
		return
	}
	if len(input.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Order must contain at least one item"})
		return
	}

	userID := c.GetInt64("userID")
	key := c.GetHeader("Idempotency-Key")

	s.mu.Lock()
	defer s.mu.Unlock()

	if key != "" {
		if id, ok := s.idempotent[key]; ok {
			c.JSON(http.StatusOK, s.orderByID(id).Order)
			return
		}
	}

	// Validate everything before touching stock.
	for _, item := range input.Items {
		p := s.productByID(item.ProductID)
		if p == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("Product %d not found", item.ProductID)})
			return
		}
		if item.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Quantity must be at least 1"})
			return
		}
		if p.Inventory.Quantity < item.Quantity {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Insufficient stock for product: " + p.Name})
			return
		}
	}

	order := &orderRecord{customerID: userID}
	order.ID = s.id()
	order.OrderDate = time.Now().UTC()
	order.Status = model.OrderStatusPending
	order.ShippingAddress = input.ShippingAddress
	if a := s.accountByID(userID); a != nil {
		order.Customer = a.Username
	}

	for _, item := range input.Items {
		p := s.productByID(item.ProductID)
		p.Inventory.Quantity -= item.Quantity
		order.OrderItems = append(order.OrderItems, model.OrderItem{
			ID:              s.id(),
			Product:         snapshot(p.Product),
			Quantity:        item.Quantity,
			PriceAtPurchase: p.Price,
		})
		order.TotalPrice += p.Price * float64(item.Quantity)
	}

	s.orders = append(s.orders, order)
	if key != "" {
		s.idempotent[key] = order.ID
	}
	c.JSON(http.StatusCreated, order.Order)
}

// listOrders returns a customer's purchases, or for a supplier the orders
// that contain at least one of their products.
func (s *Server) listOrders(c *gin.Context) {
	userID := c.GetInt64("userID")
	role, _ := c.Get("role")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Order{}
	for _, o := range s.orders {
		switch role {
		case model.RoleCustomer:
			if o.customerID == userID {
				out = append(out, o.Order)
			}
		case model.RoleSupplier:
			if s.suppliesOrder(userID, o) {
				out = append(out, o.Order)
			}
		case model.RoleAdmin:
			out = append(out, o.Order)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) suppliesOrder(supplierID int64, o *orderRecord) bool {
	for _, item := range o.OrderItems {
		if p := s.productByID(item.Product.ID); p != nil && p.ownerID == supplierID {
			return true
		}
	}
	return false
}

func (s *Server) shipOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid order id"})
		return
	}
	var input model.Shipment
	if err := c.ShouldBindJSON(&input); err != nil || input.TrackingNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Tracking number is required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.orderByID(id)
	if o == nil || !s.suppliesOrder(c.GetInt64("userID"), o) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}
	if o.Status == model.OrderStatusShipped {
		c.JSON(http.StatusConflict, gin.H{"message": "Order already shipped"})
		return
	}
	o.Status = model.OrderStatusShipped
	o.TrackingNumber = input.TrackingNumber
	o.ShippingCompany = input.ShippingCompany
	c.JSON(http.StatusOK, o.Order)
}

func (s *Server) listAllOrders(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o.Order)
	}
	c.JSON(http.StatusOK, out)
}
