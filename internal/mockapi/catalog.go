package mockapi

import (
	"net/http"
	"strconv"

	"storefront/internal/model"

	"github.com/gin-gonic/gin"
)

func (s *Server) listProducts(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, snapshot(p.Product))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) listCategories(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, append([]model.Category{}, s.categories...))
}

func (s *Server) myProducts(c *gin.Context) {
	userID := c.GetInt64("userID")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Product{}
	for _, p := range s.products {
		if p.ownerID == userID {
			out = append(out, snapshot(p.Product))
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) updateStock(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
		return
	}
	var input model.Inventory
	if err := c.ShouldBindJSON(&input); err != nil || input.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "quantity must be zero or more"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.productByID(id)
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	if role, _ := c.Get("role"); role != model.RoleAdmin && p.ownerID != c.GetInt64("userID") {
		c.JSON(http.StatusForbidden, gin.H{"message": "You do not own this product"})
		return
	}
	p.Inventory.Quantity = input.Quantity
	c.JSON(http.StatusOK, snapshot(p.Product))
}

// snapshot copies the pointer fields so responses never alias server state.
func snapshot(p model.Product) model.Product {
	if p.Category != nil {
		cat := *p.Category
		p.Category = &cat
	}
	if p.Supplier != nil {
		sup := *p.Supplier
		p.Supplier = &sup
	}
	if p.Inventory != nil {
		inv := *p.Inventory
		p.Inventory = &inv
	}
	return p
}
