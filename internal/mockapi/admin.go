package mockapi

import (
	"fmt"
	"net/http"
	"strconv"

	"storefront/internal/model"

	"github.com/gin-gonic/gin"
)

func (s *Server) listUsers(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.AdminUser, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, a.AdminUser)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) toggleUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id"})
		return
	}
	if id == c.GetInt64("userID") {
		c.JSON(http.StatusBadRequest, gin.H{"message": "You cannot disable your own account"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.accountByID(id)
	if a == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	a.Enabled = !a.Enabled
	state := "disabled"
	if a.Enabled {
		state = "enabled"
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("User %s has been %s.", a.Username, state)})
}
