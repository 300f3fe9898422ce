package mockapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"storefront/internal/model"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Claims is the payload of tokens issued by the mock API.
type Claims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

func (s *Server) issueToken(a *account) (string, error) {
	claims := &Claims{
		UserID: a.ID,
		Role:   string(a.Role),
		StandardClaims: jwt.StandardClaims{
			Subject:   a.Username,
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(s.opts.TokenTTL).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.opts.Secret))
}

func (s *Server) validateToken(signed string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(signed, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.opts.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// authRequired checks the bearer token and stores the caller in the context.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if header == "" || tokenString == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: Please log in again."})
			return
		}

		claims, err := s.validateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: " + err.Error()})
			return
		}

		s.mu.Lock()
		a := s.accountByID(claims.UserID)
		enabled := a != nil && a.Enabled
		s.mu.Unlock()
		if !enabled {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Account is disabled"})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", model.Role(claims.Role))
		c.Next()
	}
}

func requireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied"})
	}
}

func (s *Server) login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}

	s.mu.Lock()
	a := s.accountByName(input.Username)
	s.mu.Unlock()

	if a == nil || bcrypt.CompareHashAndPassword(a.hash, []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
		return
	}
	if !a.Enabled {
		c.JSON(http.StatusForbidden, gin.H{"message": "Account is disabled"})
		return
	}

	token, err := s.issueToken(a)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, model.AuthResult{
		Token:    token,
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
		Role:     a.Role,
	})
}

func (s *Server) register(c *gin.Context) {
	var input model.Registration
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if input.Username == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}

	role, ok := model.ParseRole(input.Role)
	if !ok {
		role = model.RoleCustomer
	}
	if role == model.RoleAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot self-register as admin"})
		return
	}

	business := ""
	if role == model.RoleSupplier {
		business = input.Username
	}
	_, err := s.AddAccount(input.Username, input.Email, input.Password, role, business)
	if errors.Is(err, ErrUsernameTaken) {
		c.JSON(http.StatusConflict, gin.H{"message": "Error: Username is already taken!"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to process password"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully!"})
}
