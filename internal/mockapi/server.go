// Package mockapi is an in-memory stand-in for the storefront's remote
// boundaries. It serves the same routes the client calls so the TUI can be
// driven locally and the client packages can be tested end to end.
package mockapi

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"storefront/internal/model"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Options configures a Server.
type Options struct {
	Secret     string        // HMAC key for issued tokens
	TokenTTL   time.Duration // lifetime of issued tokens
	BcryptCost int           // password hashing cost
	NoSeed     bool          // start without demo accounts and products
}

type account struct {
	model.AdminUser
	hash         []byte
	businessName string
}

// Server holds the mock data set and its gin engine.
type Server struct {
	mu sync.Mutex

	opts       Options
	engine     *gin.Engine
	accounts   []*account
	products   []*productRecord
	categories []model.Category
	orders     []*orderRecord
	idempotent map[string]int64
	nextID     int64
}

type productRecord struct {
	model.Product
	ownerID int64
}

type orderRecord struct {
	model.Order
	customerID int64
}

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// New builds a server seeded with demo data unless opts.NoSeed is set.
func New(opts Options) *Server {
	if opts.Secret == "" {
		opts.Secret = "storefront-dev-secret"
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = time.Hour
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}

	s := &Server{opts: opts, idempotent: make(map[string]int64), nextID: 1}
	if !opts.NoSeed {
		s.seed()
	}
	s.engine = s.routes()
	return s
}

// Handler exposes the gin engine, e.g. for httptest.NewServer.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until the listener fails.
func (s *Server) Run(addr string) error {
	slog.Info("mock API listening", "addr", addr)
	return s.engine.Run(addr)
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.POST("/api/auth/login", s.login)
	r.POST("/api/auth/register", s.register)
	r.GET("/api/products", s.listProducts)
	r.GET("/api/categories", s.listCategories)

	auth := r.Group("/api")
	auth.Use(s.authRequired())
	{
		auth.GET("/orders", s.listOrders)
		auth.POST("/orders", requireRole(model.RoleCustomer), s.placeOrder)
		auth.POST("/orders/:id/ship", requireRole(model.RoleSupplier), s.shipOrder)
		auth.GET("/products/myproducts", requireRole(model.RoleSupplier), s.myProducts)
		auth.PUT("/inventory/:id", requireRole(model.RoleSupplier, model.RoleAdmin), s.updateStock)
	}

	admin := r.Group("/api/admin")
	admin.Use(s.authRequired(), requireRole(model.RoleAdmin))
	{
		admin.GET("/users", s.listUsers)
		admin.PUT("/users/:id/toggle", s.toggleUser)
		admin.GET("/orders", s.listAllOrders)
	}

	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Debug("mock API request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

func (s *Server) id() int64 {
	id := s.nextID
	s.nextID++
	return id
}

// ErrUsernameTaken is returned when registering an existing username.
var ErrUsernameTaken = errors.New("username is already taken")

// AddAccount registers a user directly. It is used for seeding and tests.
func (s *Server) AddAccount(username, email, password string, role model.Role, businessName string) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.opts.BcryptCost)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.accountByName(username) != nil {
		return 0, ErrUsernameTaken
	}
	a := &account{
		AdminUser:    model.AdminUser{ID: s.id(), Username: username, Email: email, Role: role, Enabled: true},
		hash:         hash,
		businessName: businessName,
	}
	s.accounts = append(s.accounts, a)
	return a.ID, nil
}

// AddCategory registers a category and returns it.
func (s *Server) AddCategory(name string) model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := model.Category{ID: s.id(), Name: name}
	s.categories = append(s.categories, c)
	return c
}

// AddProduct registers a product owned by supplierID.
func (s *Server) AddProduct(supplierID int64, p model.Product) model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.id()
	if owner := s.accountByID(supplierID); owner != nil {
		p.Supplier = &model.Supplier{ID: owner.ID, BusinessName: owner.businessName}
	}
	if p.Inventory == nil {
		p.Inventory = &model.Inventory{}
	}
	s.products = append(s.products, &productRecord{Product: p, ownerID: supplierID})
	return p
}

// Stock returns the inventory level of a product.
func (s *Server) Stock(productID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p := s.productByID(productID); p != nil {
		return p.Inventory.Quantity
	}
	return 0
}

// OrderCount reports how many orders have been accepted.
func (s *Server) OrderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

func (s *Server) seed() {
	_, _ = s.AddAccount("admin", "admin@haven.test", "admin123", model.RoleAdmin, "")
	supplierID, _ := s.AddAccount("supplier", "supplier@haven.test", "supplier123", model.RoleSupplier, "Acme Supply Co.")
	_, _ = s.AddAccount("customer", "customer@haven.test", "customer123", model.RoleCustomer, "")

	tools := s.AddCategory("Tools")
	home := s.AddCategory("Home")

	s.AddProduct(supplierID, model.Product{
		Name:        "Claw Hammer",
		Description: "16 oz **steel** hammer with a fiberglass handle.",
		Price:       9.99,
		Category:    &tools,
		Inventory:   &model.Inventory{Quantity: 25},
	})
	s.AddProduct(supplierID, model.Product{
		Name:        "Cordless Drill",
		Description: "18V drill with two batteries and a charger.",
		Price:       79.5,
		Category:    &tools,
		Inventory:   &model.Inventory{Quantity: 8},
	})
	s.AddProduct(supplierID, model.Product{
		Name:        "Ceramic Mug",
		Description: "Hand-glazed 350 ml mug.",
		Price:       12.25,
		Category:    &home,
		Inventory:   &model.Inventory{Quantity: 0},
	})
}

func (s *Server) accountByID(id int64) *account {
	for _, a := range s.accounts {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (s *Server) accountByName(username string) *account {
	for _, a := range s.accounts {
		if a.Username == username {
			return a
		}
	}
	return nil
}

func (s *Server) productByID(id int64) *productRecord {
	for _, p := range s.products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *Server) orderByID(id int64) *orderRecord {
	for _, o := range s.orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}
