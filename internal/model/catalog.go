package model

// Category groups products on the home page filter bar.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Supplier is the seller shown on a product card.
type Supplier struct {
	ID           int64  `json:"id,omitempty"`
	BusinessName string `json:"businessName"`
}

// Inventory holds the stock level of a product.
type Inventory struct {
	Quantity int `json:"quantity"`
}

type Product struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Price       float64    `json:"price"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	Category    *Category  `json:"category,omitempty"`
	Supplier    *Supplier  `json:"supplier,omitempty"`
	Inventory   *Inventory `json:"inventory,omitempty"`
}

// InStock reports whether the product can be added to a cart.
func (p Product) InStock() bool {
	return p.Inventory != nil && p.Inventory.Quantity > 0
}

// CategoryName returns the category label, or "Uncategorized".
func (p Product) CategoryName() string {
	if p.Category == nil || p.Category.Name == "" {
		return "Uncategorized"
	}
	return p.Category.Name
}

// SupplierName returns the business name of the seller, if known.
func (p Product) SupplierName() string {
	if p.Supplier == nil {
		return ""
	}
	return p.Supplier.BusinessName
}

// Catalog is the home page data set.
type Catalog struct {
	Products   []Product
	Categories []Category
}

// Filter returns the products in the given category; categoryID 0 means all.
func (c Catalog) Filter(categoryID int64) []Product {
	if categoryID == 0 {
		return c.Products
	}
	var out []Product
	for _, p := range c.Products {
		if p.Category != nil && p.Category.ID == categoryID {
			out = append(out, p)
		}
	}
	return out
}
