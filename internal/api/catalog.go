package api

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/model"

	"golang.org/x/sync/errgroup"
)

func (c *Client) ListProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := c.do(ctx, request{op: "list products", method: http.MethodGet, path: "/api/products"}, &products)
	return products, err
}

func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := c.do(ctx, request{op: "list categories", method: http.MethodGet, path: "/api/categories"}, &categories)
	return categories, err
}

// LoadCatalog fetches products and categories concurrently. Either failure
// fails the whole load.
func (c *Client) LoadCatalog(ctx context.Context) (model.Catalog, error) {
	var cat model.Catalog
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		products, err := c.ListProducts(ctx)
		if err != nil {
			return err
		}
		cat.Products = products
		return nil
	})
	g.Go(func() error {
		categories, err := c.ListCategories(ctx)
		if err != nil {
			return err
		}
		cat.Categories = categories
		return nil
	})

	if err := g.Wait(); err != nil {
		return model.Catalog{}, err
	}
	return cat, nil
}

// MyProducts lists the products owned by the calling supplier.
func (c *Client) MyProducts(ctx context.Context, token string) ([]model.Product, error) {
	var products []model.Product
	err := c.do(ctx, request{op: "list my products", method: http.MethodGet, path: "/api/products/myproducts", token: token}, &products)
	return products, err
}

// UpdateStock sets the inventory level of a product.
func (c *Client) UpdateStock(ctx context.Context, token string, productID int64, quantity int) error {
	return c.do(ctx, request{
		op:     "update stock",
		method: http.MethodPut,
		path:   fmt.Sprintf("/api/inventory/%d", productID),
		token:  token,
		body:   model.Inventory{Quantity: quantity},
	}, nil)
}
