package backend

import (
	"context"
	"strconv"

	"farmlink_front_end/internal/models"
)

// --- Catégories (admin) ---

func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, request{method: "GET", path: "/admin/categories", auth: true}, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, name string) error {
	return c.do(ctx, request{method: "POST", path: "/admin/categories", body: map[string]string{"name": name}, auth: true}, nil)
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, name string) error {
	path := "/admin/categories/" + strconv.FormatInt(id, 10)
	return c.do(ctx, request{method: "PUT", path: path, body: map[string]string{"name": name}, auth: true}, nil)
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	path := "/admin/categories/" + strconv.FormatInt(id, 10)
	return c.do(ctx, request{method: "DELETE", path: path, auth: true}, nil)
}

// --- Produits (admin) ---

func (c *Client) AdminProduct(ctx context.Context, id int64) (*models.AdminProduct, error) {
	var product models.AdminProduct
	path := "/admin/products/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, request{method: "GET", path: path, auth: true}, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, product models.AdminProduct) error {
	return c.do(ctx, request{method: "POST", path: "/admin/products/add", body: product, auth: true}, nil)
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, product models.AdminProduct) error {
	path := "/admin/products/" + strconv.FormatInt(id, 10)
	return c.do(ctx, request{method: "PUT", path: path, body: product, auth: true}, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	path := "/admin/products/" + strconv.FormatInt(id, 10)
	return c.do(ctx, request{method: "DELETE", path: path, auth: true}, nil)
}

// --- Utilisateurs (admin) ---

func (c *Client) Farmers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, request{method: "GET", path: "/admin/users/farmers", auth: true}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) Buyers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, request{method: "GET", path: "/admin/users/buyers", auth: true}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, request{method: "DELETE", path: "/admin/users/" + id, auth: true}, nil)
}
