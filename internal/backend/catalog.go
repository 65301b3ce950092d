package backend

import (
	"context"
	"net/url"

	"farmlink_front_end/internal/models"
)

// PublicProducts récupère le catalogue public, éventuellement filtré par
// catégorie côté backend. Une catégorie vide signifie tout le catalogue.
func (c *Client) PublicProducts(ctx context.Context, category string) ([]models.CatalogItem, error) {
	path := "/farmer/products/public/all"
	if category != "" {
		path = "/farmer/products/public/category/" + url.PathEscape(category)
	}
	var items []models.CatalogItem
	if err := c.do(ctx, request{method: "GET", path: path}, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AdminCatalog est la variante de lecture utilisée par la vue admin
func (c *Client) AdminCatalog(ctx context.Context, category string) ([]models.CatalogItem, error) {
	path := "/products/all"
	if category != "" {
		path = "/products/category/" + url.PathEscape(category)
	}
	var items []models.CatalogItem
	if err := c.do(ctx, request{method: "GET", path: path}, &items); err != nil {
		return nil, err
	}
	return items, nil
}
