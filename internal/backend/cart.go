package backend

import (
	"context"
	"net/url"
	"strconv"

	"farmlink_front_end/internal/models"
)

// FetchCart retourne l'instantané du panier qui fait foi
func (c *Client) FetchCart(ctx context.Context) ([]models.CartLine, error) {
	var lines []models.CartLine
	if err := c.do(ctx, request{method: "GET", path: "/cart", auth: true}, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// AddToCart crée une ligne. Le backend attend les paramètres en query,
// pas en corps JSON.
func (c *Client) AddToCart(ctx context.Context, farmerProductID int64, quantity int) error {
	query := url.Values{}
	query.Set("farmerProductId", strconv.FormatInt(farmerProductID, 10))
	query.Set("quantity", strconv.Itoa(quantity))
	return c.do(ctx, request{method: "POST", path: "/cart/add", query: query, auth: true}, nil)
}

func (c *Client) UpdateCartQuantity(ctx context.Context, lineID int64, quantity int) error {
	query := url.Values{}
	query.Set("quantity", strconv.Itoa(quantity))
	path := "/cart/update/" + strconv.FormatInt(lineID, 10)
	return c.do(ctx, request{method: "PUT", path: path, query: query, auth: true}, nil)
}

func (c *Client) RemoveCartLine(ctx context.Context, lineID int64) error {
	path := "/cart/remove/" + strconv.FormatInt(lineID, 10)
	return c.do(ctx, request{method: "DELETE", path: path, auth: true}, nil)
}

// FarmerProductRefs résout les couples (produit, fermier, prix) vers les
// identités concrètes ajoutables au panier
func (c *Client) FarmerProductRefs(ctx context.Context) ([]models.FarmerProductRef, error) {
	var refs []models.FarmerProductRef
	if err := c.do(ctx, request{method: "GET", path: "/cart/farmer-products/details", auth: true}, &refs); err != nil {
		return nil, err
	}
	return refs, nil
}
