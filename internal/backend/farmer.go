package backend

import (
	"context"
	"net/url"
	"strconv"

	"farmlink_front_end/internal/models"
)

// MyProducts liste le stock du fermier connecté
func (c *Client) MyProducts(ctx context.Context) ([]models.FarmerProduct, error) {
	var products []models.FarmerProduct
	if err := c.do(ctx, request{method: "GET", path: "/farmer/products", auth: true}, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// AddFarmerProduct met un produit du catalogue en vente au prix du fermier.
// Paramètres en query, comme pour le panier.
func (c *Client) AddFarmerProduct(ctx context.Context, productID int64, quantity int, bargainPrice float64) error {
	query := url.Values{}
	query.Set("productId", strconv.FormatInt(productID, 10))
	query.Set("quantity", strconv.Itoa(quantity))
	query.Set("bargainPrice", strconv.FormatFloat(bargainPrice, 'f', -1, 64))
	return c.do(ctx, request{method: "POST", path: "/farmer/products", query: query, auth: true}, nil)
}

func (c *Client) UpdateStock(ctx context.Context, farmerProductID int64, quantity int) error {
	query := url.Values{}
	query.Set("quantity", strconv.Itoa(quantity))
	path := "/farmer/products/" + strconv.FormatInt(farmerProductID, 10) + "/stock"
	return c.do(ctx, request{method: "PUT", path: path, query: query, auth: true}, nil)
}

func (c *Client) UpdateBargainPrice(ctx context.Context, farmerProductID int64, bargainPrice float64) error {
	query := url.Values{}
	query.Set("bargainPrice", strconv.FormatFloat(bargainPrice, 'f', -1, 64))
	path := "/farmer/products/" + strconv.FormatInt(farmerProductID, 10) + "/bargain-price"
	return c.do(ctx, request{method: "PUT", path: path, query: query, auth: true}, nil)
}
