package models

// CatalogItem est la projection publique d'un produit, avec les offres
// des fermiers (prix négocié par fermier). Lecture seule côté frontend.
type CatalogItem struct {
	ProductID   int64         `json:"productId"`
	ProductName string        `json:"productName"`
	Description string        `json:"description,omitempty"`
	Category    string        `json:"category"`
	BasePrice   float64       `json:"basePrice"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	Farmers     []FarmerOffer `json:"farmers"`
}

// FarmerOffer est un couple (fermier, prix négocié) pour un produit donné
type FarmerOffer struct {
	FarmerID     int64   `json:"farmerId"`
	Name         string  `json:"name"`
	BargainPrice float64 `json:"bargainPrice"`
}

// MinOfferPrice retourne le prix négocié minimum parmi les offres.
// Sans offre : ok = false (l'appelant décide de l'ordre total).
func (c CatalogItem) MinOfferPrice() (float64, bool) {
	if len(c.Farmers) == 0 {
		return 0, false
	}
	min := c.Farmers[0].BargainPrice
	for _, f := range c.Farmers[1:] {
		if f.BargainPrice < min {
			min = f.BargainPrice
		}
	}
	return min, true
}

// AdminProduct est la variante CRUD côté admin (sans les offres)
type AdminProduct struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	BasePrice   float64 `json:"basePrice"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// FarmerProduct est une ligne du stock d'un fermier : un produit du
// catalogue avec sa quantité et son prix négocié
type FarmerProduct struct {
	ID           int64        `json:"id"`
	Product      AdminProduct `json:"product"`
	Quantity     int          `json:"quantity"`
	BargainPrice float64      `json:"bargainPrice"`
}

// FarmerProductRef résout (produit, fermier, prix) vers l'identité concrète
// ajoutable au panier, renvoyé par GET /cart/farmer-products/details
type FarmerProductRef struct {
	FarmerProductID int64   `json:"farmerProductId"`
	ProductID       int64   `json:"productId"`
	FarmerID        int64   `json:"farmerId"`
	BargainPrice    float64 `json:"bargainPrice"`
}
