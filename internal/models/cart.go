package models

// CartLine est une ligne du panier telle que renvoyée par le backend.
// La copie qui fait foi vit côté backend ; le client n'en garde qu'un
// instantané re-fetché après chaque mutation.
type CartLine struct {
	ID            int64            `json:"id"`
	Quantity      int              `json:"quantity"`
	FarmerProduct CartLineIdentity `json:"farmerProduct"`
}

// CartLineIdentity relie la ligne au produit et au fermier concernés
type CartLineIdentity struct {
	FarmerProductID int64        `json:"farmerProductId"`
	BargainPrice    float64      `json:"bargainPrice"`
	Product         AdminProduct `json:"product"`
	Farmer          CartFarmer   `json:"farmer"`
}

type CartFarmer struct {
	FarmerID int64  `json:"farmerId"`
	Name     string `json:"name"`
}

// Subtotal calcule Σ(prix négocié × quantité) sur l'instantané courant.
// Jamais mis en cache entre deux mutations.
func Subtotal(lines []CartLine) float64 {
	total := 0.0
	for _, line := range lines {
		total += line.FarmerProduct.BargainPrice * float64(line.Quantity)
	}
	return total
}
