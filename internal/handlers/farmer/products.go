package farmer

import (
	"net/http"
	"strconv"

	"farmlink_front_end/internal/backend"
	"farmlink_front_end/internal/handlers"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	client *backend.Client
}

func NewProductHandler(client *backend.Client) *ProductHandler {
	return &ProductHandler{client: client}
}

// List retourne le stock du fermier connecté
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.client.MyProducts(c.Request.Context())
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// Add met un produit du catalogue en vente au prix du fermier
func (h *ProductHandler) Add(c *gin.Context) {
	var input struct {
		ProductID    int64   `json:"productId" binding:"required"`
		Quantity     int     `json:"quantity" binding:"required,gt=0"`
		BargainPrice float64 `json:"bargainPrice" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité et prix doivent être positifs"})
		return
	}

	err := h.client.AddFarmerProduct(c.Request.Context(), input.ProductID, input.Quantity, input.BargainPrice)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Produit mis en vente"})
}

func (h *ProductHandler) UpdateStock(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant invalide"})
		return
	}

	var input struct {
		Quantity int `json:"quantity" binding:"required,gte=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	if err := h.client.UpdateStock(c.Request.Context(), id, input.Quantity); err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock mis à jour"})
}

func (h *ProductHandler) UpdateBargainPrice(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant invalide"})
		return
	}

	var input struct {
		BargainPrice float64 `json:"bargainPrice" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prix invalide"})
		return
	}

	if err := h.client.UpdateBargainPrice(c.Request.Context(), id, input.BargainPrice); err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Prix mis à jour"})
}
