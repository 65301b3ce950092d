package admin

import (
	"net/http"
	"strconv"

	"farmlink_front_end/internal/backend"
	"farmlink_front_end/internal/cache"
	"farmlink_front_end/internal/catalog"
	"farmlink_front_end/internal/handlers"
	"farmlink_front_end/internal/models"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	client *backend.Client
}

func NewProductHandler(client *backend.Client) *ProductHandler {
	return &ProductHandler{client: client}
}

// List sert la variante admin du catalogue (lecture directe, jamais via
// le cache public)
func (h *ProductHandler) List(c *gin.Context) {
	category := catalog.NormalizeCategory(c.Query("category"))
	items, err := h.client.AdminCatalog(c.Request.Context(), category)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant invalide"})
		return
	}

	product, err := h.client.AdminProduct(c.Request.Context(), id)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var input struct {
		ProductName string  `json:"productName" binding:"required"`
		Description string  `json:"description"`
		Category    string  `json:"category" binding:"required"`
		BasePrice   float64 `json:"basePrice" binding:"required,gt=0"`
		ImageURL    string  `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formulaire produit invalide"})
		return
	}

	err := h.client.CreateProduct(c.Request.Context(), models.AdminProduct{
		ProductName: input.ProductName,
		Description: input.Description,
		Category:    input.Category,
		BasePrice:   input.BasePrice,
		ImageURL:    input.ImageURL,
	})
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	cache.InvalidateCatalog(c.Request.Context())
	c.JSON(http.StatusCreated, gin.H{"message": "Produit créé"})
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant invalide"})
		return
	}

	var input struct {
		ProductName string  `json:"productName" binding:"required"`
		Description string  `json:"description"`
		BasePrice   float64 `json:"basePrice" binding:"required,gt=0"`
		ImageURL    string  `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formulaire produit invalide"})
		return
	}

	err = h.client.UpdateProduct(c.Request.Context(), id, models.AdminProduct{
		ProductName: input.ProductName,
		Description: input.Description,
		BasePrice:   input.BasePrice,
		ImageURL:    input.ImageURL,
	})
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	cache.InvalidateCatalog(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Produit mis à jour"})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant invalide"})
		return
	}

	if err := h.client.DeleteProduct(c.Request.Context(), id); err != nil {
		handlers.RespondError(c, err)
		return
	}
	cache.InvalidateCatalog(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé"})
}
