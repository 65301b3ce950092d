package handlers

import (
	"net/http"
	"strconv"

	"farmlink_front_end/internal/cart"
	"farmlink_front_end/internal/models"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	reconciler *cart.Reconciler
}

func NewCartHandler(reconciler *cart.Reconciler) *CartHandler {
	return &CartHandler{reconciler: reconciler}
}

func cartPayload(lines []models.CartLine) gin.H {
	return gin.H{
		"items":    lines,
		"subtotal": models.Subtotal(lines),
		"count":    len(lines),
	}
}

// Get re-fetch l'instantané qui fait foi et recalcule le sous-total
func (h *CartHandler) Get(c *gin.Context) {
	lines, err := h.reconciler.Refresh(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartPayload(lines))
}

// Add accepte soit l'identité concrète (farmerProductId), soit le triplet
// affiché (productId, farmerId, bargainPrice) que l'on résout d'abord :
// c'est le parcours "Ajouter au panier" de la page catalogue
func (h *CartHandler) Add(c *gin.Context) {
	var input struct {
		FarmerProductID int64   `json:"farmerProductId"`
		ProductID       int64   `json:"productId"`
		FarmerID        int64   `json:"farmerId"`
		BargainPrice    float64 `json:"bargainPrice"`
		Quantity        int     `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	reqCtx := c.Request.Context()
	farmerProductID := input.FarmerProductID
	if farmerProductID == 0 {
		resolved, err := h.reconciler.ResolveLine(reqCtx, input.ProductID, input.FarmerID, input.BargainPrice)
		if err != nil {
			RespondError(c, err)
			return
		}
		farmerProductID = resolved
	}

	if err := h.reconciler.Add(reqCtx, farmerProductID, input.Quantity); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartPayload(h.reconciler.Lines()))
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	lineID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant de ligne invalide"})
		return
	}

	var input struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if err := h.reconciler.SetQuantity(c.Request.Context(), lineID, input.Quantity); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartPayload(h.reconciler.Lines()))
}

func (h *CartHandler) Remove(c *gin.Context) {
	lineID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant de ligne invalide"})
		return
	}

	if err := h.reconciler.Remove(c.Request.Context(), lineID); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartPayload(h.reconciler.Lines()))
}
