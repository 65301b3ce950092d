package admin

import (
	"net/http"
	"strconv"
	"strings"

	"farmlink_front_end/internal/backend"
	"farmlink_front_end/internal/cache"
	"farmlink_front_end/internal/handlers"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	client *backend.Client
}

func NewCategoryHandler(client *backend.Client) *CategoryHandler {
	return &CategoryHandler{client: client}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.client.Categories(c.Request.Context())
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nom de catégorie requis"})
		return
	}

	if err := h.client.CreateCategory(c.Request.Context(), strings.TrimSpace(input.Name)); err != nil {
		handlers.RespondError(c, err)
		return
	}
	cache.InvalidateCatalog(c.Request.Context())
	c.JSON(http.StatusCreated, gin.H{"message": "Catégorie créée"})
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant invalide"})
		return
	}

	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nom de catégorie requis"})
		return
	}

	if err := h.client.UpdateCategory(c.Request.Context(), id, strings.TrimSpace(input.Name)); err != nil {
		handlers.RespondError(c, err)
		return
	}
	cache.InvalidateCatalog(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Catégorie mise à jour"})
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant invalide"})
		return
	}

	if err := h.client.DeleteCategory(c.Request.Context(), id); err != nil {
		handlers.RespondError(c, err)
		return
	}
	cache.InvalidateCatalog(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Catégorie supprimée"})
}
