package handlers

import (
	"net/http"

	"farmlink_front_end/internal/catalog"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	query *catalog.Query
}

func NewCatalogHandler(query *catalog.Query) *CatalogHandler {
	return &CatalogHandler{query: query}
}

// Products sert le catalogue public, filtré par catégorie côté backend et
// trié par prix d'offre minimum côté client. En cas d'échec, la dernière
// liste connue accompagne l'erreur pour que l'UI garde l'affichage.
func (h *CatalogHandler) Products(c *gin.Context) {
	order, ok := catalog.ParseSort(c.Query("sort"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre sort invalide (none|asc|desc)"})
		return
	}

	items, err := h.query.Run(c.Request.Context(), c.Query("category"), order)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Catalogue indisponible",
			"items": items, // dernière liste connue, éventuellement vide
			"stale": true,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}
