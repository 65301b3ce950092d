package admin

import (
	"net/http"

	"farmlink_front_end/internal/backend"
	"farmlink_front_end/internal/handlers"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	client *backend.Client
}

func NewUserHandler(client *backend.Client) *UserHandler {
	return &UserHandler{client: client}
}

func (h *UserHandler) Farmers(c *gin.Context) {
	users, err := h.client.Farmers(c.Request.Context())
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Buyers(c *gin.Context) {
	users, err := h.client.Buyers(c.Request.Context())
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant invalide"})
		return
	}

	if err := h.client.DeleteUser(c.Request.Context(), id); err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Utilisateur supprimé"})
}
