package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"farmlink_front_end/internal/backend"
	"farmlink_front_end/internal/gate"
	"farmlink_front_end/internal/middleware"
	"farmlink_front_end/internal/session"
	"farmlink_front_end/internal/token"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	client   *backend.Client
	tokens   *token.Store
	resolver *session.Resolver
}

func NewAuthHandler(client *backend.Client, tokens *token.Store, resolver *session.Resolver) *AuthHandler {
	return &AuthHandler{client: client, tokens: tokens, resolver: resolver}
}

// Login échange les identifiants contre un token, le persiste, puis fixe
// la session. La redirection suit la règle historique : ADMIN vers sa
// console, les autres vers l'accueil.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email et mot de passe requis"})
		return
	}

	result, err := h.client.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		var backendErr *backend.BackendError
		if errors.As(err, &backendErr) {
			switch backendErr.Status {
			case http.StatusBadRequest:
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email ou mot de passe invalide"})
				return
			case http.StatusNotFound:
				c.JSON(http.StatusNotFound, gin.H{"error": "Utilisateur introuvable"})
				return
			}
		}
		RespondError(c, err)
		return
	}

	if err := h.tokens.Set(result.Token); err != nil {
		log.Printf("❌ Impossible de persister le token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible de persister la session"})
		return
	}
	h.resolver.Login(result.User)

	c.JSON(http.StatusOK, gin.H{
		"user":     result.User,
		"redirect": gate.LoginRedirect(result.User),
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role" binding:"required,oneof=FARMER BUYER"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formulaire d'inscription invalide"})
		return
	}

	err := h.client.Register(c.Request.Context(), backend.RegisterInput{
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.TrimSpace(input.Email),
		Password: input.Password,
		Role:     input.Role,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Inscription réussie", "redirect": "/login"})
}

// Logout efface le token et la session ; toujours 200, l'opération est
// idempotente
func (h *AuthHandler) Logout(c *gin.Context) {
	h.resolver.Logout()
	c.JSON(http.StatusOK, gin.H{"redirect": "/login"})
}

// Session expose l'état du portail pour que le navigateur sache quelle
// vue rendre
func (h *AuthHandler) Session(c *gin.Context) {
	current := middleware.CurrentSession(c)
	state := gate.FromSession(current)
	c.JSON(http.StatusOK, gin.H{
		"status":    current.Status,
		"state":     state,
		"user":      current.User,
		"dashboard": gate.DashboardPath(state),
	})
}

// GoogleRedirect renvoie vers l'échange OAuth du backend : le frontend
// n'a aucun état OAuth à lui
func (h *AuthHandler) GoogleRedirect(c *gin.Context) {
	origin := strings.TrimSuffix(h.client.BaseURL(), "/api")
	c.Redirect(http.StatusFound, origin+"/oauth2/authorization/google")
}
