package handlers

import (
	"errors"
	"net/http"

	"farmlink_front_end/internal/backend"

	"github.com/gin-gonic/gin"
)

// RespondError convertit la taxonomie d'erreurs du client backend en
// réponse JSON. Les composants attrapent au point d'appel ; rien ne
// remonte à un handler global.
func RespondError(c *gin.Context, err error) {
	var valErr *backend.ValidationError
	if errors.As(err, &valErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": valErr.Message})
		return
	}

	if backend.IsAuthError(err) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session invalide ou expirée", "redirect": "/login"})
		return
	}

	var backendErr *backend.BackendError
	if errors.As(err, &backendErr) {
		status := backendErr.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		message := backendErr.Message
		if message == "" {
			message = "Le backend a refusé la requête"
		}
		c.JSON(status, gin.H{"error": message})
		return
	}

	var netErr *backend.NetworkError
	if errors.As(err, &netErr) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Backend injoignable"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
