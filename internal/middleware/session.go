package middleware

import (
	"net/http"

	"farmlink_front_end/internal/gate"
	"farmlink_front_end/internal/models"
	"farmlink_front_end/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	sessionKey = "session"
	gateKey    = "gate_state"
)

// WithSession projette la session courante et l'état du portail dans le
// contexte gin. Les handlers en aval lisent, jamais n'écrivent.
func WithSession(resolver *session.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := resolver.Current()
		c.Set(sessionKey, current)
		c.Set(gateKey, gate.FromSession(current))
		c.Next()
	}
}

// CurrentSession relit la session posée par WithSession
func CurrentSession(c *gin.Context) models.Session {
	if value, exists := c.Get(sessionKey); exists {
		if s, ok := value.(models.Session); ok {
			return s
		}
	}
	return models.Session{Status: models.StatusLoading}
}

// GateState relit l'état du portail posé par WithSession
func GateState(c *gin.Context) gate.State {
	if value, exists := c.Get(gateKey); exists {
		if s, ok := value.(gate.State); ok {
			return s
		}
	}
	return gate.StateLoading
}

// RequireAuth bloque les vues protégées : pendant la résolution on
// répond "réessayez" plutôt qu'un faux 401 ; sans session on redirige
// vers le login.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch GateState(c) {
		case gate.StateLoading:
			c.Header("Retry-After", "1")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Session en cours de résolution"})
			c.Abort()
		case gate.StateUnauthenticated:
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié", "redirect": "/login"})
			c.Abort()
		default:
			c.Next()
		}
	}
}

// RequireRole vérifie que la session porte le rôle attendu. Se chaîne
// après RequireAuth, qui a déjà écarté la résolution en cours et l'anonyme.
func RequireRole(role models.Role) gin.HandlerFunc {
	expected := map[models.Role]gate.State{
		models.RoleAdmin:  gate.StateAdmin,
		models.RoleFarmer: gate.StateFarmer,
		models.RoleBuyer:  gate.StateBuyer,
	}[role]

	return func(c *gin.Context) {
		if GateState(c) != expected {
			c.JSON(http.StatusForbidden, gin.H{"error": "Accès réservé au rôle " + string(role)})
			c.Abort()
			return
		}
		c.Next()
	}
}
