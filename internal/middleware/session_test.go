package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"farmlink_front_end/internal/gate"
	"farmlink_front_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// sessionEngine monte les gardes sur un handler témoin, avec une session
// figée à la place du resolver
func sessionEngine(current models.Session, guards ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		c.Set(sessionKey, current)
		c.Set(gateKey, gate.FromSession(current))
		c.Next()
	})
	handlers := append(guards, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	engine.GET("/protected", handlers...)
	return engine
}

func get(engine *gin.Engine) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/protected", nil))
	return recorder
}

func authenticated(role string) models.Session {
	return models.Session{
		Token:  "tok",
		User:   &models.User{ID: "u1", Email: "a@x.com", Role: role},
		Status: models.StatusAuthenticated,
	}
}

func TestRequireAuthDuringResolutionAsksToRetry(t *testing.T) {
	engine := sessionEngine(models.Session{Status: models.StatusLoading}, RequireAuth())

	recorder := get(engine)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Equal(t, "1", recorder.Header().Get("Retry-After"))
}

func TestRequireAuthAnonymousRedirectsToLogin(t *testing.T) {
	engine := sessionEngine(models.Session{Status: models.StatusAnonymous}, RequireAuth())

	recorder := get(engine)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"redirect":"/login"`)
}

func TestRequireAuthPassesAnyAuthenticatedRole(t *testing.T) {
	for _, role := range []string{"ADMIN", "FARMER", "BUYER"} {
		engine := sessionEngine(authenticated(role), RequireAuth())
		assert.Equal(t, http.StatusOK, get(engine).Code, role)
	}
}

// La matrice chaîne les deux gardes comme le fait routes.go :
// RequireAuth écarte la résolution en cours et l'anonyme, RequireRole ne
// laisse passer que le rôle attendu
func TestRequireRoleMatrix(t *testing.T) {
	tests := []struct {
		name     string
		session  models.Session
		required models.Role
		want     int
	}{
		{"admin sur route admin", authenticated("ADMIN"), models.RoleAdmin, http.StatusOK},
		{"buyer sur route admin", authenticated("BUYER"), models.RoleAdmin, http.StatusForbidden},
		{"farmer sur route buyer", authenticated("FARMER"), models.RoleBuyer, http.StatusForbidden},
		{"buyer sur route buyer", authenticated("BUYER"), models.RoleBuyer, http.StatusOK},
		{"anonyme sur route buyer", models.Session{Status: models.StatusAnonymous}, models.RoleBuyer, http.StatusUnauthorized},
		{"résolution en cours", models.Session{Status: models.StatusLoading}, models.RoleBuyer, http.StatusServiceUnavailable},
		{"rôle inconnu retombe en anonyme", authenticated("SUPERVISOR"), models.RoleBuyer, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := sessionEngine(tt.session, RequireAuth(), RequireRole(tt.required))
			assert.Equal(t, tt.want, get(engine).Code)
		})
	}
}

func TestCurrentSessionDefaultsToLoading(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, models.StatusLoading, CurrentSession(c).Status)
}
