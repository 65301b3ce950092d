package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"farmlink_front_end/internal/backend"
	"farmlink_front_end/internal/models"
	"farmlink_front_end/internal/token"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("secret_test")

// mintToken fabrique un token HS256 comme le ferait le backend
func mintToken(t *testing.T, user models.User) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	return signed
}

// fakeBackend expose /auth/me et valide le Bearer token JWT
func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/me" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		parsed, err := jwt.Parse(raw, func(tok *jwt.Token) (interface{}, error) {
			return testSecret, nil
		})
		if err != nil || !parsed.Valid {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Token invalide"})
			return
		}
		claims := parsed.Claims.(jwt.MapClaims)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":    claims["user_id"],
			"email": claims["email"],
			"role":  claims["role"],
		})
	}))
}

func newTestResolver(t *testing.T, baseURL string) (*Resolver, *token.Store) {
	t.Helper()
	tokens := token.NewStore(filepath.Join(t.TempDir(), "token"))
	client := backend.New(baseURL, tokens)
	return NewResolver(client, tokens), tokens
}

func TestResolveWithoutTokenIsAnonymous(t *testing.T) {
	server := fakeBackend(t)
	defer server.Close()

	resolver, _ := newTestResolver(t, server.URL)
	assert.Equal(t, models.StatusLoading, resolver.Current().Status, "état initial")

	resolved := resolver.Resolve(context.Background())
	assert.Equal(t, models.StatusAnonymous, resolved.Status)
	assert.Nil(t, resolved.User)
}

func TestResolveWithValidTokenIsAuthenticated(t *testing.T) {
	server := fakeBackend(t)
	defer server.Close()

	user := models.User{ID: "u1", Email: "a@x.com", Role: "ADMIN"}
	resolver, tokens := newTestResolver(t, server.URL)
	require.NoError(t, tokens.Set(mintToken(t, user)))

	resolved := resolver.Resolve(context.Background())
	require.Equal(t, models.StatusAuthenticated, resolved.Status)
	require.NotNil(t, resolved.User)
	assert.Equal(t, "a@x.com", resolved.User.Email)
	assert.Equal(t, "ADMIN", resolved.User.Role)
	assert.True(t, resolved.IsAuthenticated())
}

// Tout rejet du token finit en anonyme avec le token effacé, quelle que
// soit la raison du rejet
func TestResolveRejectionAlwaysFailsClosed(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"400", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadRequest) }},
		{"401", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusUnauthorized) }},
		{"404", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNotFound) }},
		{"500", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			resolver, tokens := newTestResolver(t, server.URL)
			require.NoError(t, tokens.Set("token-perime"))

			resolved := resolver.Resolve(context.Background())
			assert.Equal(t, models.StatusAnonymous, resolved.Status)
			assert.Equal(t, "", tokens.Get(), "le token doit être effacé")
		})
	}

	t.Run("erreur réseau", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		resolver, tokens := newTestResolver(t, server.URL)
		require.NoError(t, tokens.Set("token-quelconque"))

		resolved := resolver.Resolve(context.Background())
		assert.Equal(t, models.StatusAnonymous, resolved.Status)
		assert.Equal(t, "", tokens.Get())
	})
}

func TestLoginAndLogout(t *testing.T) {
	server := fakeBackend(t)
	defer server.Close()

	user := models.User{ID: "u2", Email: "b@x.com", Role: "BUYER"}
	resolver, tokens := newTestResolver(t, server.URL)
	require.NoError(t, tokens.Set(mintToken(t, user)))

	session := resolver.Login(user)
	assert.Equal(t, models.StatusAuthenticated, session.Status)
	assert.True(t, session.IsAuthenticated())

	session = resolver.Logout()
	assert.Equal(t, models.StatusAnonymous, session.Status)
	assert.Equal(t, "", tokens.Get())

	// idempotent
	session = resolver.Logout()
	assert.Equal(t, models.StatusAnonymous, session.Status)
}

// Un login qui aboutit pendant qu'un Resolve est en vol ne doit pas être
// écrasé par le résultat périmé du Resolve
func TestLoginWinsOverStaleResolve(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	resolver, tokens := newTestResolver(t, server.URL)
	require.NoError(t, tokens.Set("vieux-token"))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		resolver.Resolve(context.Background())
	}()

	// laisser le resolve partir, puis se loguer pendant qu'il attend
	time.Sleep(50 * time.Millisecond)
	user := models.User{ID: "u3", Email: "c@x.com", Role: "FARMER"}
	require.NoError(t, tokens.Set(mintToken(t, user)))
	resolver.Login(user)

	close(release)
	wg.Wait()

	current := resolver.Current()
	assert.Equal(t, models.StatusAuthenticated, current.Status, "le login doit gagner sur le resolve périmé")
	require.NotNil(t, current.User)
	assert.Equal(t, "c@x.com", current.User.Email)
	assert.NotEqual(t, "", tokens.Get(), "le token du login ne doit pas être effacé")
}

func TestSubscribeNotifiesTransitions(t *testing.T) {
	server := fakeBackend(t)
	defer server.Close()

	resolver, tokens := newTestResolver(t, server.URL)

	var mu sync.Mutex
	var seen []models.SessionStatus
	unsubscribe := resolver.Subscribe(func(s models.Session) {
		mu.Lock()
		seen = append(seen, s.Status)
		mu.Unlock()
	})

	user := models.User{ID: "u4", Email: "d@x.com", Role: "BUYER"}
	require.NoError(t, tokens.Set(mintToken(t, user)))
	resolver.Login(user)
	resolver.Logout()

	mu.Lock()
	assert.Equal(t, []models.SessionStatus{models.StatusAuthenticated, models.StatusAnonymous}, seen)
	mu.Unlock()

	unsubscribe()
	resolver.Login(user)

	mu.Lock()
	assert.Len(t, seen, 2, "plus de notification après désabonnement")
	mu.Unlock()
}
