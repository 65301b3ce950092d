package backend

import (
	"context"
	"strings"

	"farmlink_front_end/internal/models"
)

type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login échange les identifiants contre un token. L'appelant est
// responsable de stocker le token puis d'avertir le resolver.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	payload := map[string]string{
		"email":    strings.TrimSpace(email),
		"password": password,
	}
	var result LoginResult
	err := c.do(ctx, request{method: "POST", path: "/auth/login", body: payload}, &result)
	if err != nil {
		return nil, err
	}
	if result.Token == "" || result.User.Email == "" {
		return nil, &BackendError{Status: 200, Message: "réponse de login incomplète"}
	}
	return &result, nil
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (c *Client) Register(ctx context.Context, input RegisterInput) error {
	return c.do(ctx, request{method: "POST", path: "/auth/register", body: input}, nil)
}

// Me valide le token stocké et retourne l'identité confirmée par le backend
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	err := c.do(ctx, request{method: "GET", path: "/auth/me", auth: true}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
