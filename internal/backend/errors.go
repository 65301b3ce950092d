package backend

import (
	"errors"
	"fmt"
)

// ErrNoToken : appel authentifié tenté sans credential en stock
var ErrNoToken = errors.New("aucun token de session")

// AuthError : token absent, invalide ou expiré ; on retombe toujours
// en anonyme (fail-closed), jamais de retry
type AuthError struct {
	Status int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentification refusée par le backend (status %d)", e.Status)
}

// ValidationError : entrée de formulaire invalide, affichée inline,
// jamais envoyée au backend
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// BackendError : le backend a répondu avec un statut d'erreur
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("erreur backend (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("erreur backend (status %d)", e.Status)
}

// NetworkError : la requête n'a pas abouti (transport)
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "erreur réseau: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.Is(err, ErrNoToken) || errors.As(err, &authErr)
}

func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
