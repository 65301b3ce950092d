package gate

import (
	"farmlink_front_end/internal/models"
)

// State est l'état du portail d'autorisation : quelle vue rendre pour la
// session courante
type State string

const (
	StateLoading         State = "LOADING"
	StateUnauthenticated State = "UNAUTHENTICATED"
	StateAdmin           State = "ADMIN"
	StateFarmer          State = "FARMER"
	StateBuyer           State = "BUYER"
)

// FromSession projette la session résolue sur l'état du portail.
// Un rôle non reconnu retombe en UNAUTHENTICATED (redirection login) :
// un écran mort est pire qu'une reconnexion pour une valeur qui ne
// devrait jamais exister.
func FromSession(session models.Session) State {
	switch session.Status {
	case models.StatusLoading:
		return StateLoading
	case models.StatusAuthenticated:
		if session.User == nil {
			return StateUnauthenticated
		}
		role, ok := models.ParseRole(session.User.Role)
		if !ok {
			return StateUnauthenticated
		}
		switch role {
		case models.RoleAdmin:
			return StateAdmin
		case models.RoleFarmer:
			return StateFarmer
		case models.RoleBuyer:
			return StateBuyer
		}
	}
	return StateUnauthenticated
}

// DashboardPath retourne la route du tableau de bord correspondant
func DashboardPath(state State) string {
	switch state {
	case StateAdmin:
		return "/admin"
	case StateFarmer:
		return "/farmer"
	case StateBuyer:
		return "/buyer"
	default:
		return "/login"
	}
}

// LoginRedirect est la destination après un login réussi : les admins
// arrivent sur leur console, tout le monde retourne à l'accueil
func LoginRedirect(user models.User) string {
	if role, ok := models.ParseRole(user.Role); ok && role == models.RoleAdmin {
		return "/admin"
	}
	return "/"
}
