package models

import "strings"

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleFarmer Role = "FARMER"
	RoleBuyer  Role = "BUYER"
)

// ParseRole compare le rôle renvoyé par le backend sans tenir compte de la casse.
// Un rôle inconnu retourne ok = false.
func ParseRole(value string) (Role, bool) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case string(RoleAdmin):
		return RoleAdmin, true
	case string(RoleFarmer):
		return RoleFarmer, true
	case string(RoleBuyer):
		return RoleBuyer, true
	default:
		return "", false
	}
}
