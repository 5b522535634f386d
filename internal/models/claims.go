package models

import "github.com/golang-jwt/jwt/v5"

// Analyst permissions
const (
	PermissionAlertsRead  = "alerts:read"
	PermissionAlertsAdmin = "alerts:admin"
)

// AnalystClaims are carried by tokens issued to fraud analysts.
type AnalystClaims struct {
	jwt.RegisteredClaims
	AnalystID   string   `json:"analyst_id"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// HasPermission checks if the claims include a specific permission
func (c *AnalystClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// GetDefaultPermissions returns default permissions based on role
func GetDefaultPermissions(role string) []string {
	switch role {
	case "lead":
		return []string{PermissionAlertsRead, PermissionAlertsAdmin}
	case "analyst":
		return []string{PermissionAlertsRead}
	default:
		return []string{}
	}
}
