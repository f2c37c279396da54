package service

import "github.com/lumiere-beauty/storefront-api/internal/model"

// Admin module keys and actions checked by Can.
const (
	ModuleProducts      = "products"
	ModuleServices      = "services"
	ModuleStaff         = "staff"
	ModuleClients       = "clients"
	ModuleNotifications = "notifications"

	ActionRead  = "read"
	ActionWrite = "write"
)

// Can reports whether the identity may perform action on the given admin
// module. Pure function over the role and permission map: admins may do
// anything, staff consult their permission map, plain users nothing.
func Can(user *model.User, moduleKey, action string) bool {
	if user == nil {
		return false
	}
	switch user.Role {
	case model.RoleAdmin:
		return true
	case model.RoleStaff:
		return user.Permissions[moduleKey][action]
	default:
		return false
	}
}
