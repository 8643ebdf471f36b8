package auth

import "strings"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleProducts   Role = "products"
	RoleWarehouses Role = "warehouses"
	RoleGuest      Role = "guest"
)

// Resource is a record type guarded by write permissions.
type Resource string

const (
	ResourceWarehouse Resource = "warehouse"
	ResourceProduct   Resource = "product"
)

var roleAliases = map[string]Role{
	"admin":      RoleAdmin,
	"products":   RoleProducts,
	"productos":  RoleProducts,
	"warehouses": RoleWarehouses,
	"almacenes":  RoleWarehouses,
	"guest":      RoleGuest,
}

// ParseRole accepts the English role names and the legacy Spanish labels,
// case-insensitively.
func ParseRole(s string) (Role, bool) {
	r, ok := roleAliases[strings.ToLower(strings.TrimSpace(s))]
	return r, ok
}

// CanWrite reports whether role may create, modify or delete rows of resource.
// Unknown roles are read-only.
func CanWrite(role string, resource Resource) bool {
	r, ok := ParseRole(role)
	if !ok {
		return false
	}
	switch r {
	case RoleAdmin:
		return true
	case RoleProducts:
		return resource == ResourceProduct
	case RoleWarehouses:
		return resource == ResourceWarehouse
	default:
		return false
	}
}
