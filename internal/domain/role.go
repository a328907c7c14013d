package domain

// Role is a closed set of account roles.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// Permission names a capability granted wholesale to a role.
type Permission string

const (
	PermManageProducts   Permission = "manage-products"
	PermManageCategories Permission = "manage-categories"
	PermBrowseProducts   Permission = "browse-products"
	PermManageCart       Permission = "manage-cart"
	PermPlaceOrders      Permission = "place-orders"
	PermViewOwnOrders    Permission = "view-own-orders"
	PermViewAllOrders    Permission = "view-all-orders"
)

// rolePermissions is the static grant table. Roles and permissions are
// both small closed sets, so a table is simpler to audit than rules.
var rolePermissions = map[Role]map[Permission]bool{
	RoleAdmin: {
		PermManageProducts:   true,
		PermManageCategories: true,
		PermViewAllOrders:    true,
		PermBrowseProducts:   true,
	},
	RoleCustomer: {
		PermBrowseProducts: true,
		PermManageCart:     true,
		PermPlaceOrders:    true,
		PermViewOwnOrders:  true,
	},
}

// HasPermission reports whether role is granted perm.
func HasPermission(role Role, perm Permission) bool {
	return rolePermissions[role][perm]
}
