// Package authz maps roles to the operations they may perform.
//
// Every access decision in the API goes through Allowed; handlers never
// compare role names themselves.
package authz

import "armory/internal/models"

// Permission is a "resource:action" capability.
type Permission string

const (
	AssetRead     Permission = "asset:read"
	AssetPurchase Permission = "asset:purchase"
	AssetUpdate   Permission = "asset:update"
	AssetTransfer Permission = "asset:transfer"
	AssetAssign   Permission = "asset:assign"
	AssetReturn   Permission = "asset:return"
	AssetExpend   Permission = "asset:expend"

	BaseRead   Permission = "base:read"
	BaseCreate Permission = "base:create"
	BaseUpdate Permission = "base:update"

	UserRead   Permission = "user:read"
	UserCreate Permission = "user:create"

	TransactionRead Permission = "transaction:read"
	DashboardRead   Permission = "dashboard:read"
	SnapshotRead    Permission = "snapshot:read"
)

type permissionSet map[Permission]struct{}

func setOf(perms ...Permission) permissionSet {
	s := make(permissionSet, len(perms))
	for _, p := range perms {
		s[p] = struct{}{}
	}
	return s
}

// Shared by every authenticated role.
var readOnly = []Permission{
	AssetRead, BaseRead, TransactionRead, DashboardRead, SnapshotRead,
}

var table = map[models.Role]permissionSet{
	models.RoleAdmin: setOf(append([]Permission{
		AssetPurchase, AssetUpdate, AssetTransfer, AssetAssign, AssetReturn, AssetExpend,
		BaseCreate, BaseUpdate,
		UserRead, UserCreate,
	}, readOnly...)...),
	models.RoleCommander: setOf(append([]Permission{
		AssetPurchase, AssetUpdate, AssetTransfer, AssetAssign, AssetReturn, AssetExpend,
	}, readOnly...)...),
	models.RoleLogistics: setOf(append([]Permission{
		AssetTransfer, AssetAssign, AssetReturn,
	}, readOnly...)...),
}

// Allowed reports whether role holds perm. Unknown roles hold nothing.
func Allowed(role models.Role, perm Permission) bool {
	perms, ok := table[role]
	if !ok {
		return false
	}
	_, ok = perms[perm]
	return ok
}

// PermissionsFor returns the permissions of role, for the profile endpoint.
func PermissionsFor(role models.Role) []Permission {
	var out []Permission
	for _, p := range All() {
		if Allowed(role, p) {
			out = append(out, p)
		}
	}
	return out
}

// All returns every known permission in a stable order.
func All() []Permission {
	return []Permission{
		AssetRead, AssetPurchase, AssetUpdate, AssetTransfer, AssetAssign, AssetReturn, AssetExpend,
		BaseRead, BaseCreate, BaseUpdate,
		UserRead, UserCreate,
		TransactionRead, DashboardRead, SnapshotRead,
	}
}
