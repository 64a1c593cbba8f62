package rbac

// Permissions over a wedding's data. The role comes from the
// wedding_members row for (user, wedding); permissions are static per role.
const (
	PermissionReadWedding   = "wedding:read"
	PermissionUpdateWedding = "wedding:update"
	PermissionManageMembers = "wedding:manage_members"

	PermissionWriteGuests  = "guest:write"
	PermissionImportGuests = "guest:import"
	PermissionWriteVendors = "vendor:write"
	PermissionWriteTasks   = "task:write"
	PermissionWriteEvents  = "event:write"
	PermissionWriteBudget  = "budget:write"
)

// Membership roles.
const (
	RoleOwner   = "owner"
	RolePlanner = "planner"
	RoleViewer  = "viewer"
)

var rolePermissions = map[string][]string{
	RoleOwner: {
		PermissionReadWedding,
		PermissionUpdateWedding,
		PermissionManageMembers,
		PermissionWriteGuests,
		PermissionImportGuests,
		PermissionWriteVendors,
		PermissionWriteTasks,
		PermissionWriteEvents,
		PermissionWriteBudget,
	},
	RolePlanner: {
		PermissionReadWedding,
		PermissionWriteGuests,
		PermissionImportGuests,
		PermissionWriteVendors,
		PermissionWriteTasks,
		PermissionWriteEvents,
		PermissionWriteBudget,
	},
	RoleViewer: {
		PermissionReadWedding,
	},
}

// ValidRole reports whether role is one of the assignable membership roles.
func ValidRole(role string) bool {
	_, ok := rolePermissions[role]
	return ok
}

// HasPermission checks whether a membership role grants a permission.
func HasPermission(role, permission string) bool {
	permissions, ok := rolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// CheckPermission returns a typed error when the role lacks the permission.
func CheckPermission(role, permission string) error {
	if !HasPermission(role, permission) {
		return &PermissionDeniedError{
			Role:       role,
			Permission: permission,
		}
	}
	return nil
}

// PermissionDeniedError indicates the membership role lacks a permission.
type PermissionDeniedError struct {
	Role       string
	Permission string
}

func (e *PermissionDeniedError) Error() string {
	return "insufficient permissions"
}
