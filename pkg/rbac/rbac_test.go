package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(RoleOwner, PermissionManageMembers))
	assert.True(t, HasPermission(RolePlanner, PermissionWriteGuests))
	assert.False(t, HasPermission(RolePlanner, PermissionManageMembers))
	assert.False(t, HasPermission(RoleViewer, PermissionWriteGuests))
	assert.True(t, HasPermission(RoleViewer, PermissionReadWedding))
	assert.False(t, HasPermission("stranger", PermissionReadWedding))
}

func TestCheckPermission(t *testing.T) {
	assert.NoError(t, CheckPermission(RoleOwner, PermissionWriteBudget))

	err := CheckPermission(RoleViewer, PermissionWriteBudget)
	assert.Error(t, err)

	var denied *PermissionDeniedError
	assert.ErrorAs(t, err, &denied)
	assert.Equal(t, RoleViewer, denied.Role)
	assert.Equal(t, PermissionWriteBudget, denied.Permission)
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleOwner))
	assert.True(t, ValidRole(RolePlanner))
	assert.True(t, ValidRole(RoleViewer))
	assert.False(t, ValidRole("admin"))
	assert.False(t, ValidRole(""))
}
