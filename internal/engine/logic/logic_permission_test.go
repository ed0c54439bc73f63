package logic

import (
	"testing"

	"github.com/go-quizhub/quizhub/internal/engine/model"
	"github.com/go-quizhub/quizhub/pkg/errs"
	"github.com/stretchr/testify/assert"
)

func TestRolePrivilegeOrder(t *testing.T) {
	// 存储编码与特权高低无关，owner=1 仍然是最高特权
	assert.True(t, model.RoleOwner.AtLeast(model.RoleAdmin))
	assert.True(t, model.RoleAdmin.AtLeast(model.RoleMember))
	assert.True(t, model.RoleMember.AtLeast(model.RoleUnemployed))
	assert.False(t, model.RoleMember.AtLeast(model.RoleAdmin))
	assert.False(t, model.RoleAdmin.AtLeast(model.RoleOwner))
	assert.False(t, model.RoleUnemployed.IsMemberOrHigher())
}

func TestRoleIn(t *testing.T) {
	memberships := newFakeMembershipRepo()
	memberships.put("owner", "c1", model.RoleOwner)
	memberships.put("admin", "c1", model.RoleAdmin)
	memberships.put("member", "c1", model.RoleMember)
	memberships.put("other", "c2", model.RoleMember)
	companies := newFakeCompanyRepo(memberships)

	permission := NewPermissionLogic(memberships, companies)

	tests := []struct {
		name      string
		userId    string
		companyId string
		want      model.Role
	}{
		{"owner in own company", "owner", "c1", model.RoleOwner},
		{"admin in own company", "admin", "c1", model.RoleAdmin},
		{"member in own company", "member", "c1", model.RoleMember},
		{"member of another company", "other", "c1", model.RoleUnemployed},
		{"unknown user", "ghost", "c1", model.RoleUnemployed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := permission.RoleIn(tt.userId, tt.companyId)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, role)
		})
	}
}

func TestRequireRole(t *testing.T) {
	memberships := newFakeMembershipRepo()
	memberships.put("owner", "c1", model.RoleOwner)
	memberships.put("member", "c1", model.RoleMember)
	companies := newFakeCompanyRepo(memberships)

	permission := NewPermissionLogic(memberships, companies)

	assert.NoError(t, permission.RequireOwner("owner", "c1"))
	assert.NoError(t, permission.RequireMember("member", "c1"))

	err := permission.RequireOwner("member", "c1")
	assert.Error(t, err)
	assert.True(t, errs.IsUnauthorized(err))

	err = permission.RequireMember("ghost", "c1")
	assert.Error(t, err)
	assert.True(t, errs.IsUnauthorized(err))

	assert.True(t, permission.HasPermission("member", "c1"))
	assert.False(t, permission.HasPermission("ghost", "c1"))

	isOwner, err := permission.IsOwner("owner", "c1")
	assert.NoError(t, err)
	assert.True(t, isOwner)
}
