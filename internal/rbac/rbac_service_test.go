package rbac

import (
	"testing"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type mockRepo struct{}

func (m *mockRepo) GetUserRoles(companyID string) ([]UserRoleRow, error) {
	return []UserRoleRow{
		{UserID: "user-1", RoleID: "role-admin"},
	}, nil
}

func (m *mockRepo) GetRolePermissions(companyID string) ([]RolePermissionRow, error) {
	return []RolePermissionRow{
		{RoleID: "role-admin", Resource: "funcionario", Action: "read"},
		{RoleID: "role-admin", Resource: "decimo_terceiro", Action: "write"},
	}, nil
}

func newTestEnforcer(t *testing.T) *casbin.Enforcer {
	t.Helper()

	modelText := `[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, dom, obj, act

[role_definition]
g = _, _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub, r.dom) && r.dom == p.dom && r.obj == p.obj && r.act == p.act
`

	m, err := model.NewModelFromString(modelText)
	assert.NoError(t, err)

	e, err := casbin.NewEnforcer(m)
	assert.NoError(t, err)

	return e
}

func TestService_Enforce(t *testing.T) {
	svc := NewService(&mockRepo{}, newTestEnforcer(t), zap.NewNop())

	t.Run("role permission grants access", func(t *testing.T) {
		allowed, err := svc.Enforce(EnforceRequest{
			UserID:    "user-1",
			CompanyID: "company-1",
			Resource:  "funcionario",
			Action:    "read",
		})
		assert.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("missing permission is denied", func(t *testing.T) {
		allowed, err := svc.Enforce(EnforceRequest{
			UserID:    "user-1",
			CompanyID: "company-1",
			Resource:  "funcionario",
			Action:    "write",
		})
		assert.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("unknown user is denied", func(t *testing.T) {
		allowed, err := svc.Enforce(EnforceRequest{
			UserID:    "user-2",
			CompanyID: "company-1",
			Resource:  "funcionario",
			Action:    "read",
		})
		assert.NoError(t, err)
		assert.False(t, allowed)
	})
}
