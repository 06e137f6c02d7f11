package authz

import (
	"fmt"

	"github.com/blogicum-next/internal/constants"
)

// RoleSeed 内置角色
type RoleSeed struct {
	Role     string
	Inherits []string
	Policies []Policy
}

// BuiltinRoleSeeds 内置角色矩阵：审计只读，编辑管理内容，版主管理评论与用户
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: constants.RoleReadonlyAuditor,
			Policies: []Policy{
				{Object: "/admin/*", Action: "GET"},
			},
		},
		{
			Role:     constants.RoleEditor,
			Inherits: []string{constants.RoleReadonlyAuditor},
			Policies: []Policy{
				{Object: "/admin/categories", Action: "*"},
				{Object: "/admin/categories/:id", Action: "*"},
				{Object: "/admin/categories/:id/publish", Action: "PATCH"},
				{Object: "/admin/locations", Action: "*"},
				{Object: "/admin/locations/:id", Action: "*"},
				{Object: "/admin/locations/:id/publish", Action: "PATCH"},
				{Object: "/admin/posts", Action: "*"},
				{Object: "/admin/posts/:id", Action: "*"},
				{Object: "/admin/posts/:id/publish", Action: "PATCH"},
			},
		},
		{
			Role:     constants.RoleModerator,
			Inherits: []string{constants.RoleReadonlyAuditor},
			Policies: []Policy{
				{Object: "/admin/comments", Action: "*"},
				{Object: "/admin/comments/:id", Action: "*"},
				{Object: "/admin/users", Action: "*"},
				{Object: "/admin/users/:id", Action: "*"},
				{Object: "/admin/users/:id/status", Action: "PATCH"},
			},
		},
	}
}

// BootstrapBuiltinRoles 幂等写入内置角色、继承关系与策略
func (s *Service) BootstrapBuiltinRoles() error {
	if err := s.ready(); err != nil {
		return err
	}
	for _, seed := range BuiltinRoleSeeds() {
		role, err := s.ensureRole(seed.Role)
		if err != nil {
			return err
		}
		for _, parent := range seed.Inherits {
			parentRole, err := s.ensureRole(parent)
			if err != nil {
				return err
			}
			if _, err := s.enforcer.AddNamedGroupingPolicy("g", role, parentRole); err != nil {
				return fmt.Errorf("link role inheritance failed: %w", err)
			}
		}
		for _, policy := range seed.Policies {
			if err := s.GrantRolePolicy(role, policy.Object, policy.Action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
		}
	}
	return nil
}
