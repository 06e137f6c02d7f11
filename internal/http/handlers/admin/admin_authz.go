package admin

import (
	"errors"
	"net/url"

	"github.com/blogicum-next/internal/authz"
	"github.com/blogicum-next/internal/http/response"
	"github.com/blogicum-next/internal/logger"
	"github.com/blogicum-next/internal/service"

	"github.com/gin-gonic/gin"
)

type authzPolicyPayload struct {
	Role   string `json:"role" binding:"required"`
	Object string `json:"object" binding:"required"`
	Action string `json:"action" binding:"required"`
}

type authzSetAdminRolesPayload struct {
	Roles []string `json:"roles"`
}

type authzCreateAdminPayload struct {
	Username string   `json:"username" binding:"required,max=150"`
	Password string   `json:"password" binding:"required"`
	Roles    []string `json:"roles"`
}

var roleInvalidRule = mappedAdminError{target: authz.ErrRoleInvalid, code: response.CodeBadRequest, key: "error.role_invalid"}

// GetAuthzMe 获取当前管理员权限快照
func (h *Handler) GetAuthzMe(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}

	roles, err := h.AuthzService.GetAdminRoles(adminID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	policies, err := h.AuthzService.GetAdminPolicies(adminID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}

	response.Success(c, gin.H{
		"admin_id": adminID,
		"username": currentUsername(c),
		"is_super": c.GetBool("admin_is_super"),
		"roles":    roles,
		"policies": policies,
	})
}

// ListAuthzRoles 获取角色列表
func (h *Handler) ListAuthzRoles(c *gin.Context) {
	roles, err := h.AuthzService.ListRoles()
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	response.Success(c, roles)
}

// GetAuthzRolePolicies 获取角色策略
func (h *Handler) GetAuthzRolePolicies(c *gin.Context) {
	role, err := url.PathUnescape(c.Param("role"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.role_invalid", nil)
		return
	}
	policies, err := h.AuthzService.GetRolePolicies(role)
	if err != nil {
		h.respondServiceError(c, err, "error.fetch_failed", roleInvalidRule)
		return
	}
	response.Success(c, policies)
}

// GrantAuthzPolicy 为角色授权
func (h *Handler) GrantAuthzPolicy(c *gin.Context) {
	var req authzPolicyPayload
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.AuthzService.GrantRolePolicy(req.Role, req.Object, req.Action); err != nil {
		h.respondServiceError(c, err, "error.authz_failed", roleInvalidRule)
		return
	}
	logger.Infow("admin_authz_policy_granted",
		"operator_admin_id", currentAdminID(c),
		"role", req.Role,
		"object", authz.NormalizeObject(req.Object),
		"action", authz.NormalizeAction(req.Action),
	)
	response.Success(c, gin.H{"granted": true})
}

// ListAuthzAdmins 获取管理员列表
func (h *Handler) ListAuthzAdmins(c *gin.Context) {
	admins, err := h.AuthService.ListAdmins()
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}

	items := make([]gin.H, 0, len(admins))
	for _, admin := range admins {
		roles, roleErr := h.AuthzService.GetAdminRoles(admin.ID)
		if roleErr != nil {
			respondError(c, response.CodeInternal, "error.fetch_failed", roleErr)
			return
		}
		items = append(items, gin.H{
			"id":            admin.ID,
			"username":      admin.Username,
			"is_super":      admin.IsSuper,
			"last_login_at": admin.LastLoginAt,
			"created_at":    admin.CreatedAt,
			"roles":         roles,
		})
	}

	response.Success(c, items)
}

// CreateAuthzAdmin 创建后台账号并分配角色
func (h *Handler) CreateAuthzAdmin(c *gin.Context) {
	var req authzCreateAdminPayload
	if !h.bindJSON(c, &req) {
		return
	}

	admin, err := h.AuthService.CreateAdmin(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrWeakPassword) {
			h.respondWeakPassword(c, "password", err)
			return
		}
		h.respondServiceError(c, err, "error.save_failed",
			mappedAdminError{target: service.ErrAdminExists, code: response.CodeBadRequest, key: "error.admin_exists"},
		)
		return
	}
	if len(req.Roles) > 0 {
		if err := h.AuthzService.SetAdminRoles(admin.ID, req.Roles); err != nil {
			h.respondServiceError(c, err, "error.authz_failed", roleInvalidRule)
			return
		}
	}
	logger.Infow("admin_authz_admin_created",
		"operator_admin_id", currentAdminID(c),
		"admin_id", admin.ID,
		"roles", req.Roles,
	)
	response.Success(c, gin.H{"id": admin.ID, "username": admin.Username})
}

// GetAuthzAdminRoles 获取管理员角色
func (h *Handler) GetAuthzAdminRoles(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if _, err := h.AuthService.GetAdmin(id); err != nil {
		h.respondServiceError(c, err, "error.fetch_failed", notFoundRule("error.admin_not_found"))
		return
	}
	roles, err := h.AuthzService.GetAdminRoles(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"admin_id": id, "roles": roles})
}

// SetAuthzAdminRoles 覆盖管理员角色
func (h *Handler) SetAuthzAdminRoles(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req authzSetAdminRolesPayload
	if !h.bindJSON(c, &req) {
		return
	}
	admin, err := h.AuthService.GetAdmin(id)
	if err != nil {
		h.respondServiceError(c, err, "error.fetch_failed", notFoundRule("error.admin_not_found"))
		return
	}
	if admin.IsSuper {
		respondError(c, response.CodeBadRequest, "error.permission_denied", nil)
		return
	}
	if err := h.AuthzService.SetAdminRoles(id, req.Roles); err != nil {
		h.respondServiceError(c, err, "error.authz_failed", roleInvalidRule)
		return
	}
	roles, err := h.AuthzService.GetAdminRoles(id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fetch_failed", err)
		return
	}
	logger.Infow("admin_authz_roles_updated",
		"operator_admin_id", currentAdminID(c),
		"admin_id", id,
		"roles", roles,
	)
	response.Success(c, gin.H{"admin_id": id, "roles": roles})
}
