package models

import "time"

// 用户与角色状态
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusLocked   = "locked"
)

// 角色数据范围
const (
	DataScopeAll        = "all"
	DataScopeDepartment = "department"
	DataScopeSelf       = "self"
)

// MenuNode 菜单树节点，Children 为空时序列化为缺省（与前端约定保持一致）
type MenuNode struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Path        string      `json:"path"`
	Icon        string      `json:"icon"`
	Order       int         `json:"order"`
	Description string      `json:"description,omitempty"`
	Actions     []string    `json:"actions"`
	Children    []*MenuNode `json:"children,omitempty"`
}

// Role 后台角色，MenuIDs 与 ActionPermissions 只允许引用当前存在的菜单
type Role struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	Description       string              `json:"description"`
	Status            string              `json:"status"`
	DataScope         string              `json:"data_scope"`
	DefaultLanding    string              `json:"default_landing"`
	MenuIDs           []string            `json:"menu_ids"`
	ActionPermissions map[string][]string `json:"action_permissions"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
	Remark            string              `json:"remark,omitempty"`
}

// RoleWithCount 角色及其当前关联的用户数
type RoleWithCount struct {
	Role
	UserCount int `json:"user_count"`
}

// UserAccount 后台用户账号
type UserAccount struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Mobile      string     `json:"mobile,omitempty"`
	RoleID      string     `json:"role_id"`
	Status      string     `json:"status"`
	Department  string     `json:"department,omitempty"`
	Position    string     `json:"position,omitempty"`
	LoginCount  int        `json:"login_count"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	Remark      string     `json:"remark,omitempty"`
	Tags        []string   `json:"tags"`
}

// Overview 用户管理总览，每次请求基于当前集合重新计算
type Overview struct {
	TotalUsers       int                `json:"totalUsers"`
	ActiveUsers      int                `json:"activeUsers"`
	PendingUsers     int                `json:"pendingUsers"`
	LockedUsers      int                `json:"lockedUsers"`
	RoleCount        int                `json:"roleCount"`
	MenuCount        int                `json:"menuCount"`
	LastSyncAt       time.Time          `json:"lastSyncAt"`
	RoleDistribution []RoleDistribution `json:"roleDistribution"`
	RecentUsers      []RecentUser       `json:"recentUsers"`
}

// RoleDistribution 角色维度的用户分布
type RoleDistribution struct {
	RoleID   string `json:"roleId"`
	RoleName string `json:"roleName"`
	Users    int    `json:"users"`
	Status   string `json:"status"`
}

// RecentUser 最近创建的用户摘要
type RecentUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	RoleID    string    `json:"role_id"`
	Status    string    `json:"status"`
}

// PasswordResetResult 密码重置结果，临时密码只在响应中出现一次，不落库
type PasswordResetResult struct {
	UserID            string `json:"userId"`
	TemporaryPassword string `json:"temporaryPassword"`
}
