package services

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/clearsky-tech/bizsite-console/internal/models"
	"github.com/clearsky-tech/bizsite-console/pkg/logger"

	"github.com/google/uuid"
)

// PermissionService 用户管理权限状态存储。
// 菜单树、角色、用户三个集合全部驻留内存，所有操作持有同一把锁串行执行，
// 以保证删除菜单等多步级联在并发请求下的原子性。
type PermissionService struct {
	mu    sync.Mutex
	menus []*models.MenuNode
	roles []*models.Role
	users []*models.UserAccount
}

// NewPermissionService 创建权限状态存储并载入内置数据
func NewPermissionService() *PermissionService {
	s := &PermissionService{}
	s.resetLocked()
	return s
}

// ResetState 恢复到内置数据快照，用于测试隔离
func (s *PermissionService) ResetState() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *PermissionService) resetLocked() {
	s.menus = seedMenus()
	s.roles = seedRoles(s.menus)
	s.users = seedUsers()
}

// ========== 菜单树工具 ==========

// flattenMenuIDs 先序遍历收集全部节点 id，节点 id 全树唯一
func flattenMenuIDs(nodes []*models.MenuNode) []string {
	var result []string
	for _, node := range nodes {
		result = append(result, node.ID)
		if len(node.Children) > 0 {
			result = append(result, flattenMenuIDs(node.Children)...)
		}
	}
	return result
}

// findMenuNode 深度优先查找节点，parent 为 nil 表示顶级节点
func findMenuNode(nodes []*models.MenuNode, id string) (node, parent *models.MenuNode, ok bool) {
	return findMenuNodeIn(nodes, id, nil)
}

func findMenuNodeIn(nodes []*models.MenuNode, id string, from *models.MenuNode) (*models.MenuNode, *models.MenuNode, bool) {
	for _, node := range nodes {
		if node.ID == id {
			return node, from, true
		}
		if node.Children != nil {
			if found, parent, ok := findMenuNodeIn(node.Children, id, node); ok {
				return found, parent, ok
			}
		}
	}
	return nil, nil, false
}

// removeMenuNode 深度优先删除节点。父节点删空子节点后将 Children 置回 nil，
// 避免残留的空列表让叶子节点看起来仍有子级。
func removeMenuNode(nodes []*models.MenuNode, id string) ([]*models.MenuNode, bool) {
	for i, node := range nodes {
		if node.ID == id {
			return append(nodes[:i], nodes[i+1:]...), true
		}
	}
	for _, node := range nodes {
		if node.Children == nil {
			continue
		}
		if next, ok := removeMenuNode(node.Children, id); ok {
			if len(next) == 0 {
				node.Children = nil
			} else {
				node.Children = next
			}
			return nodes, true
		}
	}
	return nodes, false
}

// cloneMenuTree 深拷贝菜单树，对外只暴露副本
func cloneMenuTree(nodes []*models.MenuNode) []*models.MenuNode {
	if nodes == nil {
		return nil
	}
	cloned := make([]*models.MenuNode, 0, len(nodes))
	for _, node := range nodes {
		copied := *node
		copied.Actions = append([]string{}, node.Actions...)
		copied.Children = cloneMenuTree(node.Children)
		cloned = append(cloned, &copied)
	}
	return cloned
}

func (s *PermissionService) validMenuIDsLocked() map[string]struct{} {
	valid := make(map[string]struct{})
	for _, id := range flattenMenuIDs(s.menus) {
		valid[id] = struct{}{}
	}
	return valid
}

// ========== 角色一致性维护 ==========

// ensureActionConsistencyLocked 菜单动作集合变化后的级联修复。
// allowed 为空表示菜单已删除：从所有角色摘除该菜单及其动作配置；
// 否则将各角色已有的动作权限与 allowed 求交集。对未引用该菜单的角色是空操作。
func (s *PermissionService) ensureActionConsistencyLocked(menuID string, allowed []string) {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, action := range allowed {
		allowedSet[action] = struct{}{}
	}

	for _, role := range s.roles {
		if len(allowed) == 0 {
			delete(role.ActionPermissions, menuID)
			role.MenuIDs = filterStrings(role.MenuIDs, func(id string) bool { return id != menuID })
			continue
		}
		if granted, ok := role.ActionPermissions[menuID]; ok {
			role.ActionPermissions[menuID] = filterStrings(granted, func(action string) bool {
				_, allowed := allowedSet[action]
				return allowed
			})
		}
	}
}

// recalcMenuCoverageLocked 菜单结构变化后的修复：把角色引用收敛到仍然存在的菜单
func (s *PermissionService) recalcMenuCoverageLocked() {
	valid := s.validMenuIDsLocked()
	for _, role := range s.roles {
		role.MenuIDs = filterStrings(role.MenuIDs, func(id string) bool {
			_, ok := valid[id]
			return ok
		})
		for menuID := range role.ActionPermissions {
			if _, ok := valid[menuID]; !ok {
				delete(role.ActionPermissions, menuID)
			}
		}
	}
}

func filterStrings(items []string, keep func(string) bool) []string {
	result := items[:0:0]
	for _, item := range items {
		if keep(item) {
			result = append(result, item)
		}
	}
	if result == nil {
		return []string{}
	}
	return result
}

// ========== 总览 ==========

// GetOverview 基于当前集合计算总览，任何情况下都不缓存
func (s *PermissionService) GetOverview() models.Overview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildOverviewLocked()
}

func (s *PermissionService) buildOverviewLocked() models.Overview {
	overview := models.Overview{
		TotalUsers: len(s.users),
		RoleCount:  len(s.roles),
		MenuCount:  len(flattenMenuIDs(s.menus)),
		LastSyncAt: time.Now(),
	}

	for _, user := range s.users {
		switch user.Status {
		case models.StatusActive:
			overview.ActiveUsers++
		case models.StatusInactive:
			overview.PendingUsers++
		case models.StatusLocked:
			overview.LockedUsers++
		}
	}

	overview.RoleDistribution = make([]models.RoleDistribution, 0, len(s.roles))
	for _, role := range s.roles {
		overview.RoleDistribution = append(overview.RoleDistribution, models.RoleDistribution{
			RoleID:   role.ID,
			RoleName: role.Name,
			Users:    s.roleUserCountLocked(role.ID),
			Status:   role.Status,
		})
	}

	recent := append([]*models.UserAccount{}, s.users...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > 6 {
		recent = recent[:6]
	}
	overview.RecentUsers = make([]models.RecentUser, 0, len(recent))
	for _, user := range recent {
		overview.RecentUsers = append(overview.RecentUsers, models.RecentUser{
			ID:        user.ID,
			Username:  user.Username,
			CreatedAt: user.CreatedAt,
			RoleID:    user.RoleID,
			Status:    user.Status,
		})
	}

	return overview
}

// ========== 用户管理 ==========

// CreateUserRequest 创建用户请求
type CreateUserRequest struct {
	Username   string   `json:"username"`
	Email      string   `json:"email"`
	RoleID     string   `json:"role_id"`
	Status     string   `json:"status"`
	Mobile     string   `json:"mobile"`
	Department string   `json:"department"`
	Position   string   `json:"position"`
	Remark     string   `json:"remark"`
	Tags       []string `json:"tags"`
}

// UpdateUserRequest 更新用户请求，nil 字段保持原值
type UpdateUserRequest struct {
	Username   *string  `json:"username"`
	Email      *string  `json:"email"`
	RoleID     *string  `json:"role_id"`
	Status     *string  `json:"status"`
	Mobile     *string  `json:"mobile"`
	Department *string  `json:"department"`
	Position   *string  `json:"position"`
	Remark     *string  `json:"remark"`
	Tags       []string `json:"tags"`
}

// ListUsers 返回全部用户，可选字段统一规范化
func (s *PermissionService) ListUsers() []models.UserAccount {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]models.UserAccount, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, sanitizeUser(user))
	}
	return users
}

// CreateUser 创建用户并返回最新总览
func (s *PermissionService) CreateUser(req CreateUserRequest) (*models.UserAccount, *models.Overview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Username == "" || req.Email == "" || req.RoleID == "" {
		return nil, nil, &ValidationError{Message: "用户名、邮箱和角色为必填项"}
	}
	if s.findRoleLocked(req.RoleID) == nil {
		return nil, nil, &ValidationError{Message: "角色不存在"}
	}
	for _, user := range s.users {
		if user.Username == req.Username || user.Email == req.Email {
			return nil, nil, &ConflictError{Message: "用户名或邮箱已存在"}
		}
	}

	status := req.Status
	if status == "" {
		status = models.StatusActive
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	user := &models.UserAccount{
		ID:         uuid.NewString(),
		Username:   req.Username,
		Email:      req.Email,
		RoleID:     req.RoleID,
		Status:     status,
		Mobile:     req.Mobile,
		Department: req.Department,
		Position:   req.Position,
		LoginCount: 0,
		CreatedAt:  time.Now(),
		Remark:     req.Remark,
		Tags:       tags,
	}
	s.users = append(s.users, user)

	logger.Info("用户创建成功: %s", user.Username)

	sanitized := sanitizeUser(user)
	overview := s.buildOverviewLocked()
	return &sanitized, &overview, nil
}

// UpdateUser 部分更新用户，用户名/邮箱仅在变化时做唯一性校验
func (s *PermissionService) UpdateUser(id string, req UpdateUserRequest) (*models.UserAccount, *models.Overview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.findUserLocked(id)
	if target == nil {
		return nil, nil, &NotFoundError{Message: "用户不存在"}
	}

	if req.RoleID != nil && *req.RoleID != "" && s.findRoleLocked(*req.RoleID) == nil {
		return nil, nil, &ValidationError{Message: "角色不存在"}
	}

	if req.Username != nil && *req.Username != "" && *req.Username != target.Username {
		for _, user := range s.users {
			if user.Username == *req.Username {
				return nil, nil, &ConflictError{Message: "用户名已存在"}
			}
		}
		target.Username = *req.Username
	}

	if req.Email != nil && *req.Email != "" && *req.Email != target.Email {
		for _, user := range s.users {
			if user.Email == *req.Email {
				return nil, nil, &ConflictError{Message: "邮箱已存在"}
			}
		}
		target.Email = *req.Email
	}

	if req.RoleID != nil && *req.RoleID != "" {
		target.RoleID = *req.RoleID
	}
	if req.Status != nil && *req.Status != "" {
		target.Status = *req.Status
	}
	if req.Department != nil {
		target.Department = *req.Department
	}
	if req.Position != nil {
		target.Position = *req.Position
	}
	if req.Mobile != nil {
		target.Mobile = *req.Mobile
	}
	if req.Remark != nil {
		target.Remark = *req.Remark
	}
	if req.Tags != nil {
		target.Tags = req.Tags
	}

	sanitized := sanitizeUser(target)
	overview := s.buildOverviewLocked()
	return &sanitized, &overview, nil
}

// SetUserStatus 切换用户状态，仅接受三个合法取值
func (s *PermissionService) SetUserStatus(id, status string) (*models.UserAccount, *models.Overview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.findUserLocked(id)
	if target == nil {
		return nil, nil, &NotFoundError{Message: "用户不存在"}
	}

	switch status {
	case models.StatusActive, models.StatusInactive, models.StatusLocked:
	default:
		return nil, nil, &ValidationError{Message: "无效的状态"}
	}

	target.Status = status

	sanitized := sanitizeUser(target)
	overview := s.buildOverviewLocked()
	return &sanitized, &overview, nil
}

// ResetPassword 签发一次性临时密码，不回写任何字段。
// 凭据持久化交由外部身份体系处理，这里只负责生成并返回。
func (s *PermissionService) ResetPassword(id string) (*models.PasswordResetResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.findUserLocked(id)
	if target == nil {
		return nil, &NotFoundError{Message: "用户不存在"}
	}

	return &models.PasswordResetResult{
		UserID:            target.ID,
		TemporaryPassword: generateTemporaryPassword(),
	}, nil
}

// DeleteUser 删除用户，无外键保护
func (s *PermissionService) DeleteUser(id string) (*models.Overview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, user := range s.users {
		if user.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			overview := s.buildOverviewLocked()
			return &overview, nil
		}
	}
	return nil, &NotFoundError{Message: "用户不存在"}
}

func (s *PermissionService) findUserLocked(id string) *models.UserAccount {
	for _, user := range s.users {
		if user.ID == id {
			return user
		}
	}
	return nil
}

// sanitizeUser 返回规范化副本：缺省 tags 呈现为空数组
func sanitizeUser(user *models.UserAccount) models.UserAccount {
	sanitized := *user
	if sanitized.Tags == nil {
		sanitized.Tags = []string{}
	} else {
		sanitized.Tags = append([]string{}, sanitized.Tags...)
	}
	if sanitized.LoginCount < 0 {
		sanitized.LoginCount = 0
	}
	return sanitized
}

const temporaryPasswordCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

func generateTemporaryPassword() string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = temporaryPasswordCharset[rand.Intn(len(temporaryPasswordCharset))]
	}
	return fmt.Sprintf("Reset@%s", suffix)
}

// ========== 角色管理 ==========

// CreateRoleRequest 创建角色请求
type CreateRoleRequest struct {
	Name              string              `json:"name"`
	Description       string              `json:"description"`
	Status            string              `json:"status"`
	DataScope         string              `json:"data_scope"`
	DefaultLanding    string              `json:"default_landing"`
	Remark            string              `json:"remark"`
	MenuIDs           []string            `json:"menu_ids"`
	ActionPermissions map[string][]string `json:"action_permissions"`
}

// UpdateRoleRequest 更新角色请求，nil 字段保持原值
type UpdateRoleRequest struct {
	Name              *string             `json:"name"`
	Description       *string             `json:"description"`
	Status            *string             `json:"status"`
	DataScope         *string             `json:"data_scope"`
	DefaultLanding    *string             `json:"default_landing"`
	Remark            *string             `json:"remark"`
	MenuIDs           []string            `json:"menu_ids"`
	ActionPermissions map[string][]string `json:"action_permissions"`
}

// ListRoles 返回全部角色，并附带实时用户数
func (s *PermissionService) ListRoles() []models.RoleWithCount {
	s.mu.Lock()
	defer s.mu.Unlock()

	roles := make([]models.RoleWithCount, 0, len(s.roles))
	for _, role := range s.roles {
		roles = append(roles, models.RoleWithCount{
			Role:      cloneRole(role),
			UserCount: s.roleUserCountLocked(role.ID),
		})
	}
	return roles
}

// CreateRole 创建角色。调用方传入的菜单与动作引用会先过滤到当前存在的菜单，
// 未知 id 静默丢弃而不是报错。
func (s *PermissionService) CreateRole(req CreateRoleRequest) (*models.RoleWithCount, *models.Overview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Name == "" || req.Description == "" {
		return nil, nil, &ValidationError{Message: "角色名称和描述不能为空"}
	}
	for _, role := range s.roles {
		if role.Name == req.Name {
			return nil, nil, &ConflictError{Message: "角色名称已存在"}
		}
	}

	status := req.Status
	if status == "" {
		status = models.StatusActive
	}
	dataScope := req.DataScope
	if dataScope == "" {
		dataScope = models.DataScopeSelf
	}
	defaultLanding := req.DefaultLanding
	if defaultLanding == "" {
		defaultLanding = "/dashboard"
	}

	valid := s.validMenuIDsLocked()
	menuIDs := filterStrings(req.MenuIDs, func(id string) bool {
		_, ok := valid[id]
		return ok
	})
	actions := make(map[string][]string)
	for menuID, granted := range req.ActionPermissions {
		if _, ok := valid[menuID]; ok {
			actions[menuID] = append([]string{}, granted...)
		}
	}

	now := time.Now()
	role := &models.Role{
		ID:                uuid.NewString(),
		Name:              req.Name,
		Description:       req.Description,
		Status:            status,
		DataScope:         dataScope,
		DefaultLanding:    defaultLanding,
		MenuIDs:           menuIDs,
		ActionPermissions: actions,
		CreatedAt:         now,
		UpdatedAt:         now,
		Remark:            req.Remark,
	}
	s.roles = append(s.roles, role)

	logger.Info("角色创建成功: %s", role.Name)

	overview := s.buildOverviewLocked()
	return &models.RoleWithCount{Role: cloneRole(role), UserCount: 0}, &overview, nil
}

// UpdateRole 部分更新角色，改名时检查其余角色的唯一性
func (s *PermissionService) UpdateRole(id string, req UpdateRoleRequest) (*models.RoleWithCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	role := s.findRoleLocked(id)
	if role == nil {
		return nil, &NotFoundError{Message: "角色不存在"}
	}

	if req.Name != nil && *req.Name != "" && *req.Name != role.Name {
		for _, other := range s.roles {
			if other.Name == *req.Name {
				return nil, &ConflictError{Message: "角色名称已存在"}
			}
		}
		role.Name = *req.Name
	}

	if req.Description != nil {
		role.Description = *req.Description
	}
	if req.Status != nil && *req.Status != "" {
		role.Status = *req.Status
	}
	if req.DataScope != nil && *req.DataScope != "" {
		role.DataScope = *req.DataScope
	}
	if req.DefaultLanding != nil && *req.DefaultLanding != "" {
		role.DefaultLanding = *req.DefaultLanding
	}
	if req.Remark != nil {
		role.Remark = *req.Remark
	}

	if req.MenuIDs != nil {
		valid := s.validMenuIDsLocked()
		role.MenuIDs = filterStrings(req.MenuIDs, func(menuID string) bool {
			_, ok := valid[menuID]
			return ok
		})
	}

	if req.ActionPermissions != nil {
		valid := s.validMenuIDsLocked()
		actions := make(map[string][]string)
		for menuID, granted := range req.ActionPermissions {
			if _, ok := valid[menuID]; ok {
				actions[menuID] = append([]string{}, granted...)
			}
		}
		role.ActionPermissions = actions
	}

	role.UpdatedAt = time.Now()

	return &models.RoleWithCount{
		Role:      cloneRole(role),
		UserCount: s.roleUserCountLocked(role.ID),
	}, nil
}

// DeleteRole 删除角色，仍被用户引用时拒绝
func (s *PermissionService) DeleteRole(id string) (*models.Overview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i, role := range s.roles {
		if role.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, &NotFoundError{Message: "角色不存在"}
	}
	if s.roleUserCountLocked(id) > 0 {
		return nil, &ConflictError{Message: "请先解除与用户的关联后再删除角色"}
	}

	s.roles = append(s.roles[:index], s.roles[index+1:]...)

	overview := s.buildOverviewLocked()
	return &overview, nil
}

func (s *PermissionService) findRoleLocked(id string) *models.Role {
	for _, role := range s.roles {
		if role.ID == id {
			return role
		}
	}
	return nil
}

func (s *PermissionService) roleUserCountLocked(roleID string) int {
	count := 0
	for _, user := range s.users {
		if user.RoleID == roleID {
			count++
		}
	}
	return count
}

func cloneRole(role *models.Role) models.Role {
	cloned := *role
	cloned.MenuIDs = append([]string{}, role.MenuIDs...)
	cloned.ActionPermissions = make(map[string][]string, len(role.ActionPermissions))
	for menuID, granted := range role.ActionPermissions {
		cloned.ActionPermissions[menuID] = append([]string{}, granted...)
	}
	return cloned
}

// ========== 菜单管理 ==========

// CreateMenuRequest 创建菜单请求，ParentID 为空表示顶级菜单
type CreateMenuRequest struct {
	ParentID    string   `json:"parent_id"`
	Name        string   `json:"name"`
	Path        string   `json:"path"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	Order       *int     `json:"order"`
	Actions     []string `json:"actions"`
}

// UpdateMenuRequest 更新菜单请求，Actions 非 nil 时触发角色动作级联
type UpdateMenuRequest struct {
	Name        *string  `json:"name"`
	Path        *string  `json:"path"`
	Icon        *string  `json:"icon"`
	Description *string  `json:"description"`
	Order       *int     `json:"order"`
	Actions     []string `json:"actions"`
}

// ListMenus 返回菜单树副本
func (s *PermissionService) ListMenus() []*models.MenuNode {
	s.mu.Lock()
	defer s.mu.Unlock()

	menus := cloneMenuTree(s.menus)
	if menus == nil {
		menus = []*models.MenuNode{}
	}
	return menus
}

// CreateMenu 新建菜单节点，可挂在指定父级下
func (s *PermissionService) CreateMenu(req CreateMenuRequest) (*models.MenuNode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Name == "" || req.Path == "" || req.Icon == "" {
		return nil, &ValidationError{Message: "菜单名称、路径和图标不能为空"}
	}

	order := 99
	if req.Order != nil {
		order = *req.Order
	}
	actions := req.Actions
	if actions == nil {
		actions = []string{}
	}

	node := &models.MenuNode{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Path:        req.Path,
		Icon:        req.Icon,
		Order:       order,
		Description: req.Description,
		Actions:     actions,
	}

	if req.ParentID != "" {
		parent, _, ok := findMenuNode(s.menus, req.ParentID)
		if !ok {
			return nil, &NotFoundError{Message: "父级菜单不存在"}
		}
		parent.Children = append(parent.Children, node)
	} else {
		s.menus = append(s.menus, node)
	}

	s.recalcMenuCoverageLocked()

	logger.Info("菜单创建成功: %s (%s)", node.Name, node.ID)

	copied := *node
	copied.Actions = append([]string{}, node.Actions...)
	return &copied, nil
}

// UpdateMenu 更新菜单节点，动作集合变化时级联收敛各角色的动作权限
func (s *PermissionService) UpdateMenu(id string, req UpdateMenuRequest) (*models.MenuNode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	node, _, ok := findMenuNode(s.menus, id)
	if !ok {
		return nil, &NotFoundError{Message: "菜单不存在"}
	}

	if req.Name != nil {
		node.Name = *req.Name
	}
	if req.Path != nil {
		node.Path = *req.Path
	}
	if req.Icon != nil {
		node.Icon = *req.Icon
	}
	if req.Description != nil {
		node.Description = *req.Description
	}
	if req.Order != nil {
		node.Order = *req.Order
	}
	if req.Actions != nil {
		node.Actions = append([]string{}, req.Actions...)
		s.ensureActionConsistencyLocked(id, node.Actions)
	}

	copied := *node
	copied.Actions = append([]string{}, node.Actions...)
	copied.Children = cloneMenuTree(node.Children)
	return &copied, nil
}

// DeleteMenu 删除叶子菜单并执行完整级联：
// 先从树上摘除，再清理所有角色对该菜单的动作配置，最后收敛角色的菜单引用。
func (s *PermissionService) DeleteMenu(id string) ([]*models.MenuNode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	node, _, ok := findMenuNode(s.menus, id)
	if !ok {
		return nil, &NotFoundError{Message: "菜单不存在"}
	}
	if len(node.Children) > 0 {
		return nil, &ValidationError{Message: "请先删除子菜单"}
	}

	s.menus, _ = removeMenuNode(s.menus, id)
	s.ensureActionConsistencyLocked(id, nil)
	s.recalcMenuCoverageLocked()

	logger.Info("菜单删除成功: %s", id)

	menus := cloneMenuTree(s.menus)
	if menus == nil {
		menus = []*models.MenuNode{}
	}
	return menus, nil
}
