package services

import (
	"time"

	"github.com/clearsky-tech/bizsite-console/internal/models"
)

// seedMenus 构建内置菜单树，每次调用返回全新副本，保证 ResetState 后状态干净
func seedMenus() []*models.MenuNode {
	return []*models.MenuNode{
		{
			ID:          "dashboard",
			Name:        "仪表盘",
			Path:        "/dashboard",
			Icon:        "DashboardOutlined",
			Order:       1,
			Description: "业务指标与运营概览",
			Actions:     []string{"view", "export"},
			Children: []*models.MenuNode{
				{
					ID:          "dashboard-realtime",
					Name:        "实时监控",
					Path:        "/dashboard/realtime",
					Icon:        "AreaChartOutlined",
					Order:       1,
					Description: "实时监控关键业务指标，支持异常预警和通知",
					Actions:     []string{"view", "export", "subscribe"},
				},
				{
					ID:          "dashboard-analysis",
					Name:        "运营分析",
					Path:        "/dashboard/analysis",
					Icon:        "FundOutlined",
					Order:       2,
					Description: "多维度分析平台表现，支持历史数据对比",
					Actions:     []string{"view", "export"},
				},
			},
		},
		{
			ID:          "content-center",
			Name:        "内容中心",
			Path:        "/content",
			Icon:        "AppstoreOutlined",
			Order:       2,
			Description: "统一管理业务线内容与资源",
			Actions:     []string{"view"},
			Children: []*models.MenuNode{
				{
					ID:          "solutions",
					Name:        "解决方案",
					Path:        "/solutions",
					Icon:        "SolutionOutlined",
					Order:       1,
					Description: "管理解决方案条目、案例与排序",
					Actions:     []string{"view", "create", "update", "publish"},
				},
				{
					ID:          "products",
					Name:        "产品服务",
					Path:        "/products",
					Icon:        "ShoppingOutlined",
					Order:       2,
					Description: "维护产品信息、功能亮点与价格策略",
					Actions:     []string{"view", "create", "update"},
				},
				{
					ID:          "banners",
					Name:        "轮播图",
					Path:        "/banners",
					Icon:        "PictureOutlined",
					Order:       3,
					Description: "管理首页轮播图、投放计划与曝光数据",
					Actions:     []string{"view", "create", "update", "delete"},
				},
				{
					ID:          "consultations",
					Name:        "线索管理",
					Path:        "/consultations",
					Icon:        "MessageOutlined",
					Order:       4,
					Description: "处理用户咨询与销售线索流转",
					Actions:     []string{"view", "assign", "close"},
				},
			},
		},
		{
			ID:          "system-admin",
			Name:        "系统管理",
			Path:        "/system",
			Icon:        "SettingOutlined",
			Order:       3,
			Description: "账号、权限、参数配置等系统功能",
			Actions:     []string{"view"},
			Children: []*models.MenuNode{
				{
					ID:          "user-management",
					Name:        "用户管理",
					Path:        "/user-management",
					Icon:        "TeamOutlined",
					Order:       1,
					Description: "维护后台用户、角色权限与功能分配",
					Actions:     []string{"view", "create", "update", "delete", "reset-password"},
				},
				{
					ID:          "role-management",
					Name:        "角色权限",
					Path:        "/user-management/roles",
					Icon:        "SafetyCertificateOutlined",
					Order:       2,
					Description: "配置角色权限范围、菜单与操作能力",
					Actions:     []string{"view", "create", "update", "delete"},
				},
				{
					ID:          "settings",
					Name:        "系统设置",
					Path:        "/settings",
					Icon:        "ToolOutlined",
					Order:       3,
					Description: "站点信息、业务参数与安全策略配置",
					Actions:     []string{"view", "update"},
				},
			},
		},
	}
}

// seedRoles 构建内置角色，超级管理员自动覆盖全部菜单与动作
func seedRoles(menus []*models.MenuNode) []*models.Role {
	adminMenuIDs := flattenMenuIDs(menus)
	adminActions := make(map[string][]string, len(adminMenuIDs))
	var collect func(nodes []*models.MenuNode)
	collect = func(nodes []*models.MenuNode) {
		for _, node := range nodes {
			adminActions[node.ID] = append([]string{}, node.Actions...)
			if node.Children != nil {
				collect(node.Children)
			}
		}
	}
	collect(menus)

	return []*models.Role{
		{
			ID:                "role-admin",
			Name:              "超级管理员",
			Description:       "系统最高权限，可访问和配置所有功能模块。",
			Status:            models.StatusActive,
			DataScope:         models.DataScopeAll,
			DefaultLanding:    "/dashboard",
			MenuIDs:           adminMenuIDs,
			ActionPermissions: adminActions,
			CreatedAt:         time.Date(2023, 12, 1, 8, 0, 0, 0, time.UTC),
			UpdatedAt:         time.Date(2024, 1, 15, 2, 30, 0, 0, time.UTC),
			Remark:            "系统默认内置角色",
		},
		{
			ID:             "role-ops",
			Name:           "运营经理",
			Description:    "负责内容与线索运营，可管理内容中心与线索模块。",
			Status:         models.StatusActive,
			DataScope:      models.DataScopeDepartment,
			DefaultLanding: "/solutions",
			MenuIDs: []string{
				"dashboard",
				"dashboard-analysis",
				"content-center",
				"solutions",
				"products",
				"banners",
				"consultations",
			},
			ActionPermissions: map[string][]string{
				"dashboard":          {"view"},
				"dashboard-analysis": {"view", "export"},
				"solutions":          {"view", "create", "update", "publish"},
				"products":           {"view", "update"},
				"banners":            {"view", "create", "update"},
				"consultations":      {"view", "assign"},
			},
			CreatedAt: time.Date(2023, 12, 15, 10, 12, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 10, 5, 0, 0, 0, time.UTC),
			Remark:    "内容与营销负责人",
		},
		{
			ID:             "role-analyst",
			Name:           "数据分析师",
			Description:    "关注运营数据分析，可查看仪表盘及导出报表。",
			Status:         models.StatusActive,
			DataScope:      models.DataScopeDepartment,
			DefaultLanding: "/dashboard",
			MenuIDs:        []string{"dashboard", "dashboard-realtime", "dashboard-analysis"},
			ActionPermissions: map[string][]string{
				"dashboard":          {"view"},
				"dashboard-realtime": {"view", "subscribe"},
				"dashboard-analysis": {"view", "export"},
			},
			CreatedAt: time.Date(2024, 1, 5, 7, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 20, 3, 45, 0, 0, time.UTC),
			Remark:    "数据团队专用角色",
		},
		{
			ID:             "role-support",
			Name:           "客服专员",
			Description:    "负责客户咨询跟进与反馈收集，仅访问线索模块。",
			Status:         models.StatusActive,
			DataScope:      models.DataScopeSelf,
			DefaultLanding: "/consultations",
			MenuIDs:        []string{"content-center", "consultations"},
			ActionPermissions: map[string][]string{
				"consultations": {"view", "close"},
			},
			CreatedAt: time.Date(2024, 1, 8, 9, 30, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 18, 1, 10, 0, 0, time.UTC),
			Remark:    "售前客服角色",
		},
		{
			ID:             "role-guest",
			Name:           "访客",
			Description:    "仅用于临时访问，拥有最小化权限。",
			Status:         models.StatusInactive,
			DataScope:      models.DataScopeSelf,
			DefaultLanding: "/dashboard",
			MenuIDs:        []string{"dashboard"},
			ActionPermissions: map[string][]string{
				"dashboard": {"view"},
			},
			CreatedAt: time.Date(2024, 1, 12, 11, 25, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 1, 12, 11, 25, 0, 0, time.UTC),
			Remark:    "临时访问控制",
		},
	}
}

// seedUsers 构建内置用户账号
func seedUsers() []*models.UserAccount {
	ts := func(year, month, day, hour, min int) time.Time {
		return time.Date(year, time.Month(month), day, hour, min, 0, 0, time.UTC)
	}
	ptr := func(t time.Time) *time.Time { return &t }

	return []*models.UserAccount{
		{
			ID:          "user-admin",
			Username:    "admin",
			Email:       "admin@company.com",
			Mobile:      "13800000001",
			RoleID:      "role-admin",
			Status:      models.StatusActive,
			Department:  "运营中心",
			Position:    "平台管理员",
			LoginCount:  156,
			LastLoginAt: ptr(ts(2024, 1, 25, 2, 30)),
			CreatedAt:   ts(2023, 12, 1, 8, 0),
			Remark:      "系统内置超级管理员账号",
			Tags:        []string{"核心账号", "安全"},
		},
		{
			ID:          "user-ops-01",
			Username:    "operation.lead",
			Email:       "operation.lead@company.com",
			Mobile:      "13800000012",
			RoleID:      "role-ops",
			Status:      models.StatusActive,
			Department:  "市场运营部",
			Position:    "运营经理",
			LoginCount:  98,
			LastLoginAt: ptr(ts(2024, 1, 24, 12, 15)),
			CreatedAt:   ts(2023, 12, 20, 3, 20),
			Remark:      "负责全站内容排期与投放",
			Tags:        []string{"内容", "增长"},
		},
		{
			ID:          "user-analyst-01",
			Username:    "data.analyst",
			Email:       "data.analyst@company.com",
			Mobile:      "13900000045",
			RoleID:      "role-analyst",
			Status:      models.StatusActive,
			Department:  "数据中心",
			Position:    "高级数据分析师",
			LoginCount:  123,
			LastLoginAt: ptr(ts(2024, 1, 23, 9, 40)),
			CreatedAt:   ts(2024, 1, 2, 5, 18),
			Remark:      "负责监控运营指标与产出周报",
			Tags:        []string{"分析", "报表"},
		},
		{
			ID:          "user-support-01",
			Username:    "support.kelly",
			Email:       "support.kelly@company.com",
			Mobile:      "13700000321",
			RoleID:      "role-support",
			Status:      models.StatusActive,
			Department:  "客户成功部",
			Position:    "资深客服",
			LoginCount:  67,
			LastLoginAt: ptr(ts(2024, 1, 25, 4, 5)),
			CreatedAt:   ts(2024, 1, 8, 11, 8),
			Remark:      "重点客户跟进负责人",
			Tags:        []string{"客户", "跟进"},
		},
		{
			ID:          "user-support-02",
			Username:    "support.liang",
			Email:       "support.liang@company.com",
			Mobile:      "13700000322",
			RoleID:      "role-support",
			Status:      models.StatusInactive,
			Department:  "客户成功部",
			Position:    "客服专员",
			LoginCount:  21,
			LastLoginAt: ptr(ts(2024, 1, 14, 1, 32)),
			CreatedAt:   ts(2024, 1, 10, 7, 35),
			Remark:      "待重新授权的账号",
			Tags:        []string{"审批中"},
		},
		{
			ID:          "user-guest-01",
			Username:    "guest.viewer",
			Email:       "guest.viewer@company.com",
			Mobile:      "13600000678",
			RoleID:      "role-guest",
			Status:      models.StatusInactive,
			Department:  "外部合作方",
			Position:    "临时访客",
			LoginCount:  3,
			LastLoginAt: ptr(ts(2024, 1, 5, 6, 0)),
			CreatedAt:   ts(2024, 1, 5, 5, 45),
			Remark:      "项目协同短期账号",
			Tags:        []string{"临时"},
		},
	}
}
