package models

import "time"

// AnalyticsSnapshot 内置的访问统计快照，未配置数据库时作为看板数据源
type AnalyticsSnapshot struct {
	TotalVisits        int          `json:"totalVisits"`
	TodayVisits        int          `json:"todayVisits"`
	PageViews          int          `json:"pageViews"`
	BounceRate         float64      `json:"bounceRate"`
	AvgSessionDuration int          `json:"avgSessionDuration"`
	TopPages           []PageVisits `json:"topPages"`
	VisitTrend         []TrendPoint `json:"visitTrend"`
}

// PageVisits 页面访问量
type PageVisits struct {
	Path   string `json:"path"`
	Visits int    `json:"visits"`
	Title  string `json:"title"`
}

// TrendPoint 按天的访问趋势点
type TrendPoint struct {
	Date   string `json:"date"`
	Visits int    `json:"visits"`
}

// SeedBanners 内置轮播图数据，数据库为空时写入，内存模式下直接对外提供
func SeedBanners() []Banner {
	now := time.Now()
	return []Banner{
		{
			ID:        "banner-solutions",
			Title:     "智能解决方案",
			ImageURL:  "https://cdn.example.com/banners/solutions-hero.png",
			LinkURL:   "/solutions",
			SortOrder: 1,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        "banner-products",
			Title:     "产品服务",
			ImageURL:  "https://cdn.example.com/banners/products-hero.png",
			LinkURL:   "/products",
			SortOrder: 2,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        "banner-partnership",
			Title:     "企业合作",
			ImageURL:  "https://cdn.example.com/banners/partnership-hero.png",
			LinkURL:   "/about",
			SortOrder: 3,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// SeedSolutions 内置解决方案数据
func SeedSolutions() []Solution {
	now := time.Now()
	return []Solution{
		{
			ID:          "solution-digital",
			Title:       "数字化转型",
			Description: "帮助企业实现全面数字化升级",
			Content:     "我们提供完整的数字化转型解决方案，包括系统集成、流程优化、数据分析等服务。通过先进的技术手段，帮助企业提升运营效率，降低成本，增强竞争力。",
			IconURL:     "https://cdn.example.com/icons/digital.png",
			CaseImages: StringList{
				"https://cdn.example.com/cases/digital-dashboard.png",
				"https://cdn.example.com/cases/digital-workflow.png",
			},
			SortOrder: 1,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:          "solution-cloud",
			Title:       "云计算服务",
			Description: "提供稳定可靠的云基础设施",
			Content:     "基于先进的云计算技术，为企业提供弹性、安全、高效的云服务平台。支持多种部署模式，满足不同规模企业的需求。",
			IconURL:     "https://cdn.example.com/icons/cloud.png",
			CaseImages:  StringList{"https://cdn.example.com/cases/cloud-arch.png"},
			SortOrder:   2,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "solution-ai",
			Title:       "人工智能",
			Description: "智能化业务流程优化",
			Content:     "运用AI技术优化业务流程，提升企业运营效率和决策质量。包括机器学习、自然语言处理、计算机视觉等技术应用。",
			IconURL:     "https://cdn.example.com/icons/ai.png",
			CaseImages:  StringList{"https://cdn.example.com/cases/ai-analytics.png"},
			SortOrder:   3,
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// SeedProducts 内置产品数据
func SeedProducts() []Product {
	now := time.Now()
	return []Product{
		{
			ID:          "product-erp",
			Name:        "企业管理系统",
			Description: "全面的企业资源管理解决方案，集成人事、财务、项目管理等多个模块。",
			Category:    "软件产品",
			ImageURL:    "https://cdn.example.com/products/erp.png",
			Features:    StringList{"用户管理", "权限控制", "数据分析", "报表生成"},
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "product-mobile",
			Name:        "移动应用开发",
			Description: "专业的移动端应用开发服务，支持iOS、Android等多平台。",
			Category:    "开发服务",
			ImageURL:    "https://cdn.example.com/products/mobile.png",
			Features:    StringList{"iOS开发", "Android开发", "跨平台开发", "UI/UX设计"},
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "product-data",
			Name:        "数据分析平台",
			Description: "强大的数据处理和分析工具，支持实时数据处理和可视化展示。",
			Category:    "软件产品",
			ImageURL:    "https://cdn.example.com/products/data.png",
			Features:    StringList{"实时分析", "可视化报表", "预测模型", "API集成"},
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// SeedAnalytics 内置访问统计快照
func SeedAnalytics() AnalyticsSnapshot {
	return AnalyticsSnapshot{
		TotalVisits:        1250,
		TodayVisits:        45,
		PageViews:          3200,
		BounceRate:         0.35,
		AvgSessionDuration: 180,
		TopPages: []PageVisits{
			{Path: "/", Visits: 450, Title: "首页"},
			{Path: "/solutions", Visits: 320, Title: "解决方案"},
			{Path: "/products", Visits: 280, Title: "产品服务"},
			{Path: "/about", Visits: 200, Title: "关于我们"},
		},
		VisitTrend: []TrendPoint{
			{Date: "2024-01-01", Visits: 120},
			{Date: "2024-01-02", Visits: 135},
			{Date: "2024-01-03", Visits: 98},
			{Date: "2024-01-04", Visits: 156},
			{Date: "2024-01-05", Visits: 142},
			{Date: "2024-01-06", Visits: 178},
			{Date: "2024-01-07", Visits: 165},
		},
	}
}
