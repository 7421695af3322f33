package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList 以 JSON 文本落库的字符串数组
type StringList []string

// Value 实现 driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan 实现 sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("StringList 仅支持从文本列扫描")
	}
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(data, l)
}

// Banner 首页轮播图
type Banner struct {
	ID        string         `json:"id" gorm:"primaryKey;size:36"`
	Title     string         `json:"title" gorm:"not null;size:100"`
	ImageURL  string         `json:"image_url" gorm:"not null;size:500"`
	LinkURL   string         `json:"link_url" gorm:"size:255"`
	SortOrder int            `json:"sort_order" gorm:"default:0;index"`
	IsActive  bool           `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate 创建前生成主键
func (b *Banner) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// Solution 解决方案条目
type Solution struct {
	ID          string         `json:"id" gorm:"primaryKey;size:36"`
	Title       string         `json:"title" gorm:"not null;size:100"`
	Description string         `json:"description" gorm:"size:500"`
	Content     string         `json:"content" gorm:"type:text"`
	IconURL     string         `json:"icon_url" gorm:"size:500"`
	CaseImages  StringList     `json:"case_images" gorm:"type:text"`
	SortOrder   int            `json:"sort_order" gorm:"default:0;index"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate 创建前生成主键
func (s *Solution) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Product 产品服务条目
type Product struct {
	ID          string         `json:"id" gorm:"primaryKey;size:36"`
	Name        string         `json:"name" gorm:"not null;size:100"`
	Description string         `json:"description" gorm:"size:500"`
	Category    string         `json:"category" gorm:"size:50;index"`
	ImageURL    string         `json:"image_url" gorm:"size:500"`
	Features    StringList     `json:"features" gorm:"type:text"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate 创建前生成主键
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// VisitLog 站点访问日志，用于数据看板聚合
type VisitLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Path      string    `json:"path" gorm:"size:255;index"`
	Title     string    `json:"title" gorm:"size:100"`
	Duration  int       `json:"duration" gorm:"default:0"` // 会话时长，秒
	Bounced   bool      `json:"bounced" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// TableName 指定访问日志表名
func (VisitLog) TableName() string {
	return "visit_logs"
}
