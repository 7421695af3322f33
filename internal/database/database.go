package database

import (
	"fmt"
	"time"

	"github.com/clearsky-tech/bizsite-console/internal/config"
	"github.com/clearsky-tech/bizsite-console/internal/models"
	"github.com/clearsky-tech/bizsite-console/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Init 初始化数据库连接，支持 mysql 与 sqlite 两种驱动
func Init(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Warn),
	}

	var db *gorm.DB
	var err error

	switch cfg.Driver {
	case "mysql":
		db, err = initMySQL(cfg, gormConfig)
	case "sqlite":
		logger.Info("连接SQLite数据库: %s", cfg.DSN)
		db, err = gorm.Open(sqlite.Open(cfg.DSN), gormConfig)
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	logger.Info("数据库连接成功")
	return db, nil
}

func initMySQL(cfg config.DatabaseConfig, gormConfig *gorm.Config) (*gorm.DB, error) {
	// 先连接到MySQL服务器（不指定数据库）来创建数据库
	dsnWithoutDB := fmt.Sprintf("%s:%s@tcp(%s:%d)/?charset=%s&parseTime=True&loc=Local",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Charset,
	)

	logger.Info("连接MySQL服务器: %s@%s:%d", cfg.Username, cfg.Host, cfg.Port)
	tempDB, err := gorm.Open(mysql.Open(dsnWithoutDB), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("连接MySQL服务器失败: %w", err)
	}

	createDBSQL := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s` CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci", cfg.Database)
	if err := tempDB.Exec(createDBSQL).Error; err != nil {
		return nil, fmt.Errorf("创建数据库失败: %w", err)
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.Charset,
	)

	logger.Info("连接MySQL数据库: %s@%s:%d/%s", cfg.Username, cfg.Host, cfg.Port, cfg.Database)
	db, err := gorm.Open(mysql.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取数据库连接失败: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// autoMigrate 自动迁移数据库表并写入初始数据
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Admin{},
		&models.Banner{},
		&models.Solution{},
		&models.Product{},
		&models.VisitLog{},
	)
	if err != nil {
		return err
	}

	createDefaultAdmin(db)
	seedContent(db)
	return nil
}

// createDefaultAdmin 创建默认管理员账号（仅当表为空时）
func createDefaultAdmin(db *gorm.DB) {
	var count int64
	db.Model(&models.Admin{}).Count(&count)
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("生成默认管理员密码失败: %v", err)
		return
	}

	admin := &models.Admin{
		Username:     "admin",
		PasswordHash: string(hash),
		Email:        "admin@example.com",
		Role:         "super_admin",
	}
	if err := db.Create(admin).Error; err != nil {
		logger.Error("创建默认管理员失败: %v", err)
		return
	}
	logger.Info("默认管理员创建成功: admin/admin123，请登录后立即修改密码")
}

// seedContent 写入内置内容数据（仅当对应表为空时）
func seedContent(db *gorm.DB) {
	var count int64

	db.Model(&models.Banner{}).Count(&count)
	if count == 0 {
		banners := models.SeedBanners()
		if err := db.Create(&banners).Error; err != nil {
			logger.Error("写入内置轮播图失败: %v", err)
		}
	}

	db.Model(&models.Solution{}).Count(&count)
	if count == 0 {
		solutions := models.SeedSolutions()
		if err := db.Create(&solutions).Error; err != nil {
			logger.Error("写入内置解决方案失败: %v", err)
		}
	}

	db.Model(&models.Product{}).Count(&count)
	if count == 0 {
		products := models.SeedProducts()
		if err := db.Create(&products).Error; err != nil {
			logger.Error("写入内置产品失败: %v", err)
		}
	}
}
