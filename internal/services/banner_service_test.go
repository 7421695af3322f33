package services

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// BannerServiceTestSuite 定义轮播图服务测试套件
type BannerServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	mock    sqlmock.Sqlmock
	service *BannerService
}

// SetupTest 每个测试前的设置
func (s *BannerServiceTestSuite) SetupTest() {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	s.Require().NoError(err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)

	s.db = gormDB
	s.mock = mock
	s.service = NewBannerService(gormDB)
}

// TearDownTest 每个测试后的清理
func (s *BannerServiceTestSuite) TearDownTest() {
	if s.db != nil {
		sqlDB, _ := s.db.DB()
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
	}
}

// TestListBanners_ActiveOnly 测试获取已上架轮播图
func (s *BannerServiceTestSuite) TestListBanners_ActiveOnly() {
	rows := sqlmock.NewRows([]string{"id", "title", "image_url", "sort_order", "is_active"}).
		AddRow("banner-1", "首页主图", "https://cdn.example.com/banners/main.png", 1, true).
		AddRow("banner-2", "活动推广", "https://cdn.example.com/banners/promo.png", 2, true)

	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `banners` WHERE is_active = ?")).
		WithArgs(true).
		WillReturnRows(rows)

	banners, err := s.service.ListBanners(true)
	s.Require().NoError(err)
	s.Require().Len(banners, 2)
	assert.Equal(s.T(), "首页主图", banners[0].Title)
	assert.True(s.T(), banners[0].IsActive)
}

// TestGetBanner_NotFound 测试获取不存在的轮播图
func (s *BannerServiceTestSuite) TestGetBanner_NotFound() {
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `banners` WHERE id = ?")).
		WillReturnError(gorm.ErrRecordNotFound)

	_, err := s.service.GetBanner("banner-ghost")
	s.Require().Error(err)
	assert.IsType(s.T(), &NotFoundError{}, err)
}

// TestCreateBanner_Success 测试创建轮播图
func (s *BannerServiceTestSuite) TestCreateBanner_Success() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `banners`")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	s.mock.ExpectCommit()

	banner, err := s.service.CreateBanner(CreateBannerRequest{
		Title:     "新品发布",
		ImageURL:  "https://cdn.example.com/banners/launch.png",
		SortOrder: 5,
	})
	s.Require().NoError(err)
	assert.NotEmpty(s.T(), banner.ID)
	assert.True(s.T(), banner.IsActive)
}

// TestCreateBanner_MissingFields 测试必填项缺失
func (s *BannerServiceTestSuite) TestCreateBanner_MissingFields() {
	_, err := s.service.CreateBanner(CreateBannerRequest{Title: "只有标题"})
	s.Require().Error(err)
	assert.IsType(s.T(), &ValidationError{}, err)
}

// TestDeleteBanner_NotFound 测试删除不存在的轮播图
func (s *BannerServiceTestSuite) TestDeleteBanner_NotFound() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta("UPDATE `banners` SET `deleted_at`")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectCommit()

	err := s.service.DeleteBanner("banner-ghost")
	s.Require().Error(err)
	assert.IsType(s.T(), &NotFoundError{}, err)
}

// MemoryModeBannerSuite 内存模式下轮播图服务的行为
type MemoryModeBannerSuite struct {
	suite.Suite
	service *BannerService
}

// SetupTest 构造无数据库的服务
func (s *MemoryModeBannerSuite) SetupTest() {
	s.service = NewBannerService(nil)
}

// TestList_ReturnsSeedData 测试内存模式返回内置数据
func (s *MemoryModeBannerSuite) TestList_ReturnsSeedData() {
	banners, err := s.service.ListBanners(true)
	s.Require().NoError(err)
	assert.Len(s.T(), banners, 3)
}

// TestGet_SeedBanner 测试内存模式按 id 查找
func (s *MemoryModeBannerSuite) TestGet_SeedBanner() {
	banner, err := s.service.GetBanner("banner-solutions")
	s.Require().NoError(err)
	assert.Equal(s.T(), "智能解决方案", banner.Title)

	_, err = s.service.GetBanner("banner-ghost")
	assert.IsType(s.T(), &NotFoundError{}, err)
}

// TestWrites_Rejected 测试内存模式写操作被拒绝
func (s *MemoryModeBannerSuite) TestWrites_Rejected() {
	_, err := s.service.CreateBanner(CreateBannerRequest{
		Title:    "新品发布",
		ImageURL: "https://cdn.example.com/banners/launch.png",
	})
	assert.True(s.T(), errors.Is(err, ErrNoDatabase))

	title := "改标题"
	_, err = s.service.UpdateBanner("banner-solutions", UpdateBannerRequest{Title: &title})
	assert.True(s.T(), errors.Is(err, ErrNoDatabase))

	err = s.service.DeleteBanner("banner-solutions")
	assert.True(s.T(), errors.Is(err, ErrNoDatabase))
}

// TestBannerServiceSuite 运行测试套件
func TestBannerServiceSuite(t *testing.T) {
	suite.Run(t, new(BannerServiceTestSuite))
}

// TestMemoryModeBannerSuiteRun 运行内存模式测试套件
func TestMemoryModeBannerSuiteRun(t *testing.T) {
	suite.Run(t, new(MemoryModeBannerSuite))
}
