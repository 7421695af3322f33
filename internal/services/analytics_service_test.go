package services

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// AnalyticsServiceTestSuite 定义访问统计服务测试套件
type AnalyticsServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	mock    sqlmock.Sqlmock
	service *AnalyticsService
}

// SetupTest 每个测试前的设置
func (s *AnalyticsServiceTestSuite) SetupTest() {
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
	s.service = NewAnalyticsService(gormDB)
}

// TearDownTest 每个测试后的清理
func (s *AnalyticsServiceTestSuite) TearDownTest() {
	if s.db != nil {
		sqlDB, _ := s.db.DB()
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
	}
}

// TestRecordVisit 测试访问上报写入日志表
func (s *AnalyticsServiceTestSuite) TestRecordVisit() {
	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `visit_logs`")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	s.mock.ExpectCommit()

	err := s.service.RecordVisit("/solutions", "解决方案", 120, false)
	assert.NoError(s.T(), err)
}

// TestGetSummary_EmptyTableFallsBack 测试日志表为空时退回内置快照
func (s *AnalyticsServiceTestSuite) TestGetSummary_EmptyTableFallsBack() {
	s.mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `visit_logs`")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	summary, err := s.service.GetSummary()
	s.Require().NoError(err)
	assert.Equal(s.T(), 1250, summary.TotalVisits)
	assert.Len(s.T(), summary.VisitTrend, 7)
}

// MemoryModeAnalyticsSuite 内存模式下统计服务的行为
type MemoryModeAnalyticsSuite struct {
	suite.Suite
	service *AnalyticsService
}

// SetupTest 构造无数据库的服务
func (s *MemoryModeAnalyticsSuite) SetupTest() {
	s.service = NewAnalyticsService(nil)
}

// TestGetSummary_ReturnsSeedSnapshot 测试内存模式返回内置快照
func (s *MemoryModeAnalyticsSuite) TestGetSummary_ReturnsSeedSnapshot() {
	summary, err := s.service.GetSummary()
	s.Require().NoError(err)

	assert.Equal(s.T(), 1250, summary.TotalVisits)
	assert.Equal(s.T(), 45, summary.TodayVisits)
	assert.Equal(s.T(), 3200, summary.PageViews)
	assert.InDelta(s.T(), 0.35, summary.BounceRate, 0.001)
	assert.Len(s.T(), summary.TopPages, 4)
	assert.Len(s.T(), summary.VisitTrend, 7)
}

// TestRecordVisit_Dropped 测试内存模式上报被静默丢弃
func (s *MemoryModeAnalyticsSuite) TestRecordVisit_Dropped() {
	err := s.service.RecordVisit("/solutions", "解决方案", 60, true)
	assert.NoError(s.T(), err)
}

// TestAnalyticsServiceSuite 运行测试套件
func TestAnalyticsServiceSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}

// TestMemoryModeAnalyticsSuiteRun 运行内存模式测试套件
func TestMemoryModeAnalyticsSuiteRun(t *testing.T) {
	suite.Run(t, new(MemoryModeAnalyticsSuite))
}
