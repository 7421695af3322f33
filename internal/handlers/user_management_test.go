package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/clearsky-tech/bizsite-console/internal/services"
)

// UserManagementHandlerTestSuite 定义用户管理处理器测试套件
type UserManagementHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

// SetupTest 每个测试前重建路由与内存状态
func (s *UserManagementHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	handler := NewUserManagementHandler(services.NewPermissionService())

	s.router = gin.New()
	group := s.router.Group("/api/user-management")
	{
		group.GET("/overview", handler.GetOverview)
		group.GET("/users", handler.ListUsers)
		group.POST("/users", handler.CreateUser)
		group.PUT("/users/:id", handler.UpdateUser)
		group.PATCH("/users/:id/status", handler.UpdateUserStatus)
		group.PATCH("/users/:id/reset-password", handler.ResetUserPassword)
		group.DELETE("/users/:id", handler.DeleteUser)
		group.GET("/roles", handler.ListRoles)
		group.POST("/roles", handler.CreateRole)
		group.DELETE("/roles/:id", handler.DeleteRole)
		group.GET("/menus", handler.ListMenus)
		group.DELETE("/menus/:id", handler.DeleteMenu)
	}
}

func (s *UserManagementHandlerTestSuite) doJSON(method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		s.Require().NoError(err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)
	return w
}

func (s *UserManagementHandlerTestSuite) parseBody(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.Require().NoError(err)
	return response
}

// TestGetOverview 测试总览接口返回内置数据统计
func (s *UserManagementHandlerTestSuite) TestGetOverview() {
	w := s.doJSON("GET", "/api/user-management/overview", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)

	response := s.parseBody(w)
	data := response["data"].(map[string]interface{})
	assert.Equal(s.T(), float64(6), data["totalUsers"])
	assert.Equal(s.T(), float64(4), data["activeUsers"])
	assert.Equal(s.T(), float64(2), data["pendingUsers"])
	assert.Equal(s.T(), float64(5), data["roleCount"])
	assert.Equal(s.T(), float64(12), data["menuCount"])
	assert.Len(s.T(), data["recentUsers"], 6)
}

// TestListUsers 测试用户列表
func (s *UserManagementHandlerTestSuite) TestListUsers() {
	w := s.doJSON("GET", "/api/user-management/users", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)

	response := s.parseBody(w)
	assert.Len(s.T(), response["data"], 6)
}

// TestCreateUser_Success 测试创建用户成功并返回总览
func (s *UserManagementHandlerTestSuite) TestCreateUser_Success() {
	w := s.doJSON("POST", "/api/user-management/users", map[string]interface{}{
		"username": "new.editor",
		"email":    "new.editor@company.com",
		"role_id":  "role-ops",
	})
	assert.Equal(s.T(), http.StatusCreated, w.Code)

	response := s.parseBody(w)
	assert.Equal(s.T(), float64(201), response["code"])

	data := response["data"].(map[string]interface{})
	assert.Equal(s.T(), "new.editor", data["username"])
	assert.NotEmpty(s.T(), data["id"])

	overview := response["overview"].(map[string]interface{})
	assert.Equal(s.T(), float64(7), overview["totalUsers"])
}

// TestCreateUser_MissingFields 测试必填项缺失返回 400
func (s *UserManagementHandlerTestSuite) TestCreateUser_MissingFields() {
	w := s.doJSON("POST", "/api/user-management/users", map[string]interface{}{
		"username": "no.email",
	})
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

// TestCreateUser_Duplicate 测试重复用户名返回 409
func (s *UserManagementHandlerTestSuite) TestCreateUser_Duplicate() {
	w := s.doJSON("POST", "/api/user-management/users", map[string]interface{}{
		"username": "admin",
		"email":    "another@company.com",
		"role_id":  "role-ops",
	})
	assert.Equal(s.T(), http.StatusConflict, w.Code)

	response := s.parseBody(w)
	assert.Equal(s.T(), "用户名或邮箱已存在", response["message"])
}

// TestUpdateUserStatus_Invalid 测试非法状态值返回 400
func (s *UserManagementHandlerTestSuite) TestUpdateUserStatus_Invalid() {
	w := s.doJSON("PATCH", "/api/user-management/users/user-admin/status", map[string]interface{}{
		"status": "banned",
	})
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
}

// TestResetUserPassword 测试重置密码返回临时凭据
func (s *UserManagementHandlerTestSuite) TestResetUserPassword() {
	w := s.doJSON("PATCH", "/api/user-management/users/user-admin/reset-password", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)

	response := s.parseBody(w)
	data := response["data"].(map[string]interface{})
	assert.Equal(s.T(), "user-admin", data["userId"])
	assert.Contains(s.T(), data["temporaryPassword"], "Reset@")
}

// TestDeleteUser_NotFound 测试删除不存在的用户返回 404
func (s *UserManagementHandlerTestSuite) TestDeleteUser_NotFound() {
	w := s.doJSON("DELETE", "/api/user-management/users/user-ghost", nil)
	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

// TestCreateRole_Conflict 测试角色名冲突返回 409
func (s *UserManagementHandlerTestSuite) TestCreateRole_Conflict() {
	w := s.doJSON("POST", "/api/user-management/roles", map[string]interface{}{
		"name":        "运营经理",
		"description": "重复角色",
	})
	assert.Equal(s.T(), http.StatusConflict, w.Code)
}

// TestDeleteRole_InUse 测试删除被引用角色返回 409
func (s *UserManagementHandlerTestSuite) TestDeleteRole_InUse() {
	w := s.doJSON("DELETE", "/api/user-management/roles/role-support", nil)
	assert.Equal(s.T(), http.StatusConflict, w.Code)

	response := s.parseBody(w)
	assert.Equal(s.T(), "请先解除与用户的关联后再删除角色", response["message"])
}

// TestListMenus 测试菜单树返回三个顶级节点
func (s *UserManagementHandlerTestSuite) TestListMenus() {
	w := s.doJSON("GET", "/api/user-management/menus", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)

	response := s.parseBody(w)
	assert.Len(s.T(), response["data"], 3)
}

// TestDeleteMenu_WithChildren 测试删除带子菜单的节点返回 400
func (s *UserManagementHandlerTestSuite) TestDeleteMenu_WithChildren() {
	w := s.doJSON("DELETE", "/api/user-management/menus/content-center", nil)
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)

	response := s.parseBody(w)
	assert.Equal(s.T(), "请先删除子菜单", response["message"])
}

// TestDeleteMenu_Leaf 测试删除叶子菜单返回最新菜单树
func (s *UserManagementHandlerTestSuite) TestDeleteMenu_Leaf() {
	w := s.doJSON("DELETE", "/api/user-management/menus/consultations", nil)
	assert.Equal(s.T(), http.StatusOK, w.Code)

	response := s.parseBody(w)
	menus := response["data"].([]interface{})
	assert.Len(s.T(), menus, 3)

	// 内容中心下应只剩三个子菜单
	for _, raw := range menus {
		node := raw.(map[string]interface{})
		if node["id"] == "content-center" {
			assert.Len(s.T(), node["children"], 3)
		}
	}
}

// TestUserManagementHandlerSuite 运行测试套件
func TestUserManagementHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserManagementHandlerTestSuite))
}
