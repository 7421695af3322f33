package services

import "errors"

// ErrNoDatabase 内存模式下内容数据只读，写操作直接拒绝
var ErrNoDatabase = errors.New("未配置数据库，内容数据为只读模式")

// ValidationError 请求缺少必填项或携带非法取值
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError 引用的实体不存在
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ConflictError 唯一性冲突，或删除被引用关系阻止
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
