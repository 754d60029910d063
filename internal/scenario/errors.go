package scenario

import "errors"

// 预定义错误常量.
var (
	// ErrFileNotFound 场景文件不存在.
	ErrFileNotFound = errors.New("场景文件不存在")

	// ErrReadScenario 读取场景失败.
	ErrReadScenario = errors.New("读取场景失败")

	// ErrUnmarshal 解析场景失败.
	ErrUnmarshal = errors.New("解析场景失败")

	// ErrValidation 场景验证失败.
	ErrValidation = errors.New("场景验证失败")

	// ErrOperation 回放操作失败.
	ErrOperation = errors.New("回放操作失败")
)
