package disjointset

import "errors"

// 预定义错误常量.
var (
	// ErrInvalidArgument 构造参数非法（元素数量为负）.
	ErrInvalidArgument = errors.New("参数非法")

	// ErrIndexOutOfRange 元素索引越界.
	ErrIndexOutOfRange = errors.New("索引越界")
)
