// Package scenario 加载并回放并查集操作场景.
package scenario

import "fmt"

// Scenario 一次回放的输入.
//
// 文件格式示例 (yaml):
//
//	size: 5
//	unions:
//	  - [0, 1]
//	  - [2, 3]
//	queries: [0, 4]
type Scenario struct {
	// Size 元素总数 n
	Size int `json:"size" yaml:"size" mapstructure:"size"`

	// Unions 依次执行的 union(a, b)
	Unions [][]int `json:"unions" yaml:"unions" mapstructure:"unions"`

	// Queries 合并完成后查询的索引，为空时查询全部元素
	Queries []int `json:"queries" yaml:"queries" mapstructure:"queries"`
}

// Validate 验证场景结构.
// 索引范围不在此检查，越界由并查集在回放时报告.
func (s *Scenario) Validate() error {
	if s.Size < 0 {
		return fmt.Errorf("size 不能为负: %d", s.Size)
	}
	for i, pair := range s.Unions {
		if len(pair) != 2 {
			return fmt.Errorf("unions[%d] 必须包含两个索引，实际 %d 个", i, len(pair))
		}
	}
	return nil
}

// QueryIndices 返回需要查询的索引.
func (s *Scenario) QueryIndices() []int {
	if len(s.Queries) > 0 {
		return s.Queries
	}
	all := make([]int, s.Size)
	for i := range all {
		all[i] = i
	}
	return all
}
