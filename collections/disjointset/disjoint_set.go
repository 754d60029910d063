// Package disjointset 提供固定规模的并查集实现.
package disjointset

import "fmt"

// node 单个元素的记录.
type node struct {
	parent int // 根节点指向自身
	rank   int // 仅根节点有效
	size   int // 仅根节点有效，即 connectedness
}

// DisjointSet 并查集（union-find）.
//
// 元素由 0..n-1 的整数索引标识，规模在构造时确定且不可变.
// 采用按秩合并与路径压缩，单次操作均摊近似 O(1).
//
// 注意：Connectedness 与 Connected 在查找根节点时会做路径压缩，
// 同样会修改内部状态. 结构本身不做任何同步，并发访问时调用方
// 需要对整个结构加互斥锁（读操作也需要独占）.
//
// 示例:
//
//	ds, _ := disjointset.New(5)
//	ds.Union(0, 1)
//	ds.Union(2, 3)
//	ds.Union(1, 2)
//	ds.Connectedness(0) // 4
//	ds.Connectedness(4) // 1
type DisjointSet struct {
	nodes []node
	count int // 剩余的分组数
}

// New 创建包含 n 个元素的并查集，每个元素自成一组.
// n 为负时返回 ErrInvalidArgument，n 为 0 时得到空结构.
func New(n int) (*DisjointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidArgument, n)
	}

	nodes := make([]node, n)
	for i := range nodes {
		nodes[i] = node{parent: i, rank: 0, size: 1}
	}
	return &DisjointSet{nodes: nodes, count: n}, nil
}

// MustNew 创建并查集，失败时 panic.
func MustNew(n int) *DisjointSet {
	ds, err := New(n)
	if err != nil {
		panic(err)
	}
	return ds
}

// Len 返回元素总数.
func (d *DisjointSet) Len() int {
	return len(d.nodes)
}

// Count 返回当前分组数.
func (d *DisjointSet) Count() int {
	return d.count
}

// Union 合并 idx1 与 idx2 所在的分组.
// 两者已在同一分组时不做任何操作.
func (d *DisjointSet) Union(idx1, idx2 int) error {
	if err := d.check(idx1); err != nil {
		return err
	}
	if err := d.check(idx2); err != nil {
		return err
	}

	root1 := d.findRoot(idx1)
	root2 := d.findRoot(idx2)
	if root1 == root2 {
		return nil
	}

	r1, r2 := &d.nodes[root1], &d.nodes[root2]
	switch {
	case r1.rank < r2.rank:
		d.attach(root2, root1)
	case r1.rank > r2.rank:
		d.attach(root1, root2)
	default:
		// 秩相同：root2 挂到 root1 下，root1 的秩加一
		d.attach(root1, root2)
		r1.rank++
	}
	d.count--
	return nil
}

// Connectedness 返回 idx 所在分组的元素数量.
func (d *DisjointSet) Connectedness(idx int) (int, error) {
	if err := d.check(idx); err != nil {
		return 0, err
	}
	return d.nodes[d.findRoot(idx)].size, nil
}

// Connected 判断 idx1 与 idx2 是否在同一分组.
func (d *DisjointSet) Connected(idx1, idx2 int) (bool, error) {
	if err := d.check(idx1); err != nil {
		return false, err
	}
	if err := d.check(idx2); err != nil {
		return false, err
	}
	return d.findRoot(idx1) == d.findRoot(idx2), nil
}

// 内部方法

func (d *DisjointSet) check(idx int) error {
	if idx < 0 || idx >= len(d.nodes) {
		return fmt.Errorf("%w: index=%d, size=%d", ErrIndexOutOfRange, idx, len(d.nodes))
	}
	return nil
}

// findRoot 查找根节点，并将路径上所有节点直接指向根.
func (d *DisjointSet) findRoot(idx int) int {
	root := idx
	for d.nodes[root].parent != root {
		root = d.nodes[root].parent
	}

	for idx != root {
		next := d.nodes[idx].parent
		d.nodes[idx].parent = root
		idx = next
	}
	return root
}

// attach 将 child 根挂到 parent 根下并累加分组大小.
func (d *DisjointSet) attach(parent, child int) {
	d.nodes[child].parent = parent
	d.nodes[parent].size += d.nodes[child].size
}
