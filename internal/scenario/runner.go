package scenario

import (
	"context"
	"fmt"

	"github.com/Tsukikage7/unionfind-kit/collections/disjointset"
	"github.com/Tsukikage7/unionfind-kit/logger"
)

// QueryResult 单次 connectedness 查询结果.
type QueryResult struct {
	Index         int `json:"index"`
	Connectedness int `json:"connectedness"`
}

// Report 回放结果.
type Report struct {
	Size    int           `json:"size"`
	Merges  int           `json:"merges"`
	Groups  int           `json:"groups"`
	Results []QueryResult `json:"results"`
}

// Runner 场景回放器.
type Runner struct {
	log     logger.Logger
	metrics *Metrics
}

// NewRunner 创建回放器. log 或 metrics 为 nil 时使用空实现.
func NewRunner(log logger.Logger, metrics *Metrics) *Runner {
	if log == nil {
		log = logger.NewNop()
	}
	if metrics == nil {
		metrics = NewMetrics("")
	}
	return &Runner{log: log, metrics: metrics}
}

// Metrics 返回回放器使用的指标集合.
func (r *Runner) Metrics() *Metrics {
	return r.metrics
}

// Run 构造并查集，按顺序执行 unions 后回答 queries.
// 遇到第一个错误即停止.
func (r *Runner) Run(ctx context.Context, sc *Scenario) (*Report, error) {
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	ds, err := disjointset.New(sc.Size)
	if err != nil {
		r.metrics.errors.Inc()
		return nil, fmt.Errorf("%w: new(%d): %w", ErrOperation, sc.Size, err)
	}

	log := r.log.With(logger.Int("size", sc.Size))
	log.Debugf("开始回放: %d 次合并", len(sc.Unions))

	report := &Report{Size: sc.Size}
	for i, pair := range sc.Unions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		a, b := pair[0], pair[1]
		before := ds.Count()
		if err := ds.Union(a, b); err != nil {
			r.metrics.errors.Inc()
			log.With(logger.Int("step", i), logger.Err(err)).Warn("union 失败")
			return nil, fmt.Errorf("%w: unions[%d]=(%d, %d): %w", ErrOperation, i, a, b, err)
		}
		r.metrics.unions.Inc()

		if ds.Count() < before {
			report.Merges++
			r.metrics.merges.Inc()
		}
	}

	indices := sc.QueryIndices()
	report.Results = make([]QueryResult, 0, len(indices))
	for i, idx := range indices {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, err := ds.Connectedness(idx)
		if err != nil {
			r.metrics.errors.Inc()
			log.With(logger.Int("step", i), logger.Err(err)).Warn("connectedness 查询失败")
			return nil, fmt.Errorf("%w: queries[%d]=%d: %w", ErrOperation, i, idx, err)
		}
		r.metrics.queries.Inc()
		report.Results = append(report.Results, QueryResult{Index: idx, Connectedness: n})
	}

	report.Groups = ds.Count()
	r.metrics.groups.Set(float64(report.Groups))

	log.With(logger.Int("merges", report.Merges), logger.Int("groups", report.Groups)).Info("回放完成")
	return report, nil
}
