package scenario

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics 回放过程的 Prometheus 指标.
type Metrics struct {
	registry *prometheus.Registry

	unions  prometheus.Counter
	merges  prometheus.Counter
	queries prometheus.Counter
	errors  prometheus.Counter
	groups  prometheus.Gauge
}

// NewMetrics 创建指标集合，使用独立注册表避免与默认注册表冲突.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "dsctl"
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		unions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unions_total",
			Help:      "Total number of union calls.",
		}),
		merges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "merges_total",
			Help:      "Total number of unions that joined two distinct groups.",
		}),
		queries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Total number of connectedness queries.",
		}),
		errors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Total number of rejected operations.",
		}),
		groups: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "groups",
			Help:      "Number of distinct groups after the last replay.",
		}),
	}

	m.registry.MustRegister(m.unions, m.merges, m.queries, m.errors, m.groups)
	return m
}

// Registry 返回底层注册表.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteText 以 Prometheus 文本格式输出全部指标.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
