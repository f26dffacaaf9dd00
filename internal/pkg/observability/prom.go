package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "snippets"
)

var (
	StoreOpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "store", "op_duration_seconds"),
		Help:    "Duration of resource store operations in seconds",
		Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
	}, []string{"backend", "op", "result"})
	SnippetRendered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "snippet", "rendered_total"),
		Help: "Number of snippets rendered, by platform",
	}, []string{"platform"})
	SnippetWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "snippet", "written_total"),
		Help: "Number of snippets written, by platform",
	}, []string{"platform"})
)
