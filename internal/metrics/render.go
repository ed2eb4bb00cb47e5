package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var renderDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "resumekit",
		Subsystem: "render",
		Name:      "duration_seconds",
		Help:      "简历 HTML 渲染耗时分布（秒）。",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"template"},
)

// ObserveRender 记录一次渲染耗时。
func ObserveRender(template string, elapsed time.Duration) {
	renderDuration.WithLabelValues(template).Observe(elapsed.Seconds())
}
