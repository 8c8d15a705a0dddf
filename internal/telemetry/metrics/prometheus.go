package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus creates the registry with the go, process and build info collectors.
// Extra collectors (the db pool one) are registered under a constant service label.
func SetupPrometheus(serviceName string, extraCollectors ...prometheus.Collector) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	serviceRegisterer := prometheus.WrapRegistererWith(prometheus.Labels{"service": serviceName}, promRegistry)
	for _, c := range extraCollectors {
		if c != nil {
			serviceRegisterer.MustRegister(c)
		}
	}

	return promRegistry
}
