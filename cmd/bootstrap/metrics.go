package bootstrap

import (
	"net/http"

	"service-marketplace/internal/handler/middleware"
	"service-marketplace/internal/infra/metrics"
	"service-marketplace/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewMetricsRegistry,
		fx.Annotate(
			metrics.NewCollector,
			fx.As(new(shared.Recorder)),
			fx.As(new(middleware.RequestObserver)),
			fx.As(new(prometheus.Collector)),
		),
		fx.Annotate(
			NewMetricsHandler,
			fx.ResultTags(`name:"metrics"`),
		),
	),
)

func NewMetricsRegistry(c prometheus.Collector) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	for _, col := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c,
	} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func NewMetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}
