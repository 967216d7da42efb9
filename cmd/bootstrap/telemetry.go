package bootstrap

import (
	"context"

	"petshop-api/internal/infra/observability"
	"petshop-api/internal/pkg/config"
	"petshop-api/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Provide(
		NewRegistry,
		func(reg *prometheus.Registry) prometheus.Registerer { return reg },
		func(reg *prometheus.Registry) prometheus.Gatherer { return reg },
		observability.NewMetrics,
		func(m *observability.Metrics) shared.DomainMetrics { return m },
	),
	fx.Invoke(StartTracer),
)

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func StartTracer(lc fx.Lifecycle, cfg config.Config) error {
	shutdown, err := observability.InitTracer(context.Background(), cfg.Telemetry)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})

	return nil
}
