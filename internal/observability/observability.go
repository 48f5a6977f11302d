// Package observability wires the process-wide logger and tracer.
package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/config"
)

const serviceName = "orders-backoffice"

var Module = fx.Module("observability",
	fx.Provide(NewLogger),
	fx.Invoke(SetupTracing),
)

func NewLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// SetupTracing installs an OTLP gRPC tracer provider for the process. When
// tracing is disabled the default no-op provider stays in place.
func SetupTracing(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) {
	if !cfg.Otel.Enabled {
		return
	}

	var tp *sdktrace.TracerProvider
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			exporter, err := otlptracegrpc.New(ctx,
				otlptracegrpc.WithEndpoint(cfg.Otel.Endpoint),
				otlptracegrpc.WithInsecure(),
			)
			if err != nil {
				return err
			}
			res, err := resource.Merge(resource.Default(),
				resource.NewWithAttributes(semconv.SchemaURL,
					semconv.ServiceName(serviceName),
				))
			if err != nil {
				return err
			}
			tp = sdktrace.NewTracerProvider(
				sdktrace.WithBatcher(exporter),
				sdktrace.WithResource(res),
			)
			otel.SetTracerProvider(tp)
			log.Info("tracing enabled", zap.String("endpoint", cfg.Otel.Endpoint))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if tp == nil {
				return nil
			}
			return tp.Shutdown(ctx)
		},
	})
}
