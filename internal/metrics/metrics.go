// Package metrics owns the service metrics registry and the otel export
// pipeline on top of it. The diagnostic /metrics endpoint serves both the
// otel instruments and the collection gauges registered here.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric/global"
	export "go.opentelemetry.io/otel/sdk/export/metric"
	"go.opentelemetry.io/otel/sdk/metric/aggregator/histogram"
	controller "go.opentelemetry.io/otel/sdk/metric/controller/basic"
	processor "go.opentelemetry.io/otel/sdk/metric/processor/basic"
	selector "go.opentelemetry.io/otel/sdk/metric/selector/simple"
)

// Custom registry to avoid default Go metrics.
// nolint
var customRegistry = prometheus.NewRegistry()

// nolint
var collectionSize = promauto.With(customRegistry).NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "httpmethods",
	Subsystem: "store",
	Name:      "collection_size",
	Help:      "Current number of records held per collection",
}, []string{"resource"})

// Init builds the otel metric pipeline on the shared registry and installs
// it as the global meter provider. The returned exporter serves the
// prometheus exposition format over HTTP.
func Init() (*otelprom.Exporter, error) {
	config := otelprom.Config{Registry: customRegistry}
	c := controller.New(
		processor.New(
			selector.NewWithHistogramDistribution(
				histogram.WithExplicitBoundaries(config.DefaultHistogramBoundaries),
			),
			export.CumulativeExportKindSelector(),
			processor.WithMemory(true),
		),
	)

	exporter, err := otelprom.New(config, c)
	if err != nil {
		return nil, fmt.Errorf("prometheus exporter: %w", err)
	}

	global.SetMeterProvider(exporter.MeterProvider())

	return exporter, nil
}

// SetCollectionSize publishes the current record count of a collection.
func SetCollectionSize(resource string, n int) {
	collectionSize.WithLabelValues(resource).Set(float64(n))
}
