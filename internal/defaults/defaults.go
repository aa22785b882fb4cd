package defaults

import (
	"runtime"

	"go.opentelemetry.io/otel/trace/noop"
)

var (
	Concurrency    = runtime.NumCPU()
	TracerProvider = noop.NewTracerProvider()
)
