package kernels

import "log/slog"

// Option configures a single kernel invocation.
// Use functional options to customize per-call behavior.
//
// Example:
//
//	// Default sequential execution
//	out, err := kernels.Blur(buf, w, h, 5)
//
//	// Row-parallel execution across 4 workers
//	out, err := kernels.Blur(buf, w, h, 5, kernels.WithParallelism(4))
type Option func(*callOptions)

// callOptions holds optional per-call configuration.
type callOptions struct {
	workers int
	logger  *slog.Logger
}

// resolveOptions applies opts over the defaults. The logger defaults to
// the process-wide sink configured with SetLogger.
func resolveOptions(opts []Option) callOptions {
	o := callOptions{
		workers: 1,
		logger:  Logger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithParallelism sets the number of workers used for the row-parallel
// pixel loops (Blur, Mandelbrot). Rows within a pass are independent,
// so splitting them across workers does not change any output byte.
//
// n <= 1 selects the sequential path. n == 0 is treated as 1, not as
// GOMAXPROCS; callers opt into parallelism explicitly.
func WithParallelism(n int) Option {
	return func(o *callOptions) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

// WithLogger overrides the process-wide diagnostic sink for this call
// only. Pass nil to silence the call regardless of SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *callOptions) {
		if l == nil {
			l = newNopLogger()
		}
		o.logger = l
	}
}
