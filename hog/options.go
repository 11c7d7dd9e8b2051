package hog

import (
	"go.viam.com/hogview/logging"
)

type options struct {
	logger   logging.Logger
	parallel bool
}

// Option configures how a Grid is built.
type Option func(*options)

// WithLogger sets the logger grid construction reports to. It only logs at debug level.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithParallel spreads the per pixel work over goroutines. Results are identical to the
// sequential pass.
func WithParallel(parallel bool) Option {
	return func(o *options) {
		o.parallel = parallel
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logging.NewBlankLogger("hog")
	}
	return o
}
