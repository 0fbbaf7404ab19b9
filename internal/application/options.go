package application

import (
	"time"

	"go.uber.org/zap"
)

const DefaultUpstreamTimeout = 5 * time.Second

type options struct {
	clock   Clock
	timeout time.Duration
	log     *zap.Logger
}

type Option func(*options)

func WithClock(c Clock) Option { return func(o *options) { o.clock = c } }

// WithUpstreamTimeout bounds a single live quote fetch. Non-positive values
// keep the default.
func WithUpstreamTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

func WithLogger(l *zap.Logger) Option { return func(o *options) { o.log = l } }

func buildOptions(opts []Option) options {
	o := options{timeout: DefaultUpstreamTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock == nil {
		o.clock = realClock{}
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	return o
}
