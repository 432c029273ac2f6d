package hashtable

import (
	log "github.com/sirupsen/logrus"
)

type options struct {
	logger   log.FieldLogger
	capacity int
}

type Option func(*options)

// WithLogger sets the logger used to report resizes.
func WithLogger(logger log.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCapacity pre-sizes the bucket array so that n entries fit without
// resizing. A non-positive n keeps the lazy zero-bucket start.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

func defaultLogger() log.FieldLogger {
	return log.WithFields(log.Fields{"component": "hashtable"})
}
