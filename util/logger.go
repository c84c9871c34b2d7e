package util

// Logger receives diagnostic events from utility operations: skipped entries,
// missing directories, pass summaries. It is satisfied by *log.Logger and by
// logrus loggers alike.
type Logger interface {
	Printf(format string, v ...any)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

// Option configures a utility operation.
type Option func(*options)

type options struct {
	log Logger
}

// WithLogger routes diagnostic events to l instead of discarding them.
func WithLogger(l Logger) Option {
	return func(o *options) { o.log = l }
}

func newOptions(opts []Option) options {
	o := options{log: nopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
