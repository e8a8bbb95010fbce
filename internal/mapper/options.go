package mapper

import "log/slog"

// Option configures a CrsDataMapper.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

func defaultConfig() *config {
	return &config{
		logger: slog.Default(),
	}
}

// WithLogger sets a custom logger.
// Default: slog.Default(). If nil is passed, uses slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
