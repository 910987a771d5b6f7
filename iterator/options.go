package iterator

import (
	"github.com/on-the-ground/tail_ive_go/internal/logging"
	"go.uber.org/zap"
)

type TailOption = func(*tailConfig)

type tailConfig struct {
	logger *zap.Logger
}

func newTailConfig(opts []TailOption) tailConfig {
	var cfg tailConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.logger = logging.OrNop(cfg.logger)
	return cfg
}

// WithLogger sets the logger a Tail reports its drain on. Debug level only.
func WithLogger(logger *zap.Logger) TailOption {
	if logger == nil {
		panic("logger can't be nil")
	}
	return func(c *tailConfig) {
		c.logger = logger
	}
}
