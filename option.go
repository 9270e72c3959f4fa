package sparsecs

import (
	"maps"

	"github.com/rs/zerolog"
)

// Option configures a World or a Universe.
type Option func(*options)

type options struct {
	logger          zerolog.Logger
	initialCapacity int
	pools           map[string]PoolKind
	level           *zerolog.Level
}

func newOptions(opts []Option) options {
	o := options{
		logger:          zerolog.Nop(),
		initialCapacity: DefaultInitialCapacity,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.level != nil {
		o.logger = o.logger.Level(*o.level)
	}
	return o
}

// WithLogger sets the logger. Worlds and pools log through it at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithInitialCapacity reserves room for n entities.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.initialCapacity = n
		}
	}
}

// WithPoolKind forces the pool kind of T, overriding any trait embedded in T.
func WithPoolKind[T any](kind PoolKind) Option {
	name := ComponentName[T]()
	return func(o *options) {
		if o.pools == nil {
			o.pools = make(map[string]PoolKind)
		}
		o.pools[name] = kind
	}
}

// WithConfig applies a validated Config. The logger level is set to
// cfg.LogLevel whatever the order of WithLogger; the logger itself is left
// to WithLogger.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.initialCapacity = cfg.InitialCapacity
		if lvl, err := cfg.Level(); err == nil {
			o.level = &lvl
		}
		if len(cfg.Pools) > 0 {
			if o.pools == nil {
				o.pools = make(map[string]PoolKind, len(cfg.Pools))
			}
			maps.Copy(o.pools, cfg.Pools)
		}
	}
}
