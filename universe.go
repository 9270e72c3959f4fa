package sparsecs

import (
	"reflect"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Universe owns one World per identifier type, created on first request, and
// the systems that update them. Independent universes share nothing.
//
// A Universe is not safe for concurrent use.
type Universe struct {
	ctx     Context
	systems systemManager
	opts    []Option
	logger  zerolog.Logger
}

// NewUniverse creates an empty Universe. opts are applied to every World it
// creates.
func NewUniverse(opts ...Option) *Universe {
	o := newOptions(opts)
	return &Universe{
		systems: newSystemManager(),
		opts:    opts,
		logger:  o.logger,
	}
}

// Context returns the registry holding the Worlds of u.
func (u *Universe) Context() *Context { return &u.ctx }

// Logger returns the logger of u. While a system runs it carries the system
// name.
func (u *Universe) Logger() *zerolog.Logger {
	if name := u.systems.current; name != "" {
		l := SystemLogger(&u.logger, name)
		return &l
	}
	return &u.logger
}

// WorldOf returns the World for identifier type E, creating it on first use.
func WorldOf[E Identifier](u *Universe) *World[E] {
	return Resolve(&u.ctx, func() *World[E] {
		u.logger.Debug().Str("identifier", reflect.TypeFor[E]().String()).Msg("world created")
		return NewWorld[E](u.opts...)
	})
}

// BaseWorld returns the World of the base identifier type Entity.
func BaseWorld(u *Universe) *World[Entity] {
	return WorldOf[Entity](u)
}

// Close unconfigures every system, newest first, then closes and drops every
// World and context value. u can be reused afterwards.
func (u *Universe) Close() error {
	var first error
	for i := len(u.systems.names) - 1; i >= 0; i-- {
		name := u.systems.names[i]
		if _, err := u.UnregisterSystem(name); err != nil && first == nil {
			first = err
		}
	}
	if err := u.ctx.Close(); err != nil && first == nil {
		first = eris.Wrap(err, "close context")
	}
	return first
}

// checkBinding fails unless component T is bound to identifier type E.
func checkBinding[T any, E Identifier]() error {
	info := resolveComponent[T]()
	if want := reflect.TypeFor[E](); info.identifier != want {
		return eris.Wrapf(ErrIdentifierMismatch, "component %s is bound to %s, not %s",
			info.name, info.identifier, want)
	}
	return nil
}
