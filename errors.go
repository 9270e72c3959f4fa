package sparsecs

import "github.com/rotisserie/eris"

var (
	ErrEntityNotAlive           = eris.New("entity is not alive")
	ErrInvalidEntity            = eris.New("entity identifier has a null index")
	ErrComponentNotOnEntity     = eris.New("component not on entity")
	ErrComponentAlreadyOnEntity = eris.New("component already on entity")
	ErrIndexSpaceExhausted      = eris.New("entity index space exhausted")

	// ErrIdentifierMismatch is returned when a component bound to one
	// identifier type is used with a World of another identifier type.
	ErrIdentifierMismatch = eris.New("component is bound to a different identifier type")

	// ErrComponentIDCollision is returned when two distinct component types
	// hash to the same ComponentID within one World.
	ErrComponentIDCollision = eris.New("component id collision")

	ErrNilFilter               = eris.New("filter has no pool")
	ErrUnknownPoolKind         = eris.New("unknown pool kind")
	ErrInvalidConfig           = eris.New("invalid configuration")
	ErrContextAlreadyExists    = eris.New("context of the same type already exists")
	ErrSystemAlreadyRegistered = eris.New("system already registered")
)
