package sparsecs

import (
	"slices"

	"github.com/rotisserie/eris"
)

// System is a unit of game logic run by Universe.Update.
type System interface {
	Update(u *Universe) error
}

// Configurer is implemented by systems that set up state when registered.
type Configurer interface {
	Configure(u *Universe) error
}

// Unconfigurer is implemented by systems that tear down state when
// unregistered or when the Universe closes.
type Unconfigurer interface {
	Unconfigure(u *Universe) error
}

// SystemFunc adapts a function to System.
type SystemFunc func(u *Universe) error

func (f SystemFunc) Update(u *Universe) error { return f(u) }

// systemManager runs systems in registration order.
type systemManager struct {
	names   []string
	systems map[string]System
	current string
}

func newSystemManager() systemManager {
	return systemManager{systems: make(map[string]System)}
}

func (m *systemManager) add(name string, s System) error {
	if name == "" {
		return eris.New("system name is empty")
	}
	if _, ok := m.systems[name]; ok {
		return eris.Wrapf(ErrSystemAlreadyRegistered, "%q", name)
	}
	m.names = append(m.names, name)
	m.systems[name] = s
	return nil
}

func (m *systemManager) remove(name string) (System, bool) {
	s, ok := m.systems[name]
	if !ok {
		return nil, false
	}
	delete(m.systems, name)
	m.names = slices.DeleteFunc(m.names, func(n string) bool { return n == name })
	return s, true
}

// RegisterSystem adds s under name and runs its Configure hook. If the hook
// fails the system is not registered.
func (u *Universe) RegisterSystem(name string, s System) error {
	if err := u.systems.add(name, s); err != nil {
		return err
	}
	if c, ok := s.(Configurer); ok {
		if err := c.Configure(u); err != nil {
			u.systems.remove(name)
			return eris.Wrapf(err, "configure system %s", name)
		}
	}
	u.logger.Debug().Str("system", name).Msg("system registered")
	return nil
}

// UnregisterSystem removes the system registered under name and runs its
// Unconfigure hook. It reports whether a system was removed.
func (u *Universe) UnregisterSystem(name string) (bool, error) {
	s, ok := u.systems.remove(name)
	if !ok {
		return false, nil
	}
	if uc, ok := s.(Unconfigurer); ok {
		if err := uc.Unconfigure(u); err != nil {
			return true, eris.Wrapf(err, "unconfigure system %s", name)
		}
	}
	return true, nil
}

// Update runs every system once in registration order and stops at the
// first error. Systems must not register or unregister systems while
// Update runs.
func (u *Universe) Update() error {
	defer func() { u.systems.current = "" }()
	for _, name := range u.systems.names {
		u.systems.current = name
		if err := u.systems.systems[name].Update(u); err != nil {
			return eris.Wrapf(err, "system %s generated an error", name)
		}
	}
	return nil
}

// Systems returns the registered system names in run order.
func (u *Universe) Systems() []string {
	return slices.Clone(u.systems.names)
}

// CurrentSystem returns the name of the running system, or "" outside
// Update.
func (u *Universe) CurrentSystem() string {
	return u.systems.current
}
