package sparsecs

import "github.com/rs/zerolog"

func loadComponentIntoArrayLogger(info ComponentInfo, arrayLogger *zerolog.Array) *zerolog.Array {
	dictLogger := zerolog.Dict().
		Uint64("component_id", uint64(info.ID)).
		Str("component_name", info.Name).
		Str("pool", info.Kind.String())
	return arrayLogger.Dict(dictLogger)
}

func loadComponentsToEvent(event *zerolog.Event, components []ComponentInfo) *zerolog.Event {
	arrayLogger := zerolog.Arr()
	for _, info := range components {
		arrayLogger = loadComponentIntoArrayLogger(info, arrayLogger)
	}
	return event.Int("total_components", len(components)).Array("components", arrayLogger)
}

// LogWorld logs the entity count and registered components of w.
func LogWorld[E Identifier](logger *zerolog.Logger, w *World[E], level zerolog.Level) {
	event := logger.WithLevel(level).Int("total_entities", w.Len())
	loadComponentsToEvent(event, w.Components()).Send()
}

// LogEntity logs e and the components attached to it.
func LogEntity[E Identifier](logger *zerolog.Logger, w *World[E], e E, level zerolog.Level) {
	event := logger.WithLevel(level).
		Str("entity", FormatEntity(e)).
		Bool("alive", w.Alive(e))
	loadComponentsToEvent(event, w.ComponentsOf(e)).Send()
}

// LogSystems logs the registered systems of u in run order.
func LogSystems(logger *zerolog.Logger, u *Universe, level zerolog.Level) {
	names := u.Systems()
	arrayLogger := zerolog.Arr()
	for _, name := range names {
		arrayLogger = arrayLogger.Str(name)
	}
	logger.WithLevel(level).Int("total_systems", len(names)).Array("systems", arrayLogger).Send()
}

// SystemLogger returns a child of logger tagged with the system name.
func SystemLogger(logger *zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("system", name).Logger()
}
