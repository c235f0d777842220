package orchestra

import "log/slog"

// InitFunc constructs a Driver scoped to namespace, given DSN-style
// params (see GetParam) for backend-specific configuration.
type InitFunc func(namespace string, logger *slog.Logger, params map[string]string) (Driver, error)

var drivers = map[string]InitFunc{}

func Add(driverName string, init InitFunc) {
	drivers[driverName] = init
}

func Each(f func(string, InitFunc)) {
	for name, init := range drivers {
		f(name, init)
	}
}

func Get(driverName string) (InitFunc, bool) {
	init, ok := drivers[driverName]

	return init, ok
}
