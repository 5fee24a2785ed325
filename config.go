package mvc

import (
	"github.com/dmitrymomot/mvc/core/dispatcher"
	"github.com/dmitrymomot/mvc/core/server"
)

// Config is the application configuration. Nested structs are parsed from
// the same environment without a prefix.
type Config struct {
	Dispatcher dispatcher.Config
	Server     server.Config

	AppName string `env:"APP_NAME" envDefault:"mvc"`
	// StaticRoot is the directory served for paths under the static folders.
	StaticRoot string `env:"MVC_STATIC_ROOT"`
}

// DefaultConfig returns the configuration used when nothing is set in the
// environment.
func DefaultConfig() Config {
	return Config{
		Dispatcher: dispatcher.DefaultConfig(),
		Server:     server.DefaultConfig(),
		AppName:    "mvc",
	}
}
