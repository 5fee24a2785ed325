package dispatcher

// Config is the read-only dispatch configuration. It can be loaded from the
// environment with config.Load.
type Config struct {
	// Debug logs every dispatched request at debug level.
	Debug bool `env:"MVC_DEBUG" envDefault:"false"`
	// StaticFolders are path prefixes served as static content, bypassing routing.
	StaticFolders []string `env:"MVC_STATIC_FOLDERS" envSeparator:","`
	// NotFoundView names the view rendered for unmatched requests. Empty
	// means a plain text 404 message.
	NotFoundView string `env:"MVC_VIEW_404"`
	// ContextPath is the deployment root stripped from request paths.
	ContextPath string `env:"MVC_CONTEXT_PATH"`
}

// DefaultConfig returns the zero configuration: no static folders, no custom
// 404 view, deployed at the root.
func DefaultConfig() Config {
	return Config{}
}
