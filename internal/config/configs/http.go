package configs

import "time"

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// AllowedOrigins feeds the CORS middleware used by the browser wizard.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	// DistributeTimeout bounds one fan-out request including every platform
	// call.
	DistributeTimeout time.Duration `env:"DISTRIBUTE_TIMEOUT" envDefault:"2m"`
	ReadTimeout       time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}
