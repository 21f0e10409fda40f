package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// SINK_ADDR / ECHO_ADDR point at running sink binaries; scenarios are
	// skipped when the matching address is unset.
	SinkAddr string `envconfig:"SINK_ADDR"`
	EchoAddr string `envconfig:"ECHO_ADDR"`
	// E2E_DEBUG_JSON allows dumping full gRPC stream messages as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
