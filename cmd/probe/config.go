package main

import "time"

// Config defines the probe-side environment variables.
type Config struct {
	ServerAddress  string        `env:"SINK_SERVER_ADDR,default=localhost:50051"`
	Mode           string        `env:"PROBE_MODE,default=camera" validate:"oneof=camera inertial stream"`
	Count          int           `env:"PROBE_COUNT,default=90" validate:"gte=0"`
	SendInterval   time.Duration `env:"PROBE_SEND_INTERVAL,default=10ms"`
	SamplesPerMsg  int           `env:"PROBE_SAMPLES_PER_MESSAGE,default=32" validate:"gte=1"`
	ImagePath      string        `env:"PROBE_IMAGE_PATH"`
	WithIntrinsics bool          `env:"PROBE_WITH_INTRINSICS,default=true"`
	LogLevel       string        `env:"LOG_LEVEL,default=info"`
}
