package main

type Config struct {
	LogLevel      string `env:"LOG_LEVEL,default=info"`
	CameraEvery   int32  `env:"CAMERA_SAMPLE_INTERVAL,default=30" validate:"gte=1"`
	InertialEvery int32  `env:"INERTIAL_SAMPLE_INTERVAL,default=100" validate:"gte=1"`
}
