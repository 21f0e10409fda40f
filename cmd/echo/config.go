package main

type Config struct {
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	PacketEvery int32  `env:"PACKET_SAMPLE_INTERVAL,default=30" validate:"gte=1"`
}
