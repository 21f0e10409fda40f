package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	grpc2 "stargazer-sink/grpc/server"
	"stargazer-sink/internal"
	pb "stargazer-sink/proto/sensor"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

// Listen-address fallbacks, used when the launcher passes no --host/--port.
const (
	defaultHost = "0.0.0.0"
	defaultPort = "50051"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes the unidirectional sensor sink, manages the server
// lifecycle, and centralizes error reporting so that main() owns the
// exit code and deferred cleanup always executes.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Listen address from process arguments (first --key value pair wins)
	host := internal.LookupArg(os.Args[1:], "--host", defaultHost)
	port := internal.LookupArg(os.Args[1:], "--port", defaultPort)
	address := net.JoinHostPort(host, port)

	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. gRPC Server Setup
	s := grpc.NewServer()
	pb.RegisterSensorServer(s, grpc2.NewSensorServer(log, config.CameraEvery, config.InertialEvery))
	reflection.Register(s)

	// Use an error channel to capture Serve() issues
	errChan := make(chan error, 1)
	go func() {
		log.Info("Sensor sink listening",
			"address", address,
			"camera_sample_interval", config.CameraEvery,
			"inertial_sample_interval", config.InertialEvery)
		if err := s.Serve(listener); err != nil && err != grpc.ErrServerStopped {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 5. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	s.GracefulStop()
	log.Info("Program stopped cleanly")

	return nil
}
