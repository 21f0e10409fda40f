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
	pb "stargazer-sink/proto/stream"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

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

// run initializes the bidirectional echo-ingest sink. Same lifecycle as
// the sensor sink: one listener, serve until a signal, report startup
// failures through main().
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
	pb.RegisterDataStreamServer(s, grpc2.NewDataStreamServer(log, config.PacketEvery))
	reflection.Register(s)

	errChan := make(chan error, 1)
	go func() {
		log.Info("Echo sink listening",
			"address", address,
			"packet_sample_interval", config.PacketEvery)
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
