package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	sensorpb "stargazer-sink/proto/sensor"
	streampb "stargazer-sink/proto/stream"

	"github.com/Netflix/go-env"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Exit codes for the probe application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// result summarizes one publishing run against one endpoint.
type result struct {
	Endpoint string
	Sent     int
	Acked    int
	Elapsed  time.Duration
}

func main() {
	// The main function manages the OS exit code based on run()'s return.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Probe error: %v\n", err)
	}
	os.Exit(code)
}

// run streams synthetic telemetry at a diagnostic sink so publishers can
// validate connectivity and throughput without real sensor hardware.
func run() (int, error) {
	// 1. Load configuration from environment variables.
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Setup context to handle termination signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Establish connection to the sink.
	conn, err := grpc.NewClient(config.ServerAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to sink at %s: %w", config.ServerAddress, err)
	}
	defer func() {
		log.Info("Closing connection...")
		_ = conn.Close()
	}()

	payload, err := loadPayload(log, config.ImagePath)
	if err != nil {
		return exitRuntime, err
	}

	log.Info("Starting probe",
		"server", config.ServerAddress,
		"mode", config.Mode,
		"count", config.Count)

	var res result
	switch config.Mode {
	case "camera":
		res, err = runCamera(ctx, log, sensorpb.NewSensorClient(conn), config, payload)
	case "inertial":
		res, err = runInertial(ctx, log, sensorpb.NewSensorClient(conn), config)
	case "stream":
		res, err = runStream(ctx, log, streampb.NewDataStreamClient(conn), config, payload)
	}
	if err != nil {
		return exitRuntime, err
	}

	printSummary(res)
	return exitOK, nil
}

// loadPayload returns the image bytes streamed with every camera frame:
// either a real file from disk (sniffed so the operator sees what is
// actually being sent) or a synthetic gradient.
func loadPayload(log *slog.Logger, path string) ([]byte, error) {
	if path == "" {
		payload := make([]byte, 64*48)
		for i := range payload {
			payload[i] = byte(i % 256)
		}
		return payload, nil
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read image payload %s: %w", path, err)
	}
	mime := mimetype.Detect(payload)
	log.Info("Using image payload from disk",
		"path", path,
		"mime", mime.String(),
		"bytes", len(payload))
	return payload, nil
}

func runCamera(ctx context.Context, log *slog.Logger, client sensorpb.SensorClient, config Config, payload []byte) (result, error) {
	stream, err := client.PublishCameraImage(ctx)
	if err != nil {
		return result{}, fmt.Errorf("failed to open camera stream: %w", err)
	}

	res := result{Endpoint: "PublishCameraImage"}
	start := time.Now()
	for i := 0; i < config.Count; i++ {
		if err := pace(ctx, config.SendInterval, i); err != nil {
			break
		}
		msg := &sensorpb.CameraImageMessage{
			Name:      "probe-camera",
			Timestamp: time.Now().UnixNano(),
			Values:    []*sensorpb.CameraImage{{ImageData: payload, Intrinsics: syntheticIntrinsics(config)}},
		}
		if err := stream.Send(msg); err != nil {
			log.Warn("send failed, closing stream", "sent", res.Sent, "error", err)
			break
		}
		res.Sent++
	}

	if _, err := stream.CloseAndRecv(); err != nil {
		return res, fmt.Errorf("camera stream did not ack: %w", err)
	}
	res.Acked = 1
	res.Elapsed = time.Since(start)
	return res, nil
}

func runInertial(ctx context.Context, log *slog.Logger, client sensorpb.SensorClient, config Config) (result, error) {
	stream, err := client.PublishInertial(ctx)
	if err != nil {
		return result{}, fmt.Errorf("failed to open inertial stream: %w", err)
	}

	res := result{Endpoint: "PublishInertial"}
	start := time.Now()
	for i := 0; i < config.Count; i++ {
		if err := pace(ctx, config.SendInterval, i); err != nil {
			break
		}
		msg := &sensorpb.InertialMessage{
			Name:      "probe-inertial",
			Timestamp: time.Now().UnixNano(),
			Values:    syntheticSamples(config.SamplesPerMsg, i),
		}
		if err := stream.Send(msg); err != nil {
			log.Warn("send failed, closing stream", "sent", res.Sent, "error", err)
			break
		}
		res.Sent++
	}

	if _, err := stream.CloseAndRecv(); err != nil {
		return res, fmt.Errorf("inertial stream did not ack: %w", err)
	}
	res.Acked = 1
	res.Elapsed = time.Since(start)
	return res, nil
}

// runStream exercises the bidirectional variant and verifies the echo
// contract on the fly: response N must carry received_packets == N.
func runStream(ctx context.Context, log *slog.Logger, client streampb.DataStreamClient, config Config, payload []byte) (result, error) {
	stream, err := client.StreamData(ctx)
	if err != nil {
		return result{}, fmt.Errorf("failed to open data stream: %w", err)
	}

	deviceID := uuid.NewString()
	res := result{Endpoint: "StreamData"}
	start := time.Now()
	for i := 0; i < config.Count; i++ {
		if err := pace(ctx, config.SendInterval, i); err != nil {
			break
		}
		packet := &streampb.DataPacket{
			DeviceId:  deviceID,
			Timestamp: time.Now().UnixNano(),
			Camera: &streampb.CameraData{
				ImageData:  payload,
				Intrinsics: syntheticFlatIntrinsics(config),
			},
		}
		if err := stream.Send(packet); err != nil {
			log.Warn("send failed, closing stream", "sent", res.Sent, "error", err)
			break
		}
		res.Sent++

		resp, err := stream.Recv()
		if err != nil {
			log.Warn("no response for packet", "sent", res.Sent, "error", err)
			break
		}
		res.Acked++
		if !resp.GetSuccess() || resp.GetReceivedPackets() != int32(res.Sent) {
			log.Warn("unexpected response",
				"sent", res.Sent,
				"received_packets", resp.GetReceivedPackets(),
				"success", resp.GetSuccess(),
				"message", resp.GetMessage())
		}
	}

	_ = stream.CloseSend()
	res.Elapsed = time.Since(start)
	return res, nil
}

// pace sleeps one send interval, except before the first message.
func pace(ctx context.Context, interval time.Duration, i int) error {
	if i == 0 || interval <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(interval):
		return nil
	}
}

func syntheticIntrinsics(config Config) *sensorpb.CameraIntrinsics {
	if !config.WithIntrinsics {
		return nil
	}
	return &sensorpb.CameraIntrinsics{
		FocalLength:    &sensorpb.Vector2{X: 525.0, Y: 525.0},
		PrincipalPoint: &sensorpb.Vector2{X: 320.0, Y: 240.0},
		ImageSize:      &sensorpb.Vector2Int{X: 640, Y: 480},
		Distortion:     &sensorpb.LensDistortion{K1: 0.12, K2: -0.27, P1: 0.001, P2: -0.002, K3: 0.08},
	}
}

func syntheticFlatIntrinsics(config Config) *streampb.Intrinsics {
	if !config.WithIntrinsics {
		return nil
	}
	return &streampb.Intrinsics{Fx: 525.0, Fy: 525.0, Cx: 320.0, Cy: 240.0, Width: 640, Height: 480}
}

// syntheticSamples fabricates a smooth inertial batch; the sink only
// counts samples, but a realistic shape helps when eyeballing captures.
func syntheticSamples(count, seq int) []*sensorpb.InertialSample {
	return lo.Times(count, func(i int) *sensorpb.InertialSample {
		t := float64(seq*count+i) / 100.0
		return &sensorpb.InertialSample{
			Acceleration:    &sensorpb.Vector3{X: math.Sin(t), Y: math.Cos(t), Z: 9.81},
			AngularVelocity: &sensorpb.Vector3{X: 0.1 * math.Cos(t), Y: 0.1 * math.Sin(t), Z: 0},
		}
	})
}

func printSummary(res result) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Endpoint", "Sent", "Acked", "Elapsed"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.Append([]string{
		res.Endpoint,
		strconv.Itoa(res.Sent),
		strconv.Itoa(res.Acked),
		res.Elapsed.Round(time.Millisecond).String(),
	})
	table.Render()
}
