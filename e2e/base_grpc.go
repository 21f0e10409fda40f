package e2e

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	sensorpb "stargazer-sink/proto/sensor"
	streampb "stargazer-sink/proto/stream"
)

type BaseGrpcSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseGrpcSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

// GrpcConn initializes a gRPC connection with logging, colors, and JSON debugging
func (s *BaseGrpcSuite) GrpcConn(t *testing.T, name string, addr string) *grpc.ClientConn {
	// 1. Print a colorized header for the connection step in logs
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	// 2. Setup JSON marshaler for debugging protobuf messages
	marshaler := protojson.MarshalOptions{
		UseProtoNames:   true,
		Multiline:       true,
		EmitUnpopulated: true,
	}

	// 3. Create the client with a Stream Interceptor for logging
	// (all sink endpoints are streaming, so a unary interceptor would never fire)
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStreamInterceptor(func(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, streamer grpc.Streamer, opts ...grpc.CallOption) (grpc.ClientStream, error) {
			start := time.Now()
			stream, err := streamer(ctx, desc, cc, method, opts...)
			t.Logf("GRPC %s [%s] opened in %v", method, status.Code(err), time.Since(start))

			// Log full JSON stream messages if E2E_DEBUG_JSON is enabled
			if err != nil || !s.Config.DebugJSON {
				return stream, err
			}
			return &loggingStream{ClientStream: stream, t: t, method: method, marshaler: marshaler}, nil
		}),
	)
	s.Require().NoError(err, "Failed to connect to gRPC server at "+addr)
	return conn
}

// loggingStream dumps every sent/received stream message as JSON.
type loggingStream struct {
	grpc.ClientStream
	t         *testing.T
	method    string
	marshaler protojson.MarshalOptions
}

func (l *loggingStream) SendMsg(m any) error {
	if msg, ok := m.(proto.Message); ok {
		l.t.Logf("SEND %s\n%s", l.method, l.marshaler.Format(msg))
	}
	return l.ClientStream.SendMsg(m)
}

func (l *loggingStream) RecvMsg(m any) error {
	err := l.ClientStream.RecvMsg(m)
	if err == nil {
		if msg, ok := m.(proto.Message); ok {
			l.t.Logf("RECV %s\n%s", l.method, l.marshaler.Format(msg))
		}
	}
	return err
}

// WithSensor provides a Sensor client (unidirectional sink) within a contextual test step
func (s *BaseGrpcSuite) WithSensor(name string, fn func(ctx context.Context, client sensorpb.SensorClient)) {
	conn := s.GrpcConn(s.T(), name, s.Config.SinkAddr)
	defer conn.Close()

	client := sensorpb.NewSensorClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fn(ctx, client)
}

// WithDataStream provides a DataStream client (bidirectional echo sink) within a contextual test step
func (s *BaseGrpcSuite) WithDataStream(name string, fn func(ctx context.Context, client streampb.DataStreamClient)) {
	conn := s.GrpcConn(s.T(), name, s.Config.EchoAddr)
	defer conn.Close()

	client := streampb.NewDataStreamClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fn(ctx, client)
}
