package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	pb "stargazer-sink/proto/sensor"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

// mockCameraStream simulates the client-streaming server stream.
// It embeds the interface to avoid implementing all gRPC internal methods.
type mockCameraStream struct {
	grpc.ClientStreamingServer[pb.CameraImageMessage, emptypb.Empty]
	msgs    []*pb.CameraImageMessage
	idx     int
	recvErr error
	ack     *emptypb.Empty
}

func (m *mockCameraStream) Context() context.Context { return context.Background() }

func (m *mockCameraStream) Recv() (*pb.CameraImageMessage, error) {
	if m.idx >= len(m.msgs) {
		if m.recvErr != nil {
			return nil, m.recvErr
		}
		return nil, io.EOF
	}
	msg := m.msgs[m.idx]
	m.idx++
	return msg, nil
}

func (m *mockCameraStream) SendAndClose(ack *emptypb.Empty) error {
	m.ack = ack
	return nil
}

type mockInertialStream struct {
	grpc.ClientStreamingServer[pb.InertialMessage, emptypb.Empty]
	msgs []*pb.InertialMessage
	idx  int
	ack  *emptypb.Empty
}

func (m *mockInertialStream) Context() context.Context { return context.Background() }

func (m *mockInertialStream) Recv() (*pb.InertialMessage, error) {
	if m.idx >= len(m.msgs) {
		return nil, io.EOF
	}
	msg := m.msgs[m.idx]
	m.idx++
	return msg, nil
}

func (m *mockInertialStream) SendAndClose(ack *emptypb.Empty) error {
	m.ack = ack
	return nil
}

func newTestServer() (*SensorServer, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))
	return NewSensorServer(logger, 30, 100), buf
}

func cameraMessages(count int, images []*pb.CameraImage) []*pb.CameraImageMessage {
	msgs := make([]*pb.CameraImageMessage, count)
	for i := range msgs {
		msgs[i] = &pb.CameraImageMessage{Name: "cam0", Timestamp: int64(i), Values: images}
	}
	return msgs
}

func sampledLines(buf *bytes.Buffer) []string {
	var sampled []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if strings.Contains(line, "sampled message") {
			sampled = append(sampled, line)
		}
	}
	return sampled
}

func TestPublishCameraImage_SamplingAndFinalCount(t *testing.T) {
	req := require.New(t)
	s, buf := newTestServer()

	// 31 messages, one plain image each: messages 1 and 31 are sampled.
	stream := &mockCameraStream{
		msgs: cameraMessages(31, []*pb.CameraImage{{ImageData: []byte{0x01, 0x02, 0x03}}}),
	}

	req.NoError(s.PublishCameraImage(stream))
	req.NotNil(stream.ack, "stream end must be acknowledged")

	sampled := sampledLines(buf)
	req.Len(sampled, 2)
	req.Contains(sampled[0], "received=1")
	req.Contains(sampled[1], "received=31")
	req.Contains(sampled[0], "images=1")
	req.Contains(sampled[0], "image_bytes=3")
	req.NotContains(sampled[0], "intrinsics")
	req.Contains(buf.String(), "total_received=31")
}

func TestPublishCameraImage_EmptyStream(t *testing.T) {
	req := require.New(t)
	s, buf := newTestServer()
	stream := &mockCameraStream{}

	req.NoError(s.PublishCameraImage(stream))
	req.NotNil(stream.ack)
	req.Empty(sampledLines(buf))
	req.Contains(buf.String(), "total_received=0")
}

func TestPublishCameraImage_IntrinsicsLoggedWhenPresent(t *testing.T) {
	req := require.New(t)
	s, buf := newTestServer()

	images := []*pb.CameraImage{{
		ImageData: make([]byte, 3072),
		Intrinsics: &pb.CameraIntrinsics{
			FocalLength:    &pb.Vector2{X: 525, Y: 526},
			PrincipalPoint: &pb.Vector2{X: 320, Y: 240},
			ImageSize:      &pb.Vector2Int{X: 640, Y: 480},
			Distortion:     &pb.LensDistortion{K1: 0.1, K2: -0.25, P1: 0.001, P2: -0.002, K3: 0.05},
		},
	}}
	stream := &mockCameraStream{msgs: cameraMessages(1, images)}

	req.NoError(s.PublishCameraImage(stream))

	sampled := sampledLines(buf)
	req.Len(sampled, 1)
	req.Contains(sampled[0], "image_bytes=3072")
	req.Contains(sampled[0], "fx=525")
	req.Contains(sampled[0], "w=640")
	req.Contains(sampled[0], "k1=0.1")
}

func TestPublishCameraImage_TransportFaultIsEndOfStream(t *testing.T) {
	req := require.New(t)
	s, buf := newTestServer()

	// A non-EOF read failure terminates the session like a clean close:
	// same ack, same success, final count covers what was read.
	stream := &mockCameraStream{
		msgs:    cameraMessages(3, nil),
		recvErr: errors.New("connection reset"),
	}

	req.NoError(s.PublishCameraImage(stream))
	req.NotNil(stream.ack)
	req.Contains(buf.String(), "total_received=3")
}

func TestPublishInertial_WideSamplingInterval(t *testing.T) {
	req := require.New(t)
	s, buf := newTestServer()

	msgs := make([]*pb.InertialMessage, 150)
	for i := range msgs {
		msgs[i] = &pb.InertialMessage{
			Name:      "imu0",
			Timestamp: int64(i),
			Values:    []*pb.InertialSample{{}, {}, {}},
		}
	}
	stream := &mockInertialStream{msgs: msgs}

	req.NoError(s.PublishInertial(stream))
	req.NotNil(stream.ack)

	sampled := sampledLines(buf)
	req.Len(sampled, 2)
	req.Contains(sampled[0], "received=1")
	req.Contains(sampled[1], "received=101")
	req.Contains(sampled[0], "samples=3")
	req.Contains(buf.String(), "total_received=150")
}
