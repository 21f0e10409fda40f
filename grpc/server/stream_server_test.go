package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	pb "stargazer-sink/proto/stream"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

// mockDataStream simulates the bidirectional server stream and tracks
// alternation: a Recv while a previous packet is still unanswered is a
// protocol violation. It embeds the interface to avoid implementing all
// gRPC internal methods.
type mockDataStream struct {
	grpc.BidiStreamingServer[pb.DataPacket, pb.DataResponse]
	packets   []*pb.DataPacket
	idx       int
	responses []*pb.DataResponse
	sendErrAt int // 1-based response index that fails, 0 = never
	violated  bool
}

func (m *mockDataStream) Context() context.Context { return context.Background() }

func (m *mockDataStream) Recv() (*pb.DataPacket, error) {
	if m.idx > len(m.responses) {
		m.violated = true
	}
	if m.idx >= len(m.packets) {
		return nil, io.EOF
	}
	packet := m.packets[m.idx]
	m.idx++
	return packet, nil
}

func (m *mockDataStream) Send(resp *pb.DataResponse) error {
	if m.sendErrAt > 0 && len(m.responses)+1 >= m.sendErrAt {
		return errors.New("transport closed")
	}
	m.responses = append(m.responses, resp)
	return nil
}

func newTestDataStreamServer(every int32) (*DataStreamServer, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))
	return NewDataStreamServer(logger, every), buf
}

func dataPackets(count int) []*pb.DataPacket {
	packets := make([]*pb.DataPacket, count)
	for i := range packets {
		packets[i] = &pb.DataPacket{DeviceId: "probe-1", Timestamp: int64(i)}
	}
	return packets
}

func TestStreamData_EchoPerPacket(t *testing.T) {
	req := require.New(t)
	s, buf := newTestDataStreamServer(30)
	stream := &mockDataStream{packets: dataPackets(5)}

	req.NoError(s.StreamData(stream))
	req.False(stream.violated, "every packet must be answered before the next read")
	req.Len(stream.responses, 5)
	for i, resp := range stream.responses {
		req.True(resp.GetSuccess())
		req.Equal(int32(i+1), resp.GetReceivedPackets())
		req.Equal("ok", resp.GetMessage())
	}
	req.Contains(buf.String(), "total_received=5")
}

func TestStreamData_SamplingInterval(t *testing.T) {
	req := require.New(t)
	s, buf := newTestDataStreamServer(30)
	stream := &mockDataStream{packets: dataPackets(61)}

	req.NoError(s.StreamData(stream))
	req.Len(stream.responses, 61)

	var sampled []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if strings.Contains(line, "sampled message") {
			sampled = append(sampled, line)
		}
	}
	req.Len(sampled, 3)
	req.Contains(sampled[0], "received=1")
	req.Contains(sampled[1], "received=31")
	req.Contains(sampled[2], "received=61")
}

func TestStreamData_EmptyStream(t *testing.T) {
	req := require.New(t)
	s, buf := newTestDataStreamServer(30)
	stream := &mockDataStream{}

	req.NoError(s.StreamData(stream))
	req.Empty(stream.responses)
	req.Contains(buf.String(), "total_received=0")
}

func TestStreamData_SendFailureEndsSessionSilently(t *testing.T) {
	req := require.New(t)
	s, buf := newTestDataStreamServer(30)
	stream := &mockDataStream{packets: dataPackets(5), sendErrAt: 2}

	// Response 2 fails: the session ends after reading two packets, with
	// the same success outcome as a clean close.
	req.NoError(s.StreamData(stream))
	req.Len(stream.responses, 1)
	req.Contains(buf.String(), "failed to send response")
	req.Contains(buf.String(), "total_received=2")
}

func TestStreamData_CameraAttributes(t *testing.T) {
	req := require.New(t)
	s, buf := newTestDataStreamServer(1)

	withCamera := &pb.DataPacket{
		DeviceId:  "probe-1",
		Timestamp: 7,
		Camera: &pb.CameraData{
			ImageData: make([]byte, 2048),
			Intrinsics: &pb.Intrinsics{
				Fx: 525, Fy: 526, Cx: 320, Cy: 240,
				Width: 640, Height: 480,
			},
		},
	}
	bare := &pb.DataPacket{DeviceId: "probe-2", Timestamp: 8}
	stream := &mockDataStream{packets: []*pb.DataPacket{withCamera, bare}}

	req.NoError(s.StreamData(stream))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var sampled []string
	for _, line := range lines {
		if strings.Contains(line, "sampled message") {
			sampled = append(sampled, line)
		}
	}
	req.Len(sampled, 2)
	req.Contains(sampled[0], "device_id=probe-1")
	req.Contains(sampled[0], "image_bytes=2048")
	req.Contains(sampled[0], "fx=525")
	req.Contains(sampled[1], "device_id=probe-2")
	req.NotContains(sampled[1], "image_bytes")
}
