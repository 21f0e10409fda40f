package server

import (
	"log/slog"

	"stargazer-sink/domain/telemetry"
	pb "stargazer-sink/proto/stream"
	"stargazer-sink/sink"

	"google.golang.org/grpc"
)

// ackMessage is the fixed status string echoed with every response.
const ackMessage = "ok"

type DataStreamServer struct {
	pb.UnimplementedDataStreamServer
	log   *slog.Logger
	every int32
}

func NewDataStreamServer(log *slog.Logger, every int32) *DataStreamServer {
	return &DataStreamServer{log: log, every: every}
}

// StreamData consumes unified sensor packets and echoes one response per
// packet, in strict alternation: response N carries received-count N and
// is written before packet N+1 is read. A failed response write ends the
// session exactly like a failed read; neither is surfaced as an error,
// the handler logs the final count and reports success.
func (s *DataStreamServer) StreamData(stream grpc.BidiStreamingServer[pb.DataPacket, pb.DataResponse]) error {
	consumer := sink.NewStreamSink(s.log, "StreamData", s.every)
	s.log.Info("client connected", "endpoint", "StreamData", "peer", peerAddr(stream.Context()))

	for {
		packet, err := stream.Recv()
		if err != nil {
			break
		}
		received := consumer.Record(fromPbPacket(packet).Attrs()...)

		err = stream.Send(&pb.DataResponse{
			Success:         true,
			ReceivedPackets: received,
			Message:         ackMessage,
		})
		if err != nil {
			s.log.Warn("failed to send response, closing stream",
				"endpoint", "StreamData",
				"received", received,
				"error", err)
			break
		}
	}

	consumer.Close()
	return nil
}

func fromPbPacket(packet *pb.DataPacket) telemetry.Packet {
	out := telemetry.Packet{
		DeviceID:  packet.GetDeviceId(),
		Timestamp: packet.GetTimestamp(),
	}
	if camera := packet.GetCamera(); camera != nil {
		out.Camera = &telemetry.PacketCamera{
			ImageBytes: len(camera.GetImageData()),
			Intrinsics: fromPbFlatIntrinsics(camera.GetIntrinsics()),
		}
	}
	return out
}

func fromPbFlatIntrinsics(in *pb.Intrinsics) *telemetry.Intrinsics {
	if in == nil {
		return nil
	}
	return &telemetry.Intrinsics{
		Fx:     in.GetFx(),
		Fy:     in.GetFy(),
		Cx:     in.GetCx(),
		Cy:     in.GetCy(),
		Width:  in.GetWidth(),
		Height: in.GetHeight(),
	}
}
