package server

import (
	"context"
	"log/slog"

	"stargazer-sink/domain/telemetry"
	pb "stargazer-sink/proto/sensor"
	"stargazer-sink/sink"

	"google.golang.org/grpc"
	"google.golang.org/grpc/peer"
	"google.golang.org/protobuf/types/known/emptypb"
)

type SensorServer struct {
	pb.UnimplementedSensorServer
	log           *slog.Logger
	cameraEvery   int32
	inertialEvery int32
}

func NewSensorServer(log *slog.Logger, cameraEvery, inertialEvery int32) *SensorServer {
	return &SensorServer{log: log, cameraEvery: cameraEvery, inertialEvery: inertialEvery}
}

// PublishCameraImage drains a client stream of camera-image batches,
// logging a sampled summary line and a final count. Every way the stream
// can end, including transport faults, is treated as end-of-stream: the
// handler acknowledges and reports success, because the sink exists to
// let publishers validate connectivity, not to police it.
func (s *SensorServer) PublishCameraImage(stream grpc.ClientStreamingServer[pb.CameraImageMessage, emptypb.Empty]) error {
	consumer := sink.NewStreamSink(s.log, "PublishCameraImage", s.cameraEvery)
	s.log.Info("client connected", "endpoint", "PublishCameraImage", "peer", peerAddr(stream.Context()))

	for {
		msg, err := stream.Recv()
		if err != nil {
			break
		}
		consumer.Record(fromPbCameraImage(msg).Attrs()...)
	}

	consumer.Close()
	if err := stream.SendAndClose(&emptypb.Empty{}); err != nil {
		s.log.Warn("failed to send ack", "endpoint", "PublishCameraImage", "error", err)
	}
	return nil
}

// PublishInertial is the inertial counterpart of PublishCameraImage with
// a wider sampling interval; sample contents are not inspected beyond
// their count.
func (s *SensorServer) PublishInertial(stream grpc.ClientStreamingServer[pb.InertialMessage, emptypb.Empty]) error {
	consumer := sink.NewStreamSink(s.log, "PublishInertial", s.inertialEvery)
	s.log.Info("client connected", "endpoint", "PublishInertial", "peer", peerAddr(stream.Context()))

	for {
		msg, err := stream.Recv()
		if err != nil {
			break
		}
		consumer.Record(fromPbInertial(msg).Attrs()...)
	}

	consumer.Close()
	if err := stream.SendAndClose(&emptypb.Empty{}); err != nil {
		s.log.Warn("failed to send ack", "endpoint", "PublishInertial", "error", err)
	}
	return nil
}

func peerAddr(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok {
		return p.Addr.String()
	}
	return "unknown"
}

func fromPbCameraImage(msg *pb.CameraImageMessage) telemetry.CameraFrame {
	frame := telemetry.CameraFrame{
		Name:      msg.GetName(),
		Timestamp: msg.GetTimestamp(),
		Images:    len(msg.GetValues()),
	}
	if frame.Images > 0 {
		first := msg.GetValues()[0]
		frame.ImageBytes = len(first.GetImageData())
		frame.Intrinsics = fromPbIntrinsics(first.GetIntrinsics())
	}
	return frame
}

func fromPbInertial(msg *pb.InertialMessage) telemetry.InertialBatch {
	return telemetry.InertialBatch{
		Name:      msg.GetName(),
		Timestamp: msg.GetTimestamp(),
		Samples:   len(msg.GetValues()),
	}
}

func fromPbIntrinsics(in *pb.CameraIntrinsics) *telemetry.Intrinsics {
	if in == nil {
		return nil
	}
	out := &telemetry.Intrinsics{
		Fx:     in.GetFocalLength().GetX(),
		Fy:     in.GetFocalLength().GetY(),
		Cx:     in.GetPrincipalPoint().GetX(),
		Cy:     in.GetPrincipalPoint().GetY(),
		Width:  in.GetImageSize().GetX(),
		Height: in.GetImageSize().GetY(),
	}
	if d := in.GetDistortion(); d != nil {
		out.Distortion = &telemetry.Distortion{
			K1: d.GetK1(), K2: d.GetK2(),
			P1: d.GetP1(), P2: d.GetP2(),
			K3: d.GetK3(),
		}
	}
	return out
}
