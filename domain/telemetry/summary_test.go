package telemetry_test

import (
	"testing"

	"stargazer-sink/domain/telemetry"

	"github.com/stretchr/testify/require"
)

func TestCameraFrameAttrs(t *testing.T) {
	req := require.New(t)

	t.Run("empty batch omits image fields", func(t *testing.T) {
		frame := telemetry.CameraFrame{Name: "cam0", Timestamp: 42}
		attrs := frame.Attrs()
		req.Equal([]any{"name", "cam0", "timestamp", int64(42), "images", 0}, attrs)
	})

	t.Run("image without intrinsics", func(t *testing.T) {
		frame := telemetry.CameraFrame{Name: "cam0", Timestamp: 42, Images: 1, ImageBytes: 3072}
		attrs := frame.Attrs()
		req.Contains(attrs, "image_bytes")
		req.Contains(attrs, 3072)
		req.NotContains(attrs, "intrinsics")
	})

	t.Run("intrinsics included when present", func(t *testing.T) {
		frame := telemetry.CameraFrame{
			Name: "cam0", Timestamp: 42, Images: 2, ImageBytes: 3072,
			Intrinsics: &telemetry.Intrinsics{Fx: 525, Fy: 525, Cx: 320, Cy: 240, Width: 640, Height: 480},
		}
		req.Contains(frame.Attrs(), "intrinsics")
	})
}

func TestPacketAttrs(t *testing.T) {
	req := require.New(t)

	t.Run("no camera sub-record", func(t *testing.T) {
		packet := telemetry.Packet{DeviceID: "dev-1", Timestamp: 7}
		attrs := packet.Attrs()
		req.Equal([]any{"device_id", "dev-1", "timestamp", int64(7)}, attrs)
	})

	t.Run("camera without intrinsics", func(t *testing.T) {
		packet := telemetry.Packet{
			DeviceID: "dev-1", Timestamp: 7,
			Camera: &telemetry.PacketCamera{ImageBytes: 128},
		}
		attrs := packet.Attrs()
		req.Contains(attrs, "image_bytes")
		req.NotContains(attrs, "intrinsics")
	})

	t.Run("camera with intrinsics", func(t *testing.T) {
		packet := telemetry.Packet{
			DeviceID: "dev-1", Timestamp: 7,
			Camera: &telemetry.PacketCamera{
				ImageBytes: 128,
				Intrinsics: &telemetry.Intrinsics{Fx: 500, Fy: 500, Cx: 319.5, Cy: 239.5, Width: 640, Height: 480},
			},
		}
		req.Contains(packet.Attrs(), "intrinsics")
	})
}

func TestInertialBatchAttrs(t *testing.T) {
	req := require.New(t)
	batch := telemetry.InertialBatch{Name: "imu0", Timestamp: 9, Samples: 32}
	req.Equal([]any{"name", "imu0", "timestamp", int64(9), "samples", 32}, batch.Attrs())
}

func TestIntrinsicsString(t *testing.T) {
	req := require.New(t)

	t.Run("without distortion", func(t *testing.T) {
		in := &telemetry.Intrinsics{Fx: 525, Fy: 526, Cx: 320, Cy: 240, Width: 640, Height: 480}
		req.Equal("{fx=525 fy=526 cx=320 cy=240 w=640 h=480}", in.String())
		req.NotContains(in.String(), "distortion")
	})

	t.Run("with distortion", func(t *testing.T) {
		in := &telemetry.Intrinsics{
			Fx: 525, Fy: 526, Cx: 320, Cy: 240, Width: 640, Height: 480,
			Distortion: &telemetry.Distortion{K1: 0.1, K2: -0.25, P1: 0.001, P2: -0.002, K3: 0.05},
		}
		req.Equal("{fx=525 fy=526 cx=320 cy=240 w=640 h=480 distortion={k1=0.1 k2=-0.25 p1=0.001 p2=-0.002 k3=0.05}}", in.String())
	})
}
