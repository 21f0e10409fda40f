package telemetry

import "fmt"

// CameraFrame summarizes one camera-image batch for diagnostic logging.
// ImageBytes and Intrinsics describe the first image of the batch and are
// meaningful only when Images > 0.
type CameraFrame struct {
	Name       string
	Timestamp  int64
	Images     int
	ImageBytes int
	Intrinsics *Intrinsics
}

// Intrinsics holds the camera calibration of a frame. Distortion is nil
// when the publisher sent no lens-distortion coefficients.
type Intrinsics struct {
	Fx, Fy        float64
	Cx, Cy        float64
	Width, Height int32
	Distortion    *Distortion
}

type Distortion struct {
	K1, K2, P1, P2, K3 float64
}

// InertialBatch summarizes one inertial batch. Sample contents are not
// inspected beyond their count.
type InertialBatch struct {
	Name      string
	Timestamp int64
	Samples   int
}

// Packet summarizes one unified sensor packet. Camera is nil when the
// packet carries no camera sub-record.
type Packet struct {
	DeviceID  string
	Timestamp int64
	Camera    *PacketCamera
}

type PacketCamera struct {
	ImageBytes int
	Intrinsics *Intrinsics
}

// Attrs returns the structured log attributes for a sampled camera batch.
// Absent optional blocks are omitted rather than zero-filled.
func (f CameraFrame) Attrs() []any {
	attrs := []any{
		"name", f.Name,
		"timestamp", f.Timestamp,
		"images", f.Images,
	}
	if f.Images > 0 {
		attrs = append(attrs, "image_bytes", f.ImageBytes)
	}
	if f.Intrinsics != nil {
		attrs = append(attrs, "intrinsics", f.Intrinsics)
	}
	return attrs
}

func (b InertialBatch) Attrs() []any {
	return []any{
		"name", b.Name,
		"timestamp", b.Timestamp,
		"samples", b.Samples,
	}
}

func (p Packet) Attrs() []any {
	attrs := []any{
		"device_id", p.DeviceID,
		"timestamp", p.Timestamp,
	}
	if p.Camera != nil {
		attrs = append(attrs, "image_bytes", p.Camera.ImageBytes)
		if p.Camera.Intrinsics != nil {
			attrs = append(attrs, "intrinsics", p.Camera.Intrinsics)
		}
	}
	return attrs
}

func (i *Intrinsics) String() string {
	s := fmt.Sprintf("{fx=%g fy=%g cx=%g cy=%g w=%d h=%d", i.Fx, i.Fy, i.Cx, i.Cy, i.Width, i.Height)
	if i.Distortion != nil {
		s += " " + i.Distortion.String()
	}
	return s + "}"
}

func (d *Distortion) String() string {
	return fmt.Sprintf("distortion={k1=%g k2=%g p1=%g p2=%g k3=%g}", d.K1, d.K2, d.P1, d.P2, d.K3)
}
