package sink_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"stargazer-sink/sink"

	"github.com/stretchr/testify/require"
)

func newCapturedLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, nil)), buf
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

func TestStreamSink_SamplingRule(t *testing.T) {
	req := require.New(t)

	t.Run("first message is always sampled, then every Nth", func(t *testing.T) {
		logger, buf := newCapturedLogger()
		s := sink.NewStreamSink(logger, "PublishCameraImage", 30)

		for i := 0; i < 31; i++ {
			s.Record("name", "cam0")
		}
		s.Close()

		sampled := sampledLines(buf)
		req.Len(sampled, 2)
		req.Contains(sampled[0], "received=1")
		req.Contains(sampled[1], "received=31")
		req.Contains(buf.String(), "total_received=31")
	})

	t.Run("wide interval samples messages 1 and 101", func(t *testing.T) {
		logger, buf := newCapturedLogger()
		s := sink.NewStreamSink(logger, "PublishInertial", 100)

		for i := 0; i < 150; i++ {
			s.Record("name", "imu0")
		}
		s.Close()

		sampled := sampledLines(buf)
		req.Len(sampled, 2)
		req.Contains(sampled[0], "received=1")
		req.Contains(sampled[1], "received=101")
		req.Contains(buf.String(), "total_received=150")
	})

	t.Run("interval of one samples every message", func(t *testing.T) {
		logger, buf := newCapturedLogger()
		s := sink.NewStreamSink(logger, "StreamData", 1)

		for i := 0; i < 5; i++ {
			s.Record()
		}

		req.Len(sampledLines(buf), 5)
	})
}

func TestStreamSink_Count(t *testing.T) {
	req := require.New(t)
	logger, _ := newCapturedLogger()
	s := sink.NewStreamSink(logger, "StreamData", 30)

	// The count increments by exactly one per recorded message and is
	// returned so callers can echo it back.
	for i := int32(1); i <= 10; i++ {
		req.Equal(i, s.Record())
		req.Equal(i, s.Received())
	}
}

func TestStreamSink_EmptySession(t *testing.T) {
	req := require.New(t)
	logger, buf := newCapturedLogger()
	s := sink.NewStreamSink(logger, "PublishCameraImage", 30)

	s.Close()

	req.Empty(sampledLines(buf))
	req.Contains(buf.String(), "total_received=0")
}

func TestStreamSink_EndpointTagged(t *testing.T) {
	req := require.New(t)
	logger, buf := newCapturedLogger()
	s := sink.NewStreamSink(logger, "PublishInertial", 100)

	s.Record()
	s.Close()

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		req.Contains(line, "endpoint=PublishInertial")
	}
}
