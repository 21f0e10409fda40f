package sink

import "log/slog"

// StreamSink consumes one session's inbound telemetry stream: it counts
// every received message and emits a sampled log line every Nth message.
// The sampling rule is (received % every) == 1 so that the first message
// of a session is always logged, then every Nth after it.
//
// A StreamSink is owned by a single handler invocation and is not safe
// for concurrent use; each session's reads, counting and logging happen
// in strict program order.
type StreamSink struct {
	log      *slog.Logger
	every    int32
	received int32
}

func NewStreamSink(log *slog.Logger, endpoint string, every int32) *StreamSink {
	if every < 1 {
		every = 1
	}
	return &StreamSink{
		log:   log.With("endpoint", endpoint),
		every: every,
	}
}

// Record counts one successfully read message and, when the sample is
// due, logs its summary attributes together with the running count.
// It returns the updated received-count.
func (s *StreamSink) Record(attrs ...any) int32 {
	s.received++
	if s.every == 1 || s.received%s.every == 1 {
		s.log.Info("sampled message", append([]any{"received", s.received}, attrs...)...)
	}
	return s.received
}

// Received reports the number of messages recorded so far.
func (s *StreamSink) Received() int32 {
	return s.received
}

// Close emits the end-of-stream summary line. The count is final: a
// session never records after closing.
func (s *StreamSink) Close() {
	s.log.Info("stream ended", "total_received", s.received)
}
