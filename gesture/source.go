package gesture

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strings"
	"time"
)

// Source produces hand-detection frames at whatever cadence the
// underlying detector delivers. Next blocks until a frame is available,
// the source ends, or ctx is cancelled.
type Source interface {
	Next(ctx context.Context) (Frame, error)
	Close() error
}

// StreamSource reads newline-delimited JSON frames from a detector
// process over TCP or a unix socket. The detector itself is a black
// box; this end only consumes its landmark output.
type StreamSource struct {
	conn    net.Conn
	scanner *bufio.Scanner
}

// DialStream connects to a detector stream. addr is "host:port" or
// "unix:/path/to.sock".
func DialStream(addr string) (*StreamSource, error) {
	network := "tcp"
	if rest, ok := strings.CutPrefix(addr, "unix:"); ok {
		network = "unix"
		addr = rest
	}
	conn, err := net.DialTimeout(network, addr, 3*time.Second)
	if err != nil {
		return nil, fmt.Errorf("connecting to detector: %w", err)
	}
	sc := bufio.NewScanner(conn)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024)
	return &StreamSource{conn: conn, scanner: sc}, nil
}

// Next reads the next frame line. Lines that fail to parse are
// reported as transient errors; the caller decides whether to retain
// the previous signals and continue.
func (s *StreamSource) Next(ctx context.Context) (Frame, error) {
	if deadline, ok := ctx.Deadline(); ok {
		_ = s.conn.SetReadDeadline(deadline)
	}
	if ctx.Err() != nil {
		return Frame{}, ctx.Err()
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return Frame{}, fmt.Errorf("reading detector stream: %w", err)
		}
		return Frame{}, fmt.Errorf("detector stream closed")
	}
	var f Frame
	if err := json.Unmarshal(s.scanner.Bytes(), &f); err != nil {
		return Frame{}, &TransientError{Err: fmt.Errorf("parsing frame: %w", err)}
	}
	return f, nil
}

// Close shuts the connection down.
func (s *StreamSource) Close() error {
	return s.conn.Close()
}

// TransientError marks a per-frame failure the runner should swallow,
// keeping the previous control signals for that tick.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string { return e.Err.Error() }
func (e *TransientError) Unwrap() error { return e.Err }
