package scanner

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// DeviceSource reads newline-delimited codes from a keyboard-wedge
// style scanner device file (e.g. /dev/hidraw0 via a udev symlink, or
// a serial scanner under /dev/ttyUSB0).
type DeviceSource struct {
	path string

	mu      sync.Mutex
	closer  io.Closer
	done    chan struct{}
	running bool
}

func NewDeviceSource(path string) *DeviceSource {
	return &DeviceSource{path: path}
}

// Start opens the device and begins delivering trimmed, non-empty
// lines to h from a background goroutine. Calling Start on a running
// source is a no-op.
func (s *DeviceSource) Start(h Handler) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil
	}

	f, err := os.Open(s.path)
	if err != nil {
		switch {
		case os.IsPermission(err):
			return ErrPermissionDenied
		case os.IsNotExist(err):
			return ErrNoDevice
		default:
			return ErrDeviceUnavailable
		}
	}

	s.closer = f
	s.done = make(chan struct{})
	s.running = true
	go s.readLoop(f, h, s.done)
	return nil
}

func (s *DeviceSource) readLoop(r io.Reader, h Handler, done chan struct{}) {
	defer close(done)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		code := strings.TrimSpace(sc.Text())
		if code == "" {
			continue
		}
		h(code)
	}
	if err := sc.Err(); err != nil {
		log.Warn().Err(err).Str("device", s.path).Msg("scanner read loop ended")
	}
}

// Stop closes the device and waits for the read loop to drain.
// Idempotent: stopping a stopped source does nothing.
func (s *DeviceSource) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	closer := s.closer
	done := s.done
	s.closer = nil
	s.mu.Unlock()

	// Closing unblocks the scanner, which then closes done.
	closer.Close()
	<-done
}
