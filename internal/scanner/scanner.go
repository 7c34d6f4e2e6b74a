// Package scanner defines the scan source contract: something that
// asynchronously yields decoded barcode strings and may fail with a
// permission or hardware error. The core never talks to hardware
// directly — it only sees the codes a Source delivers.
package scanner

import "errors"

// Terminal errors a Source can report when starting.
var (
	ErrPermissionDenied  = errors.New("scanner: permission denied")
	ErrDeviceUnavailable = errors.New("scanner: device unavailable")
	ErrNoDevice          = errors.New("scanner: no device found")
)

// Handler receives one decoded identifier per detection event.
type Handler func(code string)

// Source is an asynchronous producer of decoded barcodes.
//
// Start begins delivery and returns once the source is running (or a
// terminal error). Stop releases all resources; stopping an
// already-stopped source is a no-op, not an error, and both calls are
// idempotent.
type Source interface {
	Start(h Handler) error
	Stop()
}
