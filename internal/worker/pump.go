// Package worker runs the background scan pump: decoded codes arrive
// from the hardware source at arbitrary times and are funneled through
// a channel into a single goroutine, so each scan is processed to
// completion before the next — the hardware callback never mutates
// state directly.
package worker

import (
	"context"
	"errors"

	"github.com/FynnK/FestivalInventory/internal/ledger"
	"github.com/FynnK/FestivalInventory/internal/notify"
	"github.com/FynnK/FestivalInventory/internal/scanner"
	"github.com/FynnK/FestivalInventory/internal/service"

	"github.com/rs/zerolog/log"
)

// ModeFlag reports whether import mode is active. It is read on every
// scan — the flag is owned by the caller, not the pump.
type ModeFlag func() bool

// ScanPump connects a scan source to the inventory service.
type ScanPump struct {
	source scanner.Source
	svc    service.InventoryService
	mode   ModeFlag
	sink   notify.Sink
	codes  chan string
}

func NewScanPump(source scanner.Source, svc service.InventoryService, mode ModeFlag, sink notify.Sink) *ScanPump {
	return &ScanPump{
		source: source,
		svc:    svc,
		mode:   mode,
		sink:   sink,
		codes:  make(chan string, 16),
	}
}

// Start begins delivery. The source's handler only enqueues; all
// processing happens on the pump goroutine. When ctx is cancelled the
// source is stopped unconditionally, whether or not it ever delivered.
func (p *ScanPump) Start(ctx context.Context) error {
	err := p.source.Start(func(code string) {
		select {
		case p.codes <- code:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return err
	}

	go func() {
		defer p.source.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("scan pump shutting down")
				return
			case code := <-p.codes:
				p.process(ctx, code)
			}
		}
	}()
	log.Info().Msg("scan pump started")
	return nil
}

func (p *ScanPump) process(ctx context.Context, code string) {
	_, err := p.svc.Scan(ctx, code, p.mode())
	if err == nil {
		return
	}

	var unknown *ledger.UnknownItemError
	switch {
	case errors.As(err, &unknown):
		// No mutation happened; the operator finishes item creation
		// through the API, which also completes an import increment
		// via the initial quantity.
		p.sink.Info("Scanned new item. Please add details.")
	default:
		log.Warn().Err(err).Str("code", code).Msg("scan rejected")
		p.sink.Error(err.Error())
	}
}
