package tray

import (
	"context"
	"fmt"

	"github.com/yllada/event-table/common"
)

// DefaultQueueSize bounds the clicks waiting for the next UI tick.
const DefaultQueueSize = 64

// Bridge carries menu clicks from the tray goroutine to the UI loop.
type Bridge struct {
	registry *Registry
	events   chan ItemID
	log      common.Logger
}

// NewBridge creates a bridge that resolves ids through reg.
func NewBridge(reg *Registry, log common.Logger) *Bridge {
	return NewBridgeSize(reg, DefaultQueueSize, log)
}

// NewBridgeSize is NewBridge with an explicit queue size.
func NewBridgeSize(reg *Registry, size int, log common.Logger) *Bridge {
	if size < 1 {
		size = 1
	}
	return &Bridge{
		registry: reg,
		events:   make(chan ItemID, size),
		log:      log,
	}
}

// Registry returns the registry the bridge resolves against.
func (b *Bridge) Registry() *Registry {
	return b.registry
}

// Forward queues a click without blocking. A full queue drops the click;
// the failure is logged and returned, and the caller keeps running.
func (b *Bridge) Forward(id ItemID) error {
	select {
	case b.events <- id:
		return nil
	default:
		err := fmt.Errorf("%w: dropped item %d", common.ErrTrayQueueFull, id)
		b.log.Warn("Tray: %v", err)
		return err
	}
}

// Pump forwards every receive on clicks as id until ctx is done or
// clicks is closed.
func (b *Bridge) Pump(ctx context.Context, clicks <-chan struct{}, id ItemID) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-clicks:
			if !ok {
				return
			}
			_ = b.Forward(id)
		}
	}
}

// Drain returns every queued id without blocking.
func (b *Bridge) Drain() []ItemID {
	var ids []ItemID
	for {
		select {
		case id := <-b.events:
			ids = append(ids, id)
		default:
			return ids
		}
	}
}

// Poll drains the queue and resolves each id. Unknown ids are skipped.
func (b *Bridge) Poll() []Action {
	var actions []Action
	for _, id := range b.Drain() {
		action := b.registry.Resolve(id)
		if action == ActionNone {
			b.log.Debug("Tray: %v", fmt.Errorf("%w: %d", common.ErrUnknownItem, id))
			continue
		}
		actions = append(actions, action)
	}
	return actions
}
