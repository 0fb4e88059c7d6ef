package tray

import (
	"fmt"
	"sync"

	"github.com/yllada/event-table/common"
)

// ItemID identifies a tray menu item.
type ItemID uint32

// Action is what a tray menu item does.
type Action int

const (
	ActionNone Action = iota
	ActionShow
	ActionQuit
)

// Menu labels.
const (
	LabelShow = "Show"
	LabelQuit = "Quit"
)

func (a Action) String() string {
	switch a {
	case ActionShow:
		return "Show"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// Entry is a registered menu item.
type Entry struct {
	ID      ItemID
	Label   string
	Tooltip string
	Action  Action
}

// Registry maps menu labels to item ids and item ids to actions.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	byLabel map[string]ItemID
	actions map[ItemID]Action
	next    ItemID
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byLabel: make(map[string]ItemID),
		actions: make(map[ItemID]Action),
		next:    1,
	}
}

// DefaultRegistry returns a registry holding the Show and Quit items.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(LabelShow, "Show the main window", ActionShow)
	r.MustRegister(LabelQuit, "Quit "+common.AppName, ActionQuit)
	return r
}

// Register adds a menu item. Labels must be unique.
func (r *Registry) Register(label, tooltip string, action Action) (ItemID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byLabel[label]; exists {
		return 0, fmt.Errorf("%w: item %q already registered", common.ErrTrayMenu, label)
	}

	id := r.next
	r.next++
	r.byLabel[label] = id
	r.actions[id] = action
	r.entries = append(r.entries, Entry{ID: id, Label: label, Tooltip: tooltip, Action: action})
	return id, nil
}

// MustRegister is Register for static menus; it panics on duplicates.
func (r *Registry) MustRegister(label, tooltip string, action Action) ItemID {
	id, err := r.Register(label, tooltip, action)
	if err != nil {
		panic(err)
	}
	return id
}

// Lookup returns the id registered for label.
func (r *Registry) Lookup(label string) (ItemID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byLabel[label]
	return id, ok
}

// Resolve maps an id to its action; unknown ids resolve to ActionNone.
func (r *Registry) Resolve(id ItemID) Action {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.actions[id]
}

// Entries returns the registered items in registration order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}
