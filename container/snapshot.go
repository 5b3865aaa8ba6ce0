package container

import (
	"github.com/crmarques/viewstore/state"
)

// Snapshot is the read-only projection handed to consuming layers: the
// entries in insertion order, the selected entry resolved (nil when the
// selection points at nothing), and the global pending/error flags.
type Snapshot struct {
	List     []state.Entry
	Selected *state.Entry
	Action   state.Action
	Error    string
}

// Snapshot derives the current projection. The result is detached from the
// container: later events do not alter an already-taken snapshot.
func (c *Container) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

func (c *Container) snapshotLocked() Snapshot {
	list := make([]state.Entry, len(c.state.Entries))
	copy(list, c.state.Entries)

	var selected *state.Entry
	if c.state.Selected != "" {
		if entry, exists := c.state.Entry(c.state.Selected); exists {
			selected = &entry
		}
	}

	return Snapshot{
		List:     list,
		Selected: selected,
		Action:   c.state.Action,
		Error:    c.state.Error,
	}
}

// Materialize flattens the snapshot's entries into their JSON-ready shape,
// preserving projection order.
func (s Snapshot) Materialize() []map[string]any {
	flattened := make([]map[string]any, 0, len(s.List))
	for _, entry := range s.List {
		flattened = append(flattened, entry.Materialize())
	}
	return flattened
}

// Subscribe registers for change notifications. Every applied event publishes
// a fresh snapshot; slow receivers are coalesced to the latest snapshot
// rather than blocking event application. The returned cancel func releases
// the subscription and closes the channel.
func (c *Container) Subscribe() (<-chan Snapshot, func()) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()

	if c.subs == nil {
		c.subs = make(map[uint64]chan Snapshot)
	}
	id := c.nextSub
	c.nextSub++

	ch := make(chan Snapshot, 1)
	c.subs[id] = ch

	cancel := func() {
		c.subsMu.Lock()
		defer c.subsMu.Unlock()
		if _, active := c.subs[id]; active {
			delete(c.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

func (c *Container) publish(snap Snapshot) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()

	for _, ch := range c.subs {
		// Replace a stale undelivered snapshot instead of blocking.
		select {
		case ch <- snap:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}
