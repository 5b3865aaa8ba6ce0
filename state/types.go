package state

import (
	"github.com/crmarques/viewstore/resource"
)

// Action identifies the verb currently pending, either globally or for one
// entry. The zero value means nothing is in flight.
type Action string

const (
	ActionNone   Action = ""
	ActionGet    Action = "get"
	ActionList   Action = "list"
	ActionUpdate Action = "update"
	ActionCreate Action = "create"
	ActionRemove Action = "remove"
)

// Meta carries the lifecycle metadata of one entry: the id-scoped verb still
// pending for it and the last id-scoped failure message. The zero value means
// settled with no error.
type Meta struct {
	Action Action
	Error  string
}

// Entry is a tracked resource: its last-known payload plus lifecycle metadata.
// An entry whose payload was never loaded (its id only appeared in a started
// or rejected event) is a ghost entry: Resource.Payload is nil.
type Entry struct {
	Resource resource.Resource
	Meta     Meta
}

func (e Entry) ID() string {
	return e.Resource.ID
}

// Ghost reports whether the entry only ever carried metadata, never a payload.
func (e Entry) Ghost() bool {
	return e.Resource.Payload == nil
}

// Materialize flattens the entry into its JSON-ready shape: the payload fields
// at the root plus id and a meta object, mirroring what UI layers consume.
func (e Entry) Materialize() map[string]any {
	flattened := e.Resource.PayloadMap()
	flattened[resource.IDField] = e.Resource.ID

	var metaAction any
	if e.Meta.Action != ActionNone {
		metaAction = string(e.Meta.Action)
	}
	var metaError any
	if e.Meta.Error != "" {
		metaError = e.Meta.Error
	}
	flattened["meta"] = map[string]any{
		"action": metaAction,
		"error":  metaError,
	}
	return flattened
}

// State is the container state folded from events. Entries is an
// insertion-ordered slice with unique ids: it serves both as the id-keyed
// entry mapping and as the ordered source of the read projection.
//
// Action and Error are the global last-started-wins flags; Selected is a bare
// id pointer that need not reference an existing entry. "" is the null value
// for all three.
type State struct {
	Entries  []Entry
	Action   Action
	Error    string
	Selected string
}

// Entry returns the entry for id and whether one exists.
func (s State) Entry(id string) (Entry, bool) {
	for _, entry := range s.Entries {
		if entry.ID() == id {
			return entry, true
		}
	}
	return Entry{}, false
}

func (s State) entryIndex(id string) int {
	for index, entry := range s.Entries {
		if entry.ID() == id {
			return index
		}
	}
	return -1
}

func (s State) cloneEntries() []Entry {
	cloned := make([]Entry, len(s.Entries))
	copy(cloned, s.Entries)
	return cloned
}
