package state

import (
	"github.com/crmarques/viewstore/resource"
)

// Reduce folds one event into the previous state and returns the next state.
// It is pure: the input state is never mutated, and the same (state, event)
// pair always yields an equal result. Events not in this package's vocabulary
// fall through to the default arm and leave the state unchanged, so an
// evolving event set never breaks existing callers.
func Reduce(s State, ev Event) State {
	switch ev := ev.(type) {
	case GetStarted:
		return withPending(s, ActionGet, ev.ID)
	case UpdateStarted:
		return withPending(s, ActionUpdate, ev.ID)
	case RemoveStarted:
		return withPending(s, ActionRemove, ev.ID)
	case ListStarted:
		return withGlobalPending(s, ActionList)
	case CreateStarted:
		return withGlobalPending(s, ActionCreate)

	case GetResolved:
		return withResolved(s, ev.Resource)
	case UpdateResolved:
		return withResolved(s, ev.Resource)
	case CreateResolved:
		return withResolved(s, ev.Resource)
	case ListResolved:
		return withCollection(s, ev.Resources)
	case RemoveResolved:
		return withRemoved(s, ev.ID)

	case GetRejected:
		return withScopedFailure(s, ev.ID, ev.Message)
	case UpdateRejected:
		return withScopedFailure(s, ev.ID, ev.Message)
	case RemoveRejected:
		return withScopedFailure(s, ev.ID, ev.Message)
	case ListRejected:
		return withGlobalFailure(s, ev.Message)
	case CreateRejected:
		return withGlobalFailure(s, ev.Message)

	case Selected:
		return State{
			Entries:  s.Entries,
			Action:   s.Action,
			Error:    s.Error,
			Selected: ev.ID,
		}

	default:
		return s
	}
}

// withPending marks an id-scoped verb as started: the global flags flip to
// pending and the entry's meta is replaced, preserving whatever payload the
// entry already holds. An absent entry is materialized id-only, so a
// subsequent read sees the pending marker even for ids never loaded.
func withPending(s State, action Action, id string) State {
	entries := s.cloneEntries()
	meta := Meta{Action: action}

	if index := s.entryIndex(id); index >= 0 {
		entries[index] = Entry{Resource: entries[index].Resource, Meta: meta}
	} else {
		entries = append(entries, Entry{Resource: resource.Resource{ID: id}, Meta: meta})
	}

	return State{
		Entries:  entries,
		Action:   action,
		Selected: s.Selected,
	}
}

func withGlobalPending(s State, action Action) State {
	return State{
		Entries:  s.Entries,
		Action:   action,
		Selected: s.Selected,
	}
}

// withResolved settles a get/update/create success: the entry is replaced
// whole by the incoming resource with cleared meta, never merged. New ids are
// appended, which fixes their position in the projection order.
func withResolved(s State, res resource.Resource) State {
	entries := s.cloneEntries()
	settled := Entry{Resource: res}

	if index := s.entryIndex(res.ID); index >= 0 {
		entries[index] = settled
	} else {
		entries = append(entries, settled)
	}

	return State{
		Entries:  entries,
		Selected: s.Selected,
	}
}

// withCollection settles a list success. The rebuild is an additive merge:
// every existing entry survives unchanged (entries absent from the incoming
// collection are not dropped), and incoming resources are appended only when
// their id is not yet present. Within the incoming collection the first
// occurrence of a duplicated id wins.
func withCollection(s State, resources []resource.Resource) State {
	entries := s.cloneEntries()

	for _, res := range resources {
		if containsID(entries, res.ID) {
			continue
		}
		entries = append(entries, Entry{Resource: res})
	}

	return State{
		Entries:  entries,
		Selected: s.Selected,
	}
}

// withRemoved settles a remove success: the entry is dropped and the
// selection is cleared only when it pointed at the removed id.
func withRemoved(s State, id string) State {
	entries := make([]Entry, 0, len(s.Entries))
	for _, entry := range s.Entries {
		if entry.ID() == id {
			continue
		}
		entries = append(entries, entry)
	}

	selected := s.Selected
	if selected == id {
		selected = ""
	}

	return State{
		Entries:  entries,
		Selected: selected,
	}
}

// withScopedFailure settles a get/update/remove failure: the message lands in
// both the global error and the entry's meta. Only the meta is touched on an
// existing entry; an absent entry is materialized as a ghost carrying nothing
// but its id and the failure, so errors surface even for ids never loaded.
func withScopedFailure(s State, id string, message string) State {
	entries := s.cloneEntries()
	meta := Meta{Error: message}

	if index := s.entryIndex(id); index >= 0 {
		entries[index] = Entry{Resource: entries[index].Resource, Meta: meta}
	} else {
		entries = append(entries, Entry{Resource: resource.Resource{ID: id}, Meta: meta})
	}

	return State{
		Entries:  entries,
		Error:    message,
		Selected: s.Selected,
	}
}

func withGlobalFailure(s State, message string) State {
	return State{
		Entries:  s.Entries,
		Error:    message,
		Selected: s.Selected,
	}
}

func containsID(entries []Entry, id string) bool {
	for _, entry := range entries {
		if entry.ID() == id {
			return true
		}
	}
	return false
}
