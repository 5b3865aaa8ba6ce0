package state

import (
	"github.com/crmarques/viewstore/resource"
)

// Event is the closed vocabulary folded by Reduce. One started/resolved/
// rejected triple exists per asynchronous verb, plus the synchronous Selected
// event. Reduce treats any Event implementation outside this package as
// unknown and returns the state unchanged.
type Event interface {
	event()
}

type GetStarted struct {
	ID string
}

type GetResolved struct {
	Resource resource.Resource
}

type GetRejected struct {
	ID      string
	Message string
}

type ListStarted struct{}

type ListResolved struct {
	Resources []resource.Resource
}

type ListRejected struct {
	Message string
}

type UpdateStarted struct {
	ID string
}

type UpdateResolved struct {
	Resource resource.Resource
}

type UpdateRejected struct {
	ID      string
	Message string
}

type CreateStarted struct{}

type CreateResolved struct {
	Resource resource.Resource
}

type CreateRejected struct {
	Message string
}

type RemoveStarted struct {
	ID string
}

type RemoveResolved struct {
	ID string
}

type RemoveRejected struct {
	ID      string
	Message string
}

type Selected struct {
	ID string
}

func (GetStarted) event()     {}
func (GetResolved) event()    {}
func (GetRejected) event()    {}
func (ListStarted) event()    {}
func (ListResolved) event()   {}
func (ListRejected) event()   {}
func (UpdateStarted) event()  {}
func (UpdateResolved) event() {}
func (UpdateRejected) event() {}
func (CreateStarted) event()  {}
func (CreateResolved) event() {}
func (CreateRejected) event() {}
func (RemoveStarted) event()  {}
func (RemoveResolved) event() {}
func (RemoveRejected) event() {}
func (Selected) event()       {}
