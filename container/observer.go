package container

import (
	"time"

	"github.com/crmarques/viewstore/state"
)

// Observer receives hooks around asynchronous verb invocations. Implementers
// must not block: hooks run on the verb's calling goroutine. id is empty for
// the unscoped verbs (list, create).
type Observer interface {
	VerbStarted(verb state.Action, id string)
	VerbResolved(verb state.Action, id string, elapsed time.Duration)
	VerbRejected(verb state.Action, id string, message string, elapsed time.Duration)
}

// NoopObserver discards all hooks.
type NoopObserver struct{}

func (NoopObserver) VerbStarted(state.Action, string)                       {}
func (NoopObserver) VerbResolved(state.Action, string, time.Duration)       {}
func (NoopObserver) VerbRejected(state.Action, string, string, time.Duration) {}
