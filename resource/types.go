package resource

type Value = any

// Resource is a remotely sourced entity. ID is the identity the container
// tracks entries by; Payload is the last payload observed for it, opaque to
// everything except the id field it was derived from.
type Resource struct {
	ID      string
	Payload Value
}
