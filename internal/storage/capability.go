package storage

// Capabilities describes optional query support of a backend.
type Capabilities struct {
	Nearby bool
}

type CapabilityProvider interface {
	GetCapabilities() Capabilities
}
