package types

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	PexelsClient PexelsClient
}

// PexelsClient is intentionally loose so handlers can assert the exact
// interface they need and tests can inject mocks.
type PexelsClient interface{}
