package ports

// IDGen returns unique correlation IDs.
type IDGen interface {
	NewID() string
}
