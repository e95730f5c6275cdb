package keychain

// Vault is the opaque OS secure-storage collaborator. Implementations
// translate attribute queries into native credential-store calls and
// report the native status code; they never interpret the stored payload.
//
// All calls are synchronous and block until the underlying store responds.
// The vault provides whatever ordering it natively provides for concurrent
// access to the same identity; this layer adds no serialization.
type Vault interface {
	// Add stores the item the query describes, including its
	// value-data attribute.
	Add(query AttributeQuery) Status

	// Lookup returns the payload of the single item matching the query.
	// The payload is whatever representation the native store hands
	// back; callers must verify it is a byte sequence.
	Lookup(query AttributeQuery) (Status, any)

	// Delete removes the item matching the query.
	Delete(query AttributeQuery) Status
}
