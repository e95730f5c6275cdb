package keychain

import "sync"

// MemoryVault is an in-memory Vault implementation for testing. It keeps
// the native store's contract: adding an identity that already holds an
// item fails with the duplicate-item status, and lookups or deletes of a
// missing identity report item-not-found.
type MemoryVault struct {
	mu         sync.RWMutex
	items      map[memKey][]byte
	deleteFail map[string]Status
}

type memKey struct {
	tag   string
	label string
}

// NewMemoryVault creates an empty in-memory vault.
func NewMemoryVault() *MemoryVault {
	return &MemoryVault{
		items:      make(map[memKey][]byte),
		deleteFail: make(map[string]Status),
	}
}

func queryKey(q AttributeQuery) memKey {
	return memKey{tag: q.Tag(), label: q.Label()}
}

func (v *MemoryVault) Add(query AttributeQuery) Status {
	data, ok := query[AttrValueData].Bytes()
	if !ok {
		return StatusParam
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	key := queryKey(query)
	if _, exists := v.items[key]; exists {
		return StatusDuplicateItem
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	v.items[key] = cp
	return StatusSuccess
}

func (v *MemoryVault) Lookup(query AttributeQuery) (Status, any) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	data, exists := v.items[queryKey(query)]
	if !exists {
		return StatusItemNotFound, nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return StatusSuccess, cp
}

func (v *MemoryVault) Delete(query AttributeQuery) Status {
	v.mu.Lock()
	defer v.mu.Unlock()
	key := queryKey(query)
	if status, ok := v.deleteFail[key.tag]; ok {
		return status
	}
	if _, exists := v.items[key]; !exists {
		return StatusItemNotFound
	}
	delete(v.items, key)
	return StatusSuccess
}

// FailDeletesFor makes every delete against tag fail with the given
// status. Used by tests to simulate vault errors mid-sweep.
func (v *MemoryVault) FailDeletesFor(tag string, status Status) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.deleteFail[tag] = status
}

// Contains reports whether an item exists for the (tag, label) identity.
func (v *MemoryVault) Contains(tag, label string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	_, exists := v.items[memKey{tag: tag, label: label}]
	return exists
}

// Len returns the number of stored items.
func (v *MemoryVault) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.items)
}
