// Package docstore is the host side of the mapping layer: a minimal
// persistence collaborator plus the record serializer that composes scalar
// fields with synthesized embedded-field adapters.
package docstore

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.Config{UseNumber: true}.Froze()

// ErrNotFound is returned when a document id does not exist in a collection.
var ErrNotFound = errors.New("docstore: document not found")

// Store is an in-memory document store. Documents are kept in their
// dehydrated form (plain maps with "_cls" tags) serialized per document, so
// reads always rehydrate through the schema like a real storage round trip
// would.
type Store struct {
	mu          sync.RWMutex
	collections map[string]map[string][]byte
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{collections: map[string]map[string][]byte{}}
}

// Insert persists raw under a fresh id and returns it.
func (st *Store) Insert(collection string, raw map[string]any) (string, error) {
	id := uuid.NewString()
	if err := st.Put(collection, id, raw); err != nil {
		return "", err
	}
	return id, nil
}

// Put persists raw under the given id, replacing any previous document.
func (st *Store) Put(collection, id string, raw map[string]any) error {
	blob, err := jsonAPI.Marshal(raw)
	if err != nil {
		return err
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	col := st.collections[collection]
	if col == nil {
		col = map[string][]byte{}
		st.collections[collection] = col
	}
	col[id] = blob
	return nil
}

// Get loads the raw document stored under id.
func (st *Store) Get(collection, id string) (map[string]any, error) {
	st.mu.RLock()
	blob, ok := st.collections[collection][id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	var raw map[string]any
	if err := jsonAPI.Unmarshal(blob, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Delete removes the document stored under id, if present.
func (st *Store) Delete(collection, id string) {
	st.mu.Lock()
	delete(st.collections[collection], id)
	st.mu.Unlock()
}

// Drop removes a whole collection.
func (st *Store) Drop(collection string) {
	st.mu.Lock()
	delete(st.collections, collection)
	st.mu.Unlock()
}
