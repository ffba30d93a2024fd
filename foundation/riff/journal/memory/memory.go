// Package memory implements the ability to read and write journal
// records in memory using a slice. Used by tests and ephemeral nodes.
package memory

import (
	"errors"
	"sync"

	"github.com/riffworks/riff/foundation/riff/journal"
)

// Memory represents the storage implementation for reading and storing
// journal records in memory. This implements the journal.Store interface.
type Memory struct {
	mu      sync.RWMutex
	records []journal.Record
}

// New constructs a Memory value for use.
func New() (*Memory, error) {
	return &Memory{}, nil
}

// Close in this implementation has nothing to do since everything
// is in memory.
func (m *Memory) Close() error {
	return nil
}

// Append takes the specified record and stores it in memory. Records
// must arrive in sequence order.
func (m *Memory) Append(record journal.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if uint64(len(m.records))+1 != record.Seq {
		return errors.New("record is out of order")
	}

	m.records = append(m.records, record)

	return nil
}

// GetRecord returns the contents of the specified record by sequence
// number.
func (m *Memory) GetRecord(seq uint64) (journal.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if seq == 0 || seq > uint64(len(m.records)) {
		return journal.Record{}, errors.New("record does not exist")
	}

	return m.records[seq-1], nil
}

// ForEach returns an iterator to walk through all the records starting
// with record 1.
func (m *Memory) ForEach() journal.Iterator {
	return &memoryIterator{store: m}
}

// Reset clears out the journal.
func (m *Memory) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = nil
	return nil
}

// =============================================================================

// memoryIterator represents the iteration implementation for walking
// through the records in memory. This implements the journal Iterator
// interface.
type memoryIterator struct {
	store   *Memory // Access to the in-memory records.
	current uint64  // Current record sequence being iterated over.
	eoj     bool    // Represents the iterator is at the end of the journal.
}

// Next retrieves the next record from memory.
func (mi *memoryIterator) Next() (journal.Record, error) {
	if mi.eoj {
		return journal.Record{}, errors.New("end of journal")
	}

	mi.current++
	record, err := mi.store.GetRecord(mi.current)
	if err != nil {
		mi.eoj = true
	}

	return record, err
}

// Done returns the end of journal value.
func (mi *memoryIterator) Done() bool {
	return mi.eoj
}
