// Package leveldb implements the ability to read and write journal
// records in a LevelDB key/value store. Records are keyed by their
// big-endian sequence number so iteration order matches append order.
package leveldb

import (
	"encoding/binary"
	"encoding/json"
	"errors"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/riffworks/riff/foundation/riff/journal"
)

// LevelDB represents the storage implementation for reading and storing
// journal records in a LevelDB database. This implements the
// journal.Store interface.
type LevelDB struct {
	db *leveldb.DB
}

// New creates or opens a LevelDB database at the specified path.
func New(dbPath string) (*LevelDB, error) {
	db, err := leveldb.OpenFile(dbPath, nil)
	if err != nil {
		return nil, err
	}

	return &LevelDB{db: db}, nil
}

// Close closes the database connection.
func (l *LevelDB) Close() error {
	return l.db.Close()
}

// Append takes the specified record and stores it under its sequence
// number key.
func (l *LevelDB) Append(record journal.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return l.db.Put(seqKey(record.Seq), data, nil)
}

// GetRecord locates and returns the contents of the specified record by
// sequence number.
func (l *LevelDB) GetRecord(seq uint64) (journal.Record, error) {
	data, err := l.db.Get(seqKey(seq), nil)
	if err != nil {
		return journal.Record{}, err
	}

	var record journal.Record
	if err := json.Unmarshal(data, &record); err != nil {
		return journal.Record{}, err
	}

	return record, nil
}

// ForEach returns an iterator to walk through all the records starting
// with record 1.
func (l *LevelDB) ForEach() journal.Iterator {
	return &levelDBIterator{store: l}
}

// Reset clears out the journal.
func (l *LevelDB) Reset() error {
	iter := l.db.NewIterator(util.BytesPrefix(nil), nil)
	defer iter.Release()

	for iter.Next() {
		if err := l.db.Delete(iter.Key(), nil); err != nil {
			return err
		}
	}

	return iter.Error()
}

// seqKey forms the big-endian key for the specified sequence number.
func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

// =============================================================================

// levelDBIterator represents the iteration implementation for walking
// through and reading records in LevelDB. This implements the journal
// Iterator interface.
type levelDBIterator struct {
	store   *LevelDB // Access to the LevelDB storage API.
	current uint64   // Current record sequence being iterated over.
	eoj     bool     // Represents the iterator is at the end of the journal.
}

// Next retrieves the next record from the database.
func (li *levelDBIterator) Next() (journal.Record, error) {
	if li.eoj {
		return journal.Record{}, errors.New("end of journal")
	}

	li.current++
	record, err := li.store.GetRecord(li.current)
	if errors.Is(err, leveldb.ErrNotFound) {
		li.eoj = true
	}

	return record, err
}

// Done returns the end of journal value.
func (li *levelDBIterator) Done() bool {
	return li.eoj
}
