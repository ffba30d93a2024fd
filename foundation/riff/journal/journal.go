// Package journal defines the append-only record of accepted calls and
// the behavior required of any package that stores it. The ledger is
// rebuilt on startup by replaying the journal against genesis.
package journal

import "github.com/riffworks/riff/foundation/riff/call"

// Record represents one accepted call as it is stored in the journal.
// Exactly one of the call fields is set; the others stay nil.
type Record struct {
	Seq         uint64                      `json:"seq"`
	TimeStamp   uint64                      `json:"timestamp"`
	Profile     *call.SignedProfileCall     `json:"profile,omitempty"`
	Track       *call.SignedTrackCall       `json:"track,omitempty"`
	Contributor *call.SignedContributorCall `json:"contributor,omitempty"`
	Approve     *call.SignedApproveCall     `json:"approve,omitempty"`
	Action      *call.SignedActionCall      `json:"action,omitempty"`
	Withdraw    *call.SignedWithdrawCall    `json:"withdraw,omitempty"`
}

// Store interface represents the behavior required to be implemented by
// any package providing support for storing and reading the journal.
type Store interface {
	Append(record Record) error
	GetRecord(seq uint64) (Record, error)
	ForEach() Iterator
	Close() error
	Reset() error
}

// Iterator interface represents the behavior required to be implemented
// by any package providing support to iterate over the records.
type Iterator interface {
	Next() (Record, error)
	Done() bool
}
